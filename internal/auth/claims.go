package auth

// UserClaims describes the authenticated student attached to a request.
type UserClaims interface {
	USN() string
	Name() string
	Email() string
	Source() string
}

// SessionClaims are claims resolved from a session cookie.
type SessionClaims struct {
	StudentUSN   string
	StudentName  string
	StudentEmail string
	SessionID    string
}

func (c *SessionClaims) USN() string    { return c.StudentUSN }
func (c *SessionClaims) Name() string   { return c.StudentName }
func (c *SessionClaims) Email() string  { return c.StudentEmail }
func (c *SessionClaims) Source() string { return "SESSION" }
