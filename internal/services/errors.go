package services

import "errors"

// Sentinel errors the handlers map onto HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid usn or password")
	ErrDuplicateStudent   = errors.New("student already exists")
	ErrStudentNotFound    = errors.New("student not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrAlreadyJoined      = errors.New("already joined this event")
	ErrAlreadyVolunteered = errors.New("already volunteered for this event")
	ErrParticipantsFull   = errors.New("no participant slots available")
	ErrVolunteersFull     = errors.New("no volunteer slots available")
	ErrNotClubMember      = errors.New("not a member of the organizing club")
	ErrNotRegistered      = errors.New("registration not found")
	ErrAlreadyMarked      = errors.New("attendance already marked")
	ErrForbidden          = errors.New("not permitted")
	ErrInvalidResetToken  = errors.New("invalid reset token")
	ErrExpiredResetToken  = errors.New("reset token expired")
	ErrFreeEvent          = errors.New("event has no registration fee")
	ErrInvalidSignature   = errors.New("payment signature mismatch")
)

// ValidationError reports malformed or missing input with a message the
// client is allowed to see.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
