package constants

const (
	MsgAllFieldsRequired   = "All fields are required"
	MsgInvalidUSN          = "Invalid USN format"
	MsgDuplicateStudent    = "Student with this USN or email already exists"
	MsgInvalidCredentials  = "Invalid USN or password"
	MsgNotSignedIn         = "Please sign in first"
	MsgEventNotFound       = "Event not found"
	MsgAlreadyJoined       = "Already joined this event"
	MsgAlreadyVolunteered  = "Already volunteered for this event"
	MsgNoParticipantSlots  = "No more participant slots available"
	MsgNoVolunteerSlots    = "No more volunteer slots available"
	MsgNotClubMember       = "You must be a member of the club to organize events for it"
	MsgAlreadyCheckedIn    = "Attendance already marked"
	MsgNotRegistered       = "Registration not found for this event"
	MsgDatabaseError       = "Database error"
	MsgResetMailSent       = "If an account exists for that email, a reset link has been sent"
	MsgInvalidResetToken   = "Invalid or unknown reset token"
	MsgExpiredResetToken   = "Reset token has expired"
	MsgPasswordTooShort    = "Password must be at least 6 characters"
	MsgSignatureMismatch   = "Payment signature verification failed"
	MsgFreeEventNoOrder    = "This event has no registration fee"
	MsgAttendanceForbidden = "You can only mark your own attendance"
)
