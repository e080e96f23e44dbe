package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixClubs    CachePrefix = "CLUBS_ALL"
	CachePrefixStudents CachePrefix = "STUDENTS_ALL"

	SessionCookieName = "sessionId"

	// Organizer QR codes encode the event id with this prefix; the
	// scanning client strips it before calling the attendance endpoints.
	QRPayloadPrefix = "eventId:"
)
