package constants

const (
	CountParticipantsByEvent = `
	SELECT COUNT(*) FROM participations WHERE event_id = $1
	`

	CountVolunteersByEvent = `
	SELECT COUNT(*) FROM volunteerings WHERE event_id = $1
	`

	GetParticipantRoster = `
	SELECT s.usn, s.name, s.semester, s.email, p.attended
	FROM participations p
	JOIN students s ON s.usn = p.student_usn
	WHERE p.event_id = $1
	ORDER BY s.name
	`

	GetVolunteerRoster = `
	SELECT s.usn, s.name, s.semester, s.email, v.attended
	FROM volunteerings v
	JOIN students s ON s.usn = v.student_usn
	WHERE v.event_id = $1
	ORDER BY s.name
	`
)
