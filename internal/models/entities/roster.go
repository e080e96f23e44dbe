package entities

// RosterRow is one student on an event's participant or volunteer
// roster, as returned by the sqlx join queries.
type RosterRow struct {
	USN      string `db:"usn" json:"usn"`
	Name     string `db:"name" json:"name"`
	Semester int    `db:"semester" json:"semester"`
	Email    string `db:"email" json:"email"`
	Attended bool   `db:"attended" json:"attended"`
}
