package gorm

import "time"

// Participation is a (student, event) registration with an attendance
// flag. The unique index rejects duplicate joins at the storage layer.
type Participation struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	StudentUSN string    `gorm:"column:student_usn;uniqueIndex:idx_participation"`
	EventID    uint      `gorm:"column:event_id;uniqueIndex:idx_participation"`
	Attended   bool      `gorm:"column:attended;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Student Student `gorm:"foreignKey:StudentUSN;references:USN"`
	Event   Event   `gorm:"foreignKey:EventID"`
}

// TableName specifies the table name for GORM
func (Participation) TableName() string {
	return "participations"
}

// Volunteering mirrors Participation but is capacity-checked against the
// event's max volunteers.
type Volunteering struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	StudentUSN string    `gorm:"column:student_usn;uniqueIndex:idx_volunteering"`
	EventID    uint      `gorm:"column:event_id;uniqueIndex:idx_volunteering"`
	Attended   bool      `gorm:"column:attended;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Student Student `gorm:"foreignKey:StudentUSN;references:USN"`
	Event   Event   `gorm:"foreignKey:EventID"`
}

// TableName specifies the table name for GORM
func (Volunteering) TableName() string {
	return "volunteerings"
}
