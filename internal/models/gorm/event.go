package gorm

import "time"

// Event is immutable once created; lifecycle state (upcoming/ongoing/
// completed) is derived from EventDate at read time, never stored.
type Event struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name            string    `gorm:"column:name;not null"`
	Description     string    `gorm:"column:description;not null"`
	EventDate       time.Time `gorm:"column:event_date;not null"`
	EventTime       string    `gorm:"column:event_time;not null"`
	Location        string    `gorm:"column:location;not null"`
	MaxParticipants int       `gorm:"column:max_participants;default:0"`
	MaxVolunteers   int       `gorm:"column:max_volunteers;default:0"`
	RegistrationFee float64   `gorm:"column:registration_fee;default:0"`
	OrganizerUSN    string    `gorm:"column:organizer_usn;index;not null"`
	ClubID          *uint     `gorm:"column:club_id"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Organizer Student `gorm:"foreignKey:OrganizerUSN;references:USN"`
	Club      *Club   `gorm:"foreignKey:ClubID"`
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}
