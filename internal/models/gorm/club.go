package gorm

import "time"

type Club struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string `gorm:"column:name;not null"`
	Description string `gorm:"column:description"`
	MaxMembers  *int   `gorm:"column:max_members"`
}

// TableName specifies the table name for GORM
func (Club) TableName() string {
	return "clubs"
}

// ClubMember records a student's membership in a club. Organizing an
// event under a club requires a row here.
type ClubMember struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	StudentUSN string    `gorm:"column:student_usn;uniqueIndex:idx_club_member"`
	ClubID     uint      `gorm:"column:club_id;uniqueIndex:idx_club_member"`
	JoinedAt   time.Time `gorm:"column:joined_at;autoCreateTime"`

	// Relationships
	Club Club `gorm:"foreignKey:ClubID"`
}

// TableName specifies the table name for GORM
func (ClubMember) TableName() string {
	return "club_members"
}
