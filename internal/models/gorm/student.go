package gorm

import (
	"time"
)

type Student struct {
	USN              string     `gorm:"column:usn;primaryKey"`
	Name             string     `gorm:"column:name;not null"`
	Semester         int        `gorm:"column:semester;not null"`
	Mobile           string     `gorm:"column:mobile;not null"`
	Email            string     `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash     string     `gorm:"column:password_hash;not null"`
	ResetToken       *string    `gorm:"column:reset_token;index"`
	ResetTokenExpiry *time.Time `gorm:"column:reset_token_expiry"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Student) TableName() string {
	return "students"
}
