package repositories

import (
	"context"
	"fmt"

	gormModels "campus-connect/eventhub/internal/models/gorm"

	"gorm.io/gorm"
)

type ClubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new GORM-based club repository
func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) ListAll(ctx context.Context) ([]gormModels.Club, error) {
	var clubs []gormModels.Club

	err := r.db.WithContext(ctx).
		Order("name").
		Find(&clubs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}

	return clubs, nil
}

// ListByStudent returns the clubs a student is a member of.
func (r *ClubRepository) ListByStudent(ctx context.Context, usn string) ([]gormModels.Club, error) {
	var memberships []gormModels.ClubMember

	err := r.db.WithContext(ctx).
		Preload("Club").
		Where("student_usn = ?", usn).
		Find(&memberships).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	clubs := make([]gormModels.Club, 0, len(memberships))
	for _, m := range memberships {
		clubs = append(clubs, m.Club)
	}
	return clubs, nil
}

// IsMember reports whether the student belongs to the club. Organizing
// an event under a club requires this to hold.
func (r *ClubRepository) IsMember(ctx context.Context, usn string, clubID uint) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.ClubMember{}).
		Where("student_usn = ? AND club_id = ?", usn, clubID).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check club membership: %w", err)
	}

	return count > 0, nil
}

func (r *ClubRepository) InsertMember(ctx context.Context, member *gormModels.ClubMember) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return fmt.Errorf("failed to insert club member: %w", err)
	}
	return nil
}
