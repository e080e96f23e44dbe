package repositories

import (
	"context"
	"errors"
	"fmt"

	gormModels "campus-connect/eventhub/internal/models/gorm"

	"gorm.io/gorm"
)

// ParticipationRepository persists the participant and volunteer join
// tables. The capacity-enforcement path counts through here; the
// display-only counts go through LedgerRepository.
type ParticipationRepository struct {
	db *gorm.DB
}

// NewParticipationRepository creates a new GORM-based participation repository
func NewParticipationRepository(db *gorm.DB) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

// FindParticipation returns (nil, nil) when the student has not joined
// the event.
func (r *ParticipationRepository) FindParticipation(ctx context.Context, usn string, eventID uint) (*gormModels.Participation, error) {
	var row gormModels.Participation

	err := r.db.WithContext(ctx).
		Where("student_usn = ? AND event_id = ?", usn, eventID).
		First(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch participation: %w", err)
	}

	return &row, nil
}

func (r *ParticipationRepository) CountParticipants(ctx context.Context, eventID uint) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.Participation{}).
		Where("event_id = ?", eventID).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}

	return count, nil
}

func (r *ParticipationRepository) InsertParticipation(ctx context.Context, row *gormModels.Participation) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert participation: %w", err)
	}
	return nil
}

// MarkParticipationAttended flips the attendance flag to true.
func (r *ParticipationRepository) MarkParticipationAttended(ctx context.Context, usn string, eventID uint) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.Participation{}).
		Where("student_usn = ? AND event_id = ?", usn, eventID).
		Update("attended", true).Error

	if err != nil {
		return fmt.Errorf("failed to mark participant attendance: %w", err)
	}
	return nil
}

// ListParticipationsByStudent returns the student's registrations with
// events and their clubs preloaded.
func (r *ParticipationRepository) ListParticipationsByStudent(ctx context.Context, usn string) ([]gormModels.Participation, error) {
	var rows []gormModels.Participation

	err := r.db.WithContext(ctx).
		Preload("Event.Club").
		Where("student_usn = ?", usn).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list participations: %w", err)
	}

	return rows, nil
}

// FindVolunteering returns (nil, nil) when the student has not
// volunteered for the event.
func (r *ParticipationRepository) FindVolunteering(ctx context.Context, usn string, eventID uint) (*gormModels.Volunteering, error) {
	var row gormModels.Volunteering

	err := r.db.WithContext(ctx).
		Where("student_usn = ? AND event_id = ?", usn, eventID).
		First(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch volunteering: %w", err)
	}

	return &row, nil
}

func (r *ParticipationRepository) CountVolunteers(ctx context.Context, eventID uint) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.Volunteering{}).
		Where("event_id = ?", eventID).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count volunteers: %w", err)
	}

	return count, nil
}

func (r *ParticipationRepository) InsertVolunteering(ctx context.Context, row *gormModels.Volunteering) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert volunteering: %w", err)
	}
	return nil
}

// MarkVolunteeringAttended flips the attendance flag to true.
func (r *ParticipationRepository) MarkVolunteeringAttended(ctx context.Context, usn string, eventID uint) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.Volunteering{}).
		Where("student_usn = ? AND event_id = ?", usn, eventID).
		Update("attended", true).Error

	if err != nil {
		return fmt.Errorf("failed to mark volunteer attendance: %w", err)
	}
	return nil
}

// ListVolunteeringsByStudent returns the student's volunteer rows with
// events and their clubs preloaded.
func (r *ParticipationRepository) ListVolunteeringsByStudent(ctx context.Context, usn string) ([]gormModels.Volunteering, error) {
	var rows []gormModels.Volunteering

	err := r.db.WithContext(ctx).
		Preload("Event.Club").
		Where("student_usn = ?", usn).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list volunteerings: %w", err)
	}

	return rows, nil
}
