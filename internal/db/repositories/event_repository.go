package repositories

import (
	"context"
	"errors"
	"fmt"

	gormModels "campus-connect/eventhub/internal/models/gorm"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new GORM-based event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Insert(ctx context.Context, event *gormModels.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// FindByID returns the event with its club and organizer preloaded, or
// (nil, nil) when absent.
func (r *EventRepository) FindByID(ctx context.Context, id uint) (*gormModels.Event, error) {
	var event gormModels.Event

	err := r.db.WithContext(ctx).
		Preload("Club").
		Preload("Organizer").
		Where("id = ?", id).
		First(&event).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	return &event, nil
}

func (r *EventRepository) ListAll(ctx context.Context) ([]gormModels.Event, error) {
	var events []gormModels.Event

	err := r.db.WithContext(ctx).
		Preload("Club").
		Preload("Organizer").
		Order("event_date").
		Find(&events).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

func (r *EventRepository) ListByOrganizer(ctx context.Context, usn string) ([]gormModels.Event, error) {
	var events []gormModels.Event

	err := r.db.WithContext(ctx).
		Preload("Club").
		Where("organizer_usn = ?", usn).
		Order("event_date").
		Find(&events).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list organized events: %w", err)
	}

	return events, nil
}
