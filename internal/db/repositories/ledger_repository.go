package repositories

import (
	"context"

	"campus-connect/eventhub/internal/constants"
	"campus-connect/eventhub/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// LedgerRepository serves the read-only count and roster views over the
// participant and volunteer tables.
type LedgerRepository struct {
	db *sqlx.DB
}

func NewLedgerRepository(db *sqlx.DB) *LedgerRepository {
	return &LedgerRepository{db}
}

func (r *LedgerRepository) CountParticipants(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.QueryRowxContext(ctx, constants.CountParticipantsByEvent, eventID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LedgerRepository) CountVolunteers(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.QueryRowxContext(ctx, constants.CountVolunteersByEvent, eventID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LedgerRepository) ParticipantRoster(ctx context.Context, eventID uint) ([]entities.RosterRow, error) {
	rows := []entities.RosterRow{}
	err := r.db.SelectContext(ctx, &rows, constants.GetParticipantRoster, eventID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *LedgerRepository) VolunteerRoster(ctx context.Context, eventID uint) ([]entities.RosterRow, error) {
	rows := []entities.RosterRow{}
	err := r.db.SelectContext(ctx, &rows, constants.GetVolunteerRoster, eventID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
