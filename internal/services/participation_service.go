package services

import (
	"context"

	"campus-connect/eventhub/internal/db/repositories"
	gormModels "campus-connect/eventhub/internal/models/gorm"
)

// ParticipationService handles joining, volunteering and attendance
// marking. Capacity checks are count-then-insert: two round trips with
// no locking, so concurrent joins right at the boundary can overbook.
type ParticipationService struct {
	events         *repositories.EventRepository
	participations *repositories.ParticipationRepository
}

func NewParticipationService(
	events *repositories.EventRepository,
	participations *repositories.ParticipationRepository,
) *ParticipationService {
	return &ParticipationService{
		events:         events,
		participations: participations,
	}
}

// Join registers the student as a participant, enforcing the event's
// max participants when one is set.
func (s *ParticipationService) Join(ctx context.Context, eventID uint, usn string) error {
	existing, err := s.participations.FindParticipation(ctx, usn, eventID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyJoined
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}

	if event.MaxParticipants > 0 {
		count, err := s.participations.CountParticipants(ctx, eventID)
		if err != nil {
			return err
		}
		if count >= int64(event.MaxParticipants) {
			return ErrParticipantsFull
		}
	}

	return s.participations.InsertParticipation(ctx, &gormModels.Participation{
		StudentUSN: usn,
		EventID:    eventID,
	})
}

// Volunteer registers the student as a volunteer, enforcing the event's
// max volunteers when one is set.
func (s *ParticipationService) Volunteer(ctx context.Context, eventID uint, usn string) error {
	existing, err := s.participations.FindVolunteering(ctx, usn, eventID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyVolunteered
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}

	if event.MaxVolunteers > 0 {
		count, err := s.participations.CountVolunteers(ctx, eventID)
		if err != nil {
			return err
		}
		if count >= int64(event.MaxVolunteers) {
			return ErrVolunteersFull
		}
	}

	return s.participations.InsertVolunteering(ctx, &gormModels.Volunteering{
		StudentUSN: usn,
		EventID:    eventID,
	})
}

// MarkParticipantAttendance flips the caller's own attendance flag. The
// QR payload only carries the event id; identity comes from the session,
// so callerUSN must match the requested usn.
func (s *ParticipationService) MarkParticipantAttendance(ctx context.Context, eventID uint, usn, callerUSN string) error {
	if usn != callerUSN {
		return ErrForbidden
	}
	return s.markParticipant(ctx, eventID, usn)
}

// MarkVolunteerAttendance is the volunteer-side equivalent.
func (s *ParticipationService) MarkVolunteerAttendance(ctx context.Context, eventID uint, usn, callerUSN string) error {
	if usn != callerUSN {
		return ErrForbidden
	}

	row, err := s.participations.FindVolunteering(ctx, usn, eventID)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrNotRegistered
	}
	if row.Attended {
		return ErrAlreadyMarked
	}

	return s.participations.MarkVolunteeringAttended(ctx, usn, eventID)
}

// ScanQr is the deprecated attendance path: identity comes from the
// query string, not the session. Kept for backward compatibility with
// old printed codes.
func (s *ParticipationService) ScanQr(ctx context.Context, eventID uint, usn string) error {
	return s.markParticipant(ctx, eventID, usn)
}

func (s *ParticipationService) markParticipant(ctx context.Context, eventID uint, usn string) error {
	row, err := s.participations.FindParticipation(ctx, usn, eventID)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrNotRegistered
	}
	if row.Attended {
		return ErrAlreadyMarked
	}

	return s.participations.MarkParticipationAttended(ctx, usn, eventID)
}
