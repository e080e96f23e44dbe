package services

import (
	"context"
	"time"

	"campus-connect/eventhub/internal/db/repositories"
	"campus-connect/eventhub/internal/models/dtos"
	gormModels "campus-connect/eventhub/internal/models/gorm"

	"golang.org/x/sync/errgroup"
)

const eventDateLayout = "2006-01-02"

// EventService creates events and serves the categorized and enriched
// event views.
type EventService struct {
	events         *repositories.EventRepository
	clubs          *repositories.ClubRepository
	participations *repositories.ParticipationRepository
}

func NewEventService(
	events *repositories.EventRepository,
	clubs *repositories.ClubRepository,
	participations *repositories.ParticipationRepository,
) *EventService {
	return &EventService{
		events:         events,
		clubs:          clubs,
		participations: participations,
	}
}

// Create validates the form and persists the event with the caller as
// organizer. Organizing under a club requires membership.
func (s *EventService) Create(ctx context.Context, organizerUSN string, req dtos.CreateEventReq) (uint, error) {
	if req.EventName == "" || req.EventDescription == "" || req.EventDate == "" || req.EventTime == "" || req.EventLocation == "" {
		return 0, validationErrorf("Event name, description, date, time, and location are required")
	}

	eventDate, err := time.ParseInLocation(eventDateLayout, req.EventDate, time.Local)
	if err != nil {
		return 0, validationErrorf("Event date must be in YYYY-MM-DD format")
	}
	if !eventDate.After(startOfDay(time.Now())) {
		return 0, validationErrorf("Event date must be in the future")
	}

	if req.ClubID != nil {
		member, err := s.clubs.IsMember(ctx, organizerUSN, *req.ClubID)
		if err != nil {
			return 0, err
		}
		if !member {
			return 0, ErrNotClubMember
		}
	}

	event := &gormModels.Event{
		Name:            req.EventName,
		Description:     req.EventDescription,
		EventDate:       eventDate,
		EventTime:       req.EventTime,
		Location:        req.EventLocation,
		MaxParticipants: req.MaxParticipants,
		MaxVolunteers:   req.MaxVolunteers,
		RegistrationFee: req.RegistrationFee,
		OrganizerUSN:    organizerUSN,
		ClubID:          req.ClubID,
	}

	if err := s.events.Insert(ctx, event); err != nil {
		return 0, err
	}

	return event.ID, nil
}

// List returns every event partitioned by date relative to now: same
// calendar day is ongoing, earlier is completed, later is upcoming.
func (s *EventService) List(ctx context.Context, now time.Time) (*dtos.EventBuckets, error) {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	buckets := &dtos.EventBuckets{
		Ongoing:   []dtos.EventView{},
		Completed: []dtos.EventView{},
		Upcoming:  []dtos.EventView{},
	}

	today := startOfDay(now)
	for _, ev := range events {
		view := toEventView(&ev)
		switch {
		case startOfDay(ev.EventDate).Equal(today):
			buckets.Ongoing = append(buckets.Ongoing, view)
		case ev.EventDate.Before(today):
			buckets.Completed = append(buckets.Completed, view)
		default:
			buckets.Upcoming = append(buckets.Upcoming, view)
		}
	}

	return buckets, nil
}

// Detail returns one event enriched with the caller's relation to it.
func (s *EventService) Detail(ctx context.Context, eventID uint, callerUSN string) (*dtos.EventDetail, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	detail := &dtos.EventDetail{
		EventView:    toEventView(event),
		OrganizerUSN: event.OrganizerUSN,
		IsOrganizer:  event.OrganizerUSN == callerUSN,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		row, err := s.participations.FindParticipation(gctx, callerUSN, eventID)
		if err != nil {
			return err
		}
		detail.IsRegistered = row != nil
		return nil
	})
	g.Go(func() error {
		row, err := s.participations.FindVolunteering(gctx, callerUSN, eventID)
		if err != nil {
			return err
		}
		detail.IsVolunteer = row != nil
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

// MyOrganized lists the caller's own events.
func (s *EventService) MyOrganized(ctx context.Context, usn string) ([]dtos.MyEventView, error) {
	events, err := s.events.ListByOrganizer(ctx, usn)
	if err != nil {
		return nil, err
	}

	views := make([]dtos.MyEventView, 0, len(events))
	for _, ev := range events {
		views = append(views, dtos.MyEventView{
			EventView: toEventView(&ev),
			Role:      "organizer",
		})
	}
	return views, nil
}

// MyParticipant lists events the caller has joined, with attendance.
func (s *EventService) MyParticipant(ctx context.Context, usn string) ([]dtos.MyEventView, error) {
	rows, err := s.participations.ListParticipationsByStudent(ctx, usn)
	if err != nil {
		return nil, err
	}

	views := make([]dtos.MyEventView, 0, len(rows))
	for _, row := range rows {
		views = append(views, dtos.MyEventView{
			EventView: toEventView(&row.Event),
			Attended:  row.Attended,
			Role:      "participant",
		})
	}
	return views, nil
}

// MyVolunteer lists events the caller volunteers for, with attendance.
func (s *EventService) MyVolunteer(ctx context.Context, usn string) ([]dtos.MyEventView, error) {
	rows, err := s.participations.ListVolunteeringsByStudent(ctx, usn)
	if err != nil {
		return nil, err
	}

	views := make([]dtos.MyEventView, 0, len(rows))
	for _, row := range rows {
		views = append(views, dtos.MyEventView{
			EventView: toEventView(&row.Event),
			Attended:  row.Attended,
			Role:      "volunteer",
		})
	}
	return views, nil
}

func toEventView(ev *gormModels.Event) dtos.EventView {
	view := dtos.EventView{
		EID:         ev.ID,
		Name:        ev.Name,
		Description: ev.Description,
		EventDate:   ev.EventDate.Format(eventDateLayout),
		EventTime:   ev.EventTime,
		EventLoc:    ev.Location,
		MaxPart:     ev.MaxParticipants,
		MaxVoln:     ev.MaxVolunteers,
		RegFee:      ev.RegistrationFee,
	}
	if ev.Club != nil {
		view.ClubName = ev.Club.Name
	}
	if ev.Organizer.Name != "" {
		view.OrganizerName = ev.Organizer.Name
	}
	return view
}

// startOfDay truncates to local midnight, the categorization boundary.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
