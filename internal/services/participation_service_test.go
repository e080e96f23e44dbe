package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-connect/eventhub/internal/db/repositories"
	gormModels "campus-connect/eventhub/internal/models/gorm"

	"gorm.io/gorm"
)

func newParticipationService(db *gorm.DB) *ParticipationService {
	return NewParticipationService(
		repositories.NewEventRepository(db),
		repositories.NewParticipationRepository(db),
	)
}

func TestParticipationService_Join(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	seedStudent(t, db, "1BM22CS043", "Rahul Iyer")
	service := newParticipationService(db)

	eventID := seedEvent(t, db, "Hackathon", "1BM22CS042", time.Now().AddDate(0, 0, 2))

	if err := service.Join(context.Background(), eventID, "1BM22CS043"); err != nil {
		t.Fatalf("Expected successful join, got %v", err)
	}

	var row gormModels.Participation
	if err := db.Where("student_usn = ? AND event_id = ?", "1BM22CS043", eventID).First(&row).Error; err != nil {
		t.Fatalf("Participation not found: %v", err)
	}
	if row.Attended {
		t.Error("New registration must start unattended")
	}

	if err := service.Join(context.Background(), eventID, "1BM22CS043"); !errors.Is(err, ErrAlreadyJoined) {
		t.Errorf("Expected ErrAlreadyJoined, got %v", err)
	}
}

func TestParticipationService_Join_EventNotFound(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	service := newParticipationService(db)

	if err := service.Join(context.Background(), 999, "1BM22CS042"); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("Expected ErrEventNotFound, got %v", err)
	}
}

func TestParticipationService_Join_Capacity(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	for _, usn := range []string{"1BM22CS050", "1BM22CS051", "1BM22CS052"} {
		seedStudent(t, db, usn, "Student "+usn)
	}
	service := newParticipationService(db)

	ev := gormModels.Event{
		Name:            "Workshop",
		Description:     "desc",
		EventDate:       time.Now().AddDate(0, 0, 2),
		EventTime:       "10:00",
		Location:        "Lab 3",
		MaxParticipants: 2,
		OrganizerUSN:    "1BM22CS042",
	}
	if err := db.Create(&ev).Error; err != nil {
		t.Fatalf("Failed to seed event: %v", err)
	}

	if err := service.Join(context.Background(), ev.ID, "1BM22CS050"); err != nil {
		t.Fatalf("First join failed: %v", err)
	}
	if err := service.Join(context.Background(), ev.ID, "1BM22CS051"); err != nil {
		t.Fatalf("Second join failed: %v", err)
	}
	if err := service.Join(context.Background(), ev.ID, "1BM22CS052"); !errors.Is(err, ErrParticipantsFull) {
		t.Errorf("Expected ErrParticipantsFull on third join, got %v", err)
	}

	// Volunteer slots are a separate pool
	if err := service.Volunteer(context.Background(), ev.ID, "1BM22CS052"); err != nil {
		t.Errorf("Expected volunteer slot to be open, got %v", err)
	}
}

func TestParticipationService_Join_UnlimitedWhenZero(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	seedStudent(t, db, "1BM22CS043", "Rahul Iyer")
	service := newParticipationService(db)

	// MaxParticipants 0 means no cap
	eventID := seedEvent(t, db, "Open Mic", "1BM22CS042", time.Now().AddDate(0, 0, 2))
	if err := service.Join(context.Background(), eventID, "1BM22CS043"); err != nil {
		t.Errorf("Expected join on uncapped event to succeed, got %v", err)
	}
}

func TestParticipationService_Volunteer_Capacity(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	seedStudent(t, db, "1BM22CS050", "A")
	seedStudent(t, db, "1BM22CS051", "B")
	service := newParticipationService(db)

	ev := gormModels.Event{
		Name:          "Fest",
		Description:   "desc",
		EventDate:     time.Now().AddDate(0, 0, 2),
		EventTime:     "10:00",
		Location:      "Grounds",
		MaxVolunteers: 1,
		OrganizerUSN:  "1BM22CS042",
	}
	if err := db.Create(&ev).Error; err != nil {
		t.Fatalf("Failed to seed event: %v", err)
	}

	if err := service.Volunteer(context.Background(), ev.ID, "1BM22CS050"); err != nil {
		t.Fatalf("First volunteer failed: %v", err)
	}
	if err := service.Volunteer(context.Background(), ev.ID, "1BM22CS050"); !errors.Is(err, ErrAlreadyVolunteered) {
		t.Errorf("Expected ErrAlreadyVolunteered, got %v", err)
	}
	if err := service.Volunteer(context.Background(), ev.ID, "1BM22CS051"); !errors.Is(err, ErrVolunteersFull) {
		t.Errorf("Expected ErrVolunteersFull, got %v", err)
	}
}

func TestParticipationService_MarkParticipantAttendance(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	seedStudent(t, db, "1BM22CS043", "Rahul Iyer")
	service := newParticipationService(db)

	eventID := seedEvent(t, db, "Hackathon", "1BM22CS042", time.Now().AddDate(0, 0, 2))
	if err := service.Join(context.Background(), eventID, "1BM22CS043"); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	// A student cannot mark someone else's attendance
	err := service.MarkParticipantAttendance(context.Background(), eventID, "1BM22CS043", "1BM22CS042")
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("Expected ErrForbidden for caller mismatch, got %v", err)
	}

	err = service.MarkParticipantAttendance(context.Background(), eventID, "1BM22CS043", "1BM22CS043")
	if err != nil {
		t.Fatalf("Expected attendance mark to succeed, got %v", err)
	}

	var row gormModels.Participation
	if err := db.Where("student_usn = ? AND event_id = ?", "1BM22CS043", eventID).First(&row).Error; err != nil {
		t.Fatalf("Participation not found: %v", err)
	}
	if !row.Attended {
		t.Error("Attendance flag was not set")
	}

	// Second scan of the same code
	err = service.MarkParticipantAttendance(context.Background(), eventID, "1BM22CS043", "1BM22CS043")
	if !errors.Is(err, ErrAlreadyMarked) {
		t.Errorf("Expected ErrAlreadyMarked, got %v", err)
	}
}

func TestParticipationService_MarkAttendance_NotRegistered(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	seedStudent(t, db, "1BM22CS043", "Rahul Iyer")
	service := newParticipationService(db)

	eventID := seedEvent(t, db, "Hackathon", "1BM22CS042", time.Now().AddDate(0, 0, 2))

	err := service.MarkParticipantAttendance(context.Background(), eventID, "1BM22CS043", "1BM22CS043")
	if !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Expected ErrNotRegistered, got %v", err)
	}
	err = service.MarkVolunteerAttendance(context.Background(), eventID, "1BM22CS043", "1BM22CS043")
	if !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Expected ErrNotRegistered for volunteer path, got %v", err)
	}
}

func TestParticipationService_MarkVolunteerAttendance(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	seedStudent(t, db, "1BM22CS043", "Rahul Iyer")
	service := newParticipationService(db)

	eventID := seedEvent(t, db, "Fest", "1BM22CS042", time.Now().AddDate(0, 0, 2))
	if err := service.Volunteer(context.Background(), eventID, "1BM22CS043"); err != nil {
		t.Fatalf("Volunteer failed: %v", err)
	}

	err := service.MarkVolunteerAttendance(context.Background(), eventID, "1BM22CS043", "1BM22CS043")
	if err != nil {
		t.Fatalf("Expected volunteer attendance mark to succeed, got %v", err)
	}

	var row gormModels.Volunteering
	if err := db.Where("student_usn = ? AND event_id = ?", "1BM22CS043", eventID).First(&row).Error; err != nil {
		t.Fatalf("Volunteering not found: %v", err)
	}
	if !row.Attended {
		t.Error("Attendance flag was not set")
	}
}

func TestParticipationService_ScanQr(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	seedStudent(t, db, "1BM22CS043", "Rahul Iyer")
	service := newParticipationService(db)

	eventID := seedEvent(t, db, "Hackathon", "1BM22CS042", time.Now().AddDate(0, 0, 2))
	if err := service.Join(context.Background(), eventID, "1BM22CS043"); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	// Legacy path takes the USN at face value, no caller check
	if err := service.ScanQr(context.Background(), eventID, "1BM22CS043"); err != nil {
		t.Fatalf("Expected scan to succeed, got %v", err)
	}
	if err := service.ScanQr(context.Background(), eventID, "1BM22CS043"); !errors.Is(err, ErrAlreadyMarked) {
		t.Errorf("Expected ErrAlreadyMarked on rescan, got %v", err)
	}
}
