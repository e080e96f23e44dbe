package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"campus-connect/eventhub/internal/db/repositories"
	gormModels "campus-connect/eventhub/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock Mailer
type mockMailer struct {
	sentTo   string
	sentLink string
	err      error
}

func (m *mockMailer) SendPasswordReset(ctx context.Context, to, name, resetLink string) error {
	m.sentTo = to
	m.sentLink = resetLink
	return m.err
}

func newResetService(db *gorm.DB, mailer *mockMailer) *PasswordResetService {
	return NewPasswordResetService(
		repositories.NewStudentRepository(db),
		mailer,
		"http://localhost:3000",
	)
}

func TestPasswordResetService_Forgot(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	mailer := &mockMailer{}
	service := newResetService(db, mailer)

	sent, err := service.Forgot(context.Background(), "1BM22CS042@college.edu")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !sent {
		t.Error("Expected the mail-sent flag for a known email")
	}

	var student gormModels.Student
	if err := db.Where("usn = ?", "1BM22CS042").First(&student).Error; err != nil {
		t.Fatalf("Student not found: %v", err)
	}
	if student.ResetToken == nil || len(*student.ResetToken) != 64 {
		t.Fatalf("Expected a 64-char hex token, got %v", student.ResetToken)
	}
	if student.ResetTokenExpiry == nil {
		t.Fatal("Expected a token expiry")
	}
	untilExpiry := time.Until(*student.ResetTokenExpiry)
	if untilExpiry < 55*time.Minute || untilExpiry > 65*time.Minute {
		t.Errorf("Expected expiry about an hour out, got %v", untilExpiry)
	}

	if mailer.sentTo != "1BM22CS042@college.edu" {
		t.Errorf("Mail sent to wrong address: %s", mailer.sentTo)
	}
	wantLink := "http://localhost:3000/reset-password?token=" + *student.ResetToken
	if mailer.sentLink != wantLink {
		t.Errorf("Expected link %s, got %s", wantLink, mailer.sentLink)
	}
}

func TestPasswordResetService_Forgot_UnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	mailer := &mockMailer{}
	service := newResetService(db, mailer)

	// Unknown addresses succeed silently, no mail goes out
	sent, err := service.Forgot(context.Background(), "nobody@college.edu")
	if err != nil {
		t.Fatalf("Expected silent success, got %v", err)
	}
	if sent {
		t.Error("Expected the mail-sent flag to be false for an unknown email")
	}
	if mailer.sentTo != "" {
		t.Errorf("Expected no mail, but one went to %s", mailer.sentTo)
	}
}

func TestPasswordResetService_Reset(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	mailer := &mockMailer{}
	service := newResetService(db, mailer)

	if _, err := service.Forgot(context.Background(), "1BM22CS042@college.edu"); err != nil {
		t.Fatalf("Forgot failed: %v", err)
	}
	token := strings.TrimPrefix(mailer.sentLink, "http://localhost:3000/reset-password?token=")

	name, err := service.Reset(context.Background(), token, "newsecret")
	if err != nil {
		t.Fatalf("Expected successful reset, got %v", err)
	}
	if name != "Ananya Rao" {
		t.Errorf("Expected student name back, got %s", name)
	}

	var student gormModels.Student
	if err := db.Where("usn = ?", "1BM22CS042").First(&student).Error; err != nil {
		t.Fatalf("Student not found: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte("newsecret")); err != nil {
		t.Errorf("New password does not verify: %v", err)
	}
	if student.ResetToken != nil {
		t.Error("Token must be cleared after use")
	}

	// The token is single use
	if _, err := service.Reset(context.Background(), token, "anothersecret"); !errors.Is(err, ErrInvalidResetToken) {
		t.Errorf("Expected ErrInvalidResetToken on reuse, got %v", err)
	}
}

func TestPasswordResetService_Reset_Expired(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	mailer := &mockMailer{}
	service := newResetService(db, mailer)

	if _, err := service.Forgot(context.Background(), "1BM22CS042@college.edu"); err != nil {
		t.Fatalf("Forgot failed: %v", err)
	}
	token := strings.TrimPrefix(mailer.sentLink, "http://localhost:3000/reset-password?token=")

	// Jump the clock past the TTL
	service.now = func() time.Time { return time.Now().Add(resetTokenTTL + time.Minute) }

	if _, err := service.Reset(context.Background(), token, "newsecret"); !errors.Is(err, ErrExpiredResetToken) {
		t.Errorf("Expected ErrExpiredResetToken, got %v", err)
	}
}

func TestPasswordResetService_Reset_Validation(t *testing.T) {
	db := setupTestDB(t)
	service := newResetService(db, &mockMailer{})

	if _, err := service.Reset(context.Background(), "", "newsecret"); !IsValidationError(err) {
		t.Errorf("Expected validation error for empty token, got %v", err)
	}
	if _, err := service.Reset(context.Background(), "sometoken", "short"); !IsValidationError(err) {
		t.Errorf("Expected validation error for short password, got %v", err)
	}
	if _, err := service.Reset(context.Background(), "unknown-token", "newsecret"); !errors.Is(err, ErrInvalidResetToken) {
		t.Errorf("Expected ErrInvalidResetToken, got %v", err)
	}
}
