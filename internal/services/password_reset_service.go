package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"campus-connect/eventhub/internal/common"
	"campus-connect/eventhub/internal/constants"
	"campus-connect/eventhub/internal/db/repositories"
	"campus-connect/eventhub/internal/logging"
)

const resetTokenTTL = time.Hour

// PasswordResetService issues time-limited reset tokens and applies
// password resets. The token is the sole credential for the reset.
type PasswordResetService struct {
	students       *repositories.StudentRepository
	mailer         common.Mailer
	frontendOrigin string
	now            func() time.Time
}

func NewPasswordResetService(
	students *repositories.StudentRepository,
	mailer common.Mailer,
	frontendOrigin string,
) *PasswordResetService {
	return &PasswordResetService{
		students:       students,
		mailer:         mailer,
		frontendOrigin: frontendOrigin,
		now:            time.Now,
	}
}

// Forgot stores a fresh token and emails the reset link. An unknown
// email is silently accepted so callers cannot enumerate accounts; the
// returned flag reports whether a mail actually went out.
func (s *PasswordResetService) Forgot(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, validationErrorf("Email is required")
	}

	student, err := s.students.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if student == nil {
		logging.Info("password reset requested for unknown email")
		return false, nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return false, fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)
	expiry := s.now().Add(resetTokenTTL)

	if err := s.students.SetResetToken(ctx, student.USN, token, expiry); err != nil {
		return false, err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendOrigin, token)
	if err := s.mailer.SendPasswordReset(ctx, student.Email, student.Name, resetLink); err != nil {
		return false, err
	}
	return true, nil
}

// Reset validates the token and installs the new password, clearing the
// token so it cannot be reused. Returns the student's name.
func (s *PasswordResetService) Reset(ctx context.Context, token, newPassword string) (string, error) {
	if token == "" {
		return "", validationErrorf("Reset token is required")
	}
	if len(newPassword) < 6 {
		return "", validationErrorf(constants.MsgPasswordTooShort)
	}

	student, err := s.students.FindByResetToken(ctx, token)
	if err != nil {
		return "", err
	}
	if student == nil {
		return "", ErrInvalidResetToken
	}
	if student.ResetTokenExpiry == nil || s.now().After(*student.ResetTokenExpiry) {
		return "", ErrExpiredResetToken
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return "", err
	}

	if err := s.students.UpdatePasswordAndClearToken(ctx, student.USN, hash); err != nil {
		return "", err
	}

	return student.Name, nil
}
