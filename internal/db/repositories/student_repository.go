package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	gormModels "campus-connect/eventhub/internal/models/gorm"

	"gorm.io/gorm"
)

type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new GORM-based student repository
func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByUSN returns (nil, nil) when no student exists with that USN.
func (r *StudentRepository) FindByUSN(ctx context.Context, usn string) (*gormModels.Student, error) {
	var student gormModels.Student

	err := r.db.WithContext(ctx).
		Where("usn = ?", usn).
		First(&student).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}

	return &student, nil
}

// FindByEmail returns (nil, nil) when no student exists with that email.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*gormModels.Student, error) {
	var student gormModels.Student

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&student).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}

	return &student, nil
}

// FindByResetToken returns (nil, nil) when no student holds that token.
func (r *StudentRepository) FindByResetToken(ctx context.Context, token string) (*gormModels.Student, error) {
	var student gormModels.Student

	err := r.db.WithContext(ctx).
		Where("reset_token = ?", token).
		First(&student).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch student by reset token: %w", err)
	}

	return &student, nil
}

// ExistsByUSNOrEmail reports whether a student row already claims the
// given USN or email.
func (r *StudentRepository) ExistsByUSNOrEmail(ctx context.Context, usn, email string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.Student{}).
		Where("usn = ? OR email = ?", usn, email).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check existing student: %w", err)
	}

	return count > 0, nil
}

func (r *StudentRepository) Insert(ctx context.Context, student *gormModels.Student) error {
	if err := r.db.WithContext(ctx).Create(student).Error; err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}
	return nil
}

// SetResetToken stores a fresh reset token and its expiry on the row.
func (r *StudentRepository) SetResetToken(ctx context.Context, usn, token string, expiry time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.Student{}).
		Where("usn = ?", usn).
		Updates(map[string]any{
			"reset_token":        token,
			"reset_token_expiry": expiry,
		}).Error

	if err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	return nil
}

// UpdatePasswordAndClearToken writes the new hash and invalidates the
// reset token in one update, so a consumed token cannot be replayed.
func (r *StudentRepository) UpdatePasswordAndClearToken(ctx context.Context, usn, passwordHash string) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.Student{}).
		Where("usn = ?", usn).
		Updates(map[string]any{
			"password_hash":      passwordHash,
			"reset_token":        nil,
			"reset_token_expiry": nil,
		}).Error

	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (r *StudentRepository) ListAll(ctx context.Context) ([]gormModels.Student, error) {
	var students []gormModels.Student

	err := r.db.WithContext(ctx).
		Order("name").
		Find(&students).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	return students, nil
}
