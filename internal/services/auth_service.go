package services

import (
	"context"
	"fmt"
	"regexp"

	"campus-connect/eventhub/internal/constants"
	"campus-connect/eventhub/internal/db/repositories"
	"campus-connect/eventhub/internal/models/dtos"
	gormModels "campus-connect/eventhub/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
)

var (
	usnPattern    = regexp.MustCompile(`^1BM\d{2}[A-Z]{2}\d{3}$`)
	mobilePattern = regexp.MustCompile(`^\d{10}$`)
)

const bcryptCost = 10

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// AuthService validates credentials and manages student accounts.
// Session lifecycle lives in the SessionStore; this service never
// touches cookies.
type AuthService struct {
	students *repositories.StudentRepository
}

func NewAuthService(students *repositories.StudentRepository) *AuthService {
	return &AuthService{students: students}
}

// SignUp validates the signup form, hashes the password and creates the
// student row.
func (s *AuthService) SignUp(ctx context.Context, req dtos.SignUpReq) (*gormModels.Student, error) {
	if req.Name == "" || req.USN == "" || req.Email == "" || req.Mobile == "" || req.Password == "" || req.Semester == 0 {
		return nil, validationErrorf(constants.MsgAllFieldsRequired)
	}
	if !usnPattern.MatchString(req.USN) {
		return nil, validationErrorf(constants.MsgInvalidUSN)
	}
	if req.Semester < 1 || req.Semester > 8 {
		return nil, validationErrorf("Semester must be between 1 and 8")
	}
	if !mobilePattern.MatchString(req.Mobile) {
		return nil, validationErrorf("Mobile number must be 10 digits")
	}

	exists, err := s.students.ExistsByUSNOrEmail(ctx, req.USN, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateStudent
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &gormModels.Student{
		USN:          req.USN,
		Name:         req.Name,
		Semester:     req.Semester,
		Mobile:       req.Mobile,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.students.Insert(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// SignIn checks the USN/password pair. A missing student and a wrong
// password return the same error so callers cannot enumerate accounts.
func (s *AuthService) SignIn(ctx context.Context, usn, password string) (*gormModels.Student, error) {
	if usn == "" || password == "" {
		return nil, validationErrorf("USN and password are required")
	}

	student, err := s.students.FindByUSN(ctx, usn)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return student, nil
}

// Profile returns the student behind an authenticated session.
func (s *AuthService) Profile(ctx context.Context, usn string) (*gormModels.Student, error) {
	student, err := s.students.FindByUSN(ctx, usn)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	return student, nil
}
