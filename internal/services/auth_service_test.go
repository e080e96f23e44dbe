package services

import (
	"context"
	"errors"
	"testing"

	"campus-connect/eventhub/internal/db/repositories"
	"campus-connect/eventhub/internal/models/dtos"
	gormModels "campus-connect/eventhub/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&gormModels.Student{},
		&gormModels.Club{},
		&gormModels.ClubMember{},
		&gormModels.Event{},
		&gormModels.Participation{},
		&gormModels.Volunteering{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func validSignUpReq() dtos.SignUpReq {
	return dtos.SignUpReq{
		Name:     "Ananya Rao",
		USN:      "1BM22CS042",
		Semester: 4,
		Mobile:   "9876543210",
		Email:    "ananya@college.edu",
		Password: "secret123",
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(repositories.NewStudentRepository(db))

	student, err := service.SignUp(context.Background(), validSignUpReq())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if student.USN != "1BM22CS042" {
		t.Errorf("Expected USN 1BM22CS042, got %s", student.USN)
	}

	// Password must be stored hashed
	var row gormModels.Student
	if err := db.Where("usn = ?", "1BM22CS042").First(&row).Error; err != nil {
		t.Fatalf("Student not found in database: %v", err)
	}
	if row.PasswordHash == "secret123" {
		t.Error("Password was stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte("secret123")); err != nil {
		t.Errorf("Stored hash does not match password: %v", err)
	}
}

func TestAuthService_SignUp_InvalidUSN(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(repositories.NewStudentRepository(db))

	cases := []string{
		"ABM22CS042", // wrong college prefix
		"1BM2XCS042", // letter in year
		"1BM22cs042", // lowercase branch
		"1BM22CS42",  // roll too short
		"1BM22CS0421",
		"2BM22CS042",
	}

	for _, usn := range cases {
		req := validSignUpReq()
		req.USN = usn
		_, err := service.SignUp(context.Background(), req)
		if !IsValidationError(err) {
			t.Errorf("USN %q: expected validation error, got %v", usn, err)
		}
	}
}

func TestAuthService_SignUp_MissingFields(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(repositories.NewStudentRepository(db))

	req := validSignUpReq()
	req.Email = ""
	if _, err := service.SignUp(context.Background(), req); !IsValidationError(err) {
		t.Errorf("Expected validation error for missing email, got %v", err)
	}

	req = validSignUpReq()
	req.Semester = 9
	if _, err := service.SignUp(context.Background(), req); !IsValidationError(err) {
		t.Errorf("Expected validation error for semester out of range, got %v", err)
	}

	req = validSignUpReq()
	req.Mobile = "12345"
	if _, err := service.SignUp(context.Background(), req); !IsValidationError(err) {
		t.Errorf("Expected validation error for short mobile number, got %v", err)
	}
}

func TestAuthService_SignUp_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(repositories.NewStudentRepository(db))

	if _, err := service.SignUp(context.Background(), validSignUpReq()); err != nil {
		t.Fatalf("First signup failed: %v", err)
	}

	// Same USN, different email
	req := validSignUpReq()
	req.Email = "other@college.edu"
	if _, err := service.SignUp(context.Background(), req); !errors.Is(err, ErrDuplicateStudent) {
		t.Errorf("Expected ErrDuplicateStudent for duplicate USN, got %v", err)
	}

	// Same email, different USN
	req = validSignUpReq()
	req.USN = "1BM22CS043"
	if _, err := service.SignUp(context.Background(), req); !errors.Is(err, ErrDuplicateStudent) {
		t.Errorf("Expected ErrDuplicateStudent for duplicate email, got %v", err)
	}
}

func TestAuthService_SignIn(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(repositories.NewStudentRepository(db))

	if _, err := service.SignUp(context.Background(), validSignUpReq()); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	student, err := service.SignIn(context.Background(), "1BM22CS042", "secret123")
	if err != nil {
		t.Fatalf("Expected successful signin, got %v", err)
	}
	if student.Name != "Ananya Rao" {
		t.Errorf("Expected name Ananya Rao, got %s", student.Name)
	}
}

func TestAuthService_SignIn_InvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(repositories.NewStudentRepository(db))

	if _, err := service.SignUp(context.Background(), validSignUpReq()); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	// Wrong password and unknown USN must be indistinguishable
	_, wrongPass := service.SignIn(context.Background(), "1BM22CS042", "not-the-password")
	if !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}

	_, unknownUser := service.SignIn(context.Background(), "1BM22CS099", "secret123")
	if !errors.Is(unknownUser, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown USN, got %v", unknownUser)
	}

	if wrongPass.Error() != unknownUser.Error() {
		t.Error("Wrong password and unknown USN produced different error messages")
	}
}

func TestAuthService_Profile_NotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(repositories.NewStudentRepository(db))

	if _, err := service.Profile(context.Background(), "1BM22CS042"); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("Expected ErrStudentNotFound, got %v", err)
	}
}
