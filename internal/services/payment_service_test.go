package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-connect/eventhub/internal/db/repositories"
	"campus-connect/eventhub/internal/models/dtos"
	gormModels "campus-connect/eventhub/internal/models/gorm"

	"gorm.io/gorm"
)

// Mock PaymentGateway
type mockGateway struct {
	createOrderFunc func(ctx context.Context, amountPaise int64, currency, receipt string) (*dtos.GatewayOrder, error)
	verifyFunc      func(orderID, paymentID, signature string) bool
}

func (m *mockGateway) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*dtos.GatewayOrder, error) {
	return m.createOrderFunc(ctx, amountPaise, currency, receipt)
}

func (m *mockGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return m.verifyFunc(orderID, paymentID, signature)
}

func (m *mockGateway) KeyID() string { return "rzp_test_key" }

func newPaymentService(db *gorm.DB, gateway *mockGateway) *PaymentService {
	return NewPaymentService(
		repositories.NewEventRepository(db),
		repositories.NewParticipationRepository(db),
		gateway,
	)
}

func seedPaidEvent(t *testing.T, db *gorm.DB, fee float64) uint {
	t.Helper()
	ev := gormModels.Event{
		Name:            "Paid Workshop",
		Description:     "desc",
		EventDate:       time.Now().AddDate(0, 0, 2),
		EventTime:       "10:00",
		Location:        "Lab 3",
		RegistrationFee: fee,
		OrganizerUSN:    "1BM22CS042",
	}
	if err := db.Create(&ev).Error; err != nil {
		t.Fatalf("Failed to seed event: %v", err)
	}
	return ev.ID
}

func TestPaymentService_CreateOrder(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	eventID := seedPaidEvent(t, db, 149.99)

	var gotAmount int64
	var gotCurrency string
	gateway := &mockGateway{
		createOrderFunc: func(ctx context.Context, amountPaise int64, currency, receipt string) (*dtos.GatewayOrder, error) {
			gotAmount = amountPaise
			gotCurrency = currency
			return &dtos.GatewayOrder{ID: "order_123", Amount: amountPaise, Currency: currency, Receipt: receipt, Status: "created"}, nil
		},
	}
	service := newPaymentService(db, gateway)

	resp, err := service.CreateOrder(context.Background(), eventID, "1BM22CS043")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Fee is rupees, gateway wants paise
	if gotAmount != 14999 {
		t.Errorf("Expected 14999 paise, got %d", gotAmount)
	}
	if gotCurrency != "INR" {
		t.Errorf("Expected INR, got %s", gotCurrency)
	}
	if resp.Order.ID != "order_123" {
		t.Errorf("Expected order_123, got %s", resp.Order.ID)
	}
	if resp.KeyID != "rzp_test_key" {
		t.Errorf("Expected public key id in response, got %s", resp.KeyID)
	}
}

func TestPaymentService_CreateOrder_FreeEvent(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	eventID := seedPaidEvent(t, db, 0)

	service := newPaymentService(db, &mockGateway{})

	if _, err := service.CreateOrder(context.Background(), eventID, "1BM22CS043"); !errors.Is(err, ErrFreeEvent) {
		t.Errorf("Expected ErrFreeEvent, got %v", err)
	}
}

func TestPaymentService_CreateOrder_EventNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newPaymentService(db, &mockGateway{})

	if _, err := service.CreateOrder(context.Background(), 999, "1BM22CS043"); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("Expected ErrEventNotFound, got %v", err)
	}
}

func TestPaymentService_VerifyPayment(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	seedStudent(t, db, "1BM22CS043", "Rahul Iyer")
	eventID := seedPaidEvent(t, db, 100)

	gateway := &mockGateway{
		verifyFunc: func(orderID, paymentID, signature string) bool {
			return signature == "good-sig"
		},
	}
	service := newPaymentService(db, gateway)

	req := dtos.VerifyPaymentReq{
		PaymentID: "pay_1",
		OrderID:   "order_1",
		Signature: "good-sig",
		EventID:   eventID,
	}
	if err := service.VerifyPayment(context.Background(), req, "1BM22CS043"); err != nil {
		t.Fatalf("Expected verified payment to register, got %v", err)
	}

	var count int64
	db.Model(&gormModels.Participation{}).Where("student_usn = ? AND event_id = ?", "1BM22CS043", eventID).Count(&count)
	if count != 1 {
		t.Fatalf("Expected 1 participation, got %d", count)
	}

	// A retried callback must not fail or duplicate
	if err := service.VerifyPayment(context.Background(), req, "1BM22CS043"); err != nil {
		t.Fatalf("Expected retried verification to succeed, got %v", err)
	}
	db.Model(&gormModels.Participation{}).Where("student_usn = ? AND event_id = ?", "1BM22CS043", eventID).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 participation after retry, got %d", count)
	}
}

func TestPaymentService_VerifyPayment_BadSignature(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "1BM22CS042", "Ananya Rao")
	seedStudent(t, db, "1BM22CS043", "Rahul Iyer")
	eventID := seedPaidEvent(t, db, 100)

	gateway := &mockGateway{
		verifyFunc: func(orderID, paymentID, signature string) bool { return false },
	}
	service := newPaymentService(db, gateway)

	req := dtos.VerifyPaymentReq{
		PaymentID: "pay_1",
		OrderID:   "order_1",
		Signature: "tampered",
		EventID:   eventID,
	}
	if err := service.VerifyPayment(context.Background(), req, "1BM22CS043"); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("Expected ErrInvalidSignature, got %v", err)
	}

	// A rejected signature must leave no registration behind
	var count int64
	db.Model(&gormModels.Participation{}).Where("event_id = ?", eventID).Count(&count)
	if count != 0 {
		t.Errorf("Expected no participations after rejected signature, got %d", count)
	}
}

func TestPaymentService_VerifyPayment_MissingFields(t *testing.T) {
	db := setupTestDB(t)
	service := newPaymentService(db, &mockGateway{})

	req := dtos.VerifyPaymentReq{PaymentID: "pay_1", OrderID: "", Signature: "sig", EventID: 1}
	if err := service.VerifyPayment(context.Background(), req, "1BM22CS043"); !IsValidationError(err) {
		t.Errorf("Expected validation error for missing orderId, got %v", err)
	}
}
