package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"campus-connect/eventhub/internal/db/repositories"
	"campus-connect/eventhub/internal/models/dtos"
	gormModels "campus-connect/eventhub/internal/models/gorm"
	"campus-connect/eventhub/internal/providers"
)

// PaymentService creates gateway orders for fee-bearing events and
// registers the participant once the checkout signature verifies.
type PaymentService struct {
	events         *repositories.EventRepository
	participations *repositories.ParticipationRepository
	gateway        providers.PaymentGateway
	now            func() time.Time
}

func NewPaymentService(
	events *repositories.EventRepository,
	participations *repositories.ParticipationRepository,
	gateway providers.PaymentGateway,
) *PaymentService {
	return &PaymentService{
		events:         events,
		participations: participations,
		gateway:        gateway,
		now:            time.Now,
	}
}

// CreateOrder opens a gateway order for the event's fee. Free events
// never need one.
func (s *PaymentService) CreateOrder(ctx context.Context, eventID uint, usn string) (*dtos.CreateOrderResponse, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if event.RegistrationFee <= 0 {
		return nil, ErrFreeEvent
	}

	amountPaise := int64(math.Round(event.RegistrationFee * 100))
	receipt := fmt.Sprintf("%s_%d_%d", usn, eventID, s.now().Unix())

	order, err := s.gateway.CreateOrder(ctx, amountPaise, "INR", receipt)
	if err != nil {
		return nil, err
	}

	return &dtos.CreateOrderResponse{
		Order: *order,
		KeyID: s.gateway.KeyID(),
	}, nil
}

// VerifyPayment checks the checkout signature and registers the caller
// as a participant. An existing registration makes this a no-op
// success, so retried callbacks stay idempotent.
func (s *PaymentService) VerifyPayment(ctx context.Context, req dtos.VerifyPaymentReq, usn string) error {
	if req.PaymentID == "" || req.OrderID == "" || req.Signature == "" || req.EventID == 0 {
		return validationErrorf("paymentId, orderId, signature and eventId are required")
	}

	if !s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		return ErrInvalidSignature
	}

	existing, err := s.participations.FindParticipation(ctx, usn, req.EventID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	// A verified payment with a failed insert surfaces as an error;
	// the caller retries, and the idempotent path above absorbs it.
	return s.participations.InsertParticipation(ctx, &gormModels.Participation{
		StudentUSN: usn,
		EventID:    req.EventID,
	})
}
