package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"room-booking/internal/booking"
	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)
	ListPayments(ctx context.Context) ([]response.PaymentResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	paymentID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment ID format %s: %w", req.ID, err)
	}
	reservationID, err := uuid.Parse(req.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", req.ReservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("check reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s not found", req.ReservationID)
	}

	// Only active reservations are payable; cancelled and anything else
	// (including statuses this service does not know) is refused.
	if p := booking.PayabilityOf(string(reservation.Status)); !p.Payable {
		return nil, fmt.Errorf("reservation is not active: %s", p.Reason)
	}

	existing, err := s.repo.Payment.FindByReservationID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("check existing payment: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("payment already exists for reservation %s", req.ReservationID)
	}

	payment := &entity.Payment{
		ID:            paymentID,
		ReservationID: reservationID,
		Amount:        req.Amount,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, fmt.Errorf("payment with this id already exists")
		}
		s.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("payment_id", req.ID),
			zap.String("reservation_id", req.ReservationID),
		)
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", req.ID),
		zap.String("reservation_id", req.ReservationID),
		zap.Float64("amount", req.Amount),
	)

	paymentResp := response.PaymentToResponse(payment)
	return &paymentResp, nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]response.PaymentResponse, error) {
	payments, err := s.repo.Payment.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list payments", zap.Error(err))
		return nil, fmt.Errorf("list payments: %w", err)
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentResponses[i] = response.PaymentToResponse(payment)
	}

	return paymentResponses, nil
}
