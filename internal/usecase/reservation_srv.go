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

type ReservationService interface {
	CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	ListReservations(ctx context.Context) ([]response.ReservationResponse, error)
	ListRoomReservations(ctx context.Context, roomID string) ([]response.ReservationResponse, error)
	CancelReservation(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

// CreateReservation is the authoritative side of the booking handshake. The
// guest client already ran its own overlap pre-check, but that check is
// advisory: two guests can both see a clear calendar and submit. The conflict
// re-check here, against the room's active reservations at write time, is the
// one that decides.
func (s *reservationService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reservationID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", req.ID, err)
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	candidate, err := booking.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date range: %w", err)
	}
	if candidate.Start.After(candidate.End) {
		return nil, fmt.Errorf("invalid date range: start_date must be less than or equal to end_date")
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("check room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s not found", req.RoomID)
	}

	// Conflict re-check against the active set.
	active, err := s.repo.Reservation.FindActiveByRoomID(ctx, roomID)
	if err != nil {
		s.log.Error("Failed to load active reservations", zap.Error(err), zap.String("room_id", req.RoomID))
		return nil, fmt.Errorf("check availability: %w", err)
	}

	ranges := make([]booking.DateRange, len(active))
	for i, r := range active {
		ranges[i] = booking.NewDateRange(r.StartDate, r.EndDate)
	}
	if !booking.NewAvailability(ranges).IsBookable(candidate) {
		return nil, fmt.Errorf("dates overlap an active reservation for this room")
	}

	reservation := &entity.Reservation{
		ID:         reservationID,
		RoomID:     roomID,
		GuestEmail: req.GuestEmail,
		StartDate:  candidate.Start,
		EndDate:    candidate.End,
		Status:     entity.ReservationStatusActive,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, fmt.Errorf("reservation with this id already exists")
		}
		s.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("reservation_id", req.ID),
			zap.String("room_id", req.RoomID),
		)
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", req.ID),
		zap.String("room_id", req.RoomID),
		zap.String("guest_email", req.GuestEmail),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	reservationResp := response.ReservationToResponse(reservation)
	return &reservationResp, nil
}

func (s *reservationService) ListReservations(ctx context.Context) ([]response.ReservationResponse, error) {
	reservations, err := s.repo.Reservation.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	return toReservationResponses(reservations), nil
}

func (s *reservationService) ListRoomReservations(ctx context.Context, roomID string) ([]response.ReservationResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	reservations, err := s.repo.Reservation.FindByRoomID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list room reservations", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("list reservations for room %s: %w", roomID, err)
	}

	return toReservationResponses(reservations), nil
}

func (s *reservationService) CancelReservation(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s not found", reservationID)
	}

	if reservation.Status == entity.ReservationStatusCancelled {
		return nil, fmt.Errorf("reservation %s is already cancelled, cannot cancel", reservationID)
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, id, entity.ReservationStatusCancelled); err != nil {
		s.log.Error("Failed to cancel reservation", zap.Error(err), zap.String("reservation_id", reservationID))
		return nil, fmt.Errorf("cancel reservation %s: %w", reservationID, err)
	}

	s.log.Info("Reservation cancelled", zap.String("reservation_id", reservationID))

	reservation.Status = entity.ReservationStatusCancelled
	reservationResp := response.ReservationToResponse(reservation)
	return &reservationResp, nil
}

func toReservationResponses(reservations []*entity.Reservation) []response.ReservationResponse {
	out := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		out[i] = response.ReservationToResponse(reservation)
	}
	return out
}
