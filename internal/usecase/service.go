package usecase

import (
	"room-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Room        RoomService
	Reservation ReservationService
	Payment     PaymentService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Room:        NewRoomService(repo, log),
		Reservation: NewReservationService(repo, log),
		Payment:     NewPaymentService(repo, log),
	}
}
