package usecase

import (
	"context"
	"fmt"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repositories for exercising the services without postgres.

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*entity.Room
}

func (f *fakeRoomRepo) FindAll(ctx context.Context) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.rooms)), nil
}

func (f *fakeRoomRepo) CreateBatch(ctx context.Context, rooms []*entity.Room) error {
	for _, r := range rooms {
		f.rooms[r.ID] = r
	}
	return nil
}

type fakeReservationRepo struct {
	reservations map[uuid.UUID]*entity.Reservation
}

func (f *fakeReservationRepo) Create(ctx context.Context, r *entity.Reservation) error {
	if _, exists := f.reservations[r.ID]; exists {
		return fmt.Errorf("reservation %s: %w", r.ID.String(), repository.ErrDuplicateID)
	}
	cp := *r
	f.reservations[r.ID] = &cp
	return nil
}

func (f *fakeReservationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return f.reservations[id], nil
}

func (f *fakeReservationRepo) FindAll(ctx context.Context) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, r := range f.reservations {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReservationRepo) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, r := range f.reservations {
		if r.RoomID == roomID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, r := range f.reservations {
		if r.RoomID == roomID && r.Status == entity.ReservationStatusActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	r, ok := f.reservations[id]
	if !ok {
		return fmt.Errorf("reservation %s not found", id.String())
	}
	r.Status = status
	return nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func (f *fakePaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	if _, exists := f.payments[p.ID]; exists {
		return fmt.Errorf("payment %s: %w", p.ID.String(), repository.ErrDuplicateID)
	}
	cp := *p
	f.payments[p.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.payments {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePaymentRepo) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.ReservationID == reservationID {
			return p, nil
		}
	}
	return nil, nil
}

func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		Room:        &fakeRoomRepo{rooms: make(map[uuid.UUID]*entity.Room)},
		Reservation: &fakeReservationRepo{reservations: make(map[uuid.UUID]*entity.Reservation)},
		Payment:     &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)},
	}
}

func newTestService(repo *repository.Repository) *Service {
	return NewService(repo, zap.NewNop())
}
