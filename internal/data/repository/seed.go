package repository

import (
	"context"
	"fmt"

	"room-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var seedRooms = []*entity.Room{
	{ID: uuid.MustParse("7c79f442-fde0-4ef2-9eeb-0dffe92b3a0e"), Name: "room1", PricePerNight: 80.0},
	{ID: uuid.MustParse("df2a67e2-cd30-42de-b3be-ee3d4fc24652"), Name: "room2", PricePerNight: 90.0},
	{ID: uuid.MustParse("e4ec572e-fc15-44a8-bde5-8e692acf9279"), Name: "room3", PricePerNight: 100.0},
}

// SeedRooms populates the room catalog on first start. It only writes when
// the table is empty.
func SeedRooms(ctx context.Context, rooms RoomRepository, log *zap.Logger) error {
	count, err := rooms.Count(ctx)
	if err != nil {
		return fmt.Errorf("count rooms before seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := rooms.CreateBatch(ctx, seedRooms); err != nil {
		return fmt.Errorf("seed rooms: %w", err)
	}

	log.Info("Seeded initial rooms", zap.Int("count", len(seedRooms)))
	return nil
}
