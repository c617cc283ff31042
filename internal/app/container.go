package app

import (
	"context"
	"fmt"
	"os"

	"github.com/hoteldesk/hotel-booking-backend/internal/booking"
	"github.com/hoteldesk/hotel-booking-backend/internal/config"
	"github.com/hoteldesk/hotel-booking-backend/internal/guest"
	"github.com/hoteldesk/hotel-booking-backend/internal/room"
)

// Container holds the initialized services the console layer drives.
type Container struct {
	Rooms    room.Service
	Guests   guest.Service
	Bookings booking.Service
}

// NewContainer wires the repositories and services and rehydrates each
// repository from its data file.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	roomRepo := room.NewCSVRepository(cfg.RoomsPath(), cfg.MaxRooms)
	guestRepo := guest.NewCSVRepository(cfg.GuestsPath(), cfg.MaxGuests)
	bookingRepo := booking.NewCSVRepository(cfg.ReservationsPath(), cfg.MaxReservations)

	if err := roomRepo.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}
	if err := guestRepo.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load guests: %w", err)
	}
	if err := bookingRepo.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	return &Container{
		Rooms:    room.NewService(roomRepo, cfg.RoomCapacityMax),
		Guests:   guest.NewService(guestRepo),
		Bookings: booking.NewService(bookingRepo, roomRepo, guestRepo),
	}, nil
}
