package booking

import (
	"time"

	"github.com/hoteldesk/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New("reservation_not_found", "reservation not found")
	ErrStoreFull         = apperror.New("capacity_exceeded", "reservation limit reached")
	ErrRoomNotFound      = apperror.New("room_not_found", "room not found")
	ErrGuestNotFound     = apperror.New("guest_not_found", "guest not found")
	ErrInvalidGuestCount = apperror.New("invalid_guest_count", "number of guests outside room capacity")
	ErrInvalidDateRange  = apperror.New("invalid_date_range", "start date must not be after end date")
	ErrConflict          = apperror.New("booking_conflict", "room already booked for those dates")
	ErrAlreadyCancelled  = apperror.New("already_cancelled", "reservation already cancelled")

	ErrRoomHasBookings  = apperror.New("referenced_by_active_booking", "room has active reservations")
	ErrGuestHasBookings = apperror.New("referenced_by_active_booking", "guest has active reservations")
)

// Status is the reservation lifecycle state. Cancellation is terminal:
// there is no transition back to active.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Reservation books a room for a guest over an inclusive range of
// calendar days. Reservations are never hard-deleted; cancelling flips
// the status and keeps the record.
type Reservation struct {
	ID        int
	RoomID    int
	GuestID   int
	NumGuests int
	StartDate time.Time
	EndDate   time.Time
	Status    Status
}

// Active reports whether the reservation still occupies its room.
func (r Reservation) Active() bool { return r.Status == StatusActive }

func (r Reservation) RecordID() int { return r.ID }

func (r Reservation) WithID(id int) Reservation {
	r.ID = id
	return r
}
