package room

import "github.com/hoteldesk/hotel-booking-backend/internal/pkg/apperror"

var (
	ErrNotFound        = apperror.New("room_not_found", "room not found")
	ErrStoreFull       = apperror.New("capacity_exceeded", "room limit reached")
	ErrInvalidCapacity = apperror.New("invalid_capacity", "invalid room capacity")
)

// Room is a bookable hotel room. The id is assigned by the repository
// and never reused; the room number is the label on the door and is
// not required to be unique.
type Room struct {
	ID       int
	Number   int
	Capacity int
}

func (r Room) RecordID() int { return r.ID }

func (r Room) WithID(id int) Room {
	r.ID = id
	return r
}
