package guest

import "github.com/hoteldesk/hotel-booking-backend/internal/pkg/apperror"

var (
	ErrNotFound     = apperror.New("guest_not_found", "guest not found")
	ErrStoreFull    = apperror.New("capacity_exceeded", "guest limit reached")
	ErrNameRequired = apperror.New("name_required", "guest name is required")
)

// Guest is a registered hotel guest.
type Guest struct {
	ID             int
	Name           string
	Email          string
	Contact        int
	DocumentType   string
	DocumentNumber int
}

func (g Guest) RecordID() int { return g.ID }

func (g Guest) WithID(id int) Guest {
	g.ID = id
	return g
}
