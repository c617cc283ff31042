package booking

import (
	"context"
	"time"

	"github.com/hoteldesk/hotel-booking-backend/internal/guest"
	"github.com/hoteldesk/hotel-booking-backend/internal/room"
)

type CreateRequest struct {
	RoomID    int
	GuestID   int
	NumGuests int
	StartDate time.Time
	EndDate   time.Time
}

// Service owns the reservation lifecycle. It also owns room and guest
// removal, because only it can see whether an active reservation still
// references the entity.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	Cancel(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*Reservation, error)
	List(ctx context.Context) ([]*Reservation, error)

	// ListByRoom and ListByGuest return active reservations whose end
	// date has not passed, relative to the given day.
	ListByRoom(ctx context.Context, roomID int, today time.Time) ([]*Reservation, error)
	ListByGuest(ctx context.Context, guestID int, today time.Time) ([]*Reservation, error)

	// OccupiedRooms and AvailableRooms partition all rooms by whether
	// some active reservation covers the given day.
	OccupiedRooms(ctx context.Context, day time.Time) ([]*room.Room, error)
	AvailableRooms(ctx context.Context, day time.Time) ([]*room.Room, error)

	RemoveRoom(ctx context.Context, id int) error
	RemoveGuest(ctx context.Context, id int) error
}

type service struct {
	repo      Repository
	roomRepo  room.Repository
	guestRepo guest.Repository
}

func NewService(repo Repository, roomRepo room.Repository, guestRepo guest.Repository) Service {
	return &service{
		repo:      repo,
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	if s.repo.AtCapacity(ctx) {
		return nil, ErrStoreFull
	}

	rm, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	if _, err := s.guestRepo.GetByID(ctx, req.GuestID); err != nil {
		return nil, ErrGuestNotFound
	}

	if req.NumGuests < 1 || req.NumGuests > rm.Capacity {
		return nil, ErrInvalidGuestCount
	}

	start := dateOnly(req.StartDate)
	end := dateOnly(req.EndDate)
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	conflict, err := s.hasConflict(ctx, req.RoomID, start, end, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrConflict
	}

	res := &Reservation{
		RoomID:    req.RoomID,
		GuestID:   req.GuestID,
		NumGuests: req.NumGuests,
		StartDate: start,
		EndDate:   end,
		Status:    StatusActive,
	}
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Cancel(ctx context.Context, id int) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !res.Active() {
		return ErrAlreadyCancelled
	}

	res.Status = StatusCancelled
	return s.repo.Update(ctx, res)
}

func (s *service) GetByID(ctx context.Context, id int) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Reservation, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByRoom(ctx context.Context, roomID int, today time.Time) ([]*Reservation, error) {
	return s.listUpcoming(ctx, today, func(r *Reservation) bool { return r.RoomID == roomID })
}

func (s *service) ListByGuest(ctx context.Context, guestID int, today time.Time) ([]*Reservation, error) {
	return s.listUpcoming(ctx, today, func(r *Reservation) bool { return r.GuestID == guestID })
}

func (s *service) listUpcoming(ctx context.Context, today time.Time, match func(*Reservation) bool) ([]*Reservation, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	day := dateOnly(today)
	var out []*Reservation
	for _, r := range all {
		if r.Active() && match(r) && !r.EndDate.Before(day) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *service) OccupiedRooms(ctx context.Context, day time.Time) ([]*room.Room, error) {
	occupied, _, err := s.partitionRooms(ctx, day)
	return occupied, err
}

func (s *service) AvailableRooms(ctx context.Context, day time.Time) ([]*room.Room, error) {
	_, available, err := s.partitionRooms(ctx, day)
	return available, err
}

// partitionRooms splits all rooms into occupied and available sets for
// the given day. A room is occupied when some active reservation has
// StartDate <= day <= EndDate.
func (s *service) partitionRooms(ctx context.Context, day time.Time) (occupied, available []*room.Room, err error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	d := dateOnly(day)
	for _, rm := range rooms {
		busy, err := s.hasConflict(ctx, rm.ID, d, d, 0)
		if err != nil {
			return nil, nil, err
		}
		if busy {
			occupied = append(occupied, rm)
		} else {
			available = append(available, rm)
		}
	}
	return occupied, available, nil
}

func (s *service) RemoveRoom(ctx context.Context, id int) error {
	if _, err := s.roomRepo.GetByID(ctx, id); err != nil {
		return err
	}

	referenced, err := s.hasActiveReference(ctx, func(r *Reservation) bool { return r.RoomID == id })
	if err != nil {
		return err
	}
	if referenced {
		return ErrRoomHasBookings
	}
	return s.roomRepo.Delete(ctx, id)
}

func (s *service) RemoveGuest(ctx context.Context, id int) error {
	if _, err := s.guestRepo.GetByID(ctx, id); err != nil {
		return err
	}

	referenced, err := s.hasActiveReference(ctx, func(r *Reservation) bool { return r.GuestID == id })
	if err != nil {
		return err
	}
	if referenced {
		return ErrGuestHasBookings
	}
	return s.guestRepo.Delete(ctx, id)
}

func (s *service) hasActiveReference(ctx context.Context, match func(*Reservation) bool) (bool, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return false, err
	}
	for _, r := range all {
		if r.Active() && match(r) {
			return true, nil
		}
	}
	return false, nil
}

// hasConflict reports whether any active reservation for the room
// overlaps [start, end]. Ranges are inclusive on both ends: a
// reservation ending on a day conflicts with one starting that same
// day, since checkout and checkin share it. ignoreID skips one
// reservation so a range can be re-checked against itself; 0 means no
// exclusion.
func (s *service) hasConflict(ctx context.Context, roomID int, start, end time.Time, ignoreID int) (bool, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return false, err
	}
	for _, r := range all {
		if !r.Active() || r.RoomID != roomID || r.ID == ignoreID {
			continue
		}
		if !start.After(r.EndDate) && !end.Before(r.StartDate) {
			return true, nil
		}
	}
	return false, nil
}

// dateOnly drops the time-of-day part so calendar-day comparisons do
// not depend on the caller's clock or zone.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
