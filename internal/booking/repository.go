package booking

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/hoteldesk/hotel-booking-backend/internal/pkg/apperror"
	"github.com/hoteldesk/hotel-booking-backend/internal/pkg/csvtext"
	"github.com/hoteldesk/hotel-booking-backend/internal/pkg/store"
)

const (
	fileHeader  = "id,roomId,guestId,numberOfGuests,startDate,endDate,active"
	fileColumns = 7

	dateLayout = "2006-01-02"
)

type Repository interface {
	Create(ctx context.Context, res *Reservation) error
	GetByID(ctx context.Context, id int) (*Reservation, error)
	List(ctx context.Context) ([]*Reservation, error)
	Update(ctx context.Context, res *Reservation) error
	Load(ctx context.Context) error

	// AtCapacity reports whether another reservation can still be
	// created.
	AtCapacity(ctx context.Context) bool
}

type csvRepository struct {
	path  string
	store *store.Store[Reservation]
}

// NewCSVRepository creates a bounded reservation repository backed by
// the CSV file at path.
func NewCSVRepository(path string, capacity int) Repository {
	return &csvRepository{
		path:  path,
		store: store.New[Reservation](capacity),
	}
}

func (r *csvRepository) Create(ctx context.Context, res *Reservation) error {
	id, err := r.store.Add(*res)
	if err != nil {
		return ErrStoreFull
	}
	res.ID = id

	if err := r.save(); err != nil {
		return apperror.Wrap(err, "persistence_failed", "failed to save reservations")
	}
	return nil
}

func (r *csvRepository) GetByID(ctx context.Context, id int) (*Reservation, error) {
	res, ok := r.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &res, nil
}

func (r *csvRepository) List(ctx context.Context) ([]*Reservation, error) {
	all := r.store.All()
	out := make([]*Reservation, len(all))
	for i := range all {
		out[i] = &all[i]
	}
	return out, nil
}

func (r *csvRepository) Update(ctx context.Context, res *Reservation) error {
	if !r.store.Update(res.ID, *res) {
		return ErrNotFound
	}
	if err := r.save(); err != nil {
		return apperror.Wrap(err, "persistence_failed", "failed to save reservations")
	}
	return nil
}

func (r *csvRepository) AtCapacity(ctx context.Context) bool {
	return r.store.Full()
}

func (r *csvRepository) Load(ctx context.Context) error {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.store.Replace(nil)
			return nil
		}
		return apperror.Wrap(err, "persistence_failed", "failed to open reservations file")
	}
	defer f.Close()

	rows, err := csvtext.ReadAll(f, fileColumns)
	if err != nil {
		return apperror.Wrap(err, "persistence_failed", "failed to read reservations file")
	}

	records := make([]Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := decodeRow(row)
		if err != nil {
			log.Printf("skipping malformed reservation row in %s: %v", r.path, err)
			continue
		}
		records = append(records, res)
	}
	if dropped := r.store.Replace(records); dropped > 0 {
		log.Printf("dropped %d reservation rows beyond capacity in %s", dropped, r.path)
	}
	return nil
}

func (r *csvRepository) save() error {
	rows := make([][]string, 0, r.store.Len())
	for _, res := range r.store.All() {
		rows = append(rows, []string{
			strconv.Itoa(res.ID),
			strconv.Itoa(res.RoomID),
			strconv.Itoa(res.GuestID),
			strconv.Itoa(res.NumGuests),
			res.StartDate.Format(dateLayout),
			res.EndDate.Format(dateLayout),
			strconv.FormatBool(res.Active()),
		})
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("open %s failed: %w", r.path, err)
	}
	defer f.Close()

	return csvtext.WriteAll(f, fileHeader, rows)
}

func decodeRow(row []string) (Reservation, error) {
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return Reservation{}, fmt.Errorf("bad id %q: %w", row[0], err)
	}
	roomID, err := strconv.Atoi(row[1])
	if err != nil {
		return Reservation{}, fmt.Errorf("bad room id %q: %w", row[1], err)
	}
	guestID, err := strconv.Atoi(row[2])
	if err != nil {
		return Reservation{}, fmt.Errorf("bad guest id %q: %w", row[2], err)
	}
	numGuests, err := strconv.Atoi(row[3])
	if err != nil {
		return Reservation{}, fmt.Errorf("bad guest count %q: %w", row[3], err)
	}
	start, err := time.Parse(dateLayout, row[4])
	if err != nil {
		return Reservation{}, fmt.Errorf("bad start date %q: %w", row[4], err)
	}
	end, err := time.Parse(dateLayout, row[5])
	if err != nil {
		return Reservation{}, fmt.Errorf("bad end date %q: %w", row[5], err)
	}
	active, err := strconv.ParseBool(row[6])
	if err != nil {
		return Reservation{}, fmt.Errorf("bad active flag %q: %w", row[6], err)
	}

	status := StatusActive
	if !active {
		status = StatusCancelled
	}
	return Reservation{
		ID:        id,
		RoomID:    roomID,
		GuestID:   guestID,
		NumGuests: numGuests,
		StartDate: start,
		EndDate:   end,
		Status:    status,
	}, nil
}
