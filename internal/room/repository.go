package room

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/hoteldesk/hotel-booking-backend/internal/pkg/apperror"
	"github.com/hoteldesk/hotel-booking-backend/internal/pkg/csvtext"
	"github.com/hoteldesk/hotel-booking-backend/internal/pkg/store"
)

const (
	fileHeader  = "id,number,capacity"
	fileColumns = 3
)

type Repository interface {
	Create(ctx context.Context, r *Room) error
	GetByID(ctx context.Context, id int) (*Room, error)
	List(ctx context.Context) ([]*Room, error)
	Delete(ctx context.Context, id int) error

	// Load rehydrates the in-memory state from the backing file. A
	// missing file leaves the repository empty.
	Load(ctx context.Context) error
}

type csvRepository struct {
	path  string
	store *store.Store[Room]
}

// NewCSVRepository creates a bounded room repository backed by the CSV
// file at path. Every successful mutation rewrites the whole file.
func NewCSVRepository(path string, capacity int) Repository {
	return &csvRepository{
		path:  path,
		store: store.New[Room](capacity),
	}
}

func (r *csvRepository) Create(ctx context.Context, room *Room) error {
	id, err := r.store.Add(*room)
	if err != nil {
		return ErrStoreFull
	}
	room.ID = id

	if err := r.save(); err != nil {
		return apperror.Wrap(err, "persistence_failed", "failed to save rooms")
	}
	return nil
}

func (r *csvRepository) GetByID(ctx context.Context, id int) (*Room, error) {
	room, ok := r.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &room, nil
}

func (r *csvRepository) List(ctx context.Context) ([]*Room, error) {
	all := r.store.All()
	rooms := make([]*Room, len(all))
	for i := range all {
		rooms[i] = &all[i]
	}
	return rooms, nil
}

func (r *csvRepository) Delete(ctx context.Context, id int) error {
	if !r.store.Delete(id) {
		return ErrNotFound
	}
	if err := r.save(); err != nil {
		return apperror.Wrap(err, "persistence_failed", "failed to save rooms")
	}
	return nil
}

func (r *csvRepository) Load(ctx context.Context) error {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.store.Replace(nil)
			return nil
		}
		return apperror.Wrap(err, "persistence_failed", "failed to open rooms file")
	}
	defer f.Close()

	rows, err := csvtext.ReadAll(f, fileColumns)
	if err != nil {
		return apperror.Wrap(err, "persistence_failed", "failed to read rooms file")
	}

	records := make([]Room, 0, len(rows))
	for _, row := range rows {
		room, err := decodeRow(row)
		if err != nil {
			log.Printf("skipping malformed room row in %s: %v", r.path, err)
			continue
		}
		records = append(records, room)
	}
	if dropped := r.store.Replace(records); dropped > 0 {
		log.Printf("dropped %d room rows beyond capacity in %s", dropped, r.path)
	}
	return nil
}

func (r *csvRepository) save() error {
	rows := make([][]string, 0, r.store.Len())
	for _, room := range r.store.All() {
		rows = append(rows, []string{
			strconv.Itoa(room.ID),
			strconv.Itoa(room.Number),
			strconv.Itoa(room.Capacity),
		})
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("open %s failed: %w", r.path, err)
	}
	defer f.Close()

	return csvtext.WriteAll(f, fileHeader, rows)
}

func decodeRow(row []string) (Room, error) {
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return Room{}, fmt.Errorf("bad id %q: %w", row[0], err)
	}
	number, err := strconv.Atoi(row[1])
	if err != nil {
		return Room{}, fmt.Errorf("bad number %q: %w", row[1], err)
	}
	capacity, err := strconv.Atoi(row[2])
	if err != nil {
		return Room{}, fmt.Errorf("bad capacity %q: %w", row[2], err)
	}
	return Room{ID: id, Number: number, Capacity: capacity}, nil
}
