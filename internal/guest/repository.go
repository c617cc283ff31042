package guest

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
	fileHeader  = "id,name,email,contact,documentType,documentNumber"
	fileColumns = 6
)

type Repository interface {
	Create(ctx context.Context, g *Guest) error
	GetByID(ctx context.Context, id int) (*Guest, error)
	List(ctx context.Context) ([]*Guest, error)
	Delete(ctx context.Context, id int) error
	Load(ctx context.Context) error
}

type csvRepository struct {
	path  string
	store *store.Store[Guest]
}

// NewCSVRepository creates a bounded guest repository backed by the CSV
// file at path.
func NewCSVRepository(path string, capacity int) Repository {
	return &csvRepository{
		path:  path,
		store: store.New[Guest](capacity),
	}
}

func (r *csvRepository) Create(ctx context.Context, g *Guest) error {
	id, err := r.store.Add(*g)
	if err != nil {
		return ErrStoreFull
	}
	g.ID = id

	if err := r.save(); err != nil {
		return apperror.Wrap(err, "persistence_failed", "failed to save guests")
	}
	return nil
}

func (r *csvRepository) GetByID(ctx context.Context, id int) (*Guest, error) {
	g, ok := r.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &g, nil
}

func (r *csvRepository) List(ctx context.Context) ([]*Guest, error) {
	all := r.store.All()
	guests := make([]*Guest, len(all))
	for i := range all {
		guests[i] = &all[i]
	}
	return guests, nil
}

func (r *csvRepository) Delete(ctx context.Context, id int) error {
	if !r.store.Delete(id) {
		return ErrNotFound
	}
	if err := r.save(); err != nil {
		return apperror.Wrap(err, "persistence_failed", "failed to save guests")
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
		return apperror.Wrap(err, "persistence_failed", "failed to open guests file")
	}
	defer f.Close()

	rows, err := csvtext.ReadAll(f, fileColumns)
	if err != nil {
		return apperror.Wrap(err, "persistence_failed", "failed to read guests file")
	}

	records := make([]Guest, 0, len(rows))
	for _, row := range rows {
		g, err := decodeRow(row)
		if err != nil {
			log.Printf("skipping malformed guest row in %s: %v", r.path, err)
			continue
		}
		records = append(records, g)
	}
	if dropped := r.store.Replace(records); dropped > 0 {
		log.Printf("dropped %d guest rows beyond capacity in %s", dropped, r.path)
	}
	return nil
}

func (r *csvRepository) save() error {
	rows := make([][]string, 0, r.store.Len())
	for _, g := range r.store.All() {
		rows = append(rows, []string{
			strconv.Itoa(g.ID),
			csvtext.Escape(g.Name),
			csvtext.Escape(g.Email),
			strconv.Itoa(g.Contact),
			csvtext.Escape(g.DocumentType),
			strconv.Itoa(g.DocumentNumber),
		})
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("open %s failed: %w", r.path, err)
	}
	defer f.Close()

	return csvtext.WriteAll(f, fileHeader, rows)
}

func decodeRow(row []string) (Guest, error) {
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return Guest{}, fmt.Errorf("bad id %q: %w", row[0], err)
	}
	contact, err := strconv.Atoi(row[3])
	if err != nil {
		return Guest{}, fmt.Errorf("bad contact %q: %w", row[3], err)
	}
	docNumber, err := strconv.Atoi(row[5])
	if err != nil {
		return Guest{}, fmt.Errorf("bad document number %q: %w", row[5], err)
	}
	return Guest{
		ID:             id,
		Name:           row[1],
		Email:          row[2],
		Contact:        contact,
		DocumentType:   row[4],
		DocumentNumber: docNumber,
	}, nil
}
