package room

import "context"

type CreateRequest struct {
	Number   int
	Capacity int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id int) (*Room, error)
	List(ctx context.Context) ([]*Room, error)
}

type service struct {
	repo        Repository
	maxCapacity int // 0 means no upper bound
}

// NewService creates the room service. maxCapacity caps how many beds a
// room may declare; 0 disables the upper bound.
func NewService(repo Repository, maxCapacity int) Service {
	return &service{repo: repo, maxCapacity: maxCapacity}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if s.maxCapacity > 0 && req.Capacity > s.maxCapacity {
		return nil, ErrInvalidCapacity
	}

	room := &Room{
		Number:   req.Number,
		Capacity: req.Capacity,
	}
	if err := s.repo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Room, error) {
	return s.repo.List(ctx)
}
