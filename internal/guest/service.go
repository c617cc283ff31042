package guest

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name           string
	Email          string
	Contact        int
	DocumentType   string
	DocumentNumber int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Guest, error)
	GetByID(ctx context.Context, id int) (*Guest, error)
	List(ctx context.Context) ([]*Guest, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Guest, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	g := &Guest{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Contact:        req.Contact,
		DocumentType:   strings.TrimSpace(req.DocumentType),
		DocumentNumber: req.DocumentNumber,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Guest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Guest, error) {
	return s.repo.List(ctx)
}
