package repository

import (
	"context"
	"errors"

	"github.com/onneile/molemi/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type MessageRepo interface {
	Create(ctx context.Context, m *domain.Message) error
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	ListByPhone(ctx context.Context, phone string, limit int) ([]*domain.Message, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Message, error)
}

type TurnRepo interface {
	Create(ctx context.Context, t *domain.Turn) error
	GetByID(ctx context.Context, id string) (*domain.Turn, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Turn, error)
}
