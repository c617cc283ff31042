package room

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, maxCapacity int) Service {
	t.Helper()
	repo := NewCSVRepository(filepath.Join(t.TempDir(), "rooms.csv"), 10)
	return NewService(repo, maxCapacity)
}

func TestServiceCreateValidatesCapacity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 0)

	_, err := svc.Create(ctx, CreateRequest{Number: 101, Capacity: 0})
	require.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = svc.Create(ctx, CreateRequest{Number: 101, Capacity: -2})
	require.ErrorIs(t, err, ErrInvalidCapacity)

	rm, err := svc.Create(ctx, CreateRequest{Number: 101, Capacity: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, rm.ID)
}

func TestServiceCreateHonorsUpperBound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 6)

	_, err := svc.Create(ctx, CreateRequest{Number: 201, Capacity: 7})
	require.ErrorIs(t, err, ErrInvalidCapacity)

	rm, err := svc.Create(ctx, CreateRequest{Number: 201, Capacity: 6})
	require.NoError(t, err)
	assert.Equal(t, 6, rm.Capacity)

	// Bound of 0 means no limit at all.
	unbounded := newTestService(t, 0)
	rm, err = unbounded.Create(ctx, CreateRequest{Number: 301, Capacity: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, rm.Capacity)
}
