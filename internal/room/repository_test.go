package room

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/hotel-booking-backend/internal/pkg/apperror"
)

func testPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "rooms.csv")
}

func TestRepositoryPersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	path := testPath(t)

	repo := NewCSVRepository(path, 10)
	first := &Room{Number: 101, Capacity: 2}
	require.NoError(t, repo.Create(ctx, first))
	second := &Room{Number: 102, Capacity: 4}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	reloaded := NewCSVRepository(path, 10)
	require.NoError(t, reloaded.Load(ctx))

	rooms, err := reloaded.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, Room{ID: 1, Number: 101, Capacity: 2}, *rooms[0])
	assert.Equal(t, Room{ID: 2, Number: 102, Capacity: 4}, *rooms[1])

	// The id counter continues past the loaded records.
	third := &Room{Number: 103, Capacity: 1}
	require.NoError(t, reloaded.Create(ctx, third))
	assert.Equal(t, 3, third.ID)
}

func TestRepositoryLoadMissingFile(t *testing.T) {
	ctx := context.Background()
	repo := NewCSVRepository(testPath(t), 10)

	require.NoError(t, repo.Load(ctx))

	rooms, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestRepositoryLoadSkipsMalformedRows(t *testing.T) {
	ctx := context.Background()
	path := testPath(t)

	content := "id,number,capacity\n" +
		"1,101,2\n" +
		"bad,102,2\n" +
		"3,103\n" + // short row
		"4,104,notanumber\n" +
		"5,105,3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	repo := NewCSVRepository(path, 10)
	require.NoError(t, repo.Load(ctx))

	rooms, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, 1, rooms[0].ID)
	assert.Equal(t, 5, rooms[1].ID)
}

func TestRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	path := testPath(t)

	repo := NewCSVRepository(path, 10)
	a := &Room{Number: 101, Capacity: 2}
	b := &Room{Number: 102, Capacity: 2}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.Delete(ctx, a.ID))
	_, err := repo.GetByID(ctx, a.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, 999), ErrNotFound)

	// The deletion is visible after a reload.
	reloaded := NewCSVRepository(path, 10)
	require.NoError(t, reloaded.Load(ctx))
	rooms, err := reloaded.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, b.ID, rooms[0].ID)
}

func TestRepositoryCapacity(t *testing.T) {
	ctx := context.Background()
	repo := NewCSVRepository(testPath(t), 1)

	require.NoError(t, repo.Create(ctx, &Room{Number: 101, Capacity: 2}))
	err := repo.Create(ctx, &Room{Number: 102, Capacity: 2})
	require.ErrorIs(t, err, ErrStoreFull)
	assert.Equal(t, "capacity_exceeded", apperror.Code(err))
}
