package booking

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "reservations.csv")
}

func TestRepositoryEncodesActiveFlag(t *testing.T) {
	ctx := context.Background()
	path := testPath(t)
	repo := NewCSVRepository(path, 10)

	res := &Reservation{
		RoomID:    1,
		GuestID:   2,
		NumGuests: 2,
		StartDate: day(2024, time.January, 10),
		EndDate:   day(2024, time.January, 15),
		Status:    StatusActive,
	}
	require.NoError(t, repo.Create(ctx, res))

	res.Status = StatusCancelled
	require.NoError(t, repo.Update(ctx, res))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"id,roomId,guestId,numberOfGuests,startDate,endDate,active\n"+
			"1,1,2,2,2024-01-10,2024-01-15,false\n",
		string(raw))

	reloaded := NewCSVRepository(path, 10)
	require.NoError(t, reloaded.Load(ctx))
	got, err := reloaded.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
	assert.False(t, got.Active())
}

func TestRepositoryLoadSkipsMalformedRows(t *testing.T) {
	ctx := context.Background()
	path := testPath(t)

	content := "id,roomId,guestId,numberOfGuests,startDate,endDate,active\n" +
		"1,1,1,2,2024-01-10,2024-01-15,true\n" +
		"2,1,1,2,not-a-date,2024-02-15,true\n" +
		"3,1,1,2,2024-03-10,2024-03-15,maybe\n" +
		"4,1,1,2,2024-04-10,2024-04-15,false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	repo := NewCSVRepository(path, 10)
	require.NoError(t, repo.Load(ctx))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 4, all[1].ID)

	// The counter still moves past the highest surviving id.
	next := &Reservation{
		RoomID: 1, GuestID: 1, NumGuests: 1,
		StartDate: day(2024, time.May, 1),
		EndDate:   day(2024, time.May, 2),
		Status:    StatusActive,
	}
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, 5, next.ID)
}

func TestRepositoryAtCapacity(t *testing.T) {
	ctx := context.Background()
	repo := NewCSVRepository(testPath(t), 1)

	assert.False(t, repo.AtCapacity(ctx))

	res := &Reservation{
		RoomID: 1, GuestID: 1, NumGuests: 1,
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 2),
		Status:    StatusActive,
	}
	require.NoError(t, repo.Create(ctx, res))
	assert.True(t, repo.AtCapacity(ctx))

	err := repo.Create(ctx, &Reservation{
		RoomID: 1, GuestID: 1, NumGuests: 1,
		StartDate: day(2024, time.January, 5),
		EndDate:   day(2024, time.January, 6),
		Status:    StatusActive,
	})
	require.ErrorIs(t, err, ErrStoreFull)
}

func TestRepositoryLoadMissingFile(t *testing.T) {
	ctx := context.Background()
	repo := NewCSVRepository(testPath(t), 10)

	require.NoError(t, repo.Load(ctx))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
