package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id   int
	name string
}

func (i item) RecordID() int { return i.id }

func (i item) WithID(id int) item {
	i.id = id
	return i
}

func TestAddAssignsMonotonicIDs(t *testing.T) {
	s := New[item](10)

	id1, err := s.Add(item{name: "a"})
	require.NoError(t, err)
	id2, err := s.Add(item{name: "b"})
	require.NoError(t, err)
	id3, err := s.Add(item{name: "c"})
	require.NoError(t, err)

	assert.Equal(t, 1, id1)
	assert.Equal(t, 2, id2)
	assert.Equal(t, 3, id3)

	// Deleting must not free the id for reuse.
	require.True(t, s.Delete(id2))
	id4, err := s.Add(item{name: "d"})
	require.NoError(t, err)
	assert.Equal(t, 4, id4)
}

func TestAddAtCapacity(t *testing.T) {
	s := New[item](2)

	_, err := s.Add(item{name: "a"})
	require.NoError(t, err)
	_, err = s.Add(item{name: "b"})
	require.NoError(t, err)
	assert.True(t, s.Full())

	_, err = s.Add(item{name: "c"})
	require.ErrorIs(t, err, ErrFull)
	assert.Equal(t, 2, s.Len())
}

func TestDeletePreservesOrder(t *testing.T) {
	s := New[item](10)

	idA, _ := s.Add(item{name: "a"})
	idB, _ := s.Add(item{name: "b"})
	idC, _ := s.Add(item{name: "c"})
	idD, _ := s.Add(item{name: "d"})

	require.True(t, s.Delete(idB))

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, []int{idA, idC, idD}, []int{all[0].id, all[1].id, all[2].id})

	assert.False(t, s.Delete(999))
}

func TestGetAndUpdate(t *testing.T) {
	s := New[item](10)

	id, _ := s.Add(item{name: "a"})

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "a", got.name)

	_, ok = s.Get(42)
	assert.False(t, ok)

	require.True(t, s.Update(id, item{name: "renamed"}))
	got, ok = s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "renamed", got.name)
	assert.Equal(t, id, got.id)

	assert.False(t, s.Update(42, item{name: "nope"}))
}

func TestReplaceSeedsIDCounter(t *testing.T) {
	s := New[item](10)
	_, err := s.Add(item{name: "old"})
	require.NoError(t, err)

	dropped := s.Replace([]item{
		{id: 5, name: "x"},
		{id: 9, name: "y"},
	})
	assert.Equal(t, 0, dropped)
	assert.Equal(t, 2, s.Len())

	// The loaded records keep their own ids.
	got, ok := s.Get(5)
	require.True(t, ok)
	assert.Equal(t, "x", got.name)

	// The next assigned id is one past the highest loaded id.
	id, err := s.Add(item{name: "z"})
	require.NoError(t, err)
	assert.Equal(t, 10, id)
}

func TestReplaceEmptyResetsCounter(t *testing.T) {
	s := New[item](10)
	_, err := s.Add(item{name: "old"})
	require.NoError(t, err)

	s.Replace(nil)
	assert.Equal(t, 0, s.Len())

	id, err := s.Add(item{name: "fresh"})
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestReplaceDropsBeyondCapacity(t *testing.T) {
	s := New[item](2)

	dropped := s.Replace([]item{
		{id: 1, name: "a"},
		{id: 2, name: "b"},
		{id: 3, name: "c"},
	})
	assert.Equal(t, 1, dropped)
	assert.Equal(t, 2, s.Len())

	_, ok := s.Get(3)
	assert.False(t, ok)
}
