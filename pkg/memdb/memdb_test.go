package memdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int
	Name string
}

func (r *record) SetID(id int) { r.ID = id }

func TestInsertAssignsMonotonicIDs(t *testing.T) {
	table := NewTable[record, *record]()

	first := table.Insert(record{Name: "a"})
	second := table.Insert(record{Name: "b"})
	third := table.Insert(record{Name: "c"})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID)
	assert.Equal(t, 3, table.Len())
}

func TestGet(t *testing.T) {
	table := NewTable[record, *record]()
	inserted := table.Insert(record{Name: "a"})

	got, ok := table.Get(inserted.ID)
	require.True(t, ok)
	assert.Equal(t, "a", got.Name)

	_, ok = table.Get(999)
	assert.False(t, ok)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	table := NewTable[record, *record]()
	table.Insert(record{Name: "a"})
	table.Insert(record{Name: "b"})
	table.Insert(record{Name: "c"})

	all := table.List(nil)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})

	filtered := table.List(func(r record) bool { return r.Name != "b" })
	require.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].Name)
	assert.Equal(t, "c", filtered[1].Name)
}

func TestFind(t *testing.T) {
	table := NewTable[record, *record]()
	table.Insert(record{Name: "a"})
	table.Insert(record{Name: "b"})

	got, ok := table.Find(func(r record) bool { return r.Name == "b" })
	require.True(t, ok)
	assert.Equal(t, 2, got.ID)

	_, ok = table.Find(func(r record) bool { return r.Name == "z" })
	assert.False(t, ok)
}

func TestUpdate(t *testing.T) {
	table := NewTable[record, *record]()
	inserted := table.Insert(record{Name: "a"})

	updated, err := table.Update(inserted.ID, func(r *record) {
		r.Name = "renamed"
		r.ID = 42 // ID不可变，回写时被还原
	})
	require.NoError(t, err)
	assert.Equal(t, inserted.ID, updated.ID)
	assert.Equal(t, "renamed", updated.Name)

	stored, ok := table.Get(inserted.ID)
	require.True(t, ok)
	assert.Equal(t, "renamed", stored.Name)
}

func TestUpdateMissingReturnsErrNotFound(t *testing.T) {
	table := NewTable[record, *record]()

	_, err := table.Update(1, func(r *record) { r.Name = "x" })
	assert.ErrorIs(t, err, ErrNotFound)
}
