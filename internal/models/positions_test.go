package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignPositionsContiguous(t *testing.T) {
	entries := []Entry{
		{ID: "a", Name: "Alice", Service: "Borrow Book", Position: 7},
		{ID: "b", Name: "Bob", Service: "Return Book", Position: 0},
		{ID: "c", Name: "Carol", Service: "Research Help", Position: 3},
	}

	out := AssignPositions(entries)

	assert.Len(t, out, 3)
	for i, e := range out {
		assert.Equal(t, i+1, e.Position)
	}
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
	assert.Equal(t, "Alice", out[0].Name)
	assert.Equal(t, "Borrow Book", out[0].Service)
}

func TestAssignPositionsDoesNotMutateInput(t *testing.T) {
	entries := []Entry{{ID: "a", Position: 99}}
	out := AssignPositions(entries)
	assert.Equal(t, 1, out[0].Position)
	assert.Equal(t, 99, entries[0].Position)
}

func TestAssignPositionsEmpty(t *testing.T) {
	out := AssignPositions(nil)
	assert.NotNil(t, out)
	assert.Len(t, out, 0)
}

func TestCategoryServices(t *testing.T) {
	services, ok := CategoryServices("library")
	assert.True(t, ok)
	assert.Equal(t, []string{"Borrow Book", "Return Book", "Research Help", "Computer Access", "Study Room Booking"}, services)

	_, ok = CategoryServices("gym")
	assert.False(t, ok)
}

func TestCategoryServicesReturnsCopy(t *testing.T) {
	services, _ := CategoryServices("canteen")
	services[0] = "mutated"

	again, _ := CategoryServices("canteen")
	assert.Equal(t, "Order Food", again[0])
}
