package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanner(t *testing.T) {
	t.Run("Given a mostly unused tab of 1000 by 26", func(t *testing.T) {
		allocated := NewExtent(1000, 26)
		used := NewExtent(10, 5)
		t.Run("Then it can be optimized", func(t *testing.T) {
			assert.True(t, CanOptimize(allocated, used))
		})
		t.Run("Then the savings are the unused cells", func(t *testing.T) {
			s := ComputeSavings(allocated, used)
			assert.Equal(t, int64(25950), s.Cells)
			assert.InDelta(t, 100*(1-50.0/26000.0), s.Percent, 1e-9)
		})
		t.Run("Then rows are trimmed before columns", func(t *testing.T) {
			assert.Equal(t, []EditRequest{
				{SheetID: 7, Dimension: Rows, Start: 10, End: 999},
				{SheetID: 7, Dimension: Columns, Start: 5, End: 25},
			}, BuildEditRequests(7, allocated, used))
		})
	})
	t.Run("Given a 100 by 100 tab without values", func(t *testing.T) {
		allocated := NewExtent(100, 100)
		used := ObservedExtent(nil)
		t.Run("Then all but one cell is saved", func(t *testing.T) {
			assert.Equal(t, int64(9999), ComputeSavings(allocated, used).Cells)
		})
		t.Run("Then both axes are trimmed to the first cell", func(t *testing.T) {
			requests := BuildEditRequests(0, allocated, used)
			require.Len(t, requests, 2)
			assert.Equal(t, EditRequest{Dimension: Rows, Start: 1, End: 99}, requests[0])
			assert.Equal(t, EditRequest{Dimension: Columns, Start: 1, End: 99}, requests[1])
			assert.Equal(t, int64(99), requests[0].Length())
		})
	})
	t.Run("Given a tab whose data fills it", func(t *testing.T) {
		allocated := NewExtent(5, 5)
		t.Run("Then there is nothing to do", func(t *testing.T) {
			assert.False(t, CanOptimize(allocated, NewExtent(5, 5)))
			assert.Empty(t, BuildEditRequests(1, allocated, NewExtent(5, 5)))
			assert.Equal(t, int64(0), ComputeSavings(allocated, NewExtent(5, 5)).Cells)
			assert.Equal(t, float64(0), ComputeSavings(allocated, NewExtent(5, 5)).Percent)
		})
	})
	t.Run("Given a tab only too wide", func(t *testing.T) {
		t.Run("Then only a column request is built", func(t *testing.T) {
			assert.Equal(t, []EditRequest{
				{SheetID: 3, Dimension: Columns, Start: 2, End: 9},
			}, BuildEditRequests(3, NewExtent(20, 10), NewExtent(20, 2)))
		})
	})
}

func TestPlannerIsIdempotent(t *testing.T) {
	for _, e := range []Extent{NewExtent(0, 0), NewExtent(1, 30), NewExtent(1000, 26)} {
		assert.False(t, CanOptimize(e, e))
		assert.Empty(t, BuildEditRequests(0, e, e))
	}
}

func TestSavingsAreMonotonic(t *testing.T) {
	allocated := NewExtent(50, 20)
	previous := int64(-1)
	// walk used extents from largest to smallest, savings may only grow
	for rows := int64(50); rows >= 0; rows -= 5 {
		used := NewExtent(rows, rows/3)
		saved := ComputeSavings(allocated, used).Cells
		assert.GreaterOrEqual(t, saved, previous)
		previous = saved
	}
}

func TestDensity(t *testing.T) {
	assert.Equal(t, float64(0), Density(0, NewExtent(10, 10)))
	assert.Equal(t, float64(25), Density(25, NewExtent(10, 10)))
	assert.Equal(t, float64(100), Density(1, NewExtent(0, 0)))
}
