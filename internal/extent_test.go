package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtent(t *testing.T) {
	t.Run("Given a tab of 1000 rows and 26 columns", func(t *testing.T) {
		e := NewExtent(1000, 26)
		t.Run("Then the last indexes are zero-based", func(t *testing.T) {
			assert.Equal(t, int64(999), e.LastRow)
			assert.Equal(t, int64(25), e.LastColumn)
		})
		t.Run("Then the count is every allocated cell", func(t *testing.T) {
			assert.Equal(t, int64(26000), e.Count())
		})
		t.Run("Then the index is the bottom right cell", func(t *testing.T) {
			assert.Equal(t, "Z1000", e.Index())
			assert.Equal(t, "A1:Z1000", e.String())
		})
	})
	t.Run("Given zero counts", func(t *testing.T) {
		t.Run("Then the extent equals a single cell", func(t *testing.T) {
			assert.True(t, NewExtent(0, 0).Equal(NewExtent(1, 1)))
			assert.Equal(t, NewExtent(1, 1), NewExtent(0, 0))
			assert.Equal(t, int64(1), NewExtent(0, 0).Count())
			assert.Equal(t, "A1", NewExtent(0, 0).Index())
		})
		t.Run("Then each axis is handled independently", func(t *testing.T) {
			assert.Equal(t, Extent{LastRow: 0, LastColumn: 4}, NewExtent(0, 5))
			assert.Equal(t, Extent{LastRow: 6, LastColumn: 0}, NewExtent(7, 0))
		})
	})
	t.Run("Given extents differing on one axis", func(t *testing.T) {
		t.Run("Then they are not equal", func(t *testing.T) {
			assert.False(t, NewExtent(5, 5).Equal(NewExtent(5, 6)))
			assert.False(t, NewExtent(5, 5).Equal(NewExtent(6, 5)))
		})
	})
}

func TestExtentCountIsAtLeastOne(t *testing.T) {
	for rows := int64(0); rows < 30; rows++ {
		for columns := int64(0); columns < 30; columns++ {
			assert.GreaterOrEqual(t, NewExtent(rows, columns).Count(), int64(1))
		}
	}
}

func TestObservedExtent(t *testing.T) {
	t.Run("Given no values", func(t *testing.T) {
		t.Run("Then the extent is the minimal one", func(t *testing.T) {
			assert.Equal(t, NewExtent(0, 0), ObservedExtent(nil))
			assert.Equal(t, NewExtent(0, 0), ObservedExtent([][]interface{}{}))
		})
	})
	t.Run("Given jagged rows", func(t *testing.T) {
		values := [][]interface{}{
			{"a"},
			{},
			{"a", "b", "", "d"},
			{"a", "b"},
		}
		t.Run("Then the widest row sets the columns", func(t *testing.T) {
			assert.Equal(t, NewExtent(4, 4), ObservedExtent(values))
		})
		t.Run("Then only non-empty cells are counted", func(t *testing.T) {
			assert.Equal(t, int64(6), CountValues(values))
		})
	})
	t.Run("Given non-string cells", func(t *testing.T) {
		values := [][]interface{}{{1.5, nil, true}}
		assert.Equal(t, int64(2), CountValues(values))
	})
}
