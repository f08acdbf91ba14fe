package internal

import "golang.org/x/exp/constraints"

// Extent is the rectangle of a tab from A1 to the cell at (LastRow, LastColumn).  It is a plain value; build it with
// NewExtent so the zero count rule is applied.
type Extent struct {
	LastRow    int64
	LastColumn int64
}

// NewExtent builds an Extent from the row and column counts reported by the API.  A count of zero is treated as a
// count of one, so even an empty tab occupies a single cell.
func NewExtent(rowCount, columnCount int64) Extent {
	return Extent{
		LastRow:    lastIndex(rowCount),
		LastColumn: lastIndex(columnCount),
	}
}

func lastIndex(count int64) int64 {
	if count > 0 {
		return count - 1
	}
	return 0
}

// Rows is the number of rows spanned.
func (e Extent) Rows() int64 {
	return e.LastRow + 1
}

// Columns is the number of columns spanned.
func (e Extent) Columns() int64 {
	return e.LastColumn + 1
}

// Count is the number of cells inside the extent.
func (e Extent) Count() int64 {
	return e.Rows() * e.Columns()
}

// Index is the A1 reference of the bottom right cell.
func (e Extent) Index() string {
	return IndexToLetterNumber(e.LastRow, e.LastColumn)
}

func (e Extent) Equal(other Extent) bool {
	return e.LastRow == other.LastRow && e.LastColumn == other.LastColumn
}

func (e Extent) String() string {
	return "A1:" + e.Index()
}

// ObservedExtent is the bounding rectangle of the values returned for a tab.  The API trims trailing empty cells from
// each row, so the widest row gives the used column count.  No values at all yields the minimal extent.
func ObservedExtent(values [][]interface{}) Extent {
	if len(values) == 0 {
		return NewExtent(0, 0)
	}
	widest := maxOf(0, fx(values, func(row []interface{}) int {
		return len(row)
	})...)
	return NewExtent(int64(len(values)), int64(widest))
}

// CountValues counts the non-empty cells in values.
func CountValues(values [][]interface{}) int64 {
	var count int64
	for _, row := range values {
		for _, cell := range row {
			if !isEmptyCell(cell) {
				count++
			}
		}
	}
	return count
}

func isEmptyCell(cell interface{}) bool {
	switch v := cell.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}

func max[I constraints.Ordered](lhs I, rhs I) I {
	if lhs > rhs {
		return lhs
	}
	return rhs
}

func maxOf[I constraints.Ordered](first I, more ...I) I {
	highest := first
	for _, v := range more {
		highest = max(highest, v)
	}
	return highest
}

func fx[I any, O any](inputs []I, fx func(i I) O) []O {
	out := make([]O, len(inputs))
	for index, v := range inputs {
		out[index] = fx(v)
	}
	return out
}
