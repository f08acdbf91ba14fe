package internal

import "fmt"

// Dimension names the axis an EditRequest trims, spelled the way the Sheets API spells it.
type Dimension string

const (
	Rows    Dimension = "ROWS"
	Columns Dimension = "COLUMNS"
)

// EditRequest deletes the indexes Start through End, both inclusive and zero-based, along one dimension of a tab.
type EditRequest struct {
	SheetID   int64
	Dimension Dimension
	Start     int64
	End       int64
}

// Length is the number of rows or columns removed.
func (e EditRequest) Length() int64 {
	return (e.End - e.Start) + 1
}

func (e EditRequest) String() string {
	return fmt.Sprintf("delete %s %d-%d of sheet %d", e.Dimension, e.Start, e.End, e.SheetID)
}

// Savings is what trimming a tab down to its used extent gives back.
type Savings struct {
	Cells   int64
	Percent float64
}

// CanOptimize reports whether the used extent differs from the allocated one.  used is always contained in
// allocated, so any difference means cells can be released.
func CanOptimize(allocated, used Extent) bool {
	return !allocated.Equal(used)
}

func ComputeSavings(allocated, used Extent) Savings {
	return Savings{
		Cells:   allocated.Count() - used.Count(),
		Percent: 100 * (1 - float64(used.Count())/float64(allocated.Count())),
	}
}

// BuildEditRequests produces the row trim followed by the column trim needed to shrink allocated to used.  An axis
// that is already tight produces no request.
func BuildEditRequests(sheetID int64, allocated, used Extent) []EditRequest {
	var out []EditRequest
	if start := used.LastRow + 1; start <= allocated.LastRow {
		out = append(out, EditRequest{SheetID: sheetID, Dimension: Rows, Start: start, End: allocated.LastRow})
	}
	if start := used.LastColumn + 1; start <= allocated.LastColumn {
		out = append(out, EditRequest{SheetID: sheetID, Dimension: Columns, Start: start, End: allocated.LastColumn})
	}
	return out
}

// Density is the percentage of allocated cells holding a value.
func Density(valueCount int64, allocated Extent) float64 {
	return 100 * float64(valueCount) / float64(allocated.Count())
}
