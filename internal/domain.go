package internal

// Tab is a sheet as described by spreadsheet metadata.
type Tab struct {
	SheetID     int64
	Title       string
	RowCount    int64
	ColumnCount int64
}

// Allocated is the extent the tab reserves regardless of its content.
func (t Tab) Allocated() Extent {
	return NewExtent(t.RowCount, t.ColumnCount)
}

// Spreadsheet is the metadata of a document with its tabs in API order.
type Spreadsheet struct {
	ID    string
	Title string
	Tabs  []Tab
}

// TabUsage is the outcome for a single tab within one run.
type TabUsage struct {
	Tab       Tab
	Allocated Extent
	// Observed is only set when values were fetched for the tab.
	Observed   *Extent
	ValueCount int64
	Requests   []EditRequest
	// Retained is the cell count left once the run completes.
	Retained int64
}

func (u *TabUsage) Title() string {
	return u.Tab.Title
}

func (u *TabUsage) Density() float64 {
	return Density(u.ValueCount, u.Allocated)
}

func (u *TabUsage) CanOptimize() bool {
	return u.Observed != nil && CanOptimize(u.Allocated, *u.Observed)
}

func (u *TabUsage) Savings() Savings {
	if u.Observed == nil {
		return Savings{}
	}
	return ComputeSavings(u.Allocated, *u.Observed)
}
