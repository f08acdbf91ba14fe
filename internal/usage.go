package internal

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// TabSource provides the metadata of a spreadsheet.
type TabSource interface {
	Spreadsheet(ctx context.Context, spreadsheetID string) (*Spreadsheet, error)
}

// ValueSource provides the cell values of one tab.  A tab without values yields no rows and no error.
type ValueSource interface {
	Values(ctx context.Context, spreadsheetID string, tab Tab) ([][]interface{}, error)
}

// BatchEditor applies every request as one remote operation.
type BatchEditor interface {
	ApplyEdits(ctx context.Context, spreadsheetID string, requests []EditRequest) error
}

// Throttle pauses for Pause after every Every processed tabs.  Every of zero or less disables it.
type Throttle struct {
	Every int
	Pause time.Duration
}

func DefaultThrottle() Throttle {
	return Throttle{Every: 50, Pause: 100 * time.Second}
}

type Options struct {
	// Optimize computes the used extent of each tab and trims the rest.
	Optimize bool
	// DryRun plans trims without applying them.
	DryRun bool
	// Verbose fetches values for density reporting even when not optimizing.
	Verbose bool
	// Ignore holds tab titles which are skipped entirely.
	Ignore   map[string]bool
	Throttle Throttle
	Log      logrus.FieldLogger
	// Sleep waits between throttled batches; nil uses a context aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

func DefaultOptions() Options {
	return Options{
		Throttle: DefaultThrottle(),
	}
}

// Report is the outcome of counting one spreadsheet.
type Report struct {
	SpreadsheetID string
	Title         string
	// Tabs are ordered by retained cell count, largest first.
	Tabs     []*TabUsage
	Skipped  []string
	Total    int64
	Requests []EditRequest
	// Submitted is set once the requests were applied to the document.
	Submitted bool
}

// Saved is the number of cells released by the planned trims.
func (r *Report) Saved() int64 {
	var saved int64
	for _, tab := range r.Tabs {
		if len(tab.Requests) > 0 {
			saved += tab.Savings().Cells
		}
	}
	return saved
}

// Counter tallies the cells of a spreadsheet and optionally trims unused rows and columns.
type Counter struct {
	tabs   TabSource
	values ValueSource
	editor BatchEditor
	opts   Options
}

func NewCounter(tabs TabSource, values ValueSource, editor BatchEditor, opts Options) *Counter {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	if opts.Sleep == nil {
		opts.Sleep = sleep
	}
	return &Counter{
		tabs:   tabs,
		values: values,
		editor: editor,
		opts:   opts,
	}
}

func (c *Counter) Count(ctx context.Context, spreadsheetID string) (*Report, error) {
	if spreadsheetID == "" {
		return nil, ErrNoSpreadsheetID
	}
	spreadsheet, err := c.tabs.Spreadsheet(ctx, spreadsheetID)
	if err != nil {
		return nil, fmt.Errorf("reading spreadsheet %s: %w", spreadsheetID, err)
	}

	report := &Report{
		SpreadsheetID: spreadsheetID,
		Title:         spreadsheet.Title,
	}
	pending := 0
	for _, tab := range spreadsheet.Tabs {
		if !c.opts.Ignore[tab.Title] {
			pending++
		}
	}
	processed := 0
	for _, tab := range spreadsheet.Tabs {
		if c.opts.Ignore[tab.Title] {
			c.opts.Log.WithField("tab", tab.Title).Info("Skipping ignored tab")
			report.Skipped = append(report.Skipped, tab.Title)
			continue
		}

		usage, err := c.countTab(ctx, spreadsheetID, tab)
		if err != nil {
			return nil, err
		}
		report.Tabs = append(report.Tabs, usage)
		report.Requests = append(report.Requests, usage.Requests...)
		report.Total += usage.Retained
		processed++

		if c.opts.Throttle.Every > 0 && processed%c.opts.Throttle.Every == 0 && processed < pending {
			c.opts.Log.WithFields(logrus.Fields{
				"processed": processed,
				"pause":     c.opts.Throttle.Pause,
			}).Info("Pausing for rate limits")
			if err := c.opts.Sleep(ctx, c.opts.Throttle.Pause); err != nil {
				return nil, err
			}
		}
	}

	sort.SliceStable(report.Tabs, func(i, j int) bool {
		return report.Tabs[i].Retained > report.Tabs[j].Retained
	})

	if c.opts.Optimize && !c.opts.DryRun && len(report.Requests) > 0 {
		if err := c.editor.ApplyEdits(ctx, spreadsheetID, report.Requests); err != nil {
			return nil, fmt.Errorf("applying %d edits: %w", len(report.Requests), err)
		}
		report.Submitted = true
	}
	return report, nil
}

func (c *Counter) countTab(ctx context.Context, spreadsheetID string, tab Tab) (*TabUsage, error) {
	usage := &TabUsage{
		Tab:       tab,
		Allocated: tab.Allocated(),
	}
	usage.Retained = usage.Allocated.Count()
	if !c.opts.Optimize && !c.opts.Verbose {
		return usage, nil
	}

	values, err := c.values.Values(ctx, spreadsheetID, tab)
	if err != nil {
		return nil, &TabError{Tab: tab.Title, Op: "values", Err: err}
	}
	observed := ObservedExtent(values)
	usage.Observed = &observed
	usage.ValueCount = CountValues(values)

	entry := c.opts.Log.WithFields(logrus.Fields{
		"tab":       tab.Title,
		"allocated": usage.Allocated.Index(),
		"observed":  observed.Index(),
		"density":   fmt.Sprintf("%.2f%%", usage.Density()),
	})
	if !c.opts.Optimize || !CanOptimize(usage.Allocated, observed) {
		entry.Debug("Tab is as small as its data")
		return usage, nil
	}

	usage.Requests = BuildEditRequests(tab.SheetID, usage.Allocated, observed)
	entry.WithField("requests", len(usage.Requests)).Debug("Planned trim")
	if !c.opts.DryRun {
		usage.Retained = observed.Count()
	}
	return usage, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
