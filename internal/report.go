package internal

import (
	"fmt"
	"io"
)

// PrintOptions selects the sections of a printed report.
type PrintOptions struct {
	Tabs    bool
	Verbose bool
}

// PrintReport writes the total and title, followed by the requested per tab details.
func PrintReport(w io.Writer, report *Report, opts PrintOptions) error {
	if _, err := fmt.Fprintf(w, "%7d: %s\n", report.Total, report.Title); err != nil {
		return err
	}
	// trimmed tabs are always listed, the rest only on request
	for _, tab := range report.Tabs {
		if !opts.Tabs && !opts.Verbose && len(tab.Requests) == 0 {
			continue
		}
		if err := printTab(w, tab, opts.Verbose); err != nil {
			return err
		}
	}
	for _, title := range report.Skipped {
		if _, err := fmt.Fprintf(w, "%7s: %s\n", "skipped", title); err != nil {
			return err
		}
	}
	if len(report.Requests) == 0 {
		return nil
	}

	state := "applied"
	if !report.Submitted {
		state = "planned"
	}
	_, err := fmt.Fprintf(w, "%7d cells freed by %d %s edits\n", report.Saved(), len(report.Requests), state)
	return err
}

func printTab(w io.Writer, tab *TabUsage, verbose bool) error {
	var err error
	if verbose && tab.Observed != nil {
		_, err = fmt.Fprintf(w, "  %7d: %s (%s, used %s, %d values, %.2f%% dense)\n",
			tab.Retained, tab.Title(), tab.Allocated.Index(), tab.Observed.Index(), tab.ValueCount, tab.Density())
	} else {
		_, err = fmt.Fprintf(w, "  %7d: %s\n", tab.Retained, tab.Title())
	}
	if err != nil || len(tab.Requests) == 0 {
		return err
	}
	savings := tab.Savings()
	if _, err := fmt.Fprintf(w, "           trim to %s saves %d cells (%.2f%%)\n", tab.Observed.Index(), savings.Cells, savings.Percent); err != nil {
		return err
	}
	for _, r := range tab.Requests {
		if _, err := fmt.Fprintf(w, "           %s\n", r); err != nil {
			return err
		}
	}
	return nil
}
