package internal

import (
	"errors"
	"fmt"
)

// ErrNoSpreadsheetID is returned when a run is started without a document to inspect.
var ErrNoSpreadsheetID = errors.New("no spreadsheet id")

// TabError reports a failure tied to a single tab.
type TabError struct {
	Tab string
	// Op names the call which failed.
	Op  string
	Err error
}

func (e *TabError) Error() string {
	return fmt.Sprintf("tab %q (%s): %v", e.Tab, e.Op, e.Err)
}

func (e *TabError) Unwrap() error {
	return e.Err
}
