// Package gsheets adapts the Google Sheets API to the sources and sink used by the cell counter.
package gsheets

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/meschbach/gsheets-cell-counter/internal"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const metadataFields = "properties.title,sheets.properties(sheetId,title,gridProperties(rowCount,columnCount))"

// Backoff controls retrying calls the API rejected for exceeding its rate limits.
type Backoff struct {
	Attempts int
	Base     time.Duration
	Max      time.Duration
}

func DefaultBackoff() Backoff {
	return Backoff{Attempts: 15, Base: time.Second, Max: 60 * time.Second}
}

func (b Backoff) delay(attempt int) time.Duration {
	d := time.Duration(math.Pow(2, float64(attempt))) * b.Base
	if d > b.Max || d <= 0 {
		d = b.Max
	}
	return d
}

type Client struct {
	service *sheets.Service
	backoff Backoff
}

// New builds a client; pass option.WithHTTPClient with an authorized client for normal use.
func New(ctx context.Context, backoff Backoff, opts ...option.ClientOption) (*Client, error) {
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}
	return &Client{service: srv, backoff: backoff}, nil
}

func (c *Client) Spreadsheet(ctx context.Context, spreadsheetID string) (*internal.Spreadsheet, error) {
	var resp *sheets.Spreadsheet
	err := c.retry(ctx, "get spreadsheet", func() (err error) {
		resp, err = c.service.Spreadsheets.Get(spreadsheetID).
			IncludeGridData(false).
			Fields(metadataFields).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, err
	}

	out := &internal.Spreadsheet{ID: spreadsheetID}
	if resp.Properties != nil {
		out.Title = resp.Properties.Title
	}
	for _, sheet := range resp.Sheets {
		if sheet.Properties == nil {
			continue
		}
		tab := internal.Tab{
			SheetID: sheet.Properties.SheetId,
			Title:   sheet.Properties.Title,
		}
		if grid := sheet.Properties.GridProperties; grid != nil {
			tab.RowCount = grid.RowCount
			tab.ColumnCount = grid.ColumnCount
		}
		out.Tabs = append(out.Tabs, tab)
	}
	return out, nil
}

func (c *Client) Values(ctx context.Context, spreadsheetID string, tab internal.Tab) ([][]interface{}, error) {
	var resp *sheets.ValueRange
	err := c.retry(ctx, "get values", func() (err error) {
		resp, err = c.service.Spreadsheets.Values.Get(spreadsheetID, TabRange(tab.Title)).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	//gsheets leaves values out entirely for an empty tab
	return resp.Values, nil
}

func (c *Client) ApplyEdits(ctx context.Context, spreadsheetID string, requests []internal.EditRequest) error {
	batch := &sheets.BatchUpdateSpreadsheetRequest{}
	for _, r := range requests {
		// the API range is half open
		batch.Requests = append(batch.Requests, &sheets.Request{
			DeleteDimension: newDeleteDimensionRequest(r.SheetID, string(r.Dimension), r.Start, r.End+1),
		})
	}
	return c.retry(ctx, "batch update", func() error {
		_, err := c.service.Spreadsheets.BatchUpdate(spreadsheetID, batch).Context(ctx).Do()
		return err
	})
}

func newDeleteDimensionRequest(onSheetID int64, direction string, start int64, end int64) *sheets.DeleteDimensionRequest {
	return &sheets.DeleteDimensionRequest{
		Range: &sheets.DimensionRange{
			Dimension:       direction,
			EndIndex:        end,
			SheetId:         onSheetID,
			StartIndex:      start,
			ForceSendFields: []string{"SheetId", "StartIndex"},
		},
	}
}

// TabRange is the A1 range covering every cell of the named tab.
func TabRange(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func (c *Client) retry(ctx context.Context, op string, call func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		if err = call(); err == nil || !IsRateLimited(err) || attempt+1 >= c.backoff.Attempts {
			break
		}
		wait := c.backoff.delay(attempt)
		log.WithFields(log.Fields{"op": op, "wait": wait}).Warn("Rate limited by Google Sheets API, retrying")
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// IsRateLimited reports whether err is the API refusing a call because a quota was exceeded.
func IsRateLimited(err error) bool {
	var gErr *googleapi.Error
	if !errors.As(err, &gErr) {
		return false
	}
	if gErr.Code == http.StatusTooManyRequests {
		return true
	}
	if gErr.Code == http.StatusForbidden {
		for _, item := range gErr.Errors {
			if strings.HasSuffix(item.Reason, "RateLimitExceeded") || item.Reason == "rateLimitExceeded" {
				return true
			}
		}
	}
	return false
}
