package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// initialRowCount is how many rows a freshly created worksheet is sized to
const initialRowCount = 1000

// GoogleConfig holds configuration for the Google Sheets gateway
type GoogleConfig struct {
	// Service is an authorized Sheets API client
	Service *sheetsapi.Service

	// SpreadsheetID identifies the spreadsheet holding the logbook
	SpreadsheetID string
}

// googleGateway implements the Gateway interface against the Sheets API
type googleGateway struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// NewGoogle creates a new Google Sheets-backed gateway
func NewGoogle(cfg *GoogleConfig) (*googleGateway, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Service == nil {
		return nil, errors.New("sheets service cannot be nil")
	}

	if cfg.SpreadsheetID == "" {
		return nil, errors.New("spreadsheet ID cannot be empty")
	}

	return &googleGateway{
		svc:           cfg.Service,
		spreadsheetID: cfg.SpreadsheetID,
	}, nil
}

// EnsureSheet looks up the worksheet and creates it when absent. The header
// is only written while the first row is still empty, so calling twice never
// duplicates it.
func (g *googleGateway) EnsureSheet(ctx context.Context, input *EnsureSheetInput) error {
	if input == nil || input.Sheet == "" {
		return errors.New("input and sheet title cannot be empty")
	}

	spreadsheet, err := g.svc.Spreadsheets.Get(g.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return wrapRemote(err, "open spreadsheet")
	}

	exists := false
	for _, sh := range spreadsheet.Sheets {
		if sh.Properties != nil && sh.Properties.Title == input.Sheet {
			exists = true
			break
		}
	}

	if !exists {
		req := &sheetsapi.BatchUpdateSpreadsheetRequest{
			Requests: []*sheetsapi.Request{{
				AddSheet: &sheetsapi.AddSheetRequest{
					Properties: &sheetsapi.SheetProperties{
						Title: input.Sheet,
						GridProperties: &sheetsapi.GridProperties{
							RowCount:    initialRowCount,
							ColumnCount: int64(len(input.Columns)),
						},
					},
				},
			}},
		}
		if _, err := g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do(); err != nil {
			return wrapRemote(err, "create worksheet")
		}
	}

	headerRange := fmt.Sprintf("%s!1:1", input.Sheet)
	header, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, headerRange).Context(ctx).Do()
	if err != nil {
		return wrapRemote(err, "read header row")
	}

	if len(header.Values) == 0 {
		vr := &sheetsapi.ValueRange{Values: [][]interface{}{cellsToValues(input.Columns)}}
		_, err = g.svc.Spreadsheets.Values.
			Update(g.spreadsheetID, fmt.Sprintf("%s!A1", input.Sheet), vr).
			ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return wrapRemote(err, "write header row")
		}
	}

	return nil
}

// ReadRows returns the header and every data row of the worksheet
func (g *googleGateway) ReadRows(ctx context.Context, input *ReadRowsInput) (*ReadRowsOutput, error) {
	if input == nil || input.Sheet == "" {
		return nil, errors.New("input and sheet title cannot be empty")
	}

	vr, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, input.Sheet).Context(ctx).Do()
	if err != nil {
		return nil, wrapRemote(err, "read rows")
	}

	if len(vr.Values) == 0 {
		return &ReadRowsOutput{Header: []string{}, Rows: [][]string{}}, nil
	}

	header := valuesToCells(vr.Values[0])
	rows := make([][]string, 0, len(vr.Values)-1)
	for _, row := range vr.Values[1:] {
		rows = append(rows, valuesToCells(row))
	}

	return &ReadRowsOutput{Header: header, Rows: rows}, nil
}

// ReplaceAll clears the worksheet and rewrites the header plus all rows
func (g *googleGateway) ReplaceAll(ctx context.Context, input *ReplaceAllInput) error {
	if input == nil || input.Sheet == "" {
		return errors.New("input and sheet title cannot be empty")
	}

	_, err := g.svc.Spreadsheets.Values.
		Clear(g.spreadsheetID, input.Sheet, &sheetsapi.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return wrapRemote(err, "clear worksheet")
	}

	values := make([][]interface{}, 0, len(input.Rows)+1)
	values = append(values, cellsToValues(input.Columns))
	for _, row := range input.Rows {
		values = append(values, cellsToValues(row))
	}

	vr := &sheetsapi.ValueRange{Values: values}
	_, err = g.svc.Spreadsheets.Values.
		Update(g.spreadsheetID, fmt.Sprintf("%s!A1", input.Sheet), vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return wrapRemote(err, "rewrite worksheet")
	}

	return nil
}

// UpdateRow overwrites a single row's cell range
func (g *googleGateway) UpdateRow(ctx context.Context, input *UpdateRowInput) error {
	if input == nil || input.Sheet == "" {
		return errors.New("input and sheet title cannot be empty")
	}

	if input.Row < 2 {
		return fmt.Errorf("row %d is not a data row", input.Row)
	}

	rng := fmt.Sprintf("%s!A%d:%s%d", input.Sheet, input.Row, ColumnLetter(len(input.Values)), input.Row)
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{cellsToValues(input.Values)}}
	_, err := g.svc.Spreadsheets.Values.
		Update(g.spreadsheetID, rng, vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return wrapRemote(err, "update row")
	}

	return nil
}

// FindRowByID scans the first column below the header for an exact match
func (g *googleGateway) FindRowByID(ctx context.Context, input *FindRowByIDInput) (*FindRowByIDOutput, error) {
	if input == nil || input.Sheet == "" {
		return nil, errors.New("input and sheet title cannot be empty")
	}

	rng := fmt.Sprintf("%s!A:A", input.Sheet)
	vr, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, wrapRemote(err, "read id column")
	}

	want := strings.TrimSpace(input.ID)
	for i, row := range vr.Values {
		if i == 0 {
			continue // header row
		}
		cells := valuesToCells(row)
		if len(cells) > 0 && strings.TrimSpace(cells[0]) == want {
			return &FindRowByIDOutput{Row: i + 1}, nil
		}
	}

	return nil, ErrRowNotFound
}

// wrapRemote maps Sheets API failures onto the gateway's error taxonomy
func wrapRemote(err error, action string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return fmt.Errorf("failed to %s: %w", action, ErrSpreadsheetNotFound)
	}
	return fmt.Errorf("failed to %s (%v): %w", action, err, ErrUnavailable)
}

func cellsToValues(cells []string) []interface{} {
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return values
}

func valuesToCells(values []interface{}) []string {
	cells := make([]string, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			cells[i] = s
			continue
		}
		cells[i] = fmt.Sprint(v)
	}
	return cells
}
