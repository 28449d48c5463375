package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Memory implements the Gateway interface in process memory. It backs the
// tests and the local development mode; the grid layout mirrors a worksheet,
// row 0 being the header.
type Memory struct {
	mu     sync.Mutex
	sheets map[string][][]string
}

// NewMemory creates a new in-memory gateway with no worksheets
func NewMemory() *Memory {
	return &Memory{
		sheets: make(map[string][][]string),
	}
}

// EnsureSheet creates the worksheet with its header row when absent
func (m *Memory) EnsureSheet(ctx context.Context, input *EnsureSheetInput) error {
	if input == nil || input.Sheet == "" {
		return errors.New("input and sheet title cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sheets[input.Sheet]; ok {
		return nil
	}

	m.sheets[input.Sheet] = [][]string{cloneRow(input.Columns)}
	return nil
}

// ReadRows returns the header and every data row of the worksheet
func (m *Memory) ReadRows(ctx context.Context, input *ReadRowsInput) (*ReadRowsOutput, error) {
	if input == nil || input.Sheet == "" {
		return nil, errors.New("input and sheet title cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	grid, ok := m.sheets[input.Sheet]
	if !ok {
		return nil, fmt.Errorf("worksheet %q: %w", input.Sheet, ErrSpreadsheetNotFound)
	}

	if len(grid) == 0 {
		return &ReadRowsOutput{Header: []string{}, Rows: [][]string{}}, nil
	}

	rows := make([][]string, 0, len(grid)-1)
	for _, row := range grid[1:] {
		rows = append(rows, cloneRow(row))
	}

	return &ReadRowsOutput{Header: cloneRow(grid[0]), Rows: rows}, nil
}

// ReplaceAll clears the worksheet and rewrites the header plus all rows
func (m *Memory) ReplaceAll(ctx context.Context, input *ReplaceAllInput) error {
	if input == nil || input.Sheet == "" {
		return errors.New("input and sheet title cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	grid := make([][]string, 0, len(input.Rows)+1)
	grid = append(grid, cloneRow(input.Columns))
	for _, row := range input.Rows {
		grid = append(grid, cloneRow(row))
	}

	m.sheets[input.Sheet] = grid
	return nil
}

// UpdateRow overwrites a single row, 1-based and counting the header
func (m *Memory) UpdateRow(ctx context.Context, input *UpdateRowInput) error {
	if input == nil || input.Sheet == "" {
		return errors.New("input and sheet title cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	grid, ok := m.sheets[input.Sheet]
	if !ok {
		return fmt.Errorf("worksheet %q: %w", input.Sheet, ErrSpreadsheetNotFound)
	}

	if input.Row < 2 || input.Row > len(grid) {
		return fmt.Errorf("row %d out of range: %w", input.Row, ErrRowNotFound)
	}

	grid[input.Row-1] = cloneRow(input.Values)
	return nil
}

// FindRowByID scans the first column below the header for an exact match
func (m *Memory) FindRowByID(ctx context.Context, input *FindRowByIDInput) (*FindRowByIDOutput, error) {
	if input == nil || input.Sheet == "" {
		return nil, errors.New("input and sheet title cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	grid, ok := m.sheets[input.Sheet]
	if !ok {
		return nil, fmt.Errorf("worksheet %q: %w", input.Sheet, ErrSpreadsheetNotFound)
	}

	want := strings.TrimSpace(input.ID)
	for i, row := range grid {
		if i == 0 {
			continue // header row
		}
		if len(row) > 0 && strings.TrimSpace(row[0]) == want {
			return &FindRowByIDOutput{Row: i + 1}, nil
		}
	}

	return nil, ErrRowNotFound
}

func cloneRow(row []string) []string {
	cloned := make([]string, len(row))
	copy(cloned, row)
	return cloned
}
