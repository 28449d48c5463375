package journal

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mxpp71-coder/cahier-seances-judo/internal/models"
)

// xlsxSheetName is the worksheet title inside exported workbooks
const xlsxSheetName = "Seances"

// ExportCSV renders the filtered sessions as a CSV file, schema columns first
func (s *service) ExportCSV(ctx context.Context, input *ExportCSVInput) (*ExportCSVOutput, error) {
	if input == nil {
		input = &ExportCSVInput{}
	}

	listed, err := s.ListSessions(ctx, &ListSessionsInput{
		Season:  input.Season,
		Public:  input.Public,
		Keyword: input.Keyword,
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(models.Columns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, sess := range listed.Sessions {
		if err := w.Write(sess.Values()); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return &ExportCSVOutput{
		Filename: exportFilename(input.Season, "csv"),
		Data:     buf.Bytes(),
	}, nil
}

// ExportXLSX renders the filtered sessions as an Excel workbook
func (s *service) ExportXLSX(ctx context.Context, input *ExportXLSXInput) (*ExportXLSXOutput, error) {
	if input == nil {
		input = &ExportXLSXInput{}
	}

	listed, err := s.ListSessions(ctx, &ListSessionsInput{
		Season:  input.Season,
		Public:  input.Public,
		Keyword: input.Keyword,
	})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheetName); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	if err := f.SetSheetRow(xlsxSheetName, "A1", rowAsAny(models.Columns)); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, sess := range listed.Sessions {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(xlsxSheetName, cell, rowAsAny(sess.Values())); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return &ExportXLSXOutput{
		Filename: exportFilename(input.Season, "xlsx"),
		Data:     buf.Bytes(),
	}, nil
}

func exportFilename(seasonLabel, ext string) string {
	if seasonLabel == "" {
		seasonLabel = "toutes-saisons"
	}
	return fmt.Sprintf("seances_%s.%s", seasonLabel, ext)
}

func rowAsAny(cells []string) *[]interface{} {
	row := make([]interface{}, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return &row
}
