package models

import (
	"strconv"
	"strings"
	"time"
)

// Columns is the worksheet header row. The order is the wire format: every
// stored row carries its cells in exactly this order, and the column names
// match the spreadsheets written by earlier versions of the logbook.
var Columns = []string{
	"id", "date", "saison", "public", "objectif", "tags", "duree_min",
	"echauffement", "corps", "retour", "materiel", "bilan", "effectif",
	"rpe", "auteur",
}

// DateLayout is how dates are stored in the sheet
const DateLayout = "2006-01-02"

// Values serializes the session into one row of cells in Columns order.
// Empty and never-set fields both serialize to "".
func (s *Session) Values() []string {
	return []string{
		strconv.Itoa(s.ID),
		formatDate(s.Date),
		s.Season,
		s.Public,
		s.Objectives,
		s.Tags,
		strconv.Itoa(s.DurationMin),
		s.WarmUp,
		s.MainBody,
		s.CoolDown,
		s.Equipment,
		s.Debrief,
		strconv.Itoa(s.Headcount),
		strconv.Itoa(s.RPE),
		s.Author,
	}
}

// FromRow decodes one row of cells in Columns order. Short rows are padded
// with empty cells. Unparseable dates decode to a zero time and unparseable
// numbers to zero rather than failing the whole row.
func FromRow(cells []string) *Session {
	if len(cells) < len(Columns) {
		padded := make([]string, len(Columns))
		copy(padded, cells)
		cells = padded
	}

	return &Session{
		ID:     atoi(cells[0]),
		Season: strings.TrimSpace(cells[2]),
		SessionFields: SessionFields{
			Date:        parseDate(cells[1]),
			Public:      strings.TrimSpace(cells[3]),
			Objectives:  strings.TrimSpace(cells[4]),
			Tags:        strings.TrimSpace(cells[5]),
			DurationMin: atoi(cells[6]),
			WarmUp:      cells[7],
			MainBody:    cells[8],
			CoolDown:    cells[9],
			Equipment:   cells[10],
			Debrief:     cells[11],
			Headcount:   atoi(cells[12]),
			RPE:         atoi(cells[13]),
			Author:      strings.TrimSpace(cells[14]),
		},
	}
}

func formatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func parseDate(cell string) time.Time {
	d, err := time.Parse(DateLayout, strings.TrimSpace(cell))
	if err != nil {
		return time.Time{}
	}
	return d
}

func atoi(cell string) int {
	n, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil {
		return 0
	}
	return n
}
