package tabunganku

import (
	"fmt"
	"strconv"
	"strings"
)

// This file reconciles untrusted tabular input (a grid of untyped cells from
// a spreadsheet or CSV, parsed elsewhere) into student candidates.

// CellKind discriminates the kinds of value a grid cell can hold.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one untyped value from an imported grid, a tagged union of the
// kinds spreadsheets actually produce.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// TextCell returns a text cell. Whitespace-only text collapses to an empty cell.
func TextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Text: s}
}

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// String coerces the cell to text: numbers render without an exponent, empty
// cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return strings.TrimSpace(c.Text)
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// IsEmpty reports whether the cell coerces to empty text.
func (c Cell) IsEmpty() bool { return c.String() == "" }

// headerRow reports whether row looks like a header: its first cell is text
// and case-insensitively contains a name-column marker. Best effort only.
func headerRow(row []Cell) bool {
	if len(row) == 0 || row[0].Kind != CellText {
		return false
	}
	first := strings.ToLower(row[0].Text)
	return strings.Contains(first, "nama") || strings.Contains(first, "name")
}

// Reconcile converts a grid of cells into student candidates.
//
// If row 0 looks like a header it is skipped. Each remaining row is accepted
// only if it has at least two cells and a non-empty first cell; the first
// cell becomes the name, the second the class (defaulting to GeneralClass
// when empty). Rejected rows are skipped silently, individual row failures
// are reported only in aggregate: when nothing at all was accepted the
// result is ErrEmptyImport.
func Reconcile(grid [][]Cell) ([]Candidate, error) {
	start := 0
	if len(grid) > 0 && headerRow(grid[0]) {
		start = 1
	}

	var candidates []Candidate
	for _, row := range grid[start:] {
		if len(row) < 2 || row[0].IsEmpty() {
			continue
		}
		className := row[1].String()
		if className == "" {
			className = GeneralClass
		}
		candidates = append(candidates, Candidate{
			Name:      row[0].String(),
			ClassName: className,
		})
	}

	if len(candidates) == 0 {
		return nil, ErrEmptyImport
	}
	return candidates, nil
}

// ImportStudents reconciles the grid and admits the accepted rows to the
// roster as one batch, returning how many were admitted. A reconciliation
// failure leaves the roster untouched.
func (l *Ledger) ImportStudents(grid [][]Cell) (int, error) {
	candidates, err := Reconcile(grid)
	if err != nil {
		return 0, err
	}
	added, err := l.AddStudents(candidates)
	if err != nil {
		return 0, fmt.Errorf("could not admit imported students: %w", err)
	}
	return len(added), nil
}
