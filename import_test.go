package tabunganku

import (
	"errors"
	"reflect"
	"testing"
)

func TestReconcile(t *testing.T) {
	testCases := []struct {
		name    string
		grid    [][]Cell
		want    []Candidate
		wantErr error
	}{
		{
			name: "header row is skipped and empty names dropped",
			grid: [][]Cell{
				{TextCell("Nama"), TextCell("Kelas")},
				{TextCell("Ahmad"), TextCell("10A")},
				{TextCell(""), TextCell("10B")},
				{TextCell("Budi"), TextCell("10C")},
			},
			want: []Candidate{
				{Name: "Ahmad", ClassName: "10A"},
				{Name: "Budi", ClassName: "10C"},
			},
		},
		{
			name: "no header means every row is data",
			grid: [][]Cell{
				{TextCell("Ahmad"), TextCell("10A")},
				{TextCell("Budi"), TextCell("10C")},
			},
			want: []Candidate{
				{Name: "Ahmad", ClassName: "10A"},
				{Name: "Budi", ClassName: "10C"},
			},
		},
		{
			name: "english header marker",
			grid: [][]Cell{
				{TextCell("Student Name"), TextCell("Class")},
				{TextCell("Ahmad"), TextCell("10A")},
			},
			want: []Candidate{{Name: "Ahmad", ClassName: "10A"}},
		},
		{
			name: "empty class defaults to the general class",
			grid: [][]Cell{
				{TextCell("Ahmad"), TextCell("  ")},
			},
			want: []Candidate{{Name: "Ahmad", ClassName: GeneralClass}},
		},
		{
			name: "short rows are skipped",
			grid: [][]Cell{
				{TextCell("Ahmad")},
				{TextCell("Budi"), TextCell("10C")},
			},
			want: []Candidate{{Name: "Budi", ClassName: "10C"}},
		},
		{
			name: "numeric cells coerce to text",
			grid: [][]Cell{
				{NumberCell(12345), NumberCell(10)},
			},
			want: []Candidate{{Name: "12345", ClassName: "10"}},
		},
		{
			name:    "empty grid",
			grid:    nil,
			wantErr: ErrEmptyImport,
		},
		{
			name: "header only",
			grid: [][]Cell{
				{TextCell("Nama"), TextCell("Kelas")},
			},
			wantErr: ErrEmptyImport,
		},
		{
			name: "all rows invalid",
			grid: [][]Cell{
				{TextCell(""), TextCell("10B")},
				{{}, TextCell("10C")},
			},
			wantErr: ErrEmptyImport,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Reconcile(tc.grid)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Reconcile() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Reconcile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Reconcile() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestImportStudents(t *testing.T) {
	l := NewLedger()
	count, err := l.ImportStudents([][]Cell{
		{TextCell("Nama"), TextCell("Kelas")},
		{TextCell("Ahmad"), TextCell("10A")},
		{TextCell("Budi"), TextCell("10C")},
	})
	if err != nil {
		t.Fatalf("ImportStudents() error = %v", err)
	}
	if count != 2 || l.TotalStudents() != 2 {
		t.Fatalf("imported %d students onto a roster of %d, want 2 and 2", count, l.TotalStudents())
	}
	for _, s := range l.Students(AcceptAllStudents) {
		if s.Balance != 0 {
			t.Errorf("imported student %q has balance %d, want 0", s.Name, s.Balance)
		}
	}
}

func TestImportStudents_emptyImportLeavesRosterUnchanged(t *testing.T) {
	l := SeedLedger()
	before := l.TotalStudents()

	_, err := l.ImportStudents(nil)
	if !errors.Is(err, ErrEmptyImport) {
		t.Fatalf("ImportStudents() error = %v, want ErrEmptyImport", err)
	}
	if l.TotalStudents() != before {
		t.Errorf("roster size changed from %d to %d on a failed import", before, l.TotalStudents())
	}
}

func TestCell_String(t *testing.T) {
	testCases := []struct {
		cell Cell
		want string
	}{
		{TextCell("  Ahmad  "), "Ahmad"},
		{TextCell("   "), ""},
		{NumberCell(10), "10"},
		{NumberCell(10.5), "10.5"},
		{Cell{}, ""},
	}
	for _, tc := range testCases {
		if got := tc.cell.String(); got != tc.want {
			t.Errorf("Cell.String() = %q, want %q", got, tc.want)
		}
	}
}
