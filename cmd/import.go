package cmd

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hanifw/tabunganku"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "bulk-import students from a CSV file" }
func (*importCmd) Usage() string {
	return `tabungan import -f <file.csv>

  Imports students from a CSV file whose first column is the student name and
  second column the class. A first row containing "Nama" or "Name" is treated
  as a header. Rows without a name or a second column are skipped.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "CSV file to import.")
}

func (c *importCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	grid, err := readGrid(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Gagal membaca file. Pastikan format CSV valid:", err)
		return subcommands.ExitFailure
	}

	ledger := DecodeLedger()
	count, err := ledger.ImportStudents(grid)
	if errors.Is(err, tabunganku.ErrEmptyImport) {
		fmt.Fprintln(os.Stderr, "Tidak ada data valid yang ditemukan dalam file.")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Berhasil mengimpor %d siswa!\n", count)
	return subcommands.ExitSuccess
}

// readGrid parses the CSV file into the untyped grid the reconciler consumes.
// Any parse failure is an ErrImportFormat: nothing has been imported yet.
func readGrid(path string) ([][]tabunganku.Cell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tabunganku.ErrImportFormat, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are the reconciler's problem
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tabunganku.ErrImportFormat, err)
	}

	grid := make([][]tabunganku.Cell, 0, len(records))
	for _, record := range records {
		row := make([]tabunganku.Cell, 0, len(record))
		for _, field := range record {
			row = append(row, tabunganku.TextCell(field))
		}
		grid = append(grid, row)
	}
	return grid, nil
}
