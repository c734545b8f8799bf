// Package cmd implements the CLI application to manage the school savings ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/hanifw/tabunganku"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateDir = flag.String("state-dir", ".tabungan", "Path to the directory holding the ledger state files")

// Commands lists every subcommand of the tabungan binary.
var Commands = []subcommands.Command{
	&addCmd{},
	&rmCmd{},
	&depositCmd{},
	&withdrawCmd{},
	&studentsCmd{},
	&txCmd{},
	&importCmd{},
	&summaryCmd{},
	&assistCmd{},
}

// DecodeLedger is the central function to open the ledger state.
//
// When no state directory exists yet it starts from the demo dataset; corrupt
// state files are warned about and skipped, never fatal. The returned ledger
// re-persists itself after every successful mutation.
func DecodeLedger() *tabunganku.Ledger {
	var ledger *tabunganku.Ledger
	if _, err := os.Stat(*stateDir); errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, no saved state found, starting from the demo dataset")
		ledger = tabunganku.SeedLedger()
	} else {
		var err error
		ledger, err = tabunganku.LoadLedger(*stateDir)
		if err != nil {
			log.Printf("warning, part of the saved state is unreadable and was skipped: %v", err)
		}
	}
	ledger.OnChange(func(l *tabunganku.Ledger) error {
		return tabunganku.SaveLedger(*stateDir, l)
	})
	return ledger
}

// resolveStudent finds a student by id or, failing that, by name.
func resolveStudent(ledger *tabunganku.Ledger, ref string) (tabunganku.Student, error) {
	if s, ok := ledger.Student(ref); ok {
		return s, nil
	}
	if s, ok := ledger.FindStudent(ref); ok {
		return s, nil
	}
	return tabunganku.Student{}, fmt.Errorf("no student with id or name %q", ref)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
