package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hanifw/tabunganku"
)

type addCmd struct {
	name  string
	class string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a student to the roster" }
func (*addCmd) Usage() string {
	return `tabungan add -n <name> [-c <class>]

  Adds a student with a zero starting balance.

Usage Examples:
  tabungan add -n "Ahmad Rizky" -c "10 IPA 1"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Student name.")
	f.StringVar(&c.class, "c", tabunganku.GeneralClass, "Class label.")
}

func (c *addCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := DecodeLedger()

	student, err := ledger.AddStudent(c.name, c.class)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s (%s) with id %s\n", student.Name, student.ClassName, student.ID)
	return subcommands.ExitSuccess
}
