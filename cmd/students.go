package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"
	"github.com/hanifw/tabunganku"
	"github.com/hanifw/tabunganku/renderer"
)

type studentsCmd struct {
	query string
}

func (*studentsCmd) Name() string     { return "students" }
func (*studentsCmd) Synopsis() string { return "list the student roster" }
func (*studentsCmd) Usage() string {
	return `tabungan students [-q <query>]

  Lists students with their class, balance and join date, optionally filtered
  by a case-insensitive substring of the name or class.
`
}

func (c *studentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter by name or class substring.")
}

func (c *studentsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := DecodeLedger()

	filter := tabunganku.AcceptAllStudents
	if c.query != "" {
		q := strings.ToLower(c.query)
		filter = func(s tabunganku.Student) bool {
			return strings.Contains(strings.ToLower(s.Name), q) ||
				strings.Contains(strings.ToLower(s.ClassName), q)
		}
	}

	var students []tabunganku.Student
	for _, s := range ledger.Students(filter) {
		students = append(students, s)
	}

	printMarkdown(renderer.Students(students))
	return subcommands.ExitSuccess
}
