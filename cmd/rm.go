package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type rmCmd struct {
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a student from the roster" }
func (*rmCmd) Usage() string {
	return `tabungan rm [-y] <student id or name>

  Removes a student. Their past transactions are kept in the history.
  Asks for confirmation unless -y is given.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one student id or name.")
		return subcommands.ExitUsageError
	}

	ledger := DecodeLedger()
	student, err := resolveStudent(ledger, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	// The confirmation gate lives here, not in the ledger: deletion itself is
	// unconditional and irreversible.
	if !c.yes {
		fmt.Printf("Yakin ingin menghapus %s (%s)? Saldo %s akan hilang. [y/N] ", student.Name, student.ClassName, student.Balance)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Println("Cancelled.")
			return subcommands.ExitSuccess
		}
	}

	if err := ledger.DeleteStudent(student.ID); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed %s.\n", student.Name)
	return subcommands.ExitSuccess
}
