package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hanifw/tabunganku"
)

type depositCmd struct {
	student string
	amount  int64
	note    string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a deposit for a student" }
func (*depositCmd) Usage() string {
	return `tabungan deposit -s <student> -a <amount> [-n <note>]

  Records a deposit and updates the student's balance.

Usage Examples:
  tabungan deposit -s "Ahmad Rizky" -a 500000 -n "Setoran Awal"
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.student, "s", "", "Student id or name.")
	f.Int64Var(&c.amount, "a", 0, "Amount in whole rupiah.")
	f.StringVar(&c.note, "n", "", "Optional note.")
}

func (c *depositCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return applyTransaction(c.student, tabunganku.Deposit, c.amount, c.note)
}

// applyTransaction is shared by the deposit and withdraw commands.
func applyTransaction(studentRef string, typ tabunganku.TransactionType, amount int64, note string) subcommands.ExitStatus {
	ledger := DecodeLedger()
	student, err := resolveStudent(ledger, studentRef)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	tx, err := ledger.Apply(student.ID, typ, tabunganku.Money(amount), note)
	if err != nil {
		var insufficient *tabunganku.InsufficientFundsError
		if errors.As(err, &insufficient) {
			fmt.Fprintf(os.Stderr, "Error: saldo %s tidak mencukupi (saldo saat ini %s).\n", insufficient.StudentName, insufficient.Balance)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	updated, _ := ledger.Student(student.ID)
	verb := "Setoran"
	if typ == tabunganku.Withdrawal {
		verb = "Penarikan"
	}
	fmt.Printf("%s %s untuk %s tercatat. Saldo sekarang %s.\n", verb, tx.Amount, tx.StudentName, updated.Balance)
	return subcommands.ExitSuccess
}
