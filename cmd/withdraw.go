package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/hanifw/tabunganku"
)

type withdrawCmd struct {
	student string
	amount  int64
	note    string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record a withdrawal for a student" }
func (*withdrawCmd) Usage() string {
	return `tabungan withdraw -s <student> -a <amount> [-n <note>]

  Records a withdrawal and updates the student's balance. A withdrawal larger
  than the current balance is rejected.

Usage Examples:
  tabungan withdraw -s "Budi Darmawan" -a 50000 -n "Beli Buku"
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.student, "s", "", "Student id or name.")
	f.Int64Var(&c.amount, "a", 0, "Amount in whole rupiah.")
	f.StringVar(&c.note, "n", "", "Optional note.")
}

func (c *withdrawCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return applyTransaction(c.student, tabunganku.Withdrawal, c.amount, c.note)
}
