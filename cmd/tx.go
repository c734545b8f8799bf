package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/subcommands"
	"github.com/hanifw/tabunganku"
	"github.com/hanifw/tabunganku/renderer"
)

type txCmd struct {
	student string
	date    string
	head    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the ledger" }
func (*txCmd) Usage() string {
	return `tabungan tx [-s <student>] [-d <date>] [-head <n>]

  Lists transactions, newest first, with options for filtering and limiting
  the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.student, "s", "", "Only transactions of this student (id or name).")
	f.StringVar(&p.date, "d", "", "Only transactions on this day (YYYY-MM-DD).")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
}

func (p *txCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := DecodeLedger()

	filters := []func(tabunganku.Transaction) bool{tabunganku.AcceptAllTransactions}
	if p.student != "" {
		student, err := resolveStudent(ledger, p.student)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		filters = []func(tabunganku.Transaction) bool{tabunganku.ByStudent(student.ID)}
	}

	var transactions []tabunganku.Transaction
	for _, tx := range ledger.Transactions(filters...) {
		transactions = append(transactions, tx)
	}
	// Resort explicitly, display order is a presentation decision.
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})

	if p.date != "" {
		day, err := time.ParseInLocation("2006-01-02", p.date, time.Local)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitFailure
		}
		onDay := tabunganku.OnDay(day)
		kept := transactions[:0]
		for _, tx := range transactions {
			if onDay(tx) {
				kept = append(kept, tx)
			}
		}
		transactions = kept
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}

	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}
