package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/hanifw/tabunganku"
	"github.com/hanifw/tabunganku/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the savings dashboard" }
func (*summaryCmd) Usage() string {
	return `tabungan summary

  Shows the dashboard: totals, top savers and the most recent transactions.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := DecodeLedger()
	printMarkdown(renderer.Dashboard(tabunganku.NewSummary(ledger)))
	return subcommands.ExitSuccess
}
