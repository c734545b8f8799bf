// Package renderer turns ledger state into markdown for the terminal.
package renderer

import (
	"time"

	"github.com/hanifw/tabunganku"
)

const dateLayout = "2006-01-02"
const timeLayout = "2006-01-02 15:04"

func day(t time.Time) string  { return t.Local().Format(dateLayout) }
func when(t time.Time) string { return t.Local().Format(timeLayout) }

// Transaction renders a one-line description of a transaction.
func Transaction(tx tabunganku.Transaction) string {
	verb := "Deposited"
	if tx.Type == tabunganku.Withdrawal {
		verb = "Withdrew"
	}
	return verb + " " + tx.Amount.String() + " for " + tx.StudentName + " (" + tx.Note + ")"
}
