package tabunganku

import (
	"fmt"
	"time"
)

// TransactionType is a typed string identifying the direction of a transaction.
type TransactionType string

// The two transaction types. The set is closed: there is no extension point.
const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Deposit:
		return Deposit, nil
	case Withdrawal:
		return Withdrawal, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// DefaultNote returns the note recorded when the caller provides none.
func (t TransactionType) DefaultNote() string {
	if t == Withdrawal {
		return "Penarikan tunai"
	}
	return "Setoran tunai"
}

// Transaction is a single deposit or withdrawal. Once recorded it is never
// mutated or deleted; the ledger history is append-only.
//
// StudentName is a deliberate point-in-time copy of the student's name:
// renaming or deleting the student later does not rewrite history. StudentID
// is a back-reference, not an ownership edge, so it may refer to a student
// that has since been removed from the roster.
type Transaction struct {
	ID          string          `json:"id"`
	StudentID   string          `json:"studentId"`
	StudentName string          `json:"studentName"`
	Type        TransactionType `json:"type"`
	Amount      Money           `json:"amount"`
	Date        time.Time       `json:"date"`
	Note        string          `json:"note"`
}

// Delta returns the signed effect of the transaction on a balance.
func (t Transaction) Delta() Money {
	if t.Type == Withdrawal {
		return -t.Amount
	}
	return t.Amount
}
