package tabunganku

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Bounds on the context handed to the advisory assistant. Whatever the size
// of the roster or the history, the payload stays small and privacy-conscious.
const (
	maxTopSavers          = 5
	maxRecentTransactions = 10
)

// TopSaver is a roster entry reduced to what the assistant may see.
type TopSaver struct {
	Name    string `json:"name"`
	Balance Money  `json:"balance"`
}

// TransactionCounts aggregates the history by direction.
type TransactionCounts struct {
	TotalDeposits    int `json:"totalDeposits"`
	TotalWithdrawals int `json:"totalWithdrawals"`
}

// Summary is the bounded, serializable snapshot of the ledger consumed by the
// advisory assistant and the dashboard. It never carries more than
// maxTopSavers roster entries or maxRecentTransactions history entries.
type Summary struct {
	TotalStudents      int               `json:"totalStudents"`
	TotalBalance       Money             `json:"totalBalance"`
	TopSavers          []TopSaver        `json:"topSavers"`
	RecentTransactions []Transaction     `json:"recentTransactions"`
	TransactionSummary TransactionCounts `json:"transactionSummary"`
}

// NewSummary builds a summary from the current ledger snapshot. It has no
// side effects and is deterministic: ties in the top-savers ranking break on
// name.
func NewSummary(l *Ledger) *Summary {
	students, transactions := l.Snapshot()

	s := &Summary{
		TotalStudents: len(students),
		TopSavers:     make([]TopSaver, 0, maxTopSavers),
	}

	for _, st := range students {
		s.TotalBalance = s.TotalBalance.Add(st.Balance)
	}

	sort.SliceStable(students, func(i, j int) bool {
		if students[i].Balance != students[j].Balance {
			return students[i].Balance > students[j].Balance
		}
		return students[i].Name < students[j].Name
	})
	for _, st := range students {
		if len(s.TopSavers) == maxTopSavers {
			break
		}
		s.TopSavers = append(s.TopSavers, TopSaver{Name: st.Name, Balance: st.Balance})
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	if len(transactions) > maxRecentTransactions {
		s.RecentTransactions = transactions[:maxRecentTransactions]
	} else {
		s.RecentTransactions = transactions
	}

	for _, tx := range transactions {
		switch tx.Type {
		case Deposit:
			s.TransactionSummary.TotalDeposits++
		case Withdrawal:
			s.TransactionSummary.TotalWithdrawals++
		}
	}

	return s
}

// AverageBalance returns the mean balance per student, rounded to whole
// rupiah. Dashboard material, not part of the assistant payload.
func (s *Summary) AverageBalance() Money {
	if s.TotalStudents == 0 {
		return 0
	}
	avg := decimal.NewFromInt(int64(s.TotalBalance)).
		Div(decimal.NewFromInt(int64(s.TotalStudents))).
		Round(0)
	return Money(avg.IntPart())
}
