package tabunganku

import (
	"fmt"
	"reflect"
	"testing"
)

func TestNewSummary_seed(t *testing.T) {
	s := NewSummary(SeedLedger())

	if s.TotalStudents != 3 {
		t.Errorf("TotalStudents = %d, want 3", s.TotalStudents)
	}
	if s.TotalBalance != 2500000 {
		t.Errorf("TotalBalance = %d, want 2500000", s.TotalBalance)
	}

	wantSavers := []TopSaver{
		{Name: "Siti Aminah", Balance: 1250000},
		{Name: "Budi Darmawan", Balance: 750000},
		{Name: "Ahmad Rizky", Balance: 500000},
	}
	if !reflect.DeepEqual(s.TopSavers, wantSavers) {
		t.Errorf("TopSavers = %v, want %v", s.TopSavers, wantSavers)
	}

	if s.TransactionSummary.TotalDeposits != 4 || s.TransactionSummary.TotalWithdrawals != 1 {
		t.Errorf("TransactionSummary = %+v, want 4 deposits and 1 withdrawal", s.TransactionSummary)
	}

	if len(s.RecentTransactions) != 5 {
		t.Fatalf("RecentTransactions length = %d, want all 5", len(s.RecentTransactions))
	}
	if s.RecentTransactions[0].ID != "105" {
		t.Errorf("most recent transaction id = %q, want 105", s.RecentTransactions[0].ID)
	}
}

func TestNewSummary_bounds(t *testing.T) {
	l := NewLedger()
	candidates := make([]Candidate, 1000)
	for i := range candidates {
		candidates[i] = Candidate{Name: fmt.Sprintf("Siswa %04d", i), ClassName: GeneralClass}
	}
	students, err := l.AddStudents(candidates)
	if err != nil {
		t.Fatalf("AddStudents() error = %v", err)
	}
	for i, s := range students {
		if _, err := l.Apply(s.ID, Deposit, Money(1000+i), ""); err != nil {
			t.Fatalf("deposit %d: %v", i, err)
		}
	}

	s := NewSummary(l)
	if len(s.TopSavers) != 5 {
		t.Errorf("TopSavers length = %d, want 5 regardless of roster size", len(s.TopSavers))
	}
	if len(s.RecentTransactions) != 10 {
		t.Errorf("RecentTransactions length = %d, want 10 regardless of history size", len(s.RecentTransactions))
	}
	if s.TotalStudents != 1000 {
		t.Errorf("TotalStudents = %d, want 1000", s.TotalStudents)
	}
	if s.TransactionSummary.TotalDeposits != 1000 {
		t.Errorf("TotalDeposits = %d, want 1000", s.TransactionSummary.TotalDeposits)
	}

	// The very best savers made the list, in order.
	for i, saver := range s.TopSavers {
		want := Money(1000 + 999 - i)
		if saver.Balance != want {
			t.Errorf("TopSavers[%d].Balance = %d, want %d", i, saver.Balance, want)
		}
	}
}

func TestNewSummary_deterministic(t *testing.T) {
	l := SeedLedger()
	first := NewSummary(l)
	second := NewSummary(l)
	if !reflect.DeepEqual(first, second) {
		t.Error("NewSummary() is not deterministic for the same snapshot")
	}
}

func TestSummary_AverageBalance(t *testing.T) {
	testCases := []struct {
		name     string
		students int
		total    Money
		want     Money
	}{
		{name: "empty roster", students: 0, total: 0, want: 0},
		{name: "exact division", students: 2, total: 1000, want: 500},
		{name: "rounded to whole rupiah", students: 3, total: 1000, want: 333},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Summary{TotalStudents: tc.students, TotalBalance: tc.total}
			if got := s.AverageBalance(); got != tc.want {
				t.Errorf("AverageBalance() = %d, want %d", got, tc.want)
			}
		})
	}
}
