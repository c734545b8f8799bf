package tabunganku

import "time"

// SeedLedger returns the demo dataset used when no prior state exists: three
// students and the five transactions their balances derive from.
func SeedLedger() *Ledger {
	day := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}

	students := []Student{
		{ID: "1", Name: "Ahmad Rizky", ClassName: "10 IPA 1", Balance: 500000, JoinDate: day("2023-01-15T00:00:00Z")},
		{ID: "2", Name: "Siti Aminah", ClassName: "11 IPS 2", Balance: 1250000, JoinDate: day("2023-02-20T00:00:00Z")},
		{ID: "3", Name: "Budi Darmawan", ClassName: "12 IPA 3", Balance: 750000, JoinDate: day("2023-03-10T00:00:00Z")},
	}
	transactions := []Transaction{
		{ID: "101", StudentID: "1", StudentName: "Ahmad Rizky", Type: Deposit, Amount: 500000, Date: day("2023-10-01T08:00:00Z"), Note: "Setoran Awal"},
		{ID: "102", StudentID: "2", StudentName: "Siti Aminah", Type: Deposit, Amount: 1000000, Date: day("2023-10-02T09:30:00Z"), Note: "Tabungan"},
		{ID: "103", StudentID: "2", StudentName: "Siti Aminah", Type: Deposit, Amount: 250000, Date: day("2023-10-05T10:00:00Z"), Note: "Tambahan"},
		{ID: "104", StudentID: "3", StudentName: "Budi Darmawan", Type: Deposit, Amount: 800000, Date: day("2023-10-06T11:00:00Z"), Note: "Uang Kas"},
		{ID: "105", StudentID: "3", StudentName: "Budi Darmawan", Type: Withdrawal, Amount: 50000, Date: day("2023-10-10T13:00:00Z"), Note: "Beli Buku"},
	}

	return RestoreLedger(students, transactions)
}
