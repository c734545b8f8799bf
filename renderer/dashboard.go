package renderer

import (
	"bytes"
	"fmt"

	"github.com/hanifw/tabunganku"
	md "github.com/nao1215/markdown"
)

// Dashboard renders the summary as a markdown report: the stat cards of the
// dashboard, the top savers, and the most recent transactions.
func Dashboard(s *tabunganku.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("TabunganKu")

	doc.Table(md.TableSet{
		Header: []string{"Statistik", "Nilai"},
		Rows: [][]string{
			{"Total Siswa", fmt.Sprintf("%d", s.TotalStudents)},
			{"Total Saldo", s.TotalBalance.String()},
			{"Rata-rata Saldo", s.AverageBalance().String()},
			{"Jumlah Setoran", fmt.Sprintf("%d", s.TransactionSummary.TotalDeposits)},
			{"Jumlah Penarikan", fmt.Sprintf("%d", s.TransactionSummary.TotalWithdrawals)},
		},
	})

	doc.H2("Penabung Teratas")
	savers := make([][]string, 0, len(s.TopSavers))
	for i, t := range s.TopSavers {
		savers = append(savers, []string{fmt.Sprintf("%d", i+1), t.Name, t.Balance.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Nama", "Saldo"},
		Rows:   savers,
	})

	doc.H2("Transaksi Terakhir")
	recent := make([][]string, 0, len(s.RecentTransactions))
	for _, tx := range s.RecentTransactions {
		recent = append(recent, []string{when(tx.Date), tx.StudentName, tx.Delta().SignedString()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Tanggal", "Siswa", "Jumlah"},
		Rows:   recent,
	})

	return doc.String()
}
