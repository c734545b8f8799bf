package renderer

import (
	"bytes"
	"fmt"

	"github.com/hanifw/tabunganku"
	md "github.com/nao1215/markdown"
)

// Transactions renders a transaction log as a markdown table.
func Transactions(transactions []tabunganku.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Riwayat Transaksi (%d)", len(transactions)))

	rows := make([][]string, 0, len(transactions))
	for _, tx := range transactions {
		label := "Setoran"
		amount := "+" + tx.Amount.String()
		if tx.Type == tabunganku.Withdrawal {
			label = "Penarikan"
			amount = "-" + tx.Amount.String()
		}
		rows = append(rows, []string{when(tx.Date), tx.StudentName, label, amount, tx.Note})
	}
	doc.Table(md.TableSet{
		Header: []string{"Tanggal", "Siswa", "Jenis", "Jumlah", "Catatan"},
		Rows:   rows,
	})

	return doc.String()
}
