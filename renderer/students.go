package renderer

import (
	"bytes"
	"fmt"

	"github.com/hanifw/tabunganku"
	md "github.com/nao1215/markdown"
)

// Students renders the roster as a markdown table.
func Students(students []tabunganku.Student) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Daftar Siswa (%d)", len(students)))

	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{s.Name, s.ClassName, s.Balance.String(), day(s.JoinDate)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Nama", "Kelas", "Saldo", "Bergabung"},
		Rows:   rows,
	})

	return doc.String()
}
