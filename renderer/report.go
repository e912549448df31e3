package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/expense"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the monthly breakdown of a year as markdown. Months
// without expenses are skipped.
func ReportMarkdown(r expense.Report, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expenses %d", r.Year))
	if r.Count == 0 {
		doc.PlainText(fmt.Sprintf("%s for %d.", NoExpenses, r.Year))
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Months)+1)
	for _, m := range r.Months {
		if m.Count == 0 {
			continue
		}
		rows = append(rows, []string{m.Month.String(), strconv.Itoa(m.Count), m.Total.In(currency).String()})
	}
	rows = append(rows, []string{"Total", strconv.Itoa(r.Count), r.Total.In(currency).String()})

	doc.Table(md.TableSet{
		Header: []string{"Month", "Expenses", "Amount"},
		Rows:   rows,
	})
	return doc.String()
}
