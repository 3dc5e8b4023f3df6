package renderer

import (
	"bytes"

	"github.com/etnz/fintrack"
	md "github.com/nao1215/markdown"
)

// SplitMarkdown renders the aggregated per-member shares of the household
// costs, largest first, with a conservation total.
func SplitMarkdown(totals []fintrack.MemberTotal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Household Split")

	if len(totals) == 0 {
		doc.PlainText("Nothing to split.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Member", "Share"}}
	var sum fintrack.Money
	for _, t := range totals {
		name := t.Name
		if name == "" {
			name = t.MemberID
		}
		table.Rows = append(table.Rows, []string{name, t.Total.String()})
		sum = sum.Add(t.Total)
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(sum.String())})
	doc.Table(table)

	return doc.String()
}

// ShiftMarkdown renders a single computed shift.
func ShiftMarkdown(shift *fintrack.Shift) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Shift")
	table := md.TableSet{
		Header: []string{"Date", "From", "To", "Hours", "Amount"},
		Rows: [][]string{{
			shift.Date.String(),
			shift.Start,
			shift.End,
			hours(shift),
			md.Bold(shift.Amount.String()),
		}},
	}
	doc.Table(table)
	if shift.CrossesMidnight {
		doc.PlainText("This shift crosses midnight.")
	}
	return doc.String()
}

func hours(s *fintrack.Shift) string {
	return money(s.Hours)
}
