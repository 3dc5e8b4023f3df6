// Package renderer turns the tracker's computed views into markdown reports
// for the terminal.
package renderer

import (
	"bytes"

	"github.com/etnz/fintrack"
	md "github.com/nao1215/markdown"
)

// OccurrencesMarkdown renders a materialized occurrence list, newest first,
// with a closing total row.
func OccurrencesMarkdown(title string, window fintrack.Range, occurrences []fintrack.Occurrence) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	doc.PlainTextf("%s to %s", window.From, window.To)

	if len(occurrences) == 0 {
		doc.PlainText("Nothing in this range.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Label", "Amount"},
	}
	var total fintrack.Money
	for _, occ := range occurrences {
		table.Rows = append(table.Rows, []string{occ.Date.String(), occ.Label, occ.Amount.String()})
		total = total.Add(occ.Amount)
	}
	table.Rows = append(table.Rows, []string{"", md.Bold("Total"), md.Bold(total.String())})
	doc.Table(table)

	return doc.String()
}

// CashFlowMarkdown renders monthly income against costs and subscriptions.
func CashFlowMarkdown(points []fintrack.CashFlowPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cash Flow")

	table := md.TableSet{
		Header: []string{"Month", "Income", "Costs", "Subscriptions", "Net"},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Month.Identifier(),
			p.Income.String(),
			p.Costs.String(),
			p.Subscriptions.String(),
			p.Net.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// TrendMarkdown renders the historical monthly subscription totals.
func TrendMarkdown(points []fintrack.TrendPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Subscription Trend")

	table := md.TableSet{Header: []string{"Month", "Total"}}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{p.Month.Identifier(), p.Total.String()})
	}
	doc.Table(table)

	return doc.String()
}
