package renderer

import (
	"bytes"

	"github.com/etnz/fintrack"
	md "github.com/nao1215/markdown"
)

// SubscriptionsMarkdown renders the due-date overview: for each subscription,
// its next payment and the last day a cancellation still avoids that charge.
func SubscriptionsMarkdown(subs []fintrack.Subscription, today fintrack.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Subscriptions")
	doc.PlainTextf("As of %s", today)

	if len(subs) == 0 {
		doc.PlainText("No subscriptions on file.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Name", "Amount", "Next Payment", "Cancel By", ""},
	}
	var monthly fintrack.Money
	for _, s := range subs {
		if !s.ActiveOn(today) {
			continue
		}
		cancelBy := s.CancelBy(today)
		note := ""
		if cancelBy.Before(today) {
			note = "too late for the next charge"
		}
		table.Rows = append(table.Rows, []string{
			s.Name,
			s.Amount.String(),
			s.NextPayment(today).String(),
			cancelBy.String(),
			note,
		})
		monthly = monthly.Add(s.MonthlyEquivalent())
	}
	doc.Table(table)
	doc.PlainTextf("Monthly equivalent: %s", md.Bold(monthly.String()))

	return doc.String()
}
