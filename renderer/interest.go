package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fintrack"
	md "github.com/nao1215/markdown"
)

// money formats a float amount for the interest report. The simulator works
// in plain floats, so the report rounds for display only.
func money(v float64) string { return fmt.Sprintf("%.2f", v) }

// InterestMarkdown renders a simulated timeline: the summary first, then one
// row per year boundary plus the final month, to keep long horizons readable.
func InterestMarkdown(scenario fintrack.InterestScenario, timeline *fintrack.Timeline) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	name := scenario.Name
	if name == "" {
		name = scenario.ID
	}
	doc.H1("Interest Projection")
	doc.PlainTextf("%s: %d months at %s", name, scenario.DurationMonths, scenario.AnnualRate)

	summary := md.TableSet{
		Header: []string{"End Balance", "Total Contributions", "Total Interest"},
		Rows: [][]string{{
			md.Bold(money(timeline.EndBalance)),
			money(timeline.TotalContribution),
			money(timeline.TotalInterest),
		}},
	}
	if scenario.Advanced {
		summary.Header = append(summary.Header, "Real End Balance")
		summary.Rows[0] = append(summary.Rows[0], money(timeline.RealEndBalance))
	}
	doc.Table(summary)

	doc.H2("Timeline")
	table := md.TableSet{
		Header: []string{"Month", "Date", "Contribution", "Interest", "Balance"},
	}
	last := len(timeline.Points) - 1
	for i, p := range timeline.Points {
		if i != 0 && i != last && p.Month%12 != 0 {
			continue
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", p.Month),
			p.Date.String(),
			money(p.TotalContribution),
			money(p.TotalInterest),
			money(p.Balance),
		})
	}
	doc.Table(table)

	return doc.String()
}
