package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/fintrack"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func date(s string) fintrack.Date { return fintrack.MustParse(s) }

// headings parses the rendered markdown and returns its heading texts, so
// these tests check structure rather than exact byte layout.
func headings(t *testing.T, source string) []string {
	t.Helper()
	src := []byte(source)
	root := goldmark.DefaultParser().Parse(text.NewReader(src))

	var out []string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			var b strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					b.Write(txt.Segment.Value(src))
				}
			}
			out = append(out, b.String())
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestOccurrencesMarkdown(t *testing.T) {
	window := fintrack.NewRange(date("2025-03-01"), date("2025-05-31"))
	occurrences := []fintrack.Occurrence{
		{SourceID: "salary", Label: "Salary", Date: date("2025-04-25"), Amount: fintrack.M(2500, "EUR")},
		{SourceID: "salary", Label: "Salary", Date: date("2025-03-25"), Amount: fintrack.M(2500, "EUR")},
	}

	got := OccurrencesMarkdown("Income", window, occurrences)

	if h := headings(t, got); len(h) != 1 || h[0] != "Income" {
		t.Errorf("headings = %v", h)
	}
	for _, want := range []string{"2025-04-25", "2025-03-25", "Salary", "Total"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestOccurrencesMarkdownEmpty(t *testing.T) {
	window := fintrack.NewRange(date("2025-03-01"), date("2025-03-31"))
	got := OccurrencesMarkdown("Income", window, nil)
	if !strings.Contains(got, "Nothing in this range.") {
		t.Errorf("missing empty notice in:\n%s", got)
	}
}

func TestSubscriptionsMarkdown(t *testing.T) {
	subs := []fintrack.Subscription{
		{ID: "music", Name: "Music", Amount: fintrack.M(12, "EUR"), Start: date("2025-01-01"), Interval: fintrack.BillMonthly, NoticePeriodDays: 30},
	}
	got := SubscriptionsMarkdown(subs, date("2025-03-10"))

	for _, want := range []string{"Music", "2025-04-01", "too late for the next charge"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestInterestMarkdown(t *testing.T) {
	scenario := fintrack.InterestScenario{
		ID: "savings", StartCapital: 1000, Contribution: 100,
		ContributionFrequency: fintrack.EveryMonth,
		AnnualRate:            12, DurationMonths: 24,
		InterestFrequency: fintrack.EveryMonth,
	}
	timeline, err := scenario.Simulate(date("2025-01-01"))
	if err != nil {
		t.Fatal(err)
	}

	got := InterestMarkdown(scenario, timeline)
	if h := headings(t, got); len(h) != 2 || h[0] != "Interest Projection" || h[1] != "Timeline" {
		t.Errorf("headings = %v", h)
	}
	// Long horizons collapse to year boundaries: months 0, 12 and 24 only,
	// identified here by their attached dates.
	for _, want := range []string{"2025-01-01", "2026-01-01", "2027-01-01"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing row for %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "2026-02-01") {
		t.Errorf("unexpected mid-year row in:\n%s", got)
	}
}

func TestSplitMarkdown(t *testing.T) {
	totals := []fintrack.MemberTotal{
		{MemberID: "ana", Name: "Ana", Total: fintrack.M(180, "EUR")},
		{MemberID: "ben", Name: "Ben", Total: fintrack.M(100, "EUR")},
	}
	got := SplitMarkdown(totals)
	for _, want := range []string{"Ana", "Ben", "Total"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestShiftMarkdown(t *testing.T) {
	shift, err := fintrack.ComputeShift("2025-03-10", "22:00", "02:00", 15, "EUR")
	if err != nil {
		t.Fatal(err)
	}
	got := ShiftMarkdown(shift)
	if !strings.Contains(got, "crosses midnight") {
		t.Errorf("missing overnight notice in:\n%s", got)
	}
}
