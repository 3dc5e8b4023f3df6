package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type incomeCmd struct {
	period string
	start  string
	date   string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "list materialized income occurrences in a date range" }
func (*incomeCmd) Usage() string {
	return `fin income [-p <period> | -s <start_date>] [-d <end_date>]

  Expands every recurring income rule into its concrete pay dates within the
  range and lists them, newest first.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Predefined period for the listing (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "0d", "The end date for the listing (defaults to today).")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := parseRange(c.period, c.start, c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	tracker, err := decodeTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	occurrences, err := tracker.IncomeOccurrences(window)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OccurrencesMarkdown("Income", window, occurrences))
	return subcommands.ExitSuccess
}

type costsCmd struct {
	period string
	start  string
	date   string
}

func (*costsCmd) Name() string     { return "costs" }
func (*costsCmd) Synopsis() string { return "list materialized household cost occurrences in a date range" }
func (*costsCmd) Usage() string {
	return `fin costs [-p <period> | -s <start_date>] [-d <end_date>]

  Expands every recurring household cost into its concrete due dates within
  the range and lists them, newest first.
`
}

func (c *costsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Predefined period for the listing (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "0d", "The end date for the listing (defaults to today).")
}

func (c *costsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := parseRange(c.period, c.start, c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	tracker, err := decodeTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	occurrences, err := tracker.CostOccurrences(window)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OccurrencesMarkdown("Costs", window, occurrences))
	return subcommands.ExitSuccess
}

type cashflowCmd struct {
	period string
	start  string
	date   string
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display a month-by-month cash flow summary" }
func (*cashflowCmd) Usage() string {
	return `fin cashflow [-p <period> | -s <start_date>] [-d <end_date>]

  Buckets income, household costs and subscription spend per month over the
  range and shows the net for each month.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "year", "Predefined period for the summary (month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "0d", "The end date for the summary (defaults to today).")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := parseRange(c.period, c.start, c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	tracker, err := decodeTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	points, err := tracker.CashFlow(window)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CashFlowMarkdown(points))
	return subcommands.ExitSuccess
}

type trendCmd struct {
	period string
	start  string
	date   string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display monthly subscription spend over a date range" }
func (*trendCmd) Usage() string {
	return `fin trend [-p <period> | -s <start_date>] [-d <end_date>]

  Sums the subscriptions billed in each month of the range. A subscription
  only counts in the months its billing cycle is active.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "year", "Predefined period for the trend (month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "0d", "The end date for the trend (defaults to today).")
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := parseRange(c.period, c.start, c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	tracker, err := decodeTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	points := fintrack.SubscriptionTrend(tracker.Subscriptions(), window)
	printMarkdown(renderer.TrendMarkdown(points))
	return subcommands.ExitSuccess
}
