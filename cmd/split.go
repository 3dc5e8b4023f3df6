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

type splitCmd struct {
	period string
	start  string
	date   string
}

func (*splitCmd) Name() string     { return "split" }
func (*splitCmd) Synopsis() string { return "display each member's share of household costs in a date range" }
func (*splitCmd) Usage() string {
	return `fin split [-p <period> | -s <start_date>] [-d <end_date>]

  Materializes every household cost in the range, splits each occurrence
  according to its split rule, and totals the shares per member.
`
}

func (c *splitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Predefined period for the report (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "0d", "The end date for the report (defaults to today).")
}

func (c *splitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	totals, err := tracker.MemberShares(window)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SplitMarkdown(totals))
	return subcommands.ExitSuccess
}

type shiftCmd struct {
	date     string
	from     string
	to       string
	rate     float64
	currency string
}

func (*shiftCmd) Name() string     { return "shift" }
func (*shiftCmd) Synopsis() string { return "compute the duration and earnings of a work shift" }
func (*shiftCmd) Usage() string {
	return `fin shift -from <HH:MM> -to <HH:MM> -rate <hourly_rate> [-d <date>] [-c <currency>]

  Computes the worked duration between the two clock times and the resulting
  pay. An end time before the start time means the shift runs past midnight
  into the next day. Equal start and end times are rejected.
`
}

func (c *shiftCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "The day the shift starts (defaults to today).")
	f.StringVar(&c.from, "from", "", "Shift start time, 24-hour HH:MM.")
	f.StringVar(&c.to, "to", "", "Shift end time, 24-hour HH:MM.")
	f.Float64Var(&c.rate, "rate", 0, "Hourly rate.")
	f.StringVar(&c.currency, "c", "EUR", "Currency of the hourly rate.")
}

func (c *shiftCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shift, err := fintrack.ComputeShift(c.date, c.from, c.to, c.rate, c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.ShiftMarkdown(shift))
	return subcommands.ExitSuccess
}
