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

type nextCmd struct {
	date string
}

func (*nextCmd) Name() string     { return "next" }
func (*nextCmd) Synopsis() string { return "display upcoming subscription payments and cancel deadlines" }
func (*nextCmd) Usage() string {
	return `fin next [-d <date>]

  For every subscription, shows the next payment date relative to the given
  date, the monthly equivalent cost, and the last day to cancel before that
  payment.
`
}

func (c *nextCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", fintrack.Today().String(), "Reference date for the overview. See the user manual for supported date formats.")
}

func (c *nextCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := fintrack.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tracker, err := decodeTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SubscriptionsMarkdown(tracker.Subscriptions(), on))
	return subcommands.ExitSuccess
}
