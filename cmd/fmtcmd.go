package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the tracker file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fin fmt

  Validates and formats the tracker file. This command reads all records,
  validates them, and writes them back in a canonical JSONL format grouped
  by kind: members, incomes, costs, subscriptions, scenarios.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, err := decodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load tracker: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := encodeTracker(tracker); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted tracker: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %q.\n", *trackerFile)
	return subcommands.ExitSuccess
}
