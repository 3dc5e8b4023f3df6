// Package cmd implements the CLI application to manage a personal finance
// tracker. A main package registers Commands on a subcommands.Commander and
// executes the user-selected one.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var trackerFile = flag.String("tracker-file", "tracker.jsonl", "Path to the tracker records file (JSONL format)")

// Commands is the full list of subcommands, in display order.
var Commands = []subcommands.Command{
	&incomeCmd{},
	&costsCmd{},
	&nextCmd{},
	&trendCmd{},
	&cashflowCmd{},
	&interestCmd{},
	&splitCmd{},
	&shiftCmd{},
	&exportCmd{},
	&importCmd{},
	&fmtCmd{},
}

// decodeTracker loads the tracker records from the app tracker file.
func decodeTracker() (*fintrack.Tracker, error) {
	f, err := os.Open(*trackerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, tracker file does not exist, starting from an empty tracker instead")
		return fintrack.NewTracker(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fintrack.DecodeTracker(f)
}

// encodeTracker writes the tracker records back to the app tracker file.
func encodeTracker(t *fintrack.Tracker) error {
	f, err := os.Create(*trackerFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return fintrack.EncodeTracker(f, t)
}

// printMarkdown renders the markdown report for the terminal. When the
// terminal renderer is unavailable the raw markdown is still readable, so it
// is printed as-is.
func printMarkdown(markdown string) {
	out, err := glamour.RenderWithEnvironmentConfig(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}

// parseRange resolves the common -p/-s/-d range flags into a Range the way
// every report command reads them: an explicit start overrides the period.
func parseRange(period, start, end string) (fintrack.Range, error) {
	endDate, err := fintrack.ParseDate(end)
	if err != nil {
		return fintrack.Range{}, fmt.Errorf("invalid end date: %w", err)
	}
	if start != "" {
		startDate, err := fintrack.ParseDate(start)
		if err != nil {
			return fintrack.Range{}, fmt.Errorf("invalid start date: %w", err)
		}
		return fintrack.NewRange(startDate, endDate), nil
	}
	p, err := fintrack.ParsePeriod(period)
	if err != nil {
		return fintrack.Range{}, err
	}
	return p.Range(endDate), nil
}
