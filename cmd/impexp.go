package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type exportCmd struct {
	kind   string
	output string
	period string
	start  string
	date   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export occurrences or member totals as CSV" }
func (*exportCmd) Usage() string {
	return `fin export [-kind income|costs|shares] [-o <file>] [-p <period> | -s <start_date>] [-d <end_date>]

  Writes the selected report for the range as CSV, to stdout or to a file,
  for use in spreadsheets.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "income", "What to export: income, costs or shares.")
	f.StringVar(&c.output, "o", "", "Write the CSV to this file instead of stdout.")
	f.StringVar(&c.period, "p", "month", "Predefined period for the export (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "0d", "The end date for the export (defaults to today).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	switch c.kind {
	case "income":
		occurrences, err := tracker.IncomeOccurrences(window)
		if err == nil {
			err = fintrack.ExportOccurrencesCSV(out, occurrences)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	case "costs":
		occurrences, err := tracker.CostOccurrences(window)
		if err == nil {
			err = fintrack.ExportOccurrencesCSV(out, occurrences)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	case "shares":
		totals, err := tracker.MemberShares(window)
		if err == nil {
			err = fintrack.ExportMemberTotalsCSV(out, totals)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown export kind %q, want income, costs or shares\n", c.kind)
		return subcommands.ExitUsageError
	}

	return subcommands.ExitSuccess
}

type importCmd struct {
	file     string
	records  string
	idField  string
	name     string
	amount   string
	start    string
	currency string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import subscriptions from another app's JSON backup" }
func (*importCmd) Usage() string {
	return `fin import -file <backup.json> [-records <jsonpath>] [field flags]

  Extracts subscription records from a foreign JSON backup and adds them to
  the tracker. The -records JSONPath selects the list of records; the field
  flags name the keys inside each record. Imported subscriptions default to
  a monthly billing cycle.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Backup file to import from.")
	f.StringVar(&c.records, "records", "$.subscriptions[*]", "JSONPath selecting the subscription records.")
	f.StringVar(&c.idField, "id-field", "id", "Key of the record ID inside each record.")
	f.StringVar(&c.name, "name-field", "name", "Key of the subscription name inside each record.")
	f.StringVar(&c.amount, "amount-field", "amount", "Key of the amount inside each record.")
	f.StringVar(&c.start, "start-field", "start", "Key of the start date inside each record.")
	f.StringVar(&c.currency, "c", "EUR", "Currency to assign to the imported amounts.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "missing -file")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	tracker, err := decodeTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	n, err := tracker.ImportSubscriptions(in, fintrack.ImportSpec{
		Records:     c.records,
		IDField:     c.idField,
		NameField:   c.name,
		AmountField: c.amount,
		StartField:  c.start,
		Currency:    c.currency,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := encodeTracker(tracker); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	log.Printf("imported %d subscriptions from %q", n, c.file)
	return subcommands.ExitSuccess
}
