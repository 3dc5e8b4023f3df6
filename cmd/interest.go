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

type interestCmd struct {
	id    string
	start string

	// inline scenario, used when no -id is given.
	capital      float64
	contribution float64
	contribFreq  string
	rate         float64
	months       int
	interestFreq string
	advanced     bool
	inflation    float64
	tax          float64
	growth       float64
}

func (*interestCmd) Name() string     { return "interest" }
func (*interestCmd) Synopsis() string { return "simulate compound interest growth month by month" }
func (*interestCmd) Usage() string {
	return `fin interest [-id <scenario>] [-d <start_date>] [simulation flags]

  Simulates a savings scenario and prints its yearly balances. With -id the
  scenario is read from the tracker file; otherwise the simulation flags
  describe a one-off scenario.
`
}

func (c *interestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of a saved scenario to simulate. Overrides the simulation flags.")
	f.StringVar(&c.start, "d", fintrack.Today().String(), "Start date of the simulation.")
	f.Float64Var(&c.capital, "capital", 0, "Starting capital.")
	f.Float64Var(&c.contribution, "contribution", 0, "Recurring contribution amount.")
	f.StringVar(&c.contribFreq, "contribution-freq", "monthly", "Contribution cadence (monthly, yearly).")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in percent.")
	f.IntVar(&c.months, "months", 120, "Duration of the simulation in months.")
	f.StringVar(&c.interestFreq, "interest-freq", "yearly", "Interest crediting cadence (monthly, yearly).")
	f.BoolVar(&c.advanced, "advanced", false, "Enable inflation, tax and contribution growth.")
	f.Float64Var(&c.inflation, "inflation", 0, "Annual inflation in percent (advanced mode).")
	f.Float64Var(&c.tax, "tax", 0, "Tax on interest gains in percent (advanced mode).")
	f.Float64Var(&c.growth, "growth", 0, "Annual contribution increase in percent (advanced mode).")
}

func (c *interestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := fintrack.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}

	scenario, status := c.scenario()
	if status != subcommands.ExitSuccess {
		return status
	}

	timeline, err := scenario.Simulate(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.InterestMarkdown(scenario, timeline))
	return subcommands.ExitSuccess
}

// scenario resolves the saved or inline scenario to simulate.
func (c *interestCmd) scenario() (fintrack.InterestScenario, subcommands.ExitStatus) {
	if c.id != "" {
		tracker, err := decodeTracker()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return fintrack.InterestScenario{}, subcommands.ExitFailure
		}
		scenario, err := tracker.Scenario(c.id)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return fintrack.InterestScenario{}, subcommands.ExitUsageError
		}
		return scenario, subcommands.ExitSuccess
	}

	contribFreq, err := fintrack.ParseFrequency(c.contribFreq)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fintrack.InterestScenario{}, subcommands.ExitUsageError
	}
	interestFreq, err := fintrack.ParseFrequency(c.interestFreq)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fintrack.InterestScenario{}, subcommands.ExitUsageError
	}

	return fintrack.InterestScenario{
		ID:                    "adhoc",
		Name:                  "Ad-hoc simulation",
		StartCapital:          c.capital,
		Contribution:          c.contribution,
		ContributionFrequency: contribFreq,
		AnnualRate:            fintrack.Percent(c.rate),
		DurationMonths:        c.months,
		InterestFrequency:     interestFreq,
		Advanced:              c.advanced,
		AnnualInflation:       fintrack.Percent(c.inflation),
		GainsTax:              fintrack.Percent(c.tax),
		ContributionIncrease:  fintrack.Percent(c.growth),
	}, subcommands.ExitSuccess
}
