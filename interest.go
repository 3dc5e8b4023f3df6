package fintrack

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidScenario marks a scenario whose numeric fields are non-finite or
// out of range. It is raised before the simulation starts, so a timeline is
// never polluted with NaN.
var ErrInvalidScenario = errors.New("invalid interest scenario")

// Frequency is the cadence of contributions or interest compounding.
type Frequency int

const (
	EveryMonth Frequency = iota
	EveryYear
)

func (f Frequency) String() string {
	if f == EveryYear {
		return "yearly"
	}
	return "monthly"
}

func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "month", "":
		return EveryMonth, nil
	case "yearly", "year":
		return EveryYear, nil
	default:
		return EveryMonth, fmt.Errorf("unknown frequency %q", s)
	}
}

// InterestScenario describes a compound-interest projection. Advanced fields
// (inflation, gains tax, contribution growth) only apply when Advanced is set.
type InterestScenario struct {
	ID                    string
	Name                  string
	StartCapital          float64
	Contribution          float64 // recurring contribution amount
	ContributionFrequency Frequency
	AnnualRate            Percent
	DurationMonths        int
	InterestFrequency     Frequency
	Advanced              bool
	AnnualInflation       Percent
	GainsTax              Percent
	ContributionIncrease  Percent // annual growth of the contribution amount
}

// TimelinePoint is one month of the simulated timeline. Month 0 is the
// initial state before any contribution or interest.
type TimelinePoint struct {
	Month             int
	Date              Date
	Contribution      float64
	InterestEarned    float64
	Balance           float64
	TotalContribution float64
	TotalInterest     float64
	RealBalance       float64 // inflation-deflated, advanced mode only
}

// Timeline is the simulation result: one point per elapsed month, plus the
// summary of its final state.
type Timeline struct {
	Points            []TimelinePoint
	EndBalance        float64
	TotalContribution float64
	TotalInterest     float64
	RealEndBalance    float64 // advanced mode only
}

func (s InterestScenario) validate() error {
	for name, v := range map[string]float64{
		"start capital":         s.StartCapital,
		"contribution":          s.Contribution,
		"annual rate":           float64(s.AnnualRate),
		"annual inflation":      float64(s.AnnualInflation),
		"gains tax":             float64(s.GainsTax),
		"contribution increase": float64(s.ContributionIncrease),
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidScenario, name)
		}
	}
	if s.StartCapital < 0 {
		return fmt.Errorf("%w: start capital is negative", ErrInvalidScenario)
	}
	if s.DurationMonths <= 0 {
		return fmt.Errorf("%w: duration must be at least one month, got %d", ErrInvalidScenario, s.DurationMonths)
	}
	if s.GainsTax < 0 || s.GainsTax > 100 {
		return fmt.Errorf("%w: gains tax %.2f%% out of [0,100]", ErrInvalidScenario, float64(s.GainsTax))
	}
	return nil
}

// Simulate runs the scenario month by month and returns its timeline. The
// start date only attaches calendar dates to the month indices; it has no
// influence on the arithmetic, so identical inputs always produce identical
// timelines.
func (s InterestScenario) Simulate(start Date) (*Timeline, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	balance := s.StartCapital
	contribution := s.Contribution
	var totalContribution, totalInterest float64

	taxRate := 0.0
	if s.Advanced {
		taxRate = s.GainsTax.Rate()
	}

	points := make([]TimelinePoint, 0, s.DurationMonths+1)
	point := TimelinePoint{Month: 0, Date: start, Balance: balance}
	if s.Advanced {
		point.RealBalance = balance
	}
	points = append(points, point)

	for month := 1; month <= s.DurationMonths; month++ {
		yearBoundary := (month-1)%12 == 0

		// The contribution amount itself compounds at every year boundary,
		// the first month included.
		if yearBoundary && s.Advanced && s.ContributionIncrease != 0 {
			contribution *= 1 + s.ContributionIncrease.Rate()
		}

		contributed := 0.0
		if s.ContributionFrequency == EveryMonth || yearBoundary {
			contributed = contribution
			balance += contributed
			totalContribution += contributed
		}

		gross := 0.0
		switch s.InterestFrequency {
		case EveryMonth:
			gross = balance * s.AnnualRate.Rate() / 12
		case EveryYear:
			if month%12 == 0 {
				gross = balance * s.AnnualRate.Rate()
			}
		}
		net := gross * (1 - taxRate)
		balance += net
		totalInterest += net

		point := TimelinePoint{
			Month:             month,
			Date:              start.AddMonths(month),
			Contribution:      contributed,
			InterestEarned:    net,
			Balance:           balance,
			TotalContribution: totalContribution,
			TotalInterest:     totalInterest,
		}
		if s.Advanced {
			point.RealBalance = balance / math.Pow(1+s.AnnualInflation.Rate(), float64(month)/12)
		}
		points = append(points, point)
	}

	t := &Timeline{
		Points:            points,
		EndBalance:        balance,
		TotalContribution: totalContribution,
		TotalInterest:     totalInterest,
	}
	if s.Advanced {
		t.RealEndBalance = points[len(points)-1].RealBalance
	}
	return t, nil
}
