package fintrack

import (
	"errors"
	"math"
	"testing"
)

func baseScenario() InterestScenario {
	return InterestScenario{
		ID:                    "base",
		StartCapital:          1000,
		Contribution:          100,
		ContributionFrequency: EveryMonth,
		AnnualRate:            12,
		DurationMonths:        12,
		InterestFrequency:     EveryMonth,
	}
}

func TestSimulateBasics(t *testing.T) {
	timeline, err := baseScenario().Simulate(day("2025-01-01"))
	if err != nil {
		t.Fatal(err)
	}

	if len(timeline.Points) != 13 {
		t.Fatalf("timeline length = %d, want 13", len(timeline.Points))
	}

	first := timeline.Points[0]
	if first.Month != 0 || first.Balance != 1000 || first.Contribution != 0 || first.InterestEarned != 0 {
		t.Errorf("month 0 should be the untouched initial state, got %+v", first)
	}

	if timeline.TotalContribution != 1200 {
		t.Errorf("TotalContribution = %v, want 1200", timeline.TotalContribution)
	}

	// Compounding beats the plain sum of capital and contributions.
	if timeline.EndBalance <= 1000+1200 {
		t.Errorf("EndBalance = %v, expected more than %v", timeline.EndBalance, 1000+1200)
	}

	// The running totals on the last point agree with the summary.
	last := timeline.Points[len(timeline.Points)-1]
	if last.Balance != timeline.EndBalance || last.TotalContribution != timeline.TotalContribution {
		t.Errorf("summary disagrees with the last point: %+v vs %+v", timeline, last)
	}

	// Contributions accumulate monotonically, one per month.
	var sum float64
	for _, p := range timeline.Points {
		sum += p.Contribution
		if p.TotalContribution != sum {
			t.Errorf("month %d: TotalContribution = %v, want %v", p.Month, p.TotalContribution, sum)
		}
	}
}

func TestSimulateYearlyCadences(t *testing.T) {
	s := baseScenario()
	s.ContributionFrequency = EveryYear
	s.InterestFrequency = EveryYear
	s.DurationMonths = 24

	timeline, err := s.Simulate(day("2025-01-01"))
	if err != nil {
		t.Fatal(err)
	}

	// Yearly contributions land at months 1 and 13 only.
	for _, p := range timeline.Points[1:] {
		want := 0.0
		if p.Month == 1 || p.Month == 13 {
			want = 100
		}
		if p.Contribution != want {
			t.Errorf("month %d: contribution = %v, want %v", p.Month, p.Contribution, want)
		}
	}

	// Yearly interest lands at months 12 and 24 only.
	for _, p := range timeline.Points[1:] {
		if p.Month%12 == 0 && p.InterestEarned == 0 {
			t.Errorf("month %d: expected interest", p.Month)
		}
		if p.Month%12 != 0 && p.InterestEarned != 0 {
			t.Errorf("month %d: unexpected interest %v", p.Month, p.InterestEarned)
		}
	}

	// Year 1: 1000 + 100 contributed at month 1, 12% applied at month 12.
	wantYear1 := 1100 * 1.12
	if got := timeline.Points[12].Balance; math.Abs(got-wantYear1) > 1e-9 {
		t.Errorf("balance after year 1 = %v, want %v", got, wantYear1)
	}
}

func TestSimulateAdvancedMode(t *testing.T) {
	s := baseScenario()
	s.Advanced = true
	s.AnnualInflation = 2
	s.GainsTax = 25
	s.ContributionIncrease = 10
	s.DurationMonths = 24

	timeline, err := s.Simulate(day("2025-01-01"))
	if err != nil {
		t.Fatal(err)
	}

	// Inflation deflates the real balance below the nominal one.
	if timeline.RealEndBalance >= timeline.EndBalance {
		t.Errorf("RealEndBalance = %v, expected below EndBalance %v", timeline.RealEndBalance, timeline.EndBalance)
	}

	// The contribution grows by 10% at each year boundary (months 1, 13,
	// ...), compounding: the very first contribution is already grown.
	if got := timeline.Points[1].Contribution; math.Abs(got-110) > 1e-9 {
		t.Errorf("month 1 contribution = %v, want 110", got)
	}
	if got := timeline.Points[12].Contribution; math.Abs(got-110) > 1e-9 {
		t.Errorf("month 12 contribution = %v, want 110", got)
	}
	if got := timeline.Points[13].Contribution; math.Abs(got-121) > 1e-9 {
		t.Errorf("month 13 contribution = %v, want 121", got)
	}

	// Tax shaves each month's interest: first month gross is 1110 * 1%,
	// net is 75% of that.
	wantNet := 1110 * 0.01 * 0.75
	if got := timeline.Points[1].InterestEarned; math.Abs(got-wantNet) > 1e-9 {
		t.Errorf("month 1 interest = %v, want %v", got, wantNet)
	}
}

// Without advanced mode the tax rate is treated as zero even when set.
func TestSimulateTaxIgnoredWithoutAdvanced(t *testing.T) {
	s := baseScenario()
	s.GainsTax = 25

	timeline, err := s.Simulate(day("2025-01-01"))
	if err != nil {
		t.Fatal(err)
	}
	wantGross := 1100 * 0.01
	if got := timeline.Points[1].InterestEarned; math.Abs(got-wantGross) > 1e-9 {
		t.Errorf("month 1 interest = %v, want untaxed %v", got, wantGross)
	}
	if timeline.RealEndBalance != 0 {
		t.Errorf("RealEndBalance should stay unset without advanced mode, got %v", timeline.RealEndBalance)
	}
}

func TestSimulateDeterminism(t *testing.T) {
	s := baseScenario()
	s.Advanced = true
	s.AnnualInflation = 3

	a, err := s.Simulate(day("2025-01-01"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Simulate(day("2025-01-01"))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Errorf("point %d differs between identical runs", i)
		}
	}
}

func TestSimulateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InterestScenario)
	}{
		{"NaN capital", func(s *InterestScenario) { s.StartCapital = math.NaN() }},
		{"infinite rate", func(s *InterestScenario) { s.AnnualRate = Percent(math.Inf(1)) }},
		{"negative capital", func(s *InterestScenario) { s.StartCapital = -1 }},
		{"zero duration", func(s *InterestScenario) { s.DurationMonths = 0 }},
		{"tax above 100", func(s *InterestScenario) { s.GainsTax = 150 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := baseScenario()
			tt.mutate(&s)
			if _, err := s.Simulate(day("2025-01-01")); !errors.Is(err, ErrInvalidScenario) {
				t.Errorf("expected ErrInvalidScenario, got %v", err)
			}
		})
	}
}

func TestSimulateAttachesDates(t *testing.T) {
	timeline, err := baseScenario().Simulate(day("2025-01-31"))
	if err != nil {
		t.Fatal(err)
	}
	if got := timeline.Points[1].Date.String(); got != "2025-02-28" {
		t.Errorf("month 1 date = %s, want clamped 2025-02-28", got)
	}
	if got := timeline.Points[12].Date.String(); got != "2026-01-31" {
		t.Errorf("month 12 date = %s, want 2026-01-31", got)
	}
}
