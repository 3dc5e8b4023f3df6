package fintrack

import (
	"errors"
	"testing"
)

func demoTracker(t *testing.T) *Tracker {
	t.Helper()
	tr := NewTracker()

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(tr.AddMember(Member{ID: "ana", Name: "Ana", Active: true}))
	must(tr.AddMember(Member{ID: "ben", Name: "Ben", Active: true}))
	must(tr.AddIncome(IncomeEntry{
		ID: "salary", Name: "Salary", Amount: EUR(2500),
		Rule: RecurrenceRule{Anchor: day("2025-01-25"), Pattern: MonthlyPattern},
	}))
	must(tr.AddCost(HouseholdCost{
		ID: "rent", Name: "Rent", Amount: EUR(900), Split: SplitEqual, IsShared: true,
		Rule: RecurrenceRule{Anchor: day("2025-01-01"), Pattern: MonthlyPattern},
	}))
	must(tr.AddSubscription(Subscription{
		ID: "music", Name: "Music", Amount: EUR(12),
		Start: day("2025-01-05"), Interval: BillMonthly, NoticePeriodDays: 14,
	}))
	must(tr.AddScenario(InterestScenario{
		ID: "savings", Name: "Savings", StartCapital: 1000, Contribution: 100,
		AnnualRate: 5, DurationMonths: 120,
	}))
	return tr
}

func TestTrackerRejectsDuplicateIDs(t *testing.T) {
	tr := demoTracker(t)
	err := tr.AddIncome(IncomeEntry{
		ID: "salary", Amount: EUR(1),
		Rule: RecurrenceRule{Anchor: day("2025-01-01")},
	})
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestTrackerRejectsInvalidRecords(t *testing.T) {
	tr := NewTracker()

	err := tr.AddIncome(IncomeEntry{
		ID: "bad", Amount: EUR(1),
		Rule: RecurrenceRule{Anchor: day("2025-01-01"), Pattern: CustomDays, IntervalDays: -3},
	})
	var ruleErr *InvalidRuleError
	if !errors.As(err, &ruleErr) {
		t.Errorf("expected *InvalidRuleError, got %v", err)
	}

	if err := tr.AddSubscription(Subscription{ID: "nostart"}); err == nil {
		t.Error("expected error for subscription without start date")
	}
	if err := tr.AddScenario(InterestScenario{ID: "noduration", StartCapital: 1}); !errors.Is(err, ErrInvalidScenario) {
		t.Errorf("expected ErrInvalidScenario, got %v", err)
	}
}

func TestTrackerOccurrences(t *testing.T) {
	tr := demoTracker(t)
	window := NewRange(day("2025-02-01"), day("2025-04-30"))

	incomes, err := tr.IncomeOccurrences(window)
	if err != nil {
		t.Fatal(err)
	}
	if len(incomes) != 3 {
		t.Fatalf("expected 3 income occurrences, got %d", len(incomes))
	}

	costs, err := tr.CostOccurrences(window)
	if err != nil {
		t.Fatal(err)
	}
	if len(costs) != 3 {
		t.Fatalf("expected 3 cost occurrences, got %d", len(costs))
	}
}

func TestTrackerCashFlow(t *testing.T) {
	tr := demoTracker(t)
	window := NewRange(day("2025-02-01"), day("2025-03-31"))

	points, err := tr.CashFlow(window)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 month buckets, got %d", len(points))
	}
	for _, p := range points {
		if !p.Income.Equal(EUR(2500)) {
			t.Errorf("%s income = %v, want %v", p.Month.Identifier(), p.Income, EUR(2500))
		}
		if !p.Costs.Equal(EUR(900)) {
			t.Errorf("%s costs = %v, want %v", p.Month.Identifier(), p.Costs, EUR(900))
		}
		if !p.Subscriptions.Equal(EUR(12)) {
			t.Errorf("%s subscriptions = %v, want %v", p.Month.Identifier(), p.Subscriptions, EUR(12))
		}
		if !p.Net.Equal(EUR(1588)) {
			t.Errorf("%s net = %v, want %v", p.Month.Identifier(), p.Net, EUR(1588))
		}
	}
}

func TestTrackerMemberShares(t *testing.T) {
	tr := demoTracker(t)
	window := NewRange(day("2025-02-01"), day("2025-03-31"))

	totals, err := tr.MemberShares(window)
	if err != nil {
		t.Fatal(err)
	}
	// Rent occurs twice in the window and splits equally between ana and ben.
	if len(totals) != 2 {
		t.Fatalf("expected 2 member totals, got %v", totals)
	}
	for _, total := range totals {
		if !total.Total.Equal(EUR(900)) {
			t.Errorf("%s = %v, want %v", total.MemberID, total.Total, EUR(900))
		}
	}
}

func TestTrackerScenarioLookup(t *testing.T) {
	tr := demoTracker(t)
	if _, err := tr.Scenario("savings"); err != nil {
		t.Errorf("Scenario(savings) error: %v", err)
	}
	if _, err := tr.Scenario("nope"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}
