package fintrack

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// IncomeEntry is a stored income record: a one-off or recurring amount.
type IncomeEntry struct {
	ID     string
	Name   string
	Amount Money
	Rule   RecurrenceRule
}

// Source projects the entry into the materializer's borrowed view.
func (e IncomeEntry) Source() RecurringSource {
	return RecurringSource{ID: e.ID, Label: e.Name, Amount: e.Amount, Rule: e.Rule}
}

// Tracker is the in-memory aggregate of all stored records. It is the
// explicit handle threaded through commands in place of any process-wide
// state; the computations it exposes only borrow the records and allocate
// fresh outputs per call.
type Tracker struct {
	members       []Member
	incomes       []IncomeEntry
	costs         []HouseholdCost
	subscriptions []Subscription
	scenarios     []InterestScenario

	ids map[string]string // record ID -> kind, to reject duplicates
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{ids: make(map[string]string)}
}

func (t *Tracker) register(id, kind string) error {
	if id == "" {
		return fmt.Errorf("%s record without id", kind)
	}
	if prev, ok := t.ids[id]; ok {
		return fmt.Errorf("duplicate id %q: already used by a %s record", id, prev)
	}
	t.ids[id] = kind
	return nil
}

func (t *Tracker) AddMember(m Member) error {
	if err := t.register(m.ID, "member"); err != nil {
		return err
	}
	t.members = append(t.members, m)
	return nil
}

func (t *Tracker) AddIncome(e IncomeEntry) error {
	if err := e.Rule.validate(e.ID); err != nil {
		return err
	}
	if err := t.register(e.ID, "income"); err != nil {
		return err
	}
	t.incomes = append(t.incomes, e)
	return nil
}

func (t *Tracker) AddCost(c HouseholdCost) error {
	if err := c.Rule.validate(c.ID); err != nil {
		return err
	}
	if err := t.register(c.ID, "cost"); err != nil {
		return err
	}
	t.costs = append(t.costs, c)
	return nil
}

func (t *Tracker) AddSubscription(s Subscription) error {
	if s.Start.IsZero() {
		return fmt.Errorf("subscription %q without start date", s.ID)
	}
	if s.Interval == BillCustomMonths && s.CustomIntervalMonths <= 0 {
		return fmt.Errorf("subscription %q: custom interval must be positive, got %d", s.ID, s.CustomIntervalMonths)
	}
	if err := t.register(s.ID, "subscription"); err != nil {
		return err
	}
	t.subscriptions = append(t.subscriptions, s)
	return nil
}

func (t *Tracker) AddScenario(s InterestScenario) error {
	if err := s.validate(); err != nil {
		return err
	}
	if err := t.register(s.ID, "scenario"); err != nil {
		return err
	}
	t.scenarios = append(t.scenarios, s)
	return nil
}

// Members returns all member records.
func (t *Tracker) Members() []Member { return slices.Clone(t.members) }

// Subscriptions returns all subscription records sorted by name.
func (t *Tracker) Subscriptions() []Subscription {
	subs := slices.Clone(t.subscriptions)
	slices.SortFunc(subs, func(a, b Subscription) int { return strings.Compare(a.Name, b.Name) })
	return subs
}

// Costs returns all household cost records.
func (t *Tracker) Costs() []HouseholdCost { return slices.Clone(t.costs) }

// AllIncomes iterates over income records in insertion order.
func (t *Tracker) AllIncomes() iter.Seq[IncomeEntry] {
	return func(yield func(IncomeEntry) bool) {
		for _, e := range t.incomes {
			if !yield(e) {
				return
			}
		}
	}
}

// Scenario returns the scenario with the given id.
func (t *Tracker) Scenario(id string) (InterestScenario, error) {
	for _, s := range t.scenarios {
		if s.ID == id {
			return s, nil
		}
	}
	return InterestScenario{}, fmt.Errorf("unknown scenario %q", id)
}

// Scenarios returns all stored scenarios.
func (t *Tracker) Scenarios() []InterestScenario { return slices.Clone(t.scenarios) }

// IncomeOccurrences materializes every income rule over the window, newest
// first.
func (t *Tracker) IncomeOccurrences(window Range) ([]Occurrence, error) {
	sources := make([]RecurringSource, 0, len(t.incomes))
	for _, e := range t.incomes {
		sources = append(sources, e.Source())
	}
	return Materialize(sources, window)
}

// CostOccurrences materializes every household cost rule over the window,
// newest first.
func (t *Tracker) CostOccurrences(window Range) ([]Occurrence, error) {
	sources := make([]RecurringSource, 0, len(t.costs))
	for _, c := range t.costs {
		sources = append(sources, c.Source())
	}
	return Materialize(sources, window)
}

// MemberShares materializes every cost rule over the window and aggregates
// the resulting per-member shares: each occurrence is split under its cost's
// split type, then summed per member.
func (t *Tracker) MemberShares(window Range) ([]MemberTotal, error) {
	occurrences, err := t.CostOccurrences(window)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]HouseholdCost, len(t.costs))
	for _, c := range t.costs {
		byID[c.ID] = c
	}
	materialized := make([]HouseholdCost, 0, len(occurrences))
	for _, occ := range occurrences {
		cost := byID[occ.SourceID]
		cost.Amount = occ.Amount
		materialized = append(materialized, cost)
	}
	return AggregateShares(materialized, t.members), nil
}

// CashFlowPoint is one month bucket of the cash-flow view: materialized
// income against recurring costs and subscription expenses.
type CashFlowPoint struct {
	Month         Range
	Income        Money
	Costs         Money
	Subscriptions Money
	Net           Money
}

// CashFlow aggregates income and cost occurrences plus subscription expenses
// into monthly buckets over the window.
func (t *Tracker) CashFlow(window Range) ([]CashFlowPoint, error) {
	incomes, err := t.IncomeOccurrences(window)
	if err != nil {
		return nil, err
	}
	costs, err := t.CostOccurrences(window)
	if err != nil {
		return nil, err
	}
	trend := SubscriptionTrend(t.subscriptions, window)

	var points []CashFlowPoint
	i := 0
	for month := range window.Months() {
		point := CashFlowPoint{Month: month}
		for _, occ := range incomes {
			if month.Contains(occ.Date) {
				point.Income = point.Income.Add(occ.Amount)
			}
		}
		for _, occ := range costs {
			if month.Contains(occ.Date) {
				point.Costs = point.Costs.Add(occ.Amount)
			}
		}
		if i < len(trend) {
			point.Subscriptions = trend[i].Total
		}
		point.Net = point.Income.Sub(point.Costs).Sub(point.Subscriptions)
		points = append(points, point)
		i++
	}
	return points, nil
}
