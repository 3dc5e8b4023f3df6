package fintrack

import (
	"testing"
)

var household = []Member{
	{ID: "ana", Name: "Ana", Active: true},
	{ID: "ben", Name: "Ben", Active: true},
	{ID: "caro", Name: "Caro", Active: true},
	{ID: "dora", Name: "Dora", Active: false},
	{ID: "landlord", Name: "Landlord", Active: true, External: true},
}

func TestSplitEqual(t *testing.T) {
	cost := HouseholdCost{ID: "groceries", Amount: EUR(300), Split: SplitEqual, IsShared: true}

	shares := SplitCost(cost, household[:4]) // ana, ben, caro active; dora not
	if len(shares) != 3 {
		t.Fatalf("expected 3 shares, got %d", len(shares))
	}
	for _, id := range []string{"ana", "ben", "caro"} {
		if !shares[id].Equal(EUR(100)) {
			t.Errorf("share[%s] = %v, want %v", id, shares[id], EUR(100))
		}
	}
	if _, ok := shares["dora"]; ok {
		t.Error("inactive member must not receive a share")
	}

	// Conservation: the shares sum back to the full amount.
	var sum Money
	for _, s := range shares {
		sum = sum.Add(s)
	}
	if !sum.Equal(cost.Amount) {
		t.Errorf("shares sum to %v, want %v", sum, cost.Amount)
	}
}

func TestSplitFixedAmount(t *testing.T) {
	cost := HouseholdCost{
		ID: "internet", Amount: EUR(60), Split: SplitFixedAmount, IsShared: true,
		Shares: []CostShare{
			{MemberID: "ana", ShareAmount: EUR(40)},
			{MemberID: "ben", ShareAmount: EUR(20)},
		},
	}

	shares := SplitCost(cost, household)
	if !shares["ana"].Equal(EUR(40)) || !shares["ben"].Equal(EUR(20)) {
		t.Errorf("shares = %v", shares)
	}
	// No implicit equal fallback: caro has no row, caro gets nothing.
	if _, ok := shares["caro"]; ok {
		t.Error("member without an explicit row must receive nothing on a fixed split")
	}
}

func TestSplitWeighted(t *testing.T) {
	cost := HouseholdCost{
		ID: "rent", Amount: EUR(1200), Split: SplitWeighted, IsShared: true,
		Shares: []CostShare{
			{MemberID: "ana", SharePercent: 50},
			{MemberID: "ben", SharePercent: 30},
			{MemberID: "dora", SharePercent: 20}, // inactive, ignored
		},
	}

	shares := SplitCost(cost, household)
	if !shares["ana"].Equal(EUR(600)) {
		t.Errorf("ana = %v, want %v", shares["ana"], EUR(600))
	}
	if !shares["ben"].Equal(EUR(360)) {
		t.Errorf("ben = %v, want %v", shares["ben"], EUR(360))
	}
	if _, ok := shares["dora"]; ok {
		t.Error("inactive member must not receive a weighted share")
	}
}

func TestSplitNotShared(t *testing.T) {
	cost := HouseholdCost{ID: "hobby", Amount: EUR(80), IsShared: false, ResponsibleMemberID: "ben"}

	shares := SplitCost(cost, household)
	if len(shares) != 1 || !shares["ben"].Equal(EUR(80)) {
		t.Errorf("shares = %v, want everything on ben", shares)
	}
}

func TestAggregateShares(t *testing.T) {
	costs := []HouseholdCost{
		{ID: "groceries", Amount: EUR(300), Split: SplitEqual, IsShared: true},
		{ID: "hobby", Amount: EUR(80), IsShared: false, ResponsibleMemberID: "ben"},
		// Paid by the external landlord: excluded entirely.
		{ID: "repair", Amount: EUR(500), Split: SplitEqual, IsShared: true, PayerID: "landlord"},
	}

	totals := AggregateShares(costs, household)
	// The external landlord is out of the pool, so the equal split of
	// groceries covers ana, ben and caro only.
	if len(totals) != 3 {
		t.Fatalf("expected 3 member totals, got %d: %v", len(totals), totals)
	}

	// Sorted largest first, so ben (100+80) leads.
	if totals[0].MemberID != "ben" || !totals[0].Total.Equal(EUR(180)) {
		t.Errorf("totals[0] = %+v, want ben at 180", totals[0])
	}
	for _, total := range totals {
		if total.Total.IsZero() {
			t.Errorf("zero totals must be filtered out, got %+v", total)
		}
	}
}

func TestAggregateSharesDropsZeroTotals(t *testing.T) {
	costs := []HouseholdCost{
		{
			ID: "rent", Amount: EUR(1000), Split: SplitWeighted, IsShared: true,
			Shares: []CostShare{{MemberID: "ana", SharePercent: 100}},
		},
	}
	totals := AggregateShares(costs, household)
	if len(totals) != 1 || totals[0].MemberID != "ana" {
		t.Fatalf("expected only ana, got %v", totals)
	}
	if !totals[0].Total.Equal(EUR(1000)) {
		t.Errorf("ana total = %v, want %v", totals[0].Total, EUR(1000))
	}
}
