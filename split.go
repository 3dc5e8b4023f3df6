package fintrack

import (
	"fmt"
	"slices"
	"strings"
)

// SplitType is the rule governing how a shared cost is divided among
// household members.
type SplitType int

const (
	// SplitEqual divides the amount evenly across all active members.
	SplitEqual SplitType = iota
	// SplitWeighted assigns each member its explicit percentage share;
	// members without a share row receive nothing.
	SplitWeighted
	// SplitFixedAmount assigns each member its explicit fixed share; members
	// without a share row receive nothing. A fixed split is meant to be
	// fully explicit, so there is no equal fallback.
	SplitFixedAmount
)

func (t SplitType) String() string {
	switch t {
	case SplitEqual:
		return "equal"
	case SplitWeighted:
		return "weighted"
	case SplitFixedAmount:
		return "fixed_amount"
	default:
		return "unknown"
	}
}

func ParseSplitType(s string) (SplitType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equal", "":
		return SplitEqual, nil
	case "weighted", "percentage":
		return SplitWeighted, nil
	case "fixed_amount", "fixed":
		return SplitFixedAmount, nil
	default:
		return SplitEqual, fmt.Errorf("unknown split type %q", s)
	}
}

// Member is a household member record.
type Member struct {
	ID     string
	Name   string
	Active bool
	// External marks a payer outside the member pool; costs it pays are
	// excluded from per-member totals entirely.
	External bool
}

// CostShare is an explicit share row attached to a cost, interpreted under
// the cost's split type.
type CostShare struct {
	MemberID     string
	SharePercent Percent // weighted splits
	ShareAmount  Money   // fixed_amount splits
}

// HouseholdCost is a stored shared-cost record.
type HouseholdCost struct {
	ID     string
	Name   string
	Amount Money
	Rule   RecurrenceRule
	Split  SplitType
	Shares []CostShare
	// IsShared false attributes the whole amount to ResponsibleMemberID,
	// bypassing the split engine.
	IsShared            bool
	ResponsibleMemberID string
	PayerID             string
}

// Source projects the cost into the materializer's borrowed view.
func (c HouseholdCost) Source() RecurringSource {
	return RecurringSource{ID: c.ID, Label: c.Name, Amount: c.Amount, Rule: c.Rule}
}

// SplitCost divides a single cost among the given members and returns the
// share per member ID. Inactive members never receive a share and never
// count in the equal divisor.
func SplitCost(cost HouseholdCost, members []Member) map[string]Money {
	shares := make(map[string]Money)

	if !cost.IsShared {
		if cost.ResponsibleMemberID != "" {
			shares[cost.ResponsibleMemberID] = cost.Amount
		}
		return shares
	}

	// External payers sit outside the member pool: they neither receive
	// shares nor count in the equal divisor.
	active := make(map[string]bool, len(members))
	for _, m := range members {
		if m.Active && !m.External {
			active[m.ID] = true
		}
	}

	switch cost.Split {
	case SplitEqual:
		if len(active) == 0 {
			return shares
		}
		each := cost.Amount.DivInt(len(active))
		for id := range active {
			shares[id] = each
		}
	case SplitWeighted:
		for _, row := range cost.Shares {
			if !active[row.MemberID] {
				continue
			}
			shares[row.MemberID] = cost.Amount.MulFloat(row.SharePercent.Rate())
		}
	case SplitFixedAmount:
		for _, row := range cost.Shares {
			if !active[row.MemberID] {
				continue
			}
			shares[row.MemberID] = shares[row.MemberID].Add(row.ShareAmount)
		}
	}
	return shares
}

// MemberTotal is one member's aggregate share over a set of costs.
type MemberTotal struct {
	MemberID string
	Name     string
	Total    Money
}

// AggregateShares sums every member's share over the given costs, drops
// members whose total is zero, and returns the rest sorted by total,
// largest first. Costs paid by an external payer do not contribute.
func AggregateShares(costs []HouseholdCost, members []Member) []MemberTotal {
	external := make(map[string]bool)
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
		if m.External {
			external[m.ID] = true
		}
	}

	totals := make(map[string]Money)
	for _, cost := range costs {
		if cost.PayerID != "" && external[cost.PayerID] {
			continue
		}
		for id, share := range SplitCost(cost, members) {
			totals[id] = totals[id].Add(share)
		}
	}

	var out []MemberTotal
	for id, total := range totals {
		if total.IsZero() {
			continue
		}
		out = append(out, MemberTotal{MemberID: id, Name: names[id], Total: total})
	}
	slices.SortFunc(out, func(a, b MemberTotal) int {
		if a.Total.GreaterThan(b.Total) {
			return -1
		}
		if b.Total.GreaterThan(a.Total) {
			return +1
		}
		return strings.Compare(a.MemberID, b.MemberID)
	})
	return out
}
