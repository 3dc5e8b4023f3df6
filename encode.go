package fintrack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists tracker records as JSONL: one record per line, each line
// a json object whose "kind" property selects the record shape. The format is
// human readable, diff-friendly and easy to merge, which is the whole point
// of keeping it a plain file.

type jMember struct {
	Kind     string `json:"kind"`
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Active   bool   `json:"active"`
	External bool   `json:"external,omitempty"`
}

type jRule struct {
	Anchor       Date   `json:"anchor"`
	Pattern      string `json:"pattern,omitempty"`
	IntervalDays int    `json:"intervalDays,omitempty"`
	End          Date   `json:"end,omitempty"`
}

func (j jRule) rule() (RecurrenceRule, error) {
	p, err := ParsePattern(j.Pattern)
	if err != nil {
		return RecurrenceRule{}, err
	}
	return RecurrenceRule{Anchor: j.Anchor, Pattern: p, IntervalDays: j.IntervalDays, End: j.End}, nil
}

func encodeRule(r RecurrenceRule) jRule {
	return jRule{Anchor: r.Anchor, Pattern: r.Pattern.String(), IntervalDays: r.IntervalDays, End: r.End}
}

type jIncome struct {
	Kind     string          `json:"kind"`
	ID       string          `json:"id"`
	Name     string          `json:"name,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
	jRule
}

type jShare struct {
	Member  string          `json:"member"`
	Percent float64         `json:"percent,omitempty"`
	Amount  decimal.Decimal `json:"amount,omitempty"`
}

type jCost struct {
	Kind        string          `json:"kind"`
	ID          string          `json:"id"`
	Name        string          `json:"name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	Split       string          `json:"split,omitempty"`
	Shared      *bool           `json:"shared,omitempty"`
	Responsible string          `json:"responsible,omitempty"`
	Payer       string          `json:"payer,omitempty"`
	Shares      []jShare        `json:"shares,omitempty"`
	jRule
}

type jSubscription struct {
	Kind           string          `json:"kind"`
	ID             string          `json:"id"`
	Name           string          `json:"name,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency,omitempty"`
	Start          Date            `json:"start"`
	Interval       string          `json:"interval,omitempty"`
	IntervalMonths int             `json:"intervalMonths,omitempty"`
	NextPayment    Date            `json:"nextPayment,omitempty"`
	NoticeDays     int             `json:"noticeDays,omitempty"`
	End            Date            `json:"end,omitempty"`
}

type jScenario struct {
	Kind                  string  `json:"kind"`
	ID                    string  `json:"id"`
	Name                  string  `json:"name,omitempty"`
	StartCapital          float64 `json:"startCapital"`
	Contribution          float64 `json:"contribution,omitempty"`
	ContributionFrequency string  `json:"contributionFrequency,omitempty"`
	AnnualRate            float64 `json:"annualRate"`
	DurationMonths        int     `json:"durationMonths"`
	InterestFrequency     string  `json:"interestFrequency,omitempty"`
	Advanced              bool    `json:"advanced,omitempty"`
	AnnualInflation       float64 `json:"annualInflation,omitempty"`
	GainsTax              float64 `json:"gainsTax,omitempty"`
	ContributionIncrease  float64 `json:"contributionIncrease,omitempty"`
}

// DecodeTracker decodes records from a stream of JSONL data and returns the
// populated tracker. Any malformed line aborts the decode with an error
// naming the line.
func DecodeTracker(r io.Reader) (*Tracker, error) {
	t := NewTracker()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var identifier struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}

		var err error
		switch identifier.Kind {
		case "member":
			var j jMember
			if err = json.Unmarshal(line, &j); err == nil {
				err = t.AddMember(Member{ID: j.ID, Name: j.Name, Active: j.Active, External: j.External})
			}
		case "income":
			var j jIncome
			if err = json.Unmarshal(line, &j); err == nil {
				var rule RecurrenceRule
				if rule, err = j.rule(); err == nil {
					err = t.AddIncome(IncomeEntry{ID: j.ID, Name: j.Name, Amount: M(j.Amount, j.Currency), Rule: rule})
				}
			}
		case "cost":
			var j jCost
			if err = json.Unmarshal(line, &j); err == nil {
				err = t.addCost(j)
			}
		case "subscription":
			var j jSubscription
			if err = json.Unmarshal(line, &j); err == nil {
				var interval BillingInterval
				if interval, err = ParseBillingInterval(j.Interval); err == nil {
					err = t.AddSubscription(Subscription{
						ID: j.ID, Name: j.Name, Amount: M(j.Amount, j.Currency),
						Start: j.Start, Interval: interval, CustomIntervalMonths: j.IntervalMonths,
						NextPaymentOverride: j.NextPayment, NoticePeriodDays: j.NoticeDays, End: j.End,
					})
				}
			}
		case "scenario":
			var j jScenario
			if err = json.Unmarshal(line, &j); err == nil {
				err = t.addScenario(j)
			}
		default:
			err = fmt.Errorf("unknown record kind %q", identifier.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("format error in line %q: %w", string(line), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tracker) addCost(j jCost) error {
	split, err := ParseSplitType(j.Split)
	if err != nil {
		return err
	}
	rule, err := j.rule()
	if err != nil {
		return err
	}
	shared := true
	if j.Shared != nil {
		shared = *j.Shared
	}
	cost := HouseholdCost{
		ID: j.ID, Name: j.Name, Amount: M(j.Amount, j.Currency),
		Rule: rule, Split: split, IsShared: shared,
		ResponsibleMemberID: j.Responsible, PayerID: j.Payer,
	}
	for _, s := range j.Shares {
		cost.Shares = append(cost.Shares, CostShare{
			MemberID:     s.Member,
			SharePercent: Percent(s.Percent),
			ShareAmount:  M(s.Amount, j.Currency),
		})
	}
	return t.AddCost(cost)
}

func (t *Tracker) addScenario(j jScenario) error {
	cf, err := ParseFrequency(j.ContributionFrequency)
	if err != nil {
		return err
	}
	inf, err := ParseFrequency(j.InterestFrequency)
	if err != nil {
		return err
	}
	return t.AddScenario(InterestScenario{
		ID: j.ID, Name: j.Name,
		StartCapital: j.StartCapital, Contribution: j.Contribution, ContributionFrequency: cf,
		AnnualRate: Percent(j.AnnualRate), DurationMonths: j.DurationMonths, InterestFrequency: inf,
		Advanced:        j.Advanced,
		AnnualInflation: Percent(j.AnnualInflation), GainsTax: Percent(j.GainsTax),
		ContributionIncrease: Percent(j.ContributionIncrease),
	})
}

// EncodeTracker writes the tracker's records to w in the JSONL format, in a
// canonical order: members, incomes, costs, subscriptions, scenarios, each in
// insertion order.
func EncodeTracker(w io.Writer, t *Tracker) error {
	write := func(v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}

	for _, m := range t.members {
		if err := write(jMember{Kind: "member", ID: m.ID, Name: m.Name, Active: m.Active, External: m.External}); err != nil {
			return err
		}
	}
	for _, e := range t.incomes {
		j := jIncome{Kind: "income", ID: e.ID, Name: e.Name, Amount: e.Amount.Decimal(), Currency: e.Amount.Currency(), jRule: encodeRule(e.Rule)}
		if err := write(j); err != nil {
			return err
		}
	}
	for _, c := range t.costs {
		shared := c.IsShared
		j := jCost{
			Kind: "cost", ID: c.ID, Name: c.Name, Amount: c.Amount.Decimal(), Currency: c.Amount.Currency(),
			Split: c.Split.String(), Shared: &shared, Responsible: c.ResponsibleMemberID, Payer: c.PayerID,
			jRule: encodeRule(c.Rule),
		}
		for _, s := range c.Shares {
			j.Shares = append(j.Shares, jShare{Member: s.MemberID, Percent: float64(s.SharePercent), Amount: s.ShareAmount.Decimal()})
		}
		if err := write(j); err != nil {
			return err
		}
	}
	for _, s := range t.subscriptions {
		j := jSubscription{
			Kind: "subscription", ID: s.ID, Name: s.Name, Amount: s.Amount.Decimal(), Currency: s.Amount.Currency(),
			Start: s.Start, Interval: s.Interval.String(), IntervalMonths: s.CustomIntervalMonths,
			NextPayment: s.NextPaymentOverride, NoticeDays: s.NoticePeriodDays, End: s.End,
		}
		if err := write(j); err != nil {
			return err
		}
	}
	for _, s := range t.scenarios {
		j := jScenario{
			Kind: "scenario", ID: s.ID, Name: s.Name,
			StartCapital: s.StartCapital, Contribution: s.Contribution, ContributionFrequency: s.ContributionFrequency.String(),
			AnnualRate: float64(s.AnnualRate), DurationMonths: s.DurationMonths, InterestFrequency: s.InterestFrequency.String(),
			Advanced:        s.Advanced,
			AnnualInflation: float64(s.AnnualInflation), GainsTax: float64(s.GainsTax),
			ContributionIncrease: float64(s.ContributionIncrease),
		}
		if err := write(j); err != nil {
			return err
		}
	}
	return nil
}
