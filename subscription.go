package fintrack

import (
	"fmt"
	"strings"
)

// BillingInterval identifies the periodic pattern governing when a
// subscription charge recurs.
type BillingInterval int

const (
	BillMonthly BillingInterval = iota
	BillYearly
	BillFourWeekly
	BillCustomMonths
)

func (b BillingInterval) String() string {
	switch b {
	case BillMonthly:
		return "monthly"
	case BillYearly:
		return "yearly"
	case BillFourWeekly:
		return "four-weekly"
	case BillCustomMonths:
		return "custom-months"
	default:
		return "unknown"
	}
}

func ParseBillingInterval(s string) (BillingInterval, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "":
		return BillMonthly, nil
	case "yearly":
		return BillYearly, nil
	case "four-weekly", "4-weekly":
		return BillFourWeekly, nil
	case "custom-months", "custom":
		return BillCustomMonths, nil
	default:
		return BillMonthly, fmt.Errorf("unknown billing interval %q", s)
	}
}

// Subscription is a stored subscription record. It is a plain value borrowed
// from the storage layer; the resolver below never mutates it.
type Subscription struct {
	ID                   string
	Name                 string
	Amount               Money
	Start                Date
	Interval             BillingInterval
	CustomIntervalMonths int
	// NextPaymentOverride, when set, is returned verbatim as the next due
	// date. Explicit user intent wins over the computed cycle even when
	// inconsistent with it.
	NextPaymentOverride Date
	NoticePeriodDays    int
	End                 Date // cancellation date, zero while active
}

// Guard for the due-date stepping below. A subscription older than ~40 years
// of monthly cycles is outside any realistic horizon.
const maxCycleSteps = 500

// NextPayment returns the next due date at or after today. "Next due" is
// always recomputed from today, never cached.
func (s Subscription) NextPayment(today Date) Date {
	if !s.NextPaymentOverride.IsZero() {
		return s.NextPaymentOverride
	}

	months := 0
	switch s.Interval {
	case BillMonthly:
		months = 1
	case BillYearly:
		months = 12
	case BillCustomMonths:
		months = s.CustomIntervalMonths
		if months <= 0 {
			months = 1
		}
	}

	on := s.Start
	for i := 0; i < maxCycleSteps && on.Before(today); i++ {
		if s.Interval == BillFourWeekly {
			on = on.Add(28)
		} else {
			on = s.Start.AddMonths(months * (i + 1))
		}
	}
	return on
}

// CancelBy returns the last date a cancellation still avoids the next charge:
// the next due date minus the notice period. It can fall before today, or
// even before the start date, which signals "already too late"; presenting
// that is the caller's concern.
func (s Subscription) CancelBy(today Date) Date {
	return s.NextPayment(today).Add(-s.NoticePeriodDays)
}

// ActiveOn reports whether the subscription had started and was not yet
// cancelled on the given date.
func (s Subscription) ActiveOn(on Date) bool {
	if s.Start.After(on) {
		return false
	}
	return s.End.IsZero() || !s.End.Before(on)
}

// TrendPoint is one month bucket of a subscription cost trend.
type TrendPoint struct {
	Month Range
	Total Money
}

// SubscriptionTrend reconstructs historical monthly subscription totals over
// the window. A subscription counts toward a bucket when it had started by
// the bucket's last day and was not cancelled before the bucket's first day,
// so cancelled subscriptions stop contributing after their end date.
func SubscriptionTrend(subs []Subscription, window Range) []TrendPoint {
	var points []TrendPoint
	for month := range window.Months() {
		var total Money
		for _, s := range subs {
			if s.Start.After(month.To) {
				continue
			}
			if !s.End.IsZero() && s.End.Before(month.From) {
				continue
			}
			total = total.Add(s.MonthlyEquivalent())
		}
		points = append(points, TrendPoint{Month: month, Total: total})
	}
	return points
}

// MonthlyEquivalent normalizes the subscription amount to a per-month cost.
func (s Subscription) MonthlyEquivalent() Money {
	switch s.Interval {
	case BillYearly:
		return s.Amount.DivInt(12)
	case BillFourWeekly:
		// 13 four-week cycles a year.
		return s.Amount.MulFloat(13.0 / 12.0)
	case BillCustomMonths:
		if s.CustomIntervalMonths > 1 {
			return s.Amount.DivInt(s.CustomIntervalMonths)
		}
		return s.Amount
	default:
		return s.Amount
	}
}
