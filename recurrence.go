package fintrack

import (
	"fmt"
	"slices"
	"strings"
)

// Pattern identifies how a recurrence rule repeats.
type Pattern int

const (
	// None marks a one-off entry: the anchor date is its single occurrence.
	None Pattern = iota
	// WeeklyPattern repeats every 7 days from the anchor date.
	WeeklyPattern
	// MonthlyPattern repeats on the anchor's day of month, clamped in
	// shorter months.
	MonthlyPattern
	// CustomDays repeats every IntervalDays days from the anchor date.
	CustomDays
)

func (p Pattern) String() string {
	switch p {
	case None:
		return "none"
	case WeeklyPattern:
		return "weekly"
	case MonthlyPattern:
		return "monthly"
	case CustomDays:
		return "custom-days"
	default:
		return "unknown"
	}
}

func ParsePattern(s string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return None, nil
	case "weekly":
		return WeeklyPattern, nil
	case "monthly":
		return MonthlyPattern, nil
	case "custom-days", "custom":
		return CustomDays, nil
	default:
		return None, fmt.Errorf("unknown recurrence pattern %q", s)
	}
}

// RecurrenceRule describes how a stored entry repeats over time. The zero
// value is a one-off on the zero date, which never materializes.
type RecurrenceRule struct {
	Anchor       Date    // first occurrence
	Pattern      Pattern //
	IntervalDays int     // step in days, CustomDays only
	End          Date    // last admissible occurrence, zero for open-ended
}

// InvalidRuleError reports a malformed recurrence rule. It is raised at the
// boundary before any stepping begins, never silently coerced.
type InvalidRuleError struct {
	SourceID string
	Reason   string
}

func (e *InvalidRuleError) Error() string {
	return fmt.Sprintf("invalid recurrence rule on %q: %s", e.SourceID, e.Reason)
}

// validate checks the rule preconditions for the given source.
func (r RecurrenceRule) validate(sourceID string) error {
	if r.Anchor.IsZero() {
		return &InvalidRuleError{SourceID: sourceID, Reason: "missing anchor date"}
	}
	if r.Pattern == CustomDays && r.IntervalDays <= 0 {
		return &InvalidRuleError{SourceID: sourceID, Reason: fmt.Sprintf("custom interval must be positive, got %d", r.IntervalDays)}
	}
	if !r.End.IsZero() && r.End.Before(r.Anchor) {
		return &InvalidRuleError{SourceID: sourceID, Reason: fmt.Sprintf("end date %s before anchor date %s", r.End, r.Anchor)}
	}
	return nil
}

// step returns the fixed day step of the rule, or 0 for month-based rules.
func (r RecurrenceRule) step() int {
	switch r.Pattern {
	case WeeklyPattern:
		return 7
	case CustomDays:
		return r.IntervalDays
	default:
		return 0
	}
}

// RecurringSource is the borrowed view of a stored record that the
// materializer consumes: an identity, a display label, an amount, and the
// rule itself. Income entries and household costs both project into it.
type RecurringSource struct {
	ID     string
	Label  string
	Amount Money
	Rule   RecurrenceRule
}

// Occurrence is a single concrete dated instance generated from a recurring
// rule. Occurrences are never persisted; they are recomputed identically on
// every query.
type Occurrence struct {
	SourceID string
	Label    string
	Date     Date
	Amount   Money
}

// ID returns the synthesized identity of the occurrence, unique per source
// and date, suitable for keying list rows.
func (o Occurrence) ID() string { return o.SourceID + "::" + o.Date.String() }

// Iteration guards. They exist to keep pathological inputs (a zero-length
// step slipped past validation) from hanging the caller; hitting one
// truncates enumeration silently rather than erroring.
const (
	maxMonthlyFastForward = 600
	maxEnumeration        = 2000
)

// Materialize expands every source's rule into concrete occurrences within
// the inclusive window, newest first. Rules are validated first: any
// malformed rule aborts the whole call with an *InvalidRuleError and no
// partial result.
func Materialize(sources []RecurringSource, window Range) ([]Occurrence, error) {
	for _, s := range sources {
		if err := s.Rule.validate(s.ID); err != nil {
			return nil, err
		}
	}

	var out []Occurrence
	for _, s := range sources {
		out = append(out, materializeOne(s, window)...)
	}

	// Newest first; source identity breaks date ties so the order is
	// reproducible.
	slices.SortFunc(out, func(a, b Occurrence) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return strings.Compare(a.SourceID, b.SourceID)
	})
	return out, nil
}

func materializeOne(s RecurringSource, window Range) []Occurrence {
	rule := s.Rule

	// Cheap rejection before any stepping.
	if !rule.End.IsZero() && rule.End.Before(window.From) {
		return nil
	}
	if rule.Anchor.After(window.To) {
		return nil
	}

	if rule.Pattern == None {
		if window.Contains(rule.Anchor) {
			return []Occurrence{{SourceID: s.ID, Label: s.Label, Date: rule.Anchor, Amount: s.Amount}}
		}
		return nil
	}

	var out []Occurrence
	emit := func(on Date) {
		out = append(out, Occurrence{SourceID: s.ID, Label: s.Label, Date: on, Amount: s.Amount})
	}

	if rule.Pattern == MonthlyPattern {
		// Month lengths vary, so there is no safe closed form: fast-forward
		// by whole months, bounded.
		months := 0
		on := rule.Anchor
		for on.Before(window.From) {
			months++
			if months > maxMonthlyFastForward {
				return nil
			}
			on = rule.Anchor.AddMonths(months)
		}
		for i := 0; i < maxEnumeration; i++ {
			if on.After(window.To) {
				break
			}
			if !rule.End.IsZero() && on.After(rule.End) {
				break
			}
			emit(on)
			months++
			on = rule.Anchor.AddMonths(months)
		}
		return out
	}

	// Fixed day step: jump straight to the first occurrence at or after the
	// window start, then correct by at most one extra step.
	step := rule.step()
	on := rule.Anchor
	if diff := rule.Anchor.DaysBetween(window.From); diff > 0 {
		jumps := diff / step
		on = rule.Anchor.Add(jumps * step)
		if on.Before(window.From) {
			on = on.Add(step)
		}
	}
	for i := 0; i < maxEnumeration; i++ {
		if on.After(window.To) {
			break
		}
		if !rule.End.IsZero() && on.After(rule.End) {
			break
		}
		emit(on)
		on = on.Add(step)
	}
	return out
}
