package fintrack

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrInvalidShift marks malformed shift input: a bad time or date string, a
// non-positive rate, or a zero-duration shift.
var ErrInvalidShift = errors.New("invalid shift")

var clockRE = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// parseClock parses a 24-hour "HH:MM" string into minutes since midnight.
func parseClock(s string) (int, error) {
	match := clockRE.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("%w: time %q does not match HH:MM", ErrInvalidShift, s)
	}
	h, _ := strconv.Atoi(match[1])
	m, _ := strconv.Atoi(match[2])
	return h*60 + m, nil
}

// Shift is the result of a single shift income computation.
type Shift struct {
	Date            Date
	Start, End      string // HH:MM as entered
	Minutes         int
	Hours           float64
	CrossesMidnight bool
	Amount          Money // duration times rate, rounded to the cent
}

// ComputeShift computes the pay for a single shift. An end time numerically
// earlier than the start time is read as crossing midnight. Identical start
// and end times are rejected: a zero-duration shift almost always indicates
// a data-entry mistake, and silently producing zero income would hide it.
func ComputeShift(day, start, end string, hourlyRate float64, currency string) (*Shift, error) {
	on, err := ParseDate(day)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShift, err)
	}
	from, err := parseClock(start)
	if err != nil {
		return nil, err
	}
	to, err := parseClock(end)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(hourlyRate) || math.IsInf(hourlyRate, 0) || hourlyRate <= 0 {
		return nil, fmt.Errorf("%w: hourly rate must be a finite positive number, got %v", ErrInvalidShift, hourlyRate)
	}
	if from == to {
		return nil, fmt.Errorf("%w: start and end time are both %s", ErrInvalidShift, start)
	}

	minutes := to - from
	crosses := minutes < 0
	if crosses {
		minutes += 24 * 60
	}

	hours := decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60))
	amount := M(hours.Mul(decimal.NewFromFloat(hourlyRate)), currency).RoundCents()

	return &Shift{
		Date:            on,
		Start:           start,
		End:             end,
		Minutes:         minutes,
		Hours:           hours.InexactFloat64(),
		CrossesMidnight: crosses,
		Amount:          amount,
	}, nil
}
