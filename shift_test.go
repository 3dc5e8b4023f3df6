package fintrack

import (
	"errors"
	"testing"
)

func TestComputeShift(t *testing.T) {
	tests := []struct {
		name        string
		start, end  string
		rate        float64
		wantHours   float64
		wantAmount  Money
		wantCrosses bool
	}{
		{"regular morning shift", "08:00", "12:30", 18, 4.5, EUR(81), false},
		{"full day", "09:00", "17:00", 20, 8, EUR(160), false},
		{"overnight shift", "22:00", "02:00", 15, 4, EUR(60), true},
		{"ends at midnight", "20:00", "00:00", 10, 4, EUR(40), true},
		{"one minute", "10:00", "10:01", 60, 1.0 / 60, EUR(1), false},
		{"odd rate rounds to cent", "09:00", "10:30", 11.11, 1.5, EUR(16.67), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shift, err := ComputeShift("2025-03-10", tt.start, tt.end, tt.rate, "EUR")
			if err != nil {
				t.Fatal(err)
			}
			if diff := shift.Hours - tt.wantHours; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Hours = %v, want %v", shift.Hours, tt.wantHours)
			}
			if !shift.Amount.Equal(tt.wantAmount) {
				t.Errorf("Amount = %v, want %v", shift.Amount, tt.wantAmount)
			}
			if shift.CrossesMidnight != tt.wantCrosses {
				t.Errorf("CrossesMidnight = %v, want %v", shift.CrossesMidnight, tt.wantCrosses)
			}
		})
	}
}

func TestComputeShiftRejectsBadInput(t *testing.T) {
	tests := []struct {
		name             string
		date, start, end string
		rate             float64
	}{
		{"bad start time", "2025-03-10", "8h00", "12:00", 18},
		{"hour out of range", "2025-03-10", "24:00", "12:00", 18},
		{"minute out of range", "2025-03-10", "08:61", "12:00", 18},
		{"bad date", "not-a-date", "08:00", "12:00", 18},
		{"zero rate", "2025-03-10", "08:00", "12:00", 0},
		{"negative rate", "2025-03-10", "08:00", "12:00", -5},
		{"zero duration", "2025-03-10", "08:00", "08:00", 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeShift(tt.date, tt.start, tt.end, tt.rate, "EUR")
			if !errors.Is(err, ErrInvalidShift) {
				t.Errorf("expected ErrInvalidShift, got %v", err)
			}
		})
	}
}
