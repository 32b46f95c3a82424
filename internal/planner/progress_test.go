package planner

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestExamCountdown(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		examDate string
		days     int
		weeks    int
		months   int
		urgent   bool
	}{
		{"2026-06-10", 92, 13, 3, false},
		{"2026-04-09", 30, 4, 1, true},
		{"2026-03-11", 1, 0, 0, true}, // tomorrow is 1 day out, whatever the clock says
		{"2026-03-10", 0, 0, 0, true}, // exam day itself
		{"2026-01-01", 0, 0, 0, true}, // past exam clamps to 0
	}

	for _, tt := range tests {
		got, err := ExamCountdown(tt.examDate, now)
		if err != nil {
			t.Fatalf("ExamCountdown(%q): %v", tt.examDate, err)
		}
		if got.DaysRemaining != tt.days || got.WeeksRemaining != tt.weeks ||
			got.MonthsRemaining != tt.months || got.IsUrgent != tt.urgent {
			t.Errorf("ExamCountdown(%q) = %+v, want days=%d weeks=%d months=%d urgent=%v",
				tt.examDate, got, tt.days, tt.weeks, tt.months, tt.urgent)
		}
	}
}

func TestExamCountdownIgnoresTimeOfDay(t *testing.T) {
	lateEvening := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)

	got, err := ExamCountdown("2026-03-11", lateEvening)
	if err != nil {
		t.Fatalf("ExamCountdown: %v", err)
	}
	if got.DaysRemaining != 1 {
		t.Errorf("DaysRemaining = %d, want 1 for an exam tomorrow", got.DaysRemaining)
	}
}

func TestExamCountdownInvalidDate(t *testing.T) {
	_, err := ExamCountdown("10/03/2026", time.Now())
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
}

func TestProgressStatuses(t *testing.T) {
	cfg := DefaultConfig() // 4h/day, Sundays off → 1440 min weekly target

	tests := []struct {
		actual int
		want   GoalStatus
	}{
		{1440, StatusOnTrack},
		{1300, StatusOnTrack}, // -9.7%
		{1600, StatusAhead},   // +11.1%
		{1150, StatusBehind},  // -20.1%
		{900, StatusCritical}, // -37.5%
	}

	for _, tt := range tests {
		got := Progress(cfg, tt.actual)
		if got.Status != tt.want {
			t.Errorf("Progress(%d).Status = %q (dev %.1f%%), want %q",
				tt.actual, got.Status, got.DeviationPercent, tt.want)
		}
		if got.WeeklyTargetMinutes != 1440 {
			t.Errorf("WeeklyTargetMinutes = %d, want 1440", got.WeeklyTargetMinutes)
		}
	}
}

func TestProgressDeviation(t *testing.T) {
	cfg := DefaultConfig()
	got := Progress(cfg, 720) // half the target

	if math.Abs(got.DeviationPercent+50) > 1e-9 {
		t.Errorf("DeviationPercent = %v, want -50", got.DeviationPercent)
	}
	if got.Status != StatusCritical {
		t.Errorf("Status = %q, want critical", got.Status)
	}
}
