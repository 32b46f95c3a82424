package planner

import (
	"fmt"
	"math"
	"time"
)

// Countdown is the time remaining until the exam.
type Countdown struct {
	DaysRemaining   int  `json:"days_remaining"`
	WeeksRemaining  int  `json:"weeks_remaining"`
	MonthsRemaining int  `json:"months_remaining"`
	IsUrgent        bool `json:"is_urgent"`
}

// urgentThresholdDays: exams this close flip the countdown to urgent.
const urgentThresholdDays = 30

// ExamCountdown computes the remaining calendar days until examDate
// (YYYY-MM-DD). The count diffs dates, not durations: an exam tomorrow
// is 1 day out no matter the time of day. Never goes negative.
func ExamCountdown(examDate string, now time.Time) (Countdown, error) {
	exam, err := time.ParseInLocation("2006-01-02", examDate, now.Location())
	if err != nil {
		return Countdown{}, fmt.Errorf("%w: exam date %q", ErrInvalidDate, examDate)
	}

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	days := int(math.Round(exam.Sub(today).Hours() / 24))
	if days < 0 {
		days = 0
	}

	return Countdown{
		DaysRemaining:   days,
		WeeksRemaining:  days / 7,
		MonthsRemaining: days / 30,
		IsUrgent:        days <= urgentThresholdDays,
	}, nil
}

// GoalStatus classifies weekly progress against the target.
type GoalStatus string

const (
	StatusOnTrack  GoalStatus = "on_track"
	StatusAhead    GoalStatus = "ahead"
	StatusBehind   GoalStatus = "behind"
	StatusCritical GoalStatus = "critical"
)

// GoalProgress reports actual versus target study minutes for the week.
type GoalProgress struct {
	WeeklyTargetMinutes int        `json:"weekly_target_minutes"`
	WeeklyActualMinutes int        `json:"weekly_actual_minutes"`
	DeviationPercent    float64    `json:"deviation_percent"`
	Status              GoalStatus `json:"status"`
	Alert               string     `json:"alert,omitempty"`
}

// Progress compares the minutes studied this week against the weekly
// target implied by the config (daily budget times non-rest days).
func Progress(cfg Config, weeklyMinutesStudied int) GoalProgress {
	target := int(cfg.DailyAvailableHours * 60 * float64(7-len(cfg.RestDays)))

	p := GoalProgress{
		WeeklyTargetMinutes: target,
		WeeklyActualMinutes: weeklyMinutesStudied,
	}
	if target > 0 {
		p.DeviationPercent = (float64(weeklyMinutesStudied)/float64(target) - 1) * 100
	}

	switch {
	case p.DeviationPercent < -30:
		p.Status = StatusCritical
		p.Alert = fmt.Sprintf("%.0f%% below the weekly goal. Step it up.", -p.DeviationPercent)
	case p.DeviationPercent < -15:
		p.Status = StatusBehind
		p.Alert = fmt.Sprintf("%.0f%% below the weekly goal.", -p.DeviationPercent)
	case p.DeviationPercent > 10:
		p.Status = StatusAhead
		p.Alert = fmt.Sprintf("%.0f%% above the weekly goal. Keep the pace.", p.DeviationPercent)
	default:
		p.Status = StatusOnTrack
	}
	return p
}
