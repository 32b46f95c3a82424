// Package planner distributes a learner's daily study budget across
// weighted subjects and tracks progress toward the weekly goal.
package planner

import (
	"fmt"
	"time"
)

// Priority is the study priority tier derived from a subject's syllabus
// weight.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Subject is one syllabus subject as configured by the learner's exam
// plan.
type Subject struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Weight int    `json:"weight"` // syllabus weight, 1-5+

	// TotalMinutes is the cumulative study time recorded so far.
	TotalMinutes int `json:"total_minutes"`
	// LastStudied is zero if the subject was never studied.
	LastStudied time.Time `json:"last_studied"`
}

// Config holds the learner's scheduling preferences.
type Config struct {
	DailyAvailableHours  float64        `json:"daily_available_hours"`
	ExamDate             string         `json:"exam_date"` // YYYY-MM-DD, empty if unset
	RestDays             []time.Weekday `json:"rest_days"`
	PreferredStartTime   string         `json:"preferred_start_time"` // HH:MM
	BlockDurationMinutes int            `json:"block_duration_minutes"`
	BreakDurationMinutes int            `json:"break_duration_minutes"`
}

// DefaultConfig mirrors a common study setup: four hours a day, Sundays
// off, 50-minute focus blocks with 10-minute breaks.
func DefaultConfig() Config {
	return Config{
		DailyAvailableHours:  4,
		RestDays:             []time.Weekday{time.Sunday},
		PreferredStartTime:   "08:00",
		BlockDurationMinutes: 50,
		BreakDurationMinutes: 10,
	}
}

// ErrNoSubjects is returned when an operation needs at least one subject.
var ErrNoSubjects = fmt.Errorf("planner: no subjects configured")

// ErrInvalidDate is returned for malformed dates.
var ErrInvalidDate = fmt.Errorf("planner: invalid date")

// HoursForWeight maps a syllabus weight to target hours per study cycle:
// 1h, 1.5h, 2h, capped at 2.5h for weight 4 and above.
func HoursForWeight(weight int) float64 {
	switch {
	case weight >= 4:
		return 2.5
	case weight == 3:
		return 2
	case weight == 2:
		return 1.5
	default:
		return 1
	}
}

// PriorityForWeight maps a syllabus weight to its priority tier.
func PriorityForWeight(weight int) Priority {
	switch {
	case weight >= 4:
		return PriorityCritical
	case weight == 3:
		return PriorityHigh
	case weight == 2:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// daysSince returns whole days between then and now, never negative.
func daysSince(then, now time.Time) int {
	if then.After(now) {
		return 0
	}
	return int(now.Sub(then).Hours() / 24)
}
