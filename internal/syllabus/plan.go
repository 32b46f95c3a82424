// Package syllabus imports and validates study plans: the target exam,
// the weighted subject list, and optional scheduling preferences.
package syllabus

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rmaia/aprovado/internal/planner"
)

// ErrInvalidPlan is returned when a plan file fails validation.
var ErrInvalidPlan = fmt.Errorf("syllabus: invalid plan")

// ExamInfo identifies the target exam.
type ExamInfo struct {
	Name           string `json:"name"`
	Date           string `json:"date"` // YYYY-MM-DD
	CutoffScore    int    `json:"cutoff_score"`
	TotalQuestions int    `json:"total_questions"`
}

// PlanSubject is one syllabus subject with its exam weight.
type PlanSubject struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Weight int      `json:"weight"`
	Topics []string `json:"topics,omitempty"`
}

// SchedulerInfo overrides the default scheduling preferences.
type SchedulerInfo struct {
	DailyAvailableHours  float64 `json:"daily_available_hours"`
	RestDays             []int   `json:"rest_days"`
	PreferredStartTime   string  `json:"preferred_start_time"`
	BlockDurationMinutes int     `json:"block_duration_minutes"`
	BreakDurationMinutes int     `json:"break_duration_minutes"`
}

// Plan is a validated study plan.
type Plan struct {
	Exam      ExamInfo       `json:"exam"`
	Subjects  []PlanSubject  `json:"subjects"`
	Scheduler *SchedulerInfo `json:"scheduler,omitempty"`
}

// Parse validates raw JSON against the plan schema and decodes it.
func Parse(raw []byte) (Plan, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Plan{}, fmt.Errorf("%w: not valid JSON: %v", ErrInvalidPlan, err)
	}

	schema, err := compiled()
	if err != nil {
		return Plan{}, fmt.Errorf("compile plan schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return Plan{}, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}

	var plan Plan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return Plan{}, fmt.Errorf("decode plan: %w", err)
	}

	if _, err := time.Parse("2006-01-02", plan.Exam.Date); err != nil {
		return Plan{}, fmt.Errorf("%w: exam date %q is not a calendar date", ErrInvalidPlan, plan.Exam.Date)
	}
	seen := make(map[string]bool, len(plan.Subjects))
	for _, s := range plan.Subjects {
		if seen[s.ID] {
			return Plan{}, fmt.Errorf("%w: duplicate subject id %q", ErrInvalidPlan, s.ID)
		}
		seen[s.ID] = true
	}
	return plan, nil
}

// Load reads and parses a plan file.
func Load(path string) (Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read plan: %w", err)
	}
	return Parse(raw)
}

// ToSubjects converts the plan's subjects to planner entries.
func (p Plan) ToSubjects() []planner.Subject {
	subjects := make([]planner.Subject, 0, len(p.Subjects))
	for _, s := range p.Subjects {
		subjects = append(subjects, planner.Subject{
			ID:     s.ID,
			Name:   s.Name,
			Weight: s.Weight,
		})
	}
	return subjects
}

// ToConfig merges the plan's scheduler overrides onto the defaults. The
// exam date always carries over.
func (p Plan) ToConfig() planner.Config {
	cfg := planner.DefaultConfig()
	cfg.ExamDate = p.Exam.Date

	s := p.Scheduler
	if s == nil {
		return cfg
	}
	if s.DailyAvailableHours > 0 {
		cfg.DailyAvailableHours = s.DailyAvailableHours
	}
	if s.PreferredStartTime != "" {
		cfg.PreferredStartTime = s.PreferredStartTime
	}
	if s.BlockDurationMinutes > 0 {
		cfg.BlockDurationMinutes = s.BlockDurationMinutes
	}
	if s.BreakDurationMinutes > 0 {
		cfg.BreakDurationMinutes = s.BreakDurationMinutes
	}
	if s.RestDays != nil {
		cfg.RestDays = nil
		for _, d := range s.RestDays {
			cfg.RestDays = append(cfg.RestDays, time.Weekday(d))
		}
	}
	return cfg
}
