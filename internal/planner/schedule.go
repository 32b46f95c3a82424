package planner

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

// BlockKind is the activity a study block is meant for. Blocks rotate
// theory → questions → review to keep engagement up.
type BlockKind string

const (
	BlockTheory    BlockKind = "theory"
	BlockQuestions BlockKind = "questions"
	BlockReview    BlockKind = "review"
)

var blockRotation = [3]BlockKind{BlockTheory, BlockQuestions, BlockReview}

// Block is one contiguous slice of study time bound to a subject.
type Block struct {
	SubjectID       string    `json:"subject_id"`
	SubjectName     string    `json:"subject_name"`
	StartTime       string    `json:"start_time"` // HH:MM
	EndTime         string    `json:"end_time"`   // HH:MM
	DurationMinutes int       `json:"duration_minutes"`
	Kind            BlockKind `json:"kind"`
}

// Schedule is one day's study plan. Blocks is empty on a rest day.
type Schedule struct {
	Date         string  `json:"date"` // YYYY-MM-DD
	Blocks       []Block `json:"blocks"`
	TotalMinutes int     `json:"total_minutes"`
	IsRestDay    bool    `json:"is_rest_day"`
}

// Generate builds the study schedule for one day. Minutes are split
// across subjects proportionally to weight, boosted for weak ratings and
// stale subjects, then chunked into blocks separated by breaks. The
// ratings map (subject ID → Elo) may be nil. Total scheduled minutes
// never exceed the daily budget.
func Generate(subjects []Subject, cfg Config, date time.Time, ratings map[string]float64) (Schedule, error) {
	if len(subjects) == 0 {
		return Schedule{}, ErrNoSubjects
	}

	sched := Schedule{Date: date.Format("2006-01-02")}
	if slices.Contains(cfg.RestDays, date.Weekday()) {
		sched.IsRestDay = true
		return sched, nil
	}

	budget := int(cfg.DailyAvailableHours * 60)
	shares := distribute(subjects, budget, date, ratings)

	start := cfg.PreferredStartTime
	if start == "" {
		start = "08:00"
	}
	cursor, err := parseClock(start)
	if err != nil {
		return Schedule{}, err
	}

	blockLen := cfg.BlockDurationMinutes
	if blockLen <= 0 {
		blockLen = 50
	}

	used := 0
	for _, share := range shares {
		subject := share.subject
		remaining := share.minutes

		for remaining > 0 && used < budget {
			d := min(remaining, blockLen, budget-used)
			sched.Blocks = append(sched.Blocks, Block{
				SubjectID:       subject.ID,
				SubjectName:     subject.Name,
				StartTime:       formatClock(cursor),
				EndTime:         formatClock(cursor + d),
				DurationMinutes: d,
				Kind:            blockRotation[len(sched.Blocks)%len(blockRotation)],
			})
			cursor += d + cfg.BreakDurationMinutes
			remaining -= d
			used += d
		}
	}

	sched.TotalMinutes = used
	return sched, nil
}

type share struct {
	subject Subject
	minutes int
}

// distribute splits the day's minutes proportionally to a per-subject
// score: syllabus weight, boosted when the subject's rating is weak and
// when it has gone stale.
func distribute(subjects []Subject, totalMinutes int, now time.Time, ratings map[string]float64) []share {
	scores := make([]float64, len(subjects))
	var total float64
	for i, s := range subjects {
		score := float64(s.Weight)

		if rating, ok := ratings[s.ID]; ok {
			if rating < 1000 {
				score *= 1.3
			} else if rating < 1200 {
				score *= 1.15
			}
		}
		if !s.LastStudied.IsZero() {
			switch days := daysSince(s.LastStudied, now); {
			case days > 7:
				score *= 1.2
			case days > 3:
				score *= 1.1
			}
		}

		scores[i] = score
		total += score
	}

	out := make([]share, len(subjects))
	for i, s := range subjects {
		out[i] = share{
			subject: s,
			minutes: int(math.Round(scores[i] / total * float64(totalMinutes))),
		}
	}
	return out
}

// FormatDailyStatus renders a one-line summary of a day's schedule.
func FormatDailyStatus(s Schedule) string {
	if s.IsRestDay {
		return "Rest day. Take it; consolidation needs sleep."
	}

	var names []string
	seen := make(map[string]bool)
	for _, b := range s.Blocks {
		if !seen[b.SubjectName] {
			seen[b.SubjectName] = true
			names = append(names, b.SubjectName)
		}
	}
	return fmt.Sprintf("Today: %.1fh — %s", float64(s.TotalMinutes)/60, strings.Join(names, ", "))
}

// parseClock converts "HH:MM" to minutes past midnight.
func parseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("%w: start time %q", ErrInvalidDate, clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// formatClock renders minutes past midnight as "HH:MM", wrapping at 24h.
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60%24, minutes%60)
}
