// Package session coordinates a study session: it applies review
// outcomes to the spaced-repetition cards and Elo ratings, builds
// interleaved review batches, and converts learner state to and from
// its persisted snapshot form.
package session

import (
	"sort"

	"github.com/rmaia/aprovado/internal/elo"
	"github.com/rmaia/aprovado/internal/planner"
	"github.com/rmaia/aprovado/internal/srs"
)

// Exam is the target exam the learner is preparing for.
type Exam struct {
	Name           string
	Date           string // YYYY-MM-DD, empty if unset
	CutoffScore    int    // passing score, 0-100
	TotalQuestions int
}

// LearnerState is the full in-memory state of one learner.
type LearnerState struct {
	// Cards holds spaced-repetition state keyed by item ID.
	Cards map[string]srs.Card

	// Overall is the learner's global Elo rating; Subjects holds one
	// rating per syllabus subject.
	Overall  elo.Rating
	Subjects map[string]elo.Rating

	// Plan holds the study-plan entries keyed by subject ID.
	Plan map[string]planner.Subject

	Config planner.Config
	Exam   Exam
}

// NewLearnerState returns an empty state with default settings.
func NewLearnerState() LearnerState {
	return LearnerState{
		Cards:    make(map[string]srs.Card),
		Overall:  elo.NewRating(),
		Subjects: make(map[string]elo.Rating),
		Plan:     make(map[string]planner.Subject),
		Config:   planner.DefaultConfig(),
	}
}

// PlanSubjects returns the plan entries sorted by subject ID, the order
// the planner and renderers expect.
func (ls LearnerState) PlanSubjects() []planner.Subject {
	subjects := make([]planner.Subject, 0, len(ls.Plan))
	for _, s := range ls.Plan {
		subjects = append(subjects, s)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].ID < subjects[j].ID })
	return subjects
}

// SubjectRatings returns per-subject rating values keyed by subject ID,
// defaulting to the initial rating for subjects with no attempts.
func (ls LearnerState) SubjectRatings() map[string]float64 {
	ratings := make(map[string]float64, len(ls.Plan))
	for id := range ls.Plan {
		if r, ok := ls.Subjects[id]; ok {
			ratings[id] = r.Value
		} else {
			ratings[id] = elo.InitialRating
		}
	}
	return ratings
}
