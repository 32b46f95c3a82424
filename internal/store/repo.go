package store

import (
	"context"
	"time"
)

// SnapshotVersion is the current layout version of SnapshotData. Bump it
// when the structure changes incompatibly.
const SnapshotVersion = 1

// CardData is the persisted form of a spaced-repetition card. Times are
// stored as RFC3339 strings so the JSON stays human-inspectable.
type CardData struct {
	ItemID               string  `json:"item_id"`
	EaseFactor           float64 `json:"ease_factor"`
	Interval             int     `json:"interval"`
	Repetitions          int     `json:"repetitions"`
	NextReview           string  `json:"next_review"`
	LastReview           string  `json:"last_review,omitempty"`
	CreatedAt            string  `json:"created_at"`
	TotalReviews         int     `json:"total_reviews"`
	CorrectReviews       int     `json:"correct_reviews"`
	ConsecutiveCorrect   int     `json:"consecutive_correct"`
	ConsecutiveIncorrect int     `json:"consecutive_incorrect"`
	Discipline           string  `json:"discipline,omitempty"`
	Topic                string  `json:"topic,omitempty"`
}

// RatingData is the persisted form of an Elo rating.
type RatingData struct {
	Value   float64 `json:"value"`
	Matches int     `json:"matches"`
}

// SubjectData is the persisted study-plan entry for one subject.
type SubjectData struct {
	Name         string `json:"name"`
	Weight       int    `json:"weight"`
	TotalMinutes int    `json:"total_minutes"`
	LastStudied  string `json:"last_studied,omitempty"`
}

// SchedulerData holds the persisted daily-schedule configuration.
type SchedulerData struct {
	DailyAvailableHours  float64 `json:"daily_available_hours"`
	RestDays             []int   `json:"rest_days,omitempty"`
	PreferredStartTime   string  `json:"preferred_start_time"`
	BlockDurationMinutes int     `json:"block_duration_minutes"`
	BreakDurationMinutes int     `json:"break_duration_minutes"`
}

// ExamData holds the persisted target-exam configuration.
type ExamData struct {
	Name           string `json:"name"`
	Date           string `json:"date"`
	CutoffScore    int    `json:"cutoff_score"`
	TotalQuestions int    `json:"total_questions"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version   int                    `json:"version"`
	Cards     map[string]CardData    `json:"cards,omitempty"`
	Overall   RatingData             `json:"overall"`
	Ratings   map[string]RatingData  `json:"ratings,omitempty"`
	Subjects  map[string]SubjectData `json:"subjects,omitempty"`
	Scheduler SchedulerData          `json:"scheduler"`
	Exam      ExamData               `json:"exam"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AnswerEventData captures the data for a single answered question.
type AnswerEventData struct {
	SessionID   string
	ItemID      string
	Subject     string
	Topic       string
	Correct     bool
	Quality     int
	ItemRating  float64
	RatingAfter int
}

// PredictionEventData captures the data for one prediction run.
type PredictionEventData struct {
	PredictedScore       int
	ApprovalProbability  int
	PredictionConfidence int
	Data                 map[string]any
}

// SubjectCounts aggregates answer outcomes for one subject.
type SubjectCounts struct {
	Correct int
	Total   int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswer records an answered question.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendPrediction records a score-prediction run.
	AppendPrediction(ctx context.Context, data PredictionEventData) error

	// SubjectStats returns correct/total answer counts for a subject.
	SubjectStats(ctx context.Context, subject string) (SubjectCounts, error)

	// LatestAnswerTime returns the timestamp of the most recent answer
	// in a subject, or the zero time if none exist.
	LatestAnswerTime(ctx context.Context, subject string) (time.Time, error)

	// SessionAccuracies returns per-session accuracy for a subject,
	// ordered oldest session first.
	SessionAccuracies(ctx context.Context, subject string) ([]float64, error)
}
