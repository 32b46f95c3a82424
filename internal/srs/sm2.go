package srs

import (
	"math"
	"math/rand/v2"
	"time"
)

const (
	// DefaultEaseFactor is the SM-2 starting ease for a new card.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the floor below which ease never drops.
	MinEaseFactor = 1.3

	// fuzzThresholdDays: geometric intervals longer than this get a
	// random perturbation so cards don't bunch onto the same day.
	fuzzThresholdDays = 4
)

// earlyIntervals is the fixed ladder for the first three passing reviews.
// The 3-day second step deliberately diverges from the classical 6-day
// SM-2 default; retention research favors a shorter second interval.
var earlyIntervals = [3]int{1, 3, 7}

// Scheduler computes next review states. It carries an injected clock
// and random source so every computation is deterministic under test.
type Scheduler struct {
	now func() time.Time
	rng *rand.Rand
}

// NewScheduler creates a scheduler. A nil clock falls back to time.Now;
// a nil rng falls back to a PCG seeded from the clock.
func NewScheduler(now func() time.Time, rng *rand.Rand) *Scheduler {
	if now == nil {
		now = time.Now
	}
	if rng == nil {
		t := now()
		rng = rand.New(rand.NewPCG(uint64(t.UnixNano()), uint64(t.Unix())))
	}
	return &Scheduler{now: now, rng: rng}
}

// Next returns the card state after one review of the given quality.
// The input card is not modified. Returns ErrInvalidQuality if quality
// is outside 0..5.
func (s *Scheduler) Next(card Card, quality Quality) (Card, error) {
	if !quality.Valid() {
		return Card{}, ErrInvalidQuality
	}

	now := s.now()
	next := card

	if quality.Pass() {
		if card.Repetitions < len(earlyIntervals) {
			next.Interval = earlyIntervals[card.Repetitions]
		} else {
			next.Interval = s.fuzz(int(math.Round(float64(card.Interval) * card.EaseFactor)))
		}
		next.Repetitions = card.Repetitions + 1
		next.CorrectReviews = card.CorrectReviews + 1
		next.ConsecutiveCorrect = card.ConsecutiveCorrect + 1
		next.ConsecutiveIncorrect = 0
	} else {
		// Hard reset: no partial credit toward the interval ladder.
		next.Interval = 1
		next.Repetitions = 0
		next.ConsecutiveCorrect = 0
		next.ConsecutiveIncorrect = card.ConsecutiveIncorrect + 1
	}

	// EF' = EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02)), floored. Applies on
	// every review, pass or fail.
	q := float64(quality)
	ease := card.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	next.EaseFactor = math.Max(MinEaseFactor, ease)

	next.TotalReviews = card.TotalReviews + 1
	next.LastReview = now
	next.NextReview = now.AddDate(0, 0, next.Interval)

	return next, nil
}

// fuzz perturbs an already-computed geometric interval by a random
// ±5%–10% (rounded up, sign chosen at random). The fixed early ladder
// never reaches this path.
func (s *Scheduler) fuzz(interval int) int {
	if interval <= fuzzThresholdDays {
		return interval
	}
	amount := int(math.Ceil(float64(interval) * (0.05 + s.rng.Float64()*0.05)))
	if s.rng.Float64() < 0.5 {
		return interval - amount
	}
	return interval + amount
}
