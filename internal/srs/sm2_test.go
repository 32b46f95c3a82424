package srs

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
}

func testScheduler() *Scheduler {
	return NewScheduler(fixedNow, rand.New(rand.NewPCG(1, 2)))
}

func TestNextRejectsInvalidQuality(t *testing.T) {
	s := testScheduler()
	card := NewCard("q1", "law", "constitutional", fixedNow())

	for _, q := range []Quality{-1, 6, 42} {
		if _, err := s.Next(card, q); err != ErrInvalidQuality {
			t.Errorf("Next(quality=%d) err = %v, want ErrInvalidQuality", q, err)
		}
	}
}

func TestFailResetsProgress(t *testing.T) {
	s := testScheduler()
	card := Card{
		ItemID:             "q1",
		EaseFactor:         2.5,
		Interval:           30,
		Repetitions:        5,
		ConsecutiveCorrect: 5,
	}

	for _, q := range []Quality{QualityBlackout, QualityWrong, QualityWrongRecalled} {
		next, err := s.Next(card, q)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if next.Repetitions != 0 {
			t.Errorf("quality=%d: Repetitions = %d, want 0", q, next.Repetitions)
		}
		if next.Interval != 1 {
			t.Errorf("quality=%d: Interval = %d, want 1", q, next.Interval)
		}
		if next.ConsecutiveCorrect != 0 || next.ConsecutiveIncorrect != 1 {
			t.Errorf("quality=%d: consecutive = (%d, %d), want (0, 1)",
				q, next.ConsecutiveCorrect, next.ConsecutiveIncorrect)
		}
	}
}

func TestEarlyLadderIndependentOfEase(t *testing.T) {
	s := testScheduler()

	for _, ease := range []float64{1.3, 2.5, 3.2} {
		card := NewCard("q1", "law", "civil", fixedNow())
		card.EaseFactor = ease

		want := []int{1, 3, 7}
		for i, w := range want {
			next, err := s.Next(card, QualityPerfect)
			if err != nil {
				t.Fatalf("Next: %v", err)
			}
			if next.Interval != w {
				t.Errorf("ease=%v pass %d: Interval = %d, want %d", ease, i+1, next.Interval, w)
			}
			if next.Repetitions != i+1 {
				t.Errorf("ease=%v pass %d: Repetitions = %d, want %d", ease, i+1, next.Repetitions, i+1)
			}
			card = next
		}
	}
}

func TestBrandNewCardFirstPassIsOneDay(t *testing.T) {
	s := testScheduler()
	card := NewCard("q1", "law", "penal", fixedNow())
	card.EaseFactor = 3.0

	next, err := s.Next(card, QualityHard)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if next.Interval != 1 {
		t.Errorf("Interval = %d, want 1", next.Interval)
	}
	if !next.NextReview.Equal(fixedNow().AddDate(0, 0, 1)) {
		t.Errorf("NextReview = %v, want %v", next.NextReview, fixedNow().AddDate(0, 0, 1))
	}
}

func TestGeometricGrowthWithFuzz(t *testing.T) {
	s := testScheduler()
	card := Card{
		ItemID:      "q1",
		EaseFactor:  2.5,
		Interval:    7,
		Repetitions: 3,
	}

	next, err := s.Next(card, QualityPerfect)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if next.Repetitions != 4 {
		t.Errorf("Repetitions = %d, want 4", next.Repetitions)
	}
	// Base interval round(7*2.5) = 18; fuzz is ±5-10% rounded up, so the
	// result must land in [16, 20].
	if next.Interval < 16 || next.Interval > 20 {
		t.Errorf("Interval = %d, want within [16, 20]", next.Interval)
	}
}

func TestSpecScenarioRepetitionsTwo(t *testing.T) {
	// repetitions=2 is still on the fixed ladder: third pass is 7 days,
	// never fuzzed.
	s := testScheduler()
	card := Card{ItemID: "q1", EaseFactor: 2.5, Interval: 3, Repetitions: 2}

	next, err := s.Next(card, QualityPerfect)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if next.Interval != 7 {
		t.Errorf("Interval = %d, want 7", next.Interval)
	}
	if next.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", next.Repetitions)
	}
}

func TestEaseFloorUnderRepeatedBlackouts(t *testing.T) {
	s := testScheduler()
	card := NewCard("q1", "law", "tax", fixedNow())

	for i := 0; i < 20; i++ {
		next, err := s.Next(card, QualityBlackout)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if next.EaseFactor < MinEaseFactor {
			t.Fatalf("iteration %d: EaseFactor = %v, below floor %v", i, next.EaseFactor, MinEaseFactor)
		}
		card = next
	}
	if math.Abs(card.EaseFactor-MinEaseFactor) > 1e-9 {
		t.Errorf("EaseFactor = %v, want converged to %v", card.EaseFactor, MinEaseFactor)
	}
}

func TestEaseUpdateFormula(t *testing.T) {
	s := testScheduler()
	tests := []struct {
		quality Quality
		want    float64
	}{
		{QualityPerfect, 2.6},  // +0.1
		{QualityHesitant, 2.5}, // unchanged
		{QualityHard, 2.36},    // -0.14
		{QualityBlackout, 1.7}, // -0.8
		{QualityWrong, 1.96},   // -0.54
	}

	for _, tt := range tests {
		card := Card{ItemID: "q1", EaseFactor: 2.5}
		next, err := s.Next(card, tt.quality)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if math.Abs(next.EaseFactor-tt.want) > 1e-9 {
			t.Errorf("quality=%d: EaseFactor = %v, want %v", tt.quality, next.EaseFactor, tt.want)
		}
	}
}

func TestCountersAndTimestamps(t *testing.T) {
	s := testScheduler()
	card := NewCard("q1", "law", "admin", fixedNow())

	pass, err := s.Next(card, QualityHesitant)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if pass.TotalReviews != 1 || pass.CorrectReviews != 1 {
		t.Errorf("pass: totals = (%d, %d), want (1, 1)", pass.TotalReviews, pass.CorrectReviews)
	}
	if !pass.LastReview.Equal(fixedNow()) {
		t.Errorf("LastReview = %v, want %v", pass.LastReview, fixedNow())
	}

	fail, err := s.Next(pass, QualityWrong)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if fail.TotalReviews != 2 || fail.CorrectReviews != 1 {
		t.Errorf("fail: totals = (%d, %d), want (2, 1)", fail.TotalReviews, fail.CorrectReviews)
	}
}

func TestNextDoesNotMutateInput(t *testing.T) {
	s := testScheduler()
	card := Card{ItemID: "q1", EaseFactor: 2.5, Interval: 7, Repetitions: 3}
	before := card

	if _, err := s.Next(card, QualityPerfect); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if card != before {
		t.Errorf("input card mutated: %+v", card)
	}
}

func TestQualityFor(t *testing.T) {
	tests := []struct {
		correct bool
		effort  Effort
		want    Quality
	}{
		{true, EffortEasy, QualityPerfect},
		{true, EffortMedium, QualityHesitant},
		{true, EffortHard, QualityHard},
		{true, Effort("other"), QualityHesitant},
		{false, EffortHard, QualityBlackout},
		{false, EffortMedium, QualityWrong},
		{false, EffortEasy, QualityWrong},
	}

	for _, tt := range tests {
		got := QualityFor(tt.correct, tt.effort)
		if got != tt.want {
			t.Errorf("QualityFor(%v, %q) = %d, want %d", tt.correct, tt.effort, got, tt.want)
		}
	}
}
