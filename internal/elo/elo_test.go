package elo

import (
	"math"
	"testing"
)

func TestExpectedScoreEqualRatings(t *testing.T) {
	for _, r := range []float64{0, 800, 1000, 1500, 2400} {
		got := ExpectedScore(r, r)
		if math.Abs(got-0.5) > 1e-9 {
			t.Errorf("ExpectedScore(%v, %v) = %v, want 0.5", r, r, got)
		}
	}
}

func TestExpectedScoreMonotoneInOpponent(t *testing.T) {
	prev := 1.0
	for opp := 400.0; opp <= 2400; opp += 50 {
		got := ExpectedScore(1000, opp)
		if got >= prev {
			t.Fatalf("ExpectedScore(1000, %v) = %v, not decreasing (prev %v)", opp, got, prev)
		}
		prev = got
	}
}

func TestUpdateBaselineWin(t *testing.T) {
	got := Update(1000, 1000, 1, 32)
	if got != 1016 {
		t.Errorf("Update(1000, 1000, 1, 32) = %d, want 1016", got)
	}
}

func TestUpdateBaselineLoss(t *testing.T) {
	got := Update(1000, 1000, 0, 32)
	if got != 984 {
		t.Errorf("Update(1000, 1000, 0, 32) = %d, want 984", got)
	}
}

func TestKFactorSchedule(t *testing.T) {
	tests := []struct {
		matches int
		want    float64
	}{
		{0, 32},
		{15, 32},
		{29, 32},
		{30, 16},
		{31, 16},
		{500, 16},
	}

	for _, tt := range tests {
		got := KFactor(tt.matches)
		if got != tt.want {
			t.Errorf("KFactor(%d) = %v, want %v", tt.matches, got, tt.want)
		}
	}
}

func TestSeedRating(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want float64
	}{
		{DifficultyEasy, 800},
		{DifficultyMedium, 1000},
		{DifficultyHard, 1200},
		{DifficultyExpert, 1400},
		{Difficulty("unknown"), 1000},
	}

	for _, tt := range tests {
		got := SeedRating(tt.d)
		if got != tt.want {
			t.Errorf("SeedRating(%q) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		rating float64
		want   Band
	}{
		{0, BandBeginner},
		{1199, BandBeginner},
		{1200, BandIntermediate},
		{1499, BandIntermediate},
		{1500, BandAdvanced},
		{1799, BandAdvanced},
		{1800, BandExpert},
		{2600, BandExpert},
	}

	for _, tt := range tests {
		got := BandFor(tt.rating)
		if got != tt.want {
			t.Errorf("BandFor(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestRecordNewLearnerCorrectMedium(t *testing.T) {
	r := NewRating()
	got := r.Record(SeedRating(DifficultyMedium), true)

	if got.Value != 1016 {
		t.Errorf("Value = %v, want 1016", got.Value)
	}
	if got.Matches != 1 {
		t.Errorf("Matches = %d, want 1", got.Matches)
	}
	// The original rating is untouched.
	if r.Value != 1000 || r.Matches != 0 {
		t.Errorf("receiver mutated: %+v", r)
	}
}

func TestRecordUsesKFactorBeforeAttempt(t *testing.T) {
	// The 30th attempt (Matches == 29 before it) still uses K=32;
	// the 31st uses K=16.
	r := Rating{Value: 1000, Matches: 29}
	after30 := r.Record(1000, true)
	if after30.Value != 1016 {
		t.Errorf("30th attempt: Value = %v, want 1016", after30.Value)
	}
	after31 := after30.Record(after30.Value, true)
	if after31.Value != 1024 {
		t.Errorf("31st attempt: Value = %v, want 1024", after31.Value)
	}
}
