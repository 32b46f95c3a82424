package srs

import (
	"testing"
	"time"
)

func statsNow() time.Time {
	return time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
}

func TestStatsEmptyDeck(t *testing.T) {
	st := Stats(nil, statsNow())
	if st.Total != 0 {
		t.Errorf("Total = %d, want 0", st.Total)
	}
	if st.AverageEase != DefaultEaseFactor {
		t.Errorf("AverageEase = %v, want %v", st.AverageEase, DefaultEaseFactor)
	}
}

func TestStatsCategories(t *testing.T) {
	now := statsNow()
	cards := []Card{
		// New card, due now.
		{ItemID: "a", EaseFactor: 2.5, Repetitions: 0, NextReview: now},
		// Learning card, not due.
		{ItemID: "b", EaseFactor: 2.5, Repetitions: 2, Interval: 7, NextReview: now.AddDate(0, 0, 3)},
		// Mature card, overdue, reviewed earlier today, perfect record.
		{
			ItemID: "c", EaseFactor: 2.7, Repetitions: 6, Interval: 30,
			NextReview: now.AddDate(0, 0, -2), LastReview: now.Add(-2 * time.Hour),
			TotalReviews: 6, CorrectReviews: 6,
		},
	}

	st := Stats(cards, now)
	if st.Total != 3 {
		t.Errorf("Total = %d, want 3", st.Total)
	}
	if st.DueNow != 2 {
		t.Errorf("DueNow = %d, want 2", st.DueNow)
	}
	if st.New != 1 || st.Learning != 1 || st.Mature != 1 {
		t.Errorf("categories = (%d, %d, %d), want (1, 1, 1)", st.New, st.Learning, st.Mature)
	}
	if st.ReviewedToday != 1 {
		t.Errorf("ReviewedToday = %d, want 1", st.ReviewedToday)
	}
	// Retention: only card c has reviews, 6/6 = 100%, averaged over 3 cards.
	want := 100.0 / 3
	if diff := st.RetentionRate - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("RetentionRate = %v, want %v", st.RetentionRate, want)
	}
}

func TestForecastBucketsOverdueIntoToday(t *testing.T) {
	now := statsNow()
	cards := []Card{
		{ItemID: "a", NextReview: now.AddDate(0, 0, -5)}, // overdue
		{ItemID: "b", NextReview: now},                   // due today
		{ItemID: "c", NextReview: now.AddDate(0, 0, 1)},  // tomorrow
		{ItemID: "d", NextReview: now.AddDate(0, 0, 3)},  // day 3
		{ItemID: "e", NextReview: now.AddDate(0, 0, 10)}, // outside window
	}

	fc := Forecast(cards, now, 7)
	if len(fc) != 7 {
		t.Fatalf("len = %d, want 7", len(fc))
	}
	if fc[0].Count != 2 {
		t.Errorf("day 0 count = %d, want 2", fc[0].Count)
	}
	if fc[1].Count != 1 {
		t.Errorf("day 1 count = %d, want 1", fc[1].Count)
	}
	if fc[3].Count != 1 {
		t.Errorf("day 3 count = %d, want 1", fc[3].Count)
	}
	total := 0
	for _, d := range fc {
		total += d.Count
	}
	if total != 4 {
		t.Errorf("total within window = %d, want 4", total)
	}
}
