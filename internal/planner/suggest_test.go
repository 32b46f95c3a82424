package planner

import (
	"testing"
)

func TestSuggestNextPrefersNeverStudied(t *testing.T) {
	now := planDate()
	subjects := []Subject{
		{ID: "a", Name: "A", Weight: 3, LastStudied: now.AddDate(0, 0, -2)},
		{ID: "b", Name: "B", Weight: 3},
		{ID: "c", Name: "C", Weight: 3, LastStudied: now.AddDate(0, 0, -1)},
	}

	got, err := SuggestNext(subjects, nil, now)
	if err != nil {
		t.Fatalf("SuggestNext: %v", err)
	}
	if got.ID != "b" {
		t.Errorf("suggested %q, want never-studied b", got.ID)
	}
}

func TestSuggestNextPrefersWeakestRating(t *testing.T) {
	now := planDate()
	yesterday := now.AddDate(0, 0, -1)
	subjects := []Subject{
		{ID: "a", Name: "A", Weight: 2, LastStudied: yesterday},
		{ID: "b", Name: "B", Weight: 2, LastStudied: yesterday},
	}
	ratings := map[string]float64{"a": 1400, "b": 950}

	got, err := SuggestNext(subjects, ratings, now)
	if err != nil {
		t.Fatalf("SuggestNext: %v", err)
	}
	if got.ID != "b" {
		t.Errorf("suggested %q, want weakest-rated b", got.ID)
	}
}

func TestSuggestNextFallsBackToStalest(t *testing.T) {
	now := planDate()
	subjects := []Subject{
		{ID: "a", Name: "A", Weight: 2, LastStudied: now.AddDate(0, 0, -1)},
		{ID: "b", Name: "B", Weight: 2, LastStudied: now.AddDate(0, 0, -6)},
	}

	got, err := SuggestNext(subjects, nil, now)
	if err != nil {
		t.Fatalf("SuggestNext: %v", err)
	}
	if got.ID != "b" {
		t.Errorf("suggested %q, want least recently studied b", got.ID)
	}
}

func TestSuggestNextEmpty(t *testing.T) {
	if _, err := SuggestNext(nil, nil, planDate()); err != ErrNoSubjects {
		t.Errorf("err = %v, want ErrNoSubjects", err)
	}
}
