package planner

import (
	"testing"
	"time"
)

// Tuesday.
func planDate() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func planSubjects() []Subject {
	return []Subject{
		{ID: "pt", Name: "Portuguese", Weight: 3},
		{ID: "law", Name: "Constitutional Law", Weight: 5},
		{ID: "it", Name: "Informatics", Weight: 1},
	}
}

func TestGenerateRestDay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RestDays = []time.Weekday{time.Tuesday}

	sched, err := Generate(planSubjects(), cfg, planDate(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !sched.IsRestDay {
		t.Error("IsRestDay = false, want true")
	}
	if len(sched.Blocks) != 0 || sched.TotalMinutes != 0 {
		t.Errorf("rest day has blocks: %+v", sched)
	}
}

func TestGenerateRespectsBudget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DailyAvailableHours = 3

	sched, err := Generate(planSubjects(), cfg, planDate(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if sched.IsRestDay {
		t.Fatal("unexpected rest day")
	}

	sum := 0
	for _, b := range sched.Blocks {
		sum += b.DurationMinutes
		if b.DurationMinutes > cfg.BlockDurationMinutes {
			t.Errorf("block %q runs %d min, above block duration %d",
				b.SubjectName, b.DurationMinutes, cfg.BlockDurationMinutes)
		}
	}
	if sum != sched.TotalMinutes {
		t.Errorf("TotalMinutes = %d, blocks sum to %d", sched.TotalMinutes, sum)
	}
	if sum > 180 {
		t.Errorf("scheduled %d min, budget is 180", sum)
	}
}

func TestGenerateHigherWeightGetsMoreTime(t *testing.T) {
	cfg := DefaultConfig()
	sched, err := Generate(planSubjects(), cfg, planDate(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	minutes := map[string]int{}
	for _, b := range sched.Blocks {
		minutes[b.SubjectID] += b.DurationMinutes
	}
	if minutes["law"] < minutes["pt"] || minutes["pt"] < minutes["it"] {
		t.Errorf("minutes by weight = %v, want law >= pt >= it", minutes)
	}
}

func TestGenerateWeakRatingGetsBoost(t *testing.T) {
	cfg := DefaultConfig()
	subjects := []Subject{
		{ID: "a", Name: "A", Weight: 2},
		{ID: "b", Name: "B", Weight: 2},
	}
	ratings := map[string]float64{"a": 900, "b": 1400}

	sched, err := Generate(subjects, cfg, planDate(), ratings)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	minutes := map[string]int{}
	for _, b := range sched.Blocks {
		minutes[b.SubjectID] += b.DurationMinutes
	}
	if minutes["a"] <= minutes["b"] {
		t.Errorf("weak subject got %d min, strong got %d; want more for the weak one", minutes["a"], minutes["b"])
	}
}

func TestGenerateBlockTimesAndBreaks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DailyAvailableHours = 2
	cfg.PreferredStartTime = "09:00"

	sched, err := Generate([]Subject{{ID: "a", Name: "A", Weight: 1}}, cfg, planDate(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(sched.Blocks) == 0 {
		t.Fatal("no blocks")
	}
	first := sched.Blocks[0]
	if first.StartTime != "09:00" {
		t.Errorf("first block starts %s, want 09:00", first.StartTime)
	}
	if first.EndTime != "09:50" {
		t.Errorf("first block ends %s, want 09:50", first.EndTime)
	}
	if len(sched.Blocks) > 1 && sched.Blocks[1].StartTime != "10:00" {
		t.Errorf("second block starts %s, want 10:00 (after a 10 min break)", sched.Blocks[1].StartTime)
	}
}

func TestGenerateBlockKindRotation(t *testing.T) {
	cfg := DefaultConfig()
	sched, err := Generate(planSubjects(), cfg, planDate(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, b := range sched.Blocks {
		want := blockRotation[i%len(blockRotation)]
		if b.Kind != want {
			t.Errorf("block %d kind = %q, want %q", i, b.Kind, want)
		}
	}
}

func TestGenerateNoSubjects(t *testing.T) {
	_, err := Generate(nil, DefaultConfig(), planDate(), nil)
	if err != ErrNoSubjects {
		t.Errorf("err = %v, want ErrNoSubjects", err)
	}
}

func TestHoursForWeight(t *testing.T) {
	tests := []struct {
		weight int
		want   float64
	}{
		{0, 1}, {1, 1}, {2, 1.5}, {3, 2}, {4, 2.5}, {5, 2.5}, {9, 2.5},
	}
	prev := 0.0
	for _, tt := range tests {
		got := HoursForWeight(tt.weight)
		if got != tt.want {
			t.Errorf("HoursForWeight(%d) = %v, want %v", tt.weight, got, tt.want)
		}
		if got < prev {
			t.Errorf("HoursForWeight not monotone at weight %d", tt.weight)
		}
		prev = got
	}
}

func TestPriorityForWeight(t *testing.T) {
	tests := []struct {
		weight int
		want   Priority
	}{
		{1, PriorityLow},
		{2, PriorityMedium},
		{3, PriorityHigh},
		{4, PriorityCritical},
		{7, PriorityCritical},
	}
	for _, tt := range tests {
		if got := PriorityForWeight(tt.weight); got != tt.want {
			t.Errorf("PriorityForWeight(%d) = %q, want %q", tt.weight, got, tt.want)
		}
	}
}
