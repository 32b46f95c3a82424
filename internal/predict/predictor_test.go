package predict

import (
	"testing"
	"time"
)

func predictNow() time.Time {
	return time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
}

func TestAccuracyMonotoneAndClamped(t *testing.T) {
	prev := -1.0
	for rating := 0.0; rating <= 2600; rating += 25 {
		acc := AccuracyFor(rating)
		if acc < MinAccuracy || acc > MaxAccuracy {
			t.Fatalf("AccuracyFor(%v) = %v, outside [%d, %d]", rating, acc, MinAccuracy, MaxAccuracy)
		}
		if acc < prev {
			t.Fatalf("AccuracyFor(%v) = %v, below previous %v", rating, acc, prev)
		}
		prev = acc
	}
}

func TestAccuracyAnchors(t *testing.T) {
	baseline := AccuracyFor(BaselineRating)
	if baseline < 20 || baseline > 50 {
		t.Errorf("AccuracyFor(1000) = %v, want within [20, 50]", baseline)
	}
	expert := AccuracyFor(ExpertRating)
	if expert < 80 || expert > 98 {
		t.Errorf("AccuracyFor(1800) = %v, want within [80, 98]", expert)
	}
}

func fullSample() []SubjectPerformance {
	return []SubjectPerformance{
		{Subject: "Constitutional Law", Weight: 5, TotalQuestions: 60, CorrectAnswers: 45, Rating: 1350, Consistency: 0.8},
		{Subject: "Portuguese", Weight: 3, TotalQuestions: 40, CorrectAnswers: 22, Rating: 1050, Consistency: 0.6},
		{Subject: "Informatics", Weight: 2, TotalQuestions: 30, CorrectAnswers: 12, Rating: 900, Consistency: 0.5},
	}
}

func TestPredictBasicShape(t *testing.T) {
	snap := New().Predict(fullSample(), predictNow())

	if snap.PredictedScore < 0 || snap.PredictedScore > 100 {
		t.Errorf("PredictedScore = %d, outside [0, 100]", snap.PredictedScore)
	}
	ci := snap.ConfidenceInterval
	if ci.Lower > snap.PredictedScore || snap.PredictedScore > ci.Upper {
		t.Errorf("score %d outside interval [%d, %d]", snap.PredictedScore, ci.Lower, ci.Upper)
	}
	if ci.Lower < 0 || ci.Upper > 100 {
		t.Errorf("interval [%d, %d] outside [0, 100]", ci.Lower, ci.Upper)
	}
	if len(snap.Breakdown) != 3 {
		t.Errorf("breakdown has %d entries, want 3", len(snap.Breakdown))
	}
	if snap.PredictionConfidence <= lowConfidenceValue {
		t.Errorf("PredictionConfidence = %d, want above the low-data value", snap.PredictionConfidence)
	}
}

func TestPredictLowDataGuard(t *testing.T) {
	perfs := []SubjectPerformance{
		{Subject: "Portuguese", Weight: 3, TotalQuestions: 5, Rating: 1100, Consistency: 0.5},
	}

	snap := New().Predict(perfs, predictNow())

	if snap.PredictionConfidence != lowConfidenceValue {
		t.Errorf("PredictionConfidence = %d, want %d", snap.PredictionConfidence, lowConfidenceValue)
	}
	if len(snap.Recommendations) != 1 || snap.Recommendations[0].Priority != PriorityCritical {
		t.Errorf("expected a single critical more-data recommendation, got %+v", snap.Recommendations)
	}
	if len(snap.Breakdown) != 0 {
		t.Errorf("low-data breakdown should be empty, got %d entries", len(snap.Breakdown))
	}
}

func TestPredictEmptyInput(t *testing.T) {
	snap := New().Predict(nil, predictNow())
	if snap.PredictionConfidence != lowConfidenceValue {
		t.Errorf("PredictionConfidence = %d, want %d", snap.PredictionConfidence, lowConfidenceValue)
	}
}

func TestApprovalProbabilityAtCutoff(t *testing.T) {
	got := approvalProbability(60, 5, 60)
	if got != 50 {
		t.Errorf("approvalProbability at cutoff = %d, want 50", got)
	}
	above := approvalProbability(80, 5, 60)
	if above <= 90 {
		t.Errorf("approvalProbability well above cutoff = %d, want > 90", above)
	}
	below := approvalProbability(40, 5, 60)
	if below >= 10 {
		t.Errorf("approvalProbability well below cutoff = %d, want < 10", below)
	}
}

func TestStrengthsAndWeaknesses(t *testing.T) {
	perfs := []SubjectPerformance{
		{Subject: "strong-big", Weight: 4, TotalQuestions: 30, Rating: 1400, Consistency: 0.7},
		{Subject: "strong-thin", Weight: 4, TotalQuestions: 3, Rating: 1500, Consistency: 0.7},
		{Subject: "weak-heavy", Weight: 4, TotalQuestions: 30, Rating: 900, Consistency: 0.5},
		{Subject: "weak-light", Weight: 1, TotalQuestions: 30, Rating: 900, Consistency: 0.5},
	}

	snap := New().Predict(perfs, predictNow())

	if len(snap.Strengths) != 1 || snap.Strengths[0] != "strong-big" {
		t.Errorf("Strengths = %v, want [strong-big] (thin sample excluded)", snap.Strengths)
	}
	if len(snap.Weaknesses) != 1 || snap.Weaknesses[0] != "weak-heavy" {
		t.Errorf("Weaknesses = %v, want [weak-heavy] (low weight excluded)", snap.Weaknesses)
	}
}

func TestRecommendationPriorities(t *testing.T) {
	perfs := []SubjectPerformance{
		{Subject: "fine", Weight: 3, TotalQuestions: 30, Rating: 1400, Consistency: 0.7},
		{Subject: "fundamentals", Weight: 2, TotalQuestions: 30, Rating: 850, Consistency: 0.5},
		{Subject: "heavy-weak", Weight: 4, TotalQuestions: 30, Rating: 1050, Consistency: 0.5},
		{Subject: "almost", Weight: 1, TotalQuestions: 30, Rating: 1150, Consistency: 0.6},
	}

	snap := New().Predict(perfs, predictNow())

	byName := map[string]FocusPriority{}
	for _, r := range snap.Recommendations {
		byName[r.Subject] = r.Priority
	}
	if byName["fundamentals"] != PriorityCritical {
		t.Errorf("fundamentals priority = %q, want critical", byName["fundamentals"])
	}
	if byName["heavy-weak"] != PriorityHigh {
		t.Errorf("heavy-weak priority = %q, want high", byName["heavy-weak"])
	}
	if byName["almost"] != PriorityMedium {
		t.Errorf("almost priority = %q, want medium", byName["almost"])
	}
	if byName["fine"] != PriorityLow {
		t.Errorf("fine priority = %q, want low", byName["fine"])
	}
	// Ordered by priority tier.
	if snap.Recommendations[0].Subject != "fundamentals" {
		t.Errorf("first recommendation = %q, want fundamentals", snap.Recommendations[0].Subject)
	}
}

func TestBreakdownStatusTiers(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     SubjectStatus
	}{
		{90, StatusStrong},
		{85, StatusStrong},
		{70, StatusAverage},
		{55, StatusAverage},
		{45, StatusWeak},
		{35, StatusCritical},
		{20, StatusCritical},
	}
	for _, tt := range tests {
		if got := statusFor(tt.accuracy); got != tt.want {
			t.Errorf("statusFor(%v) = %q, want %q", tt.accuracy, got, tt.want)
		}
	}
}

func TestSummaryLowConfidence(t *testing.T) {
	snap := Snapshot{PredictionConfidence: 10}
	if got := Summary(snap); got != "Not enough data yet. Keep practicing." {
		t.Errorf("Summary = %q", got)
	}
}
