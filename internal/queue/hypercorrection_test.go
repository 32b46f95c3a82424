package queue

import (
	"errors"
	"strings"
	"testing"
)

func TestPrioritizeOrdersHighConfidenceErrorsFirst(t *testing.T) {
	results := []PretestResult{
		{ItemID: "c1", Correct: true, Confidence: ConfidenceHigh},
		{ItemID: "e-low", Correct: false, Confidence: ConfidenceLow},
		{ItemID: "e-high-1", Correct: false, Confidence: ConfidenceHigh},
		{ItemID: "c2", Correct: true, Confidence: ConfidenceLow},
		{ItemID: "e-med", Correct: false, Confidence: ConfidenceMedium},
		{ItemID: "e-high-2", Correct: false, Confidence: ConfidenceHigh},
	}

	out, err := Prioritize(results)
	if err != nil {
		t.Fatalf("Prioritize: %v", err)
	}

	want := []string{"e-high-1", "e-high-2", "e-med", "e-low", "c1", "c2"}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestPrioritizeStableWithinConfidence(t *testing.T) {
	results := []PretestResult{
		{ItemID: "first", Correct: false, Confidence: ConfidenceMedium},
		{ItemID: "second", Correct: false, Confidence: ConfidenceMedium},
		{ItemID: "third", Correct: false, Confidence: ConfidenceMedium},
	}

	out, err := Prioritize(results)
	if err != nil {
		t.Fatalf("Prioritize: %v", err)
	}
	if out[0] != "first" || out[1] != "second" || out[2] != "third" {
		t.Errorf("out = %v, want original order", out)
	}
}

func TestPrioritizeRejectsUnknownConfidence(t *testing.T) {
	_, err := Prioritize([]PretestResult{
		{ItemID: "a", Correct: false, Confidence: Confidence("sure")},
	})
	if !errors.Is(err, ErrUnknownConfidence) {
		t.Errorf("err = %v, want ErrUnknownConfidence", err)
	}
}

func TestInsightFlagsHighConfidenceErrors(t *testing.T) {
	results := []PretestResult{
		{ItemID: "a", Correct: false, Confidence: ConfidenceHigh},
		{ItemID: "b", Correct: false, Confidence: ConfidenceHigh},
		{ItemID: "c", Correct: true, Confidence: ConfidenceLow},
	}

	msg := Insight(results)
	if !strings.Contains(msg, "2 high-confidence errors") {
		t.Errorf("Insight = %q, want mention of 2 high-confidence errors", msg)
	}
}

func TestInsightCalibration(t *testing.T) {
	var results []PretestResult
	for i := 0; i < 4; i++ {
		results = append(results, PretestResult{ItemID: "x", Correct: true, Confidence: ConfidenceHigh})
	}

	msg := Insight(results)
	if !strings.Contains(msg, "calibrated") {
		t.Errorf("Insight = %q, want calibration message", msg)
	}
}
