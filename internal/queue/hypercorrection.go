package queue

import (
	"fmt"
	"sort"
)

// Confidence is the learner's self-reported certainty when answering a
// pretest or diagnostic question.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ErrUnknownConfidence is returned when a pretest result carries a
// confidence outside low/medium/high.
var ErrUnknownConfidence = fmt.Errorf("queue: unknown confidence level")

// rank orders confidences for sorting; higher is more confident.
func (c Confidence) rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether c is one of the three known levels.
func (c Confidence) Valid() bool {
	return c.rank() > 0
}

// PretestResult is one answered question from a just-completed pretest
// or diagnostic pass.
type PretestResult struct {
	ItemID     string     `json:"item_id"`
	Correct    bool       `json:"correct"`
	Confidence Confidence `json:"confidence"`
}

// Prioritize orders pretest items for the follow-up review session.
// All errors precede all correct answers, and within the errors the
// most confidently-held ones come first: a wrong answer the learner was
// sure about is the highest-value correction target (the hypercorrection
// effect). Ties keep the original order.
func Prioritize(results []PretestResult) ([]string, error) {
	var errsGroup, correct []PretestResult
	for _, r := range results {
		if !r.Confidence.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownConfidence, r.Confidence)
		}
		if r.Correct {
			correct = append(correct, r)
		} else {
			errsGroup = append(errsGroup, r)
		}
	}

	sort.SliceStable(errsGroup, func(i, j int) bool {
		return errsGroup[i].Confidence.rank() > errsGroup[j].Confidence.rank()
	})

	out := make([]string, 0, len(results))
	for _, r := range errsGroup {
		out = append(out, r.ItemID)
	}
	for _, r := range correct {
		out = append(out, r.ItemID)
	}
	return out, nil
}

// Insight summarizes a pretest pass for the learner, flagging
// high-confidence errors as the blind spots to revisit first.
func Insight(results []PretestResult) string {
	highConfErrors := 0
	highConfCorrect := 0
	for _, r := range results {
		if r.Confidence != ConfidenceHigh {
			continue
		}
		if r.Correct {
			highConfCorrect++
		} else {
			highConfErrors++
		}
	}

	if highConfErrors > 0 {
		return fmt.Sprintf("%d high-confidence errors detected. These are your most dangerous blind spots; review them first.", highConfErrors)
	}
	if highConfCorrect > 3 {
		return "Well calibrated: you are getting right what you are sure about."
	}
	return "Use the immediate feedback to correct errors while the memory is fresh."
}
