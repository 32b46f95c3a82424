package predict

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// FocusPriority tiers a focus recommendation by urgency.
type FocusPriority string

const (
	PriorityCritical FocusPriority = "critical"
	PriorityHigh     FocusPriority = "high"
	PriorityMedium   FocusPriority = "medium"
	PriorityLow      FocusPriority = "low"
)

func (p FocusPriority) rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// Recommendation tells the learner where study time pays off most.
type Recommendation struct {
	Subject string `json:"subject"`
	// Priority combines a low rating with a high syllabus weight.
	Priority FocusPriority `json:"priority"`
	// PotentialGain is the score improvement, in points, a 200-rating
	// climb in this subject would deliver.
	PotentialGain float64 `json:"potential_gain"`
	Reason        string  `json:"reason"`
}

// recommendations ranks subjects by urgency: critical fundamentals
// first, then heavily-weighted weak subjects, then near-passing ones.
func (p Predictor) recommendations(perfs []SubjectPerformance) []Recommendation {
	out := make([]Recommendation, 0, len(perfs))
	for _, perf := range perfs {
		current := AccuracyFor(perf.Rating)
		potential := AccuracyFor(math.Min(perf.Rating+200, ExpertRating))
		gain := (potential - current) * float64(perf.Weight) / 5

		var priority FocusPriority
		var reason string
		switch {
		case perf.Rating < 900:
			priority = PriorityCritical
			reason = fmt.Sprintf("Rating %d is critical. The fundamentals need urgent review.", int(perf.Rating))
		case perf.Rating < 1100 && perf.Weight >= 3:
			priority = PriorityHigh
			reason = fmt.Sprintf("Weight-%d subject performing below level. High impact on the final score.", perf.Weight)
		case perf.Rating < 1200:
			priority = PriorityMedium
			reason = "Close to passing level. Small effort, large gain."
		default:
			priority = PriorityLow
			reason = "Performing well. Focus on maintenance and details."
		}

		out = append(out, Recommendation{
			Subject:       perf.Subject,
			Priority:      priority,
			PotentialGain: math.Round(gain*10) / 10,
			Reason:        reason,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority.rank() != out[j].Priority.rank() {
			return out[i].Priority.rank() < out[j].Priority.rank()
		}
		return out[i].PotentialGain > out[j].PotentialGain
	})
	return out
}

// Summary renders a one-line forecast for dashboards and CLI output.
func Summary(s Snapshot) string {
	if s.PredictionConfidence < 30 {
		return "Not enough data yet. Keep practicing."
	}
	return fmt.Sprintf("Estimated score %d/100 (%d%% chance of approval)",
		s.PredictedScore, s.ApprovalProbability)
}

// Insights derives short actionable notes from a prediction.
func Insights(s Snapshot) []string {
	var out []string

	switch {
	case s.ApprovalProbability >= 80:
		out = append(out, "On track for approval.")
	case s.ApprovalProbability >= 60:
		out = append(out, "Good progress. Shore up the weak subjects to secure the spot.")
	case s.ApprovalProbability >= 40:
		out = append(out, "There is significant room to grow. Pick up the pace.")
	default:
		out = append(out, "Full focus needed. Work the recommendations below in order.")
	}

	var critical, strong []string
	for _, b := range s.Breakdown {
		switch b.Status {
		case StatusCritical:
			critical = append(critical, b.Subject)
		case StatusStrong:
			strong = append(strong, b.Subject)
		}
	}
	if len(critical) > 0 {
		out = append(out, "Urgent attention: "+strings.Join(critical, ", "))
	}
	if len(strong) > 0 {
		out = append(out, "Strong subjects: "+strings.Join(strong, ", "))
	}

	if s.PredictionConfidence < 50 {
		out = append(out, "Answer more questions to sharpen the prediction.")
	}
	return out
}
