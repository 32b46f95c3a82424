package session

import (
	"context"
	"fmt"
	"math"

	"github.com/rmaia/aprovado/internal/elo"
	"github.com/rmaia/aprovado/internal/predict"
	"github.com/rmaia/aprovado/internal/store"
)

// Predictor returns a predictor parameterized by the configured exam,
// falling back to the defaults where the exam is unset.
func (s *Service) Predictor() predict.Predictor {
	p := predict.New()
	if s.state.Exam.CutoffScore > 0 {
		p.CutoffScore = s.state.Exam.CutoffScore
	}
	if s.state.Exam.TotalQuestions > 0 {
		p.ExamQuestions = s.state.Exam.TotalQuestions
	}
	return p
}

// SubjectPerformances assembles the per-subject prediction inputs from
// the study plan, the subject ratings, and the answer log.
func (s *Service) SubjectPerformances(ctx context.Context) ([]predict.SubjectPerformance, error) {
	perfs := make([]predict.SubjectPerformance, 0, len(s.state.Plan))
	for _, sub := range s.state.PlanSubjects() {
		perf := predict.SubjectPerformance{
			Subject:     sub.ID,
			Weight:      sub.Weight,
			Rating:      elo.InitialRating,
			Consistency: 0.5,
		}
		if r, ok := s.state.Subjects[sub.ID]; ok {
			perf.Rating = r.Value
		}

		if s.events != nil {
			counts, err := s.events.SubjectStats(ctx, sub.ID)
			if err != nil {
				return nil, fmt.Errorf("subject stats %q: %w", sub.ID, err)
			}
			perf.TotalQuestions = counts.Total
			perf.CorrectAnswers = counts.Correct

			accs, err := s.events.SessionAccuracies(ctx, sub.ID)
			if err != nil {
				return nil, fmt.Errorf("session accuracies %q: %w", sub.ID, err)
			}
			perf.Consistency = consistencyFrom(accs)
		}

		perfs = append(perfs, perf)
	}
	return perfs, nil
}

// Predict runs a forecast over the current plan and records it in the
// event log.
func (s *Service) Predict(ctx context.Context) (predict.Snapshot, error) {
	perfs, err := s.SubjectPerformances(ctx)
	if err != nil {
		return predict.Snapshot{}, err
	}

	snap := s.Predictor().Predict(perfs, s.now())

	if s.events != nil {
		sample := 0
		for _, perf := range perfs {
			sample += perf.TotalQuestions
		}
		err := s.events.AppendPrediction(ctx, store.PredictionEventData{
			PredictedScore:       snap.PredictedScore,
			ApprovalProbability:  snap.ApprovalProbability,
			PredictionConfidence: snap.PredictionConfidence,
			Data: map[string]any{
				"sample_size": sample,
				"subjects":    len(perfs),
				"ci_lower":    snap.ConfidenceInterval.Lower,
				"ci_upper":    snap.ConfidenceInterval.Upper,
			},
		})
		if err != nil {
			return predict.Snapshot{}, fmt.Errorf("append prediction event: %w", err)
		}
	}
	return snap, nil
}

// consistencyFrom scores how stable per-session accuracy has been, in
// [0,1]. Session accuracies live in [0,1] so their deviation tops out
// at 0.5; the doubling stretches it onto the full scale. Fewer than two
// sessions give the neutral 0.5.
func consistencyFrom(accs []float64) float64 {
	if len(accs) < 2 {
		return 0.5
	}
	mean := 0.0
	for _, a := range accs {
		mean += a
	}
	mean /= float64(len(accs))

	variance := 0.0
	for _, a := range accs {
		variance += (a - mean) * (a - mean)
	}
	variance /= float64(len(accs))

	c := 1 - 2*math.Sqrt(variance)
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
