// Package predict turns per-subject performance into a probabilistic
// forecast of the learner's exam score.
package predict

import "math"

const (
	// BaselineRating is a brand-new learner's Elo.
	BaselineRating = 1000
	// ExpertRating is the rating that maps near the accuracy ceiling.
	ExpertRating = 1800

	// MinAccuracy and MaxAccuracy clamp the rating→accuracy mapping.
	MinAccuracy = 20
	MaxAccuracy = 98
)

// AccuracyFor maps an Elo rating to an expected accuracy percentage via
// a logistic curve, clamped to [MinAccuracy, MaxAccuracy]. The curve is
// strictly increasing between the clamps: 1000 lands near the bottom of
// the range, 1800 and above near the top.
func AccuracyFor(rating float64) float64 {
	normalized := (rating - BaselineRating) / (ExpertRating - BaselineRating)
	logistic := 1 / (1 + math.Exp(-4*(normalized-0.25)))
	return math.Max(MinAccuracy, math.Min(MaxAccuracy, logistic*100))
}
