package srs

import "fmt"

// Quality grades a single review on the SM-2 0..5 scale.
type Quality int

const (
	// QualityBlackout is no recall at all.
	QualityBlackout Quality = 0
	// QualityWrong is incorrect, but the answer was recognized when shown.
	QualityWrong Quality = 1
	// QualityWrongRecalled is incorrect, recalled with difficulty.
	QualityWrongRecalled Quality = 2
	// QualityHard is correct with serious difficulty.
	QualityHard Quality = 3
	// QualityHesitant is correct after some hesitation.
	QualityHesitant Quality = 4
	// QualityPerfect is instant, confident recall.
	QualityPerfect Quality = 5
)

// passThreshold: quality >= 3 counts as a successful review.
const passThreshold = QualityHard

// Valid reports whether q is within the closed 0..5 scale.
func (q Quality) Valid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// Pass reports whether q counts as a successful review.
func (q Quality) Pass() bool {
	return q >= passThreshold
}

// ErrInvalidQuality is returned when a review quality falls outside 0..5.
var ErrInvalidQuality = fmt.Errorf("srs: quality outside 0..5")

// Effort describes how hard the learner found an answer, for flows that
// record a plain correct/incorrect outcome instead of a full 0..5 grade.
type Effort string

const (
	EffortEasy   Effort = "easy"
	EffortMedium Effort = "medium"
	EffortHard   Effort = "hard"
)

// QualityFor maps a simplified (correct, effort) outcome onto the SM-2
// quality scale. An unrecognized effort grades as a hesitant pass or a
// recognized miss.
func QualityFor(correct bool, effort Effort) Quality {
	if !correct {
		if effort == EffortHard {
			return QualityBlackout
		}
		return QualityWrong
	}
	switch effort {
	case EffortEasy:
		return QualityPerfect
	case EffortHard:
		return QualityHard
	default:
		return QualityHesitant
	}
}
