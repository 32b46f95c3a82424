package predict

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// SubjectPerformance is the per-subject input to a prediction run.
type SubjectPerformance struct {
	Subject string `json:"subject"`
	// Weight is the subject's syllabus weight (1-5).
	Weight         int     `json:"weight"`
	TotalQuestions int     `json:"total_questions"`
	CorrectAnswers int     `json:"correct_answers"`
	Rating         float64 `json:"rating"`
	// Consistency in [0,1]; lower values widen the confidence interval.
	Consistency float64 `json:"consistency"`
}

// Interval is a confidence interval on the 0-100 score scale.
type Interval struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

// SubjectStatus tiers a subject by its predicted accuracy.
type SubjectStatus string

const (
	StatusStrong   SubjectStatus = "strong"
	StatusAverage  SubjectStatus = "average"
	StatusWeak     SubjectStatus = "weak"
	StatusCritical SubjectStatus = "critical"
)

// Breakdown is the per-subject slice of a prediction.
type Breakdown struct {
	Subject           string        `json:"subject"`
	Weight            int           `json:"weight"`
	PredictedAccuracy int           `json:"predicted_accuracy"` // 0-100
	Contribution      float64       `json:"contribution"`       // exam points
	Status            SubjectStatus `json:"status"`
}

// Snapshot is the output of one prediction run.
type Snapshot struct {
	PredictedScore       int              `json:"predicted_score"` // 0-100
	ConfidenceInterval   Interval         `json:"confidence_interval"`
	ApprovalProbability  int              `json:"approval_probability"`  // 0-100
	PredictionConfidence int              `json:"prediction_confidence"` // 0-100
	Strengths            []string         `json:"strengths"`
	Weaknesses           []string         `json:"weaknesses"`
	Recommendations      []Recommendation `json:"recommendations"`
	Breakdown            []Breakdown      `json:"breakdown"`
	GeneratedAt          time.Time        `json:"generated_at"`
}

// Predictor holds the exam parameters a forecast is computed against.
type Predictor struct {
	// CutoffScore is the passing score on the 0-100 scale.
	CutoffScore int
	// ExamQuestions is the total question count of the real exam.
	ExamQuestions int
	// MinSample is the minimum answered-question count for a full
	// prediction; below it the low-data guard kicks in.
	MinSample int
}

// New returns a Predictor with the default exam parameters: cutoff 60,
// 120 questions, 20 answers minimum.
func New() Predictor {
	return Predictor{CutoffScore: 60, ExamQuestions: 120, MinSample: 20}
}

// Predict forecasts the learner's exam outcome from per-subject
// performance. With too little data it returns an explicitly
// low-confidence snapshot instead of a spuriously precise one.
func (p Predictor) Predict(perfs []SubjectPerformance, now time.Time) Snapshot {
	totalAnswered := 0
	for _, perf := range perfs {
		totalAnswered += perf.TotalQuestions
	}
	if len(perfs) == 0 || totalAnswered < p.MinSample {
		return p.lowConfidence(totalAnswered, now)
	}

	totalWeight := 0
	for _, perf := range perfs {
		totalWeight += perf.Weight
	}

	var weightedScore, varianceSum float64
	for _, perf := range perfs {
		w := float64(perf.Weight) / float64(totalWeight)
		weightedScore += AccuracyFor(perf.Rating) * w
		// Inconsistent performance widens the interval.
		varianceSum += (1 - perf.Consistency) * 15 * w
	}

	score := int(math.Round(weightedScore))
	stdDev := math.Sqrt(varianceSum + sampleSizeVariance(totalAnswered))
	margin := 1.96 * stdDev

	snap := Snapshot{
		PredictedScore: score,
		ConfidenceInterval: Interval{
			Lower: clampScore(int(math.Round(float64(score) - margin))),
			Upper: clampScore(int(math.Round(float64(score) + margin))),
		},
		ApprovalProbability:  approvalProbability(float64(score), stdDev, float64(p.CutoffScore)),
		PredictionConfidence: predictionConfidence(totalAnswered, perfs),
		Strengths:            strengths(perfs),
		Weaknesses:           weaknesses(perfs),
		Recommendations:      p.recommendations(perfs),
		Breakdown:            p.breakdown(perfs, totalWeight),
		GeneratedAt:          now,
	}
	return snap
}

// breakdown computes each subject's predicted accuracy, exam-point
// contribution, and status tier.
func (p Predictor) breakdown(perfs []SubjectPerformance, totalWeight int) []Breakdown {
	out := make([]Breakdown, 0, len(perfs))
	for _, perf := range perfs {
		acc := AccuracyFor(perf.Rating)
		w := float64(perf.Weight) / float64(totalWeight)
		contribution := acc / 100 * w * float64(p.ExamQuestions)

		out = append(out, Breakdown{
			Subject:           perf.Subject,
			Weight:            perf.Weight,
			PredictedAccuracy: int(math.Round(acc)),
			Contribution:      math.Round(contribution*10) / 10,
			Status:            statusFor(acc),
		})
	}
	return out
}

// statusFor tiers a predicted accuracy percentage.
func statusFor(accuracy float64) SubjectStatus {
	switch {
	case accuracy >= 85:
		return StatusStrong
	case accuracy <= 35:
		return StatusCritical
	case accuracy < 55:
		return StatusWeak
	default:
		return StatusAverage
	}
}

// strengths lists up to three subjects with solid ratings and enough
// answers to trust the number.
func strengths(perfs []SubjectPerformance) []string {
	sorted := append([]SubjectPerformance(nil), perfs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	var out []string
	for _, perf := range sorted {
		if perf.Rating >= 1200 && perf.TotalQuestions >= 5 {
			out = append(out, perf.Subject)
			if len(out) == 3 {
				break
			}
		}
	}
	return out
}

// weaknesses lists up to three weak subjects whose syllabus weight makes
// them worth flagging, ordered by impact (rating gap × weight).
// Low-weight weak subjects are skipped: they don't move the needle.
func weaknesses(perfs []SubjectPerformance) []string {
	var weak []SubjectPerformance
	for _, perf := range perfs {
		if perf.Rating < 1000 && perf.Weight >= 2 {
			weak = append(weak, perf)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		return (1200-weak[i].Rating)*float64(weak[i].Weight) > (1200-weak[j].Rating)*float64(weak[j].Weight)
	})

	var out []string
	for _, perf := range weak {
		out = append(out, perf.Subject)
		if len(out) == 3 {
			break
		}
	}
	return out
}

// approvalProbability evaluates P(score >= cutoff) under a normal
// centered on the predicted score, as a 0-100 percentage. At cutoff the
// result is 50.
func approvalProbability(score, stdDev, cutoff float64) int {
	z := (score - cutoff) / math.Max(stdDev, 1)
	return int(math.Round(normalCDF(z) * 100))
}

// normalCDF approximates the standard normal CDF via the Abramowitz and
// Stegun erf expansion.
func normalCDF(z float64) float64 {
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	sign := 1.0
	if z < 0 {
		sign = -1
	}
	abs := math.Abs(z)
	t := 1 / (1 + p*abs)
	y := 1 - ((((a5*t+a4)*t+a3)*t+a2)*t+a1)*t*math.Exp(-abs*abs)
	return 0.5 * (1 + sign*y)
}

// sampleSizeVariance adds uncertainty for small samples.
func sampleSizeVariance(sampleSize int) float64 {
	switch {
	case sampleSize < 20:
		return 100
	case sampleSize < 50:
		return 50
	case sampleSize < 100:
		return 25
	case sampleSize < 200:
		return 10
	default:
		return 5
	}
}

// predictionConfidence scores how much to trust the forecast: answer
// volume (40%), subject coverage (30%), and average consistency (30%).
func predictionConfidence(totalAnswered int, perfs []SubjectPerformance) int {
	confidence := 0

	switch {
	case totalAnswered >= 200:
		confidence += 40
	case totalAnswered >= 100:
		confidence += 30
	case totalAnswered >= 50:
		confidence += 20
	case totalAnswered >= 20:
		confidence += 10
	}

	switch {
	case len(perfs) >= 10:
		confidence += 30
	case len(perfs) >= 5:
		confidence += 20
	case len(perfs) >= 3:
		confidence += 10
	}

	var consistencySum float64
	for _, perf := range perfs {
		consistencySum += perf.Consistency
	}
	if len(perfs) > 0 {
		confidence += int(math.Round(consistencySum / float64(len(perfs)) * 30))
	}

	return min(100, confidence)
}

// lowConfidenceValue tags predictions made from too little data.
const lowConfidenceValue = 10

// lowConfidence is the degraded result returned below MinSample. It is
// a valid forecast, deliberately wide, not an error.
func (p Predictor) lowConfidence(totalAnswered int, now time.Time) Snapshot {
	return Snapshot{
		PredictedScore:       50,
		ConfidenceInterval:   Interval{Lower: 30, Upper: 70},
		ApprovalProbability:  30,
		PredictionConfidence: lowConfidenceValue,
		Recommendations: []Recommendation{{
			Subject:  "all",
			Priority: PriorityCritical,
			Reason: fmt.Sprintf("Answer %d more questions to unlock a reliable prediction.",
				p.MinSample-totalAnswered),
		}},
		GeneratedAt: now,
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
