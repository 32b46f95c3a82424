package session

import (
	"context"
	"testing"

	"github.com/rmaia/aprovado/internal/planner"
	"github.com/rmaia/aprovado/internal/store"
)

// statsEventRepo serves canned per-subject stats.
type statsEventRepo struct {
	mockEventRepo
	counts map[string]store.SubjectCounts
	accs   map[string][]float64
}

func (m *statsEventRepo) SubjectStats(_ context.Context, subject string) (store.SubjectCounts, error) {
	return m.counts[subject], nil
}
func (m *statsEventRepo) SessionAccuracies(_ context.Context, subject string) ([]float64, error) {
	return m.accs[subject], nil
}

func TestPredictorUsesExamConfig(t *testing.T) {
	s := newTestService(nil, &mockEventRepo{})
	s.Configure(nil, planner.DefaultConfig(), Exam{CutoffScore: 70, TotalQuestions: 80})

	p := s.Predictor()
	if p.CutoffScore != 70 || p.ExamQuestions != 80 {
		t.Errorf("predictor = %+v, want cutoff 70 over 80 questions", p)
	}
}

func TestPredictorDefaultsWithoutExam(t *testing.T) {
	s := newTestService(nil, &mockEventRepo{})
	p := s.Predictor()
	if p.CutoffScore != 60 || p.ExamQuestions != 120 {
		t.Errorf("predictor = %+v, want defaults 60/120", p)
	}
}

func TestSubjectPerformances(t *testing.T) {
	events := &statsEventRepo{
		counts: map[string]store.SubjectCounts{
			"portugues": {Correct: 30, Total: 40},
		},
		accs: map[string][]float64{
			"portugues": {0.7, 0.8, 0.75},
		},
	}
	s := newTestService(nil, events)
	s.Configure([]planner.Subject{
		{ID: "portugues", Name: "Português", Weight: 3},
		{ID: "dir-admin", Name: "Direito Administrativo", Weight: 5},
	}, planner.DefaultConfig(), Exam{})

	perfs, err := s.SubjectPerformances(context.Background())
	if err != nil {
		t.Fatalf("subject performances: %v", err)
	}
	if len(perfs) != 2 {
		t.Fatalf("perfs = %d, want 2", len(perfs))
	}

	// Sorted by subject ID: dir-admin first.
	if perfs[0].Subject != "dir-admin" {
		t.Errorf("first subject = %q, want dir-admin", perfs[0].Subject)
	}
	if perfs[0].TotalQuestions != 0 || perfs[0].Consistency != 0.5 {
		t.Errorf("unseen subject perf = %+v, want empty counts and neutral consistency", perfs[0])
	}

	pt := perfs[1]
	if pt.TotalQuestions != 40 || pt.CorrectAnswers != 30 {
		t.Errorf("counts = %d/%d, want 30/40", pt.CorrectAnswers, pt.TotalQuestions)
	}
	if pt.Consistency <= 0.8 {
		t.Errorf("consistency = %v, want high for stable sessions", pt.Consistency)
	}
}

func TestPredictAppendsEvent(t *testing.T) {
	events := &statsEventRepo{
		counts: map[string]store.SubjectCounts{"portugues": {Correct: 5, Total: 10}},
	}
	s := newTestService(nil, events)
	s.Configure([]planner.Subject{
		{ID: "portugues", Name: "Português", Weight: 3},
	}, planner.DefaultConfig(), Exam{})

	snap, err := s.Predict(context.Background())
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	// Ten answers is below the minimum sample, so the low-data guard fires.
	if snap.PredictedScore != 50 {
		t.Errorf("score = %d, want neutral 50", snap.PredictedScore)
	}
	if len(events.predictions) != 1 {
		t.Fatalf("prediction events = %d, want 1", len(events.predictions))
	}
	if events.predictions[0].PredictedScore != 50 {
		t.Errorf("event score = %d, want 50", events.predictions[0].PredictedScore)
	}
	if events.predictions[0].Data["sample_size"] != 10 {
		t.Errorf("sample size = %v, want 10", events.predictions[0].Data["sample_size"])
	}
}

func TestConsistencyFrom(t *testing.T) {
	tests := []struct {
		name string
		accs []float64
		min  float64
		max  float64
	}{
		{"no sessions", nil, 0.5, 0.5},
		{"one session", []float64{0.9}, 0.5, 0.5},
		{"identical sessions", []float64{0.8, 0.8, 0.8}, 1, 1},
		{"wild swings", []float64{0, 1, 0, 1}, 0, 0},
		{"mild variation", []float64{0.7, 0.75, 0.8}, 0.8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := consistencyFrom(tt.accs)
			if got < tt.min || got > tt.max {
				t.Errorf("consistency = %v, want in [%v, %v]", got, tt.min, tt.max)
			}
		})
	}
}
