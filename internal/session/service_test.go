package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rmaia/aprovado/internal/planner"
	"github.com/rmaia/aprovado/internal/srs"
	"github.com/rmaia/aprovado/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	answers     []store.AnswerEventData
	predictions []store.PredictionEventData
	lastAnswer  map[string]time.Time
	appendErr   error
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.answers = append(m.answers, data)
	return nil
}
func (m *mockEventRepo) AppendPrediction(_ context.Context, data store.PredictionEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.predictions = append(m.predictions, data)
	return nil
}
func (m *mockEventRepo) SubjectStats(_ context.Context, _ string) (store.SubjectCounts, error) {
	return store.SubjectCounts{}, nil
}
func (m *mockEventRepo) LatestAnswerTime(_ context.Context, subject string) (time.Time, error) {
	return m.lastAnswer[subject], nil
}
func (m *mockEventRepo) SessionAccuracies(_ context.Context, _ string) ([]float64, error) {
	return nil, nil
}

func sessionNow() time.Time {
	return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
}

func newTestService(snap *store.SnapshotData, events store.EventRepo) *Service {
	s := NewService(snap, events)
	s.now = sessionNow
	s.rng = rand.New(rand.NewPCG(1, 2))
	s.sched = srs.NewScheduler(s.now, s.rng)
	return s
}

func TestRecordAnswerCreatesCard(t *testing.T) {
	events := &mockEventRepo{}
	s := newTestService(nil, events)

	res, err := s.RecordAnswer(context.Background(), Answer{
		ItemID:     "q1",
		Subject:    "portugues",
		Topic:      "crase",
		Correct:    true,
		Effort:     srs.EffortMedium,
		ItemRating: 1000,
	})
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}

	if res.Quality != srs.QualityHesitant {
		t.Errorf("quality = %d, want %d", res.Quality, srs.QualityHesitant)
	}
	if res.Card.Interval != 1 || res.Card.Repetitions != 1 {
		t.Errorf("card interval/reps = %d/%d, want 1/1", res.Card.Interval, res.Card.Repetitions)
	}
	if res.Card.Topic != "crase" {
		t.Errorf("card topic = %q, want crase", res.Card.Topic)
	}

	card, ok := s.State().Cards["q1"]
	if !ok {
		t.Fatal("expected card q1 in state")
	}
	if !card.NextReview.Equal(sessionNow().AddDate(0, 0, 1)) {
		t.Errorf("next review = %v, want one day out", card.NextReview)
	}
}

func TestRecordAnswerUpdatesRatings(t *testing.T) {
	s := newTestService(nil, &mockEventRepo{})

	res, err := s.RecordAnswer(context.Background(), Answer{
		ItemID: "q1", Subject: "portugues", Correct: true, ItemRating: 1000,
	})
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}

	if res.Overall.Value != 1016 {
		t.Errorf("overall = %v, want 1016", res.Overall.Value)
	}
	if res.Overall.Matches != 1 {
		t.Errorf("matches = %d, want 1", res.Overall.Matches)
	}
	if got := s.State().Subjects["portugues"].Value; got != 1016 {
		t.Errorf("subject rating = %v, want 1016", got)
	}
}

func TestRecordAnswerAppendsEvent(t *testing.T) {
	events := &mockEventRepo{}
	s := newTestService(nil, events)

	_, err := s.RecordAnswer(context.Background(), Answer{
		ItemID: "q1", Subject: "portugues", Correct: true, ItemRating: 1000,
	})
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}

	if len(events.answers) != 1 {
		t.Fatalf("appended events = %d, want 1", len(events.answers))
	}
	ev := events.answers[0]
	if ev.SessionID != s.ID() {
		t.Errorf("session id = %q, want %q", ev.SessionID, s.ID())
	}
	if ev.RatingAfter != 1016 {
		t.Errorf("rating after = %d, want 1016", ev.RatingAfter)
	}
	if ev.Quality != int(srs.QualityHesitant) {
		t.Errorf("quality = %d, want %d", ev.Quality, srs.QualityHesitant)
	}
}

func TestRecordAnswerEventFailureLeavesStateUntouched(t *testing.T) {
	events := &mockEventRepo{appendErr: fmt.Errorf("disk full")}
	s := newTestService(nil, events)

	_, err := s.RecordAnswer(context.Background(), Answer{
		ItemID: "q1", Subject: "portugues", Correct: true, ItemRating: 1000,
	})
	if err == nil {
		t.Fatal("expected error from failing event repo")
	}

	if len(s.State().Cards) != 0 {
		t.Error("card committed despite event failure")
	}
	if s.State().Overall.Matches != 0 {
		t.Error("rating committed despite event failure")
	}
}

func TestRecordAnswerExplicitGrade(t *testing.T) {
	s := newTestService(nil, &mockEventRepo{})

	grade := srs.QualityWrong
	res, err := s.RecordAnswer(context.Background(), Answer{
		ItemID:     "q1",
		Subject:    "portugues",
		Correct:    true, // overridden by the failing grade
		Grade:      &grade,
		ItemRating: 1000,
	})
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}

	if res.Card.Repetitions != 0 || res.Card.Interval != 1 {
		t.Errorf("card reps/interval = %d/%d, want failed review 0/1",
			res.Card.Repetitions, res.Card.Interval)
	}
	if res.Overall.Value >= 1000 {
		t.Errorf("overall = %v, want a loss below 1000", res.Overall.Value)
	}
}

func TestRecordAnswerMissingItem(t *testing.T) {
	s := newTestService(nil, &mockEventRepo{})
	_, err := s.RecordAnswer(context.Background(), Answer{Subject: "portugues"})
	if err != ErrMissingItem {
		t.Fatalf("err = %v, want ErrMissingItem", err)
	}
}

func TestBuildBatchOnlyDueItems(t *testing.T) {
	s := newTestService(nil, &mockEventRepo{})

	// q1 reviewed and pushed out; q2 has no card so it is due now.
	_, err := s.RecordAnswer(context.Background(), Answer{
		ItemID: "q1", Subject: "portugues", Correct: true,
		Effort: srs.EffortEasy, ItemRating: 1000,
	})
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}

	batch := s.BuildBatch([]ReviewItem{
		{ID: "q1", Subject: "portugues"},
		{ID: "q2", Subject: "direito"},
	}, 0, DefaultSwitchRate)

	if len(batch) != 1 {
		t.Fatalf("batch size = %d, want 1", len(batch))
	}
	if batch[0].ID != "q2" {
		t.Errorf("batch item = %q, want q2", batch[0].ID)
	}
}

func TestBuildBatchDeduplicatesAndLimits(t *testing.T) {
	s := newTestService(nil, &mockEventRepo{})

	candidates := []ReviewItem{
		{ID: "q1", Subject: "a"},
		{ID: "q1", Subject: "a"},
		{ID: "q2", Subject: "b"},
		{ID: "q3", Subject: "c"},
	}

	batch := s.BuildBatch(candidates, 2, DefaultSwitchRate)
	if len(batch) != 2 {
		t.Fatalf("batch size = %d, want 2", len(batch))
	}

	seen := map[string]bool{}
	for _, it := range batch {
		if seen[it.ID] {
			t.Errorf("duplicate item %q in batch", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestBuildBatchConservation(t *testing.T) {
	s := newTestService(nil, &mockEventRepo{})

	candidates := []ReviewItem{
		{ID: "q1", Subject: "a", Topic: "t1"},
		{ID: "q2", Subject: "a", Topic: "t1"},
		{ID: "q3", Subject: "b", Topic: "t2"},
		{ID: "q4", Subject: "b", Topic: "t2"},
	}

	batch := s.BuildBatch(candidates, 0, 0.5)
	if len(batch) != len(candidates) {
		t.Fatalf("batch size = %d, want %d", len(batch), len(candidates))
	}
}

func TestDueSplit(t *testing.T) {
	s := newTestService(nil, &mockEventRepo{})

	_, err := s.RecordAnswer(context.Background(), Answer{
		ItemID: "q1", Subject: "portugues", Correct: true,
		Effort: srs.EffortEasy, ItemRating: 1000,
	})
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}

	p := s.DueSplit()
	if len(p.Due) != 0 {
		t.Errorf("due = %v, want none right after review", p.Due)
	}
	if len(p.NotDue) != 1 || p.NotDue[0] != "q1" {
		t.Errorf("not due = %v, want [q1]", p.NotDue)
	}
}

func TestSuggestNextCountsAnswersAsStudy(t *testing.T) {
	// Recent answers in portugues, recorded only in the event log, must
	// age it out of the never-studied bonus so direito comes up next.
	events := &mockEventRepo{lastAnswer: map[string]time.Time{
		"portugues": sessionNow().Add(-2 * time.Hour),
	}}
	s := newTestService(nil, events)
	s.Configure([]planner.Subject{
		{ID: "portugues", Name: "Português", Weight: 3},
		{ID: "direito", Name: "Direito Administrativo", Weight: 3},
	}, planner.DefaultConfig(), Exam{})

	sub, err := s.SuggestNext(context.Background())
	if err != nil {
		t.Fatalf("suggest next: %v", err)
	}
	if sub.ID != "direito" {
		t.Errorf("suggested %q, want direito", sub.ID)
	}
}

func TestSuggestNextNoSubjects(t *testing.T) {
	s := newTestService(nil, &mockEventRepo{})
	if _, err := s.SuggestNext(context.Background()); err == nil {
		t.Fatal("expected error with an empty plan")
	}
}

func TestConfigurePreservesStudyTime(t *testing.T) {
	s := newTestService(nil, &mockEventRepo{})

	s.Configure([]planner.Subject{
		{ID: "portugues", Name: "Português", Weight: 3},
	}, planner.DefaultConfig(), Exam{Name: "TRF", Date: "2026-06-10"})

	if err := s.RecordStudyBlock("portugues", 50); err != nil {
		t.Fatalf("record study block: %v", err)
	}

	// Re-import the plan with a new weight; minutes must survive.
	s.Configure([]planner.Subject{
		{ID: "portugues", Name: "Português", Weight: 4},
	}, planner.DefaultConfig(), Exam{Name: "TRF", Date: "2026-06-10"})

	sub := s.State().Plan["portugues"]
	if sub.TotalMinutes != 50 {
		t.Errorf("total minutes = %d, want 50", sub.TotalMinutes)
	}
	if sub.Weight != 4 {
		t.Errorf("weight = %d, want 4", sub.Weight)
	}
	if !sub.LastStudied.Equal(sessionNow()) {
		t.Errorf("last studied = %v, want %v", sub.LastStudied, sessionNow())
	}
}

func TestRecordStudyBlockUnknownSubject(t *testing.T) {
	s := newTestService(nil, &mockEventRepo{})
	if err := s.RecordStudyBlock("nope", 30); err == nil {
		t.Fatal("expected error for unknown subject")
	}
}
