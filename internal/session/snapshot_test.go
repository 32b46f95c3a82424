package session

import (
	"context"
	"testing"
	"time"

	"github.com/rmaia/aprovado/internal/planner"
	"github.com/rmaia/aprovado/internal/srs"
	"github.com/rmaia/aprovado/internal/store"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestService(nil, &mockEventRepo{})
	s.Configure([]planner.Subject{
		{ID: "portugues", Name: "Português", Weight: 3},
		{ID: "direito", Name: "Direito Administrativo", Weight: 5},
	}, planner.Config{
		DailyAvailableHours:  3,
		ExamDate:             "2026-06-10",
		RestDays:             []time.Weekday{time.Saturday, time.Sunday},
		PreferredStartTime:   "07:30",
		BlockDurationMinutes: 45,
		BreakDurationMinutes: 15,
	}, Exam{Name: "TRF", Date: "2026-06-10", CutoffScore: 60, TotalQuestions: 120})

	_, err := s.RecordAnswer(context.Background(), Answer{
		ItemID: "q1", Subject: "portugues", Topic: "crase",
		Correct: true, Effort: srs.EffortMedium, ItemRating: 1000,
	})
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if err := s.RecordStudyBlock("direito", 50); err != nil {
		t.Fatalf("record study block: %v", err)
	}

	data := s.SnapshotData()
	if data.Version != store.SnapshotVersion {
		t.Errorf("version = %d, want %d", data.Version, store.SnapshotVersion)
	}

	restored := StateFromSnapshot(data)

	card, ok := restored.Cards["q1"]
	if !ok {
		t.Fatal("expected card q1 after round trip")
	}
	orig := s.State().Cards["q1"]
	if card.Interval != orig.Interval || card.Repetitions != orig.Repetitions {
		t.Errorf("card = %d/%d, want %d/%d",
			card.Interval, card.Repetitions, orig.Interval, orig.Repetitions)
	}
	if !card.NextReview.Equal(orig.NextReview) {
		t.Errorf("next review = %v, want %v", card.NextReview, orig.NextReview)
	}
	if card.EaseFactor != orig.EaseFactor {
		t.Errorf("ease = %v, want %v", card.EaseFactor, orig.EaseFactor)
	}

	if restored.Overall.Value != 1016 || restored.Overall.Matches != 1 {
		t.Errorf("overall = %+v, want {1016 1}", restored.Overall)
	}
	if restored.Subjects["portugues"].Value != 1016 {
		t.Errorf("subject rating = %v, want 1016", restored.Subjects["portugues"].Value)
	}

	sub := restored.Plan["direito"]
	if sub.TotalMinutes != 50 {
		t.Errorf("total minutes = %d, want 50", sub.TotalMinutes)
	}
	if !sub.LastStudied.Equal(sessionNow()) {
		t.Errorf("last studied = %v, want %v", sub.LastStudied, sessionNow())
	}

	if restored.Config.DailyAvailableHours != 3 {
		t.Errorf("daily hours = %v, want 3", restored.Config.DailyAvailableHours)
	}
	if restored.Config.ExamDate != "2026-06-10" {
		t.Errorf("exam date = %q, want 2026-06-10", restored.Config.ExamDate)
	}
	if len(restored.Config.RestDays) != 2 {
		t.Errorf("rest days = %v, want two", restored.Config.RestDays)
	}
	if restored.Exam.CutoffScore != 60 || restored.Exam.TotalQuestions != 120 {
		t.Errorf("exam = %+v, want cutoff 60 over 120 questions", restored.Exam)
	}
}

func TestStateFromSnapshotSkipsBrokenCards(t *testing.T) {
	data := store.SnapshotData{
		Version: store.SnapshotVersion,
		Cards: map[string]store.CardData{
			"ok": {
				ItemID:     "ok",
				EaseFactor: 2.5,
				NextReview: sessionNow().Format(time.RFC3339),
				CreatedAt:  sessionNow().Format(time.RFC3339),
			},
			"broken": {
				ItemID:     "broken",
				NextReview: "not-a-time",
				CreatedAt:  sessionNow().Format(time.RFC3339),
			},
		},
	}

	ls := StateFromSnapshot(data)
	if _, ok := ls.Cards["ok"]; !ok {
		t.Error("expected valid card to load")
	}
	if _, ok := ls.Cards["broken"]; ok {
		t.Error("expected broken card to be skipped")
	}
}

func TestStateFromSnapshotDefaults(t *testing.T) {
	ls := StateFromSnapshot(store.SnapshotData{Version: store.SnapshotVersion})

	if ls.Overall.Value != 1000 || ls.Overall.Matches != 0 {
		t.Errorf("overall = %+v, want fresh rating", ls.Overall)
	}
	if ls.Config.BlockDurationMinutes != 50 {
		t.Errorf("block duration = %d, want default 50", ls.Config.BlockDurationMinutes)
	}
	if len(ls.Config.RestDays) != 1 || ls.Config.RestDays[0] != time.Sunday {
		t.Errorf("rest days = %v, want default Sunday", ls.Config.RestDays)
	}
}

func TestStateFromSnapshotZeroEaseGetsDefault(t *testing.T) {
	data := store.SnapshotData{
		Cards: map[string]store.CardData{
			"q1": {
				NextReview: sessionNow().Format(time.RFC3339),
				CreatedAt:  sessionNow().Format(time.RFC3339),
			},
		},
	}
	ls := StateFromSnapshot(data)
	if got := ls.Cards["q1"].EaseFactor; got != srs.DefaultEaseFactor {
		t.Errorf("ease = %v, want default %v", got, srs.DefaultEaseFactor)
	}
}
