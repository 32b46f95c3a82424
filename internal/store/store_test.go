package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: SnapshotVersion,
			Overall: RatingData{Value: 1016, Matches: 1},
			Cards: map[string]CardData{
				"const-art5": {
					ItemID:     "const-art5",
					EaseFactor: 2.5,
					Interval:   3,
					NextReview: now.AddDate(0, 0, 3).Format(time.RFC3339),
					CreatedAt:  now.Format(time.RFC3339),
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Overall.Value != 1016 {
		t.Errorf("overall rating = %v, want 1016", snap.Data.Overall.Value)
	}
	card, ok := snap.Data.Cards["const-art5"]
	if !ok {
		t.Fatal("expected card const-art5 in snapshot")
	}
	if card.Interval != 3 {
		t.Errorf("card interval = %d, want 3", card.Interval)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAnswerAndSubjectStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", ItemID: "q1", Subject: "direito-constitucional", Correct: true, Quality: 4, ItemRating: 1000, RatingAfter: 1016},
		{SessionID: "s1", ItemID: "q2", Subject: "direito-constitucional", Correct: false, Quality: 1, ItemRating: 1200, RatingAfter: 1010},
		{SessionID: "s1", ItemID: "q3", Subject: "portugues", Topic: "crase", Correct: true, Quality: 5, ItemRating: 800, RatingAfter: 1014},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.SubjectStats(ctx, "direito-constitucional")
	if err != nil {
		t.Fatalf("subject stats: %v", err)
	}
	if stats.Total != 2 || stats.Correct != 1 {
		t.Errorf("stats = %+v, want {Correct:1 Total:2}", stats)
	}

	stats, err = repo.SubjectStats(ctx, "matematica")
	if err != nil {
		t.Fatalf("subject stats (empty): %v", err)
	}
	if stats.Total != 0 {
		t.Errorf("total = %d, want 0 for unseen subject", stats.Total)
	}
}

func TestLatestAnswerTime(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ts, err := repo.LatestAnswerTime(ctx, "portugues")
	if err != nil {
		t.Fatalf("latest answer time (empty): %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("expected zero time for unseen subject, got %v", ts)
	}

	err = repo.AppendAnswer(ctx, AnswerEventData{
		SessionID: "s1", ItemID: "q1", Subject: "portugues",
		Correct: true, Quality: 4, ItemRating: 1000, RatingAfter: 1016,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	ts, err = repo.LatestAnswerTime(ctx, "portugues")
	if err != nil {
		t.Fatalf("latest answer time: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected non-zero timestamp after append")
	}

	ts, err = repo.LatestAnswerTime(ctx, "matematica")
	if err != nil {
		t.Fatalf("latest answer time (other subject): %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("expected zero time for a subject never answered, got %v", ts)
	}
}

func TestSessionAccuracies(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Session s1: 2/2 correct, session s2: 1/2 correct.
	answers := []AnswerEventData{
		{SessionID: "s1", ItemID: "q1", Subject: "portugues", Correct: true, Quality: 4, ItemRating: 1000, RatingAfter: 1016},
		{SessionID: "s1", ItemID: "q2", Subject: "portugues", Correct: true, Quality: 5, ItemRating: 1000, RatingAfter: 1031},
		{SessionID: "s2", ItemID: "q1", Subject: "portugues", Correct: true, Quality: 4, ItemRating: 1000, RatingAfter: 1045},
		{SessionID: "s2", ItemID: "q3", Subject: "portugues", Correct: false, Quality: 1, ItemRating: 1000, RatingAfter: 1028},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	accs, err := repo.SessionAccuracies(ctx, "portugues")
	if err != nil {
		t.Fatalf("session accuracies: %v", err)
	}
	want := []float64{1.0, 0.5}
	if len(accs) != len(want) {
		t.Fatalf("got %d sessions, want %d", len(accs), len(want))
	}
	for i := range want {
		if accs[i] != want[i] {
			t.Errorf("accs[%d] = %v, want %v", i, accs[i], want[i])
		}
	}
}

func TestAppendPrediction(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendPrediction(ctx, PredictionEventData{
		PredictedScore:       72,
		ApprovalProbability:  81,
		PredictionConfidence: 64,
		Data:                 map[string]any{"sample_size": 120},
	})
	if err != nil {
		t.Fatalf("append prediction: %v", err)
	}

	count, err := s.Client().PredictionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("prediction events = %d, want 1", count)
	}
}
