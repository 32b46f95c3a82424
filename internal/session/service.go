package session

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rmaia/aprovado/internal/elo"
	"github.com/rmaia/aprovado/internal/interleave"
	"github.com/rmaia/aprovado/internal/planner"
	"github.com/rmaia/aprovado/internal/queue"
	"github.com/rmaia/aprovado/internal/srs"
	"github.com/rmaia/aprovado/internal/store"
)

// ErrMissingItem is returned when an answer has no item ID.
var ErrMissingItem = fmt.Errorf("session: missing item id")

// DefaultSwitchRate is the topic-switch probability used when building
// review batches without an explicit rate.
const DefaultSwitchRate = 0.6

// Service provides review and scheduling operations over learner state.
type Service struct {
	state  LearnerState
	sched  *srs.Scheduler
	events store.EventRepo

	now func() time.Time
	rng *rand.Rand
	id  string
}

// NewService creates a session service, loading state from the snapshot.
// A nil snapshot starts a fresh learner; a nil event repo disables the
// event log.
func NewService(snap *store.SnapshotData, events store.EventRepo) *Service {
	s := &Service{
		state:  NewLearnerState(),
		events: events,
		now:    time.Now,
		id:     uuid.NewString(),
	}
	t := s.now()
	s.rng = rand.New(rand.NewPCG(uint64(t.UnixNano()), uint64(t.Unix())))
	s.sched = srs.NewScheduler(s.now, s.rng)

	if snap != nil {
		s.state = StateFromSnapshot(*snap)
	}
	return s
}

// ID returns the session identifier grouping this sitting's events.
func (s *Service) ID() string { return s.id }

// State returns the current learner state. The maps are live references;
// callers must not mutate them.
func (s *Service) State() LearnerState { return s.state }

// Configure replaces the study plan, scheduler settings and target exam.
// Accumulated study time carries over for subjects already in the plan.
func (s *Service) Configure(subjects []planner.Subject, cfg planner.Config, exam Exam) {
	plan := make(map[string]planner.Subject, len(subjects))
	for _, sub := range subjects {
		if prev, ok := s.state.Plan[sub.ID]; ok {
			sub.TotalMinutes = prev.TotalMinutes
			sub.LastStudied = prev.LastStudied
		}
		plan[sub.ID] = sub
	}
	s.state.Plan = plan
	s.state.Config = cfg
	s.state.Exam = exam
}

// Answer is one answered question.
type Answer struct {
	ItemID  string
	Subject string
	Topic   string
	Correct bool

	// Effort refines the simplified outcome into an SM-2 quality grade.
	// Ignored when Grade is set.
	Effort srs.Effort

	// Grade, when non-nil, is the explicit 0..5 review quality. Correct
	// is derived from it.
	Grade *srs.Quality

	// ItemRating is the Elo rating of the answered item.
	ItemRating float64
}

// AnswerResult reports the state after one recorded answer.
type AnswerResult struct {
	Card    srs.Card
	Quality srs.Quality
	Overall elo.Rating
	Subject elo.Rating
}

// RecordAnswer applies one answer: the card advances through the SM-2
// scheduler, the overall and per-subject Elo ratings update, and an
// answer event is appended. State is only committed once the event is
// durably recorded.
func (s *Service) RecordAnswer(ctx context.Context, ans Answer) (AnswerResult, error) {
	if ans.ItemID == "" {
		return AnswerResult{}, ErrMissingItem
	}

	quality := srs.QualityFor(ans.Correct, ans.Effort)
	if ans.Grade != nil {
		quality = *ans.Grade
		ans.Correct = quality.Pass()
	}

	card, ok := s.state.Cards[ans.ItemID]
	if !ok {
		card = srs.NewCard(ans.ItemID, ans.Subject, ans.Topic, s.now())
	}
	next, err := s.sched.Next(card, quality)
	if err != nil {
		return AnswerResult{}, fmt.Errorf("schedule next review: %w", err)
	}

	overall := s.state.Overall.Record(ans.ItemRating, ans.Correct)
	subject := s.subjectRating(ans.Subject).Record(ans.ItemRating, ans.Correct)

	if s.events != nil {
		err := s.events.AppendAnswer(ctx, store.AnswerEventData{
			SessionID:   s.id,
			ItemID:      ans.ItemID,
			Subject:     ans.Subject,
			Topic:       ans.Topic,
			Correct:     ans.Correct,
			Quality:     int(quality),
			ItemRating:  ans.ItemRating,
			RatingAfter: int(math.Round(overall.Value)),
		})
		if err != nil {
			return AnswerResult{}, fmt.Errorf("append answer event: %w", err)
		}
	}

	s.state.Cards[ans.ItemID] = next
	s.state.Overall = overall
	if ans.Subject != "" {
		s.state.Subjects[ans.Subject] = subject
	}

	return AnswerResult{Card: next, Quality: quality, Overall: overall, Subject: subject}, nil
}

func (s *Service) subjectRating(subject string) elo.Rating {
	if subject == "" {
		return elo.NewRating()
	}
	if r, ok := s.state.Subjects[subject]; ok {
		return r
	}
	return elo.NewRating()
}

// ReviewItem is one reviewable question offered to the batch builder.
type ReviewItem struct {
	ID      string
	Subject string
	Topic   string
	Rating  float64
}

// BuildBatch selects the due items from candidates, most overdue first,
// and interleaves them across topics. Items without a topic group under
// their subject. A limit of zero means no cap.
func (s *Service) BuildBatch(candidates []ReviewItem, limit int, switchRate float64) []ReviewItem {
	ids := make([]string, 0, len(candidates))
	byID := make(map[string]ReviewItem, len(candidates))
	for _, it := range candidates {
		if _, dup := byID[it.ID]; dup {
			continue
		}
		ids = append(ids, it.ID)
		byID[it.ID] = it
	}

	due := queue.Split(ids, s.state.Cards, s.now()).Due

	byTopic := make(map[string][]ReviewItem)
	for _, id := range due {
		it := byID[id]
		key := it.Topic
		if key == "" {
			key = it.Subject
		}
		if key == "" {
			key = "general"
		}
		byTopic[key] = append(byTopic[key], it)
	}

	mixed := interleave.Mix(byTopic, switchRate, s.rng)
	if limit > 0 && len(mixed) > limit {
		mixed = mixed[:limit]
	}
	return mixed
}

// DueSplit partitions the known cards into due and not-yet-due item IDs.
func (s *Service) DueSplit() queue.Partition {
	ids := make([]string, 0, len(s.state.Cards))
	for id := range s.state.Cards {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return queue.Split(ids, s.state.Cards, s.now())
}

// SuggestNext picks the plan subject to study next. Answering questions
// counts as studying a subject, so recency from the answer event log is
// folded into each subject's last-studied time before scoring.
func (s *Service) SuggestNext(ctx context.Context) (planner.Subject, error) {
	subjects := s.state.PlanSubjects()
	if s.events != nil {
		for i, sub := range subjects {
			ts, err := s.events.LatestAnswerTime(ctx, sub.ID)
			if err != nil {
				return planner.Subject{}, fmt.Errorf("latest answer time: %w", err)
			}
			if ts.After(sub.LastStudied) {
				subjects[i].LastStudied = ts
			}
		}
	}
	return planner.SuggestNext(subjects, s.state.SubjectRatings(), s.now())
}

// Stats summarizes the card deck.
func (s *Service) Stats() srs.DeckStats {
	return srs.Stats(s.cardList(), s.now())
}

// Forecast returns the review load for the next days.
func (s *Service) Forecast(days int) []srs.ForecastDay {
	return srs.Forecast(s.cardList(), s.now(), days)
}

func (s *Service) cardList() []srs.Card {
	cards := make([]srs.Card, 0, len(s.state.Cards))
	for _, c := range s.state.Cards {
		cards = append(cards, c)
	}
	return cards
}

// RecordStudyBlock accumulates study time on a plan subject.
func (s *Service) RecordStudyBlock(subjectID string, minutes int) error {
	sub, ok := s.state.Plan[subjectID]
	if !ok {
		return fmt.Errorf("session: unknown subject %q", subjectID)
	}
	if minutes <= 0 {
		return fmt.Errorf("session: study minutes must be positive")
	}
	sub.TotalMinutes += minutes
	sub.LastStudied = s.now()
	s.state.Plan[subjectID] = sub
	return nil
}
