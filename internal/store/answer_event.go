package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rmaia/aprovado/ent"
	"github.com/rmaia/aprovado/ent/answerevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetItemID(data.ItemID).
		SetSubject(data.Subject).
		SetCorrect(data.Correct).
		SetQuality(data.Quality).
		SetItemRating(data.ItemRating).
		SetRatingAfter(data.RatingAfter)

	if data.Topic != "" {
		builder = builder.SetTopic(data.Topic)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SubjectStats(ctx context.Context, subject string) (SubjectCounts, error) {
	total, err := r.client.AnswerEvent.Query().
		Where(answerevent.Subject(subject)).
		Count(ctx)
	if err != nil {
		return SubjectCounts{}, fmt.Errorf("count subject answers: %w", err)
	}

	correct, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.Subject(subject),
			answerevent.Correct(true),
		).
		Count(ctx)
	if err != nil {
		return SubjectCounts{}, fmt.Errorf("count correct answers: %w", err)
	}

	return SubjectCounts{Correct: correct, Total: total}, nil
}

func (r *eventRepo) LatestAnswerTime(ctx context.Context, subject string) (time.Time, error) {
	ae, err := r.client.AnswerEvent.Query().
		Where(answerevent.Subject(subject)).
		Order(ent.Desc(answerevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest answer time: %w", err)
	}
	return ae.Timestamp, nil
}

func (r *eventRepo) SessionAccuracies(ctx context.Context, subject string) ([]float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.Subject(subject)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subject answers: %w", err)
	}
	if len(events) == 0 {
		return nil, nil
	}

	// Group by session in first-seen order.
	type tally struct {
		correct int
		total   int
	}
	var order []string
	tallies := make(map[string]*tally)
	for _, e := range events {
		tl, ok := tallies[e.SessionID]
		if !ok {
			tl = &tally{}
			tallies[e.SessionID] = tl
			order = append(order, e.SessionID)
		}
		tl.total++
		if e.Correct {
			tl.correct++
		}
	}

	accuracies := make([]float64, 0, len(order))
	for _, id := range order {
		tl := tallies[id]
		accuracies = append(accuracies, float64(tl.correct)/float64(tl.total))
	}
	return accuracies, nil
}
