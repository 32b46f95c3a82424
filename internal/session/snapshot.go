package session

import (
	"time"

	"github.com/rmaia/aprovado/internal/elo"
	"github.com/rmaia/aprovado/internal/planner"
	"github.com/rmaia/aprovado/internal/srs"
	"github.com/rmaia/aprovado/internal/store"
)

// StateFromSnapshot rebuilds learner state from its persisted form.
// Entries with unparseable timestamps are skipped rather than failing
// the whole load.
func StateFromSnapshot(data store.SnapshotData) LearnerState {
	ls := NewLearnerState()

	for id, cd := range data.Cards {
		card, ok := cardFromData(cd)
		if !ok {
			continue
		}
		if card.ItemID == "" {
			card.ItemID = id
		}
		ls.Cards[card.ItemID] = card
	}

	if data.Overall.Matches > 0 || data.Overall.Value != 0 {
		ls.Overall = elo.Rating{Value: data.Overall.Value, Matches: data.Overall.Matches}
	}
	for subject, rd := range data.Ratings {
		ls.Subjects[subject] = elo.Rating{Value: rd.Value, Matches: rd.Matches}
	}

	for id, sd := range data.Subjects {
		sub := planner.Subject{
			ID:           id,
			Name:         sd.Name,
			Weight:       sd.Weight,
			TotalMinutes: sd.TotalMinutes,
		}
		if sd.LastStudied != "" {
			if t, err := time.Parse(time.RFC3339, sd.LastStudied); err == nil {
				sub.LastStudied = t
			}
		}
		ls.Plan[id] = sub
	}

	ls.Config = configFromData(data.Scheduler)
	ls.Config.ExamDate = data.Exam.Date
	ls.Exam = Exam{
		Name:           data.Exam.Name,
		Date:           data.Exam.Date,
		CutoffScore:    data.Exam.CutoffScore,
		TotalQuestions: data.Exam.TotalQuestions,
	}
	return ls
}

// SnapshotData converts the current state to its persisted form.
func (s *Service) SnapshotData() store.SnapshotData {
	ls := s.state
	data := store.SnapshotData{
		Version: store.SnapshotVersion,
		Overall: store.RatingData{Value: ls.Overall.Value, Matches: ls.Overall.Matches},
		Scheduler: store.SchedulerData{
			DailyAvailableHours:  ls.Config.DailyAvailableHours,
			PreferredStartTime:   ls.Config.PreferredStartTime,
			BlockDurationMinutes: ls.Config.BlockDurationMinutes,
			BreakDurationMinutes: ls.Config.BreakDurationMinutes,
		},
		Exam: store.ExamData{
			Name:           ls.Exam.Name,
			Date:           ls.Exam.Date,
			CutoffScore:    ls.Exam.CutoffScore,
			TotalQuestions: ls.Exam.TotalQuestions,
		},
	}

	for _, d := range ls.Config.RestDays {
		data.Scheduler.RestDays = append(data.Scheduler.RestDays, int(d))
	}

	if len(ls.Cards) > 0 {
		data.Cards = make(map[string]store.CardData, len(ls.Cards))
		for id, card := range ls.Cards {
			data.Cards[id] = cardToData(card)
		}
	}
	if len(ls.Subjects) > 0 {
		data.Ratings = make(map[string]store.RatingData, len(ls.Subjects))
		for subject, r := range ls.Subjects {
			data.Ratings[subject] = store.RatingData{Value: r.Value, Matches: r.Matches}
		}
	}
	if len(ls.Plan) > 0 {
		data.Subjects = make(map[string]store.SubjectData, len(ls.Plan))
		for id, sub := range ls.Plan {
			sd := store.SubjectData{
				Name:         sub.Name,
				Weight:       sub.Weight,
				TotalMinutes: sub.TotalMinutes,
			}
			if !sub.LastStudied.IsZero() {
				sd.LastStudied = sub.LastStudied.Format(time.RFC3339)
			}
			data.Subjects[id] = sd
		}
	}
	return data
}

func cardFromData(cd store.CardData) (srs.Card, bool) {
	next, err := time.Parse(time.RFC3339, cd.NextReview)
	if err != nil {
		return srs.Card{}, false
	}
	created, err := time.Parse(time.RFC3339, cd.CreatedAt)
	if err != nil {
		return srs.Card{}, false
	}

	card := srs.Card{
		ItemID:               cd.ItemID,
		EaseFactor:           cd.EaseFactor,
		Interval:             cd.Interval,
		Repetitions:          cd.Repetitions,
		NextReview:           next,
		CreatedAt:            created,
		TotalReviews:         cd.TotalReviews,
		CorrectReviews:       cd.CorrectReviews,
		ConsecutiveCorrect:   cd.ConsecutiveCorrect,
		ConsecutiveIncorrect: cd.ConsecutiveIncorrect,
		Discipline:           cd.Discipline,
		Topic:                cd.Topic,
	}
	if cd.LastReview != "" {
		if t, err := time.Parse(time.RFC3339, cd.LastReview); err == nil {
			card.LastReview = t
		}
	}
	if card.EaseFactor == 0 {
		card.EaseFactor = srs.DefaultEaseFactor
	}
	return card, true
}

func cardToData(card srs.Card) store.CardData {
	cd := store.CardData{
		ItemID:               card.ItemID,
		EaseFactor:           card.EaseFactor,
		Interval:             card.Interval,
		Repetitions:          card.Repetitions,
		NextReview:           card.NextReview.Format(time.RFC3339),
		CreatedAt:            card.CreatedAt.Format(time.RFC3339),
		TotalReviews:         card.TotalReviews,
		CorrectReviews:       card.CorrectReviews,
		ConsecutiveCorrect:   card.ConsecutiveCorrect,
		ConsecutiveIncorrect: card.ConsecutiveIncorrect,
		Discipline:           card.Discipline,
		Topic:                card.Topic,
	}
	if !card.LastReview.IsZero() {
		cd.LastReview = card.LastReview.Format(time.RFC3339)
	}
	return cd
}

func configFromData(sd store.SchedulerData) planner.Config {
	cfg := planner.DefaultConfig()
	if sd.DailyAvailableHours > 0 {
		cfg.DailyAvailableHours = sd.DailyAvailableHours
	}
	if sd.PreferredStartTime != "" {
		cfg.PreferredStartTime = sd.PreferredStartTime
	}
	if sd.BlockDurationMinutes > 0 {
		cfg.BlockDurationMinutes = sd.BlockDurationMinutes
	}
	if sd.BreakDurationMinutes > 0 {
		cfg.BreakDurationMinutes = sd.BreakDurationMinutes
	}
	if sd.RestDays != nil {
		cfg.RestDays = nil
		for _, d := range sd.RestDays {
			cfg.RestDays = append(cfg.RestDays, time.Weekday(d))
		}
	}
	return cfg
}
