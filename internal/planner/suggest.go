package planner

import (
	"sort"
	"time"
)

// SuggestNext picks the subject the learner should study next. Scoring
// favors, in combination: subjects never studied, subjects not touched
// for days, weak ratings, and high syllabus weight. The ratings map may
// be nil, in which case staleness and weight alone decide.
func SuggestNext(subjects []Subject, ratings map[string]float64, now time.Time) (Subject, error) {
	if len(subjects) == 0 {
		return Subject{}, ErrNoSubjects
	}

	type scored struct {
		subject Subject
		score   float64
	}

	list := make([]scored, len(subjects))
	for i, s := range subjects {
		score := float64(s.Weight) * 10

		if s.LastStudied.IsZero() {
			// Never studied wins over any staleness bonus short of ten days.
			score += 50
		} else {
			score += float64(daysSince(s.LastStudied, now)) * 5
		}

		if rating, ok := ratings[s.ID]; ok {
			if rating < 1000 {
				score += 30
			} else if rating < 1200 {
				score += 15
			}
		}

		list[i] = scored{subject: s, score: score}
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].score > list[j].score
	})
	return list[0].subject, nil
}
