package srs

import "time"

// matureIntervalDays: cards at or beyond this interval count as mature.
const matureIntervalDays = 21

// DeckStats summarizes the state of a card collection at a point in time.
type DeckStats struct {
	Total         int     `json:"total"`
	DueNow        int     `json:"due_now"`
	New           int     `json:"new"`
	Learning      int     `json:"learning"`
	Mature        int     `json:"mature"`
	ReviewedToday int     `json:"reviewed_today"`
	AverageEase   float64 `json:"average_ease"`
	RetentionRate float64 `json:"retention_rate"` // 0-100
}

// Stats computes deck statistics for the given cards.
func Stats(cards []Card, now time.Time) DeckStats {
	st := DeckStats{Total: len(cards)}
	if len(cards) == 0 {
		st.AverageEase = DefaultEaseFactor
		return st
	}

	y, m, d := now.Date()
	var easeSum, retentionSum float64
	for _, c := range cards {
		if c.IsDue(now) {
			st.DueNow++
		}
		switch {
		case c.Repetitions == 0:
			st.New++
		case c.Interval >= matureIntervalDays:
			st.Mature++
		default:
			st.Learning++
		}
		if !c.LastReview.IsZero() {
			ly, lm, ld := c.LastReview.Date()
			if ly == y && lm == m && ld == d {
				st.ReviewedToday++
			}
		}
		easeSum += c.EaseFactor
		if c.TotalReviews > 0 {
			retentionSum += float64(c.CorrectReviews) / float64(c.TotalReviews)
		}
	}

	st.AverageEase = easeSum / float64(len(cards))
	st.RetentionRate = retentionSum / float64(len(cards)) * 100
	return st
}

// ForecastDay is the number of cards scheduled to come due on one day.
type ForecastDay struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// Forecast returns the per-day review load for the next `days` days,
// starting today. Cards already overdue count toward day zero.
func Forecast(cards []Card, now time.Time, days int) []ForecastDay {
	out := make([]ForecastDay, 0, days)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i)
		next := day.AddDate(0, 0, 1)

		count := 0
		for _, c := range cards {
			due := c.NextReview
			if i == 0 {
				if due.Before(next) {
					count++
				}
				continue
			}
			if !due.Before(day) && due.Before(next) {
				count++
			}
		}
		out = append(out, ForecastDay{Date: day.Format("2006-01-02"), Count: count})
	}
	return out
}
