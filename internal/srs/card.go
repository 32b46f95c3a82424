package srs

import "time"

// Card holds the spaced repetition state for a single practiced item.
// Cards are created lazily: none exists until the learner first answers
// the underlying item.
type Card struct {
	ItemID string `json:"item_id"`

	// EaseFactor governs long-run interval growth. Never below
	// MinEaseFactor.
	EaseFactor float64 `json:"ease_factor"`
	// Interval is the days until the next scheduled review. Zero means
	// the card has never had a qualifying review.
	Interval int `json:"interval"`
	// Repetitions counts consecutive successful reviews since the last
	// reset.
	Repetitions int `json:"repetitions"`

	NextReview time.Time `json:"next_review"`
	LastReview time.Time `json:"last_review"` // zero if never reviewed
	CreatedAt  time.Time `json:"created_at"`

	TotalReviews   int `json:"total_reviews"`
	CorrectReviews int `json:"correct_reviews"`

	// Exactly one of these is non-zero after any review.
	ConsecutiveCorrect   int `json:"consecutive_correct"`
	ConsecutiveIncorrect int `json:"consecutive_incorrect"`

	Discipline string `json:"discipline"`
	Topic      string `json:"topic"`
}

// NewCard creates a card for an item answered for the first time. The
// card is immediately due.
func NewCard(itemID, discipline, topic string, now time.Time) Card {
	return Card{
		ItemID:     itemID,
		EaseFactor: DefaultEaseFactor,
		Interval:   0,
		NextReview: now,
		CreatedAt:  now,
		Discipline: discipline,
		Topic:      topic,
	}
}

// IsDue returns true if the card is at or past its scheduled review time.
func (c Card) IsDue(now time.Time) bool {
	return !now.Before(c.NextReview)
}

// Overdue returns how far past due the card is, or zero if not yet due.
func (c Card) Overdue(now time.Time) time.Duration {
	if now.Before(c.NextReview) {
		return 0
	}
	return now.Sub(c.NextReview)
}

// Accuracy returns the lifetime fraction of passing reviews, or zero for
// a never-reviewed card.
func (c Card) Accuracy() float64 {
	if c.TotalReviews == 0 {
		return 0
	}
	return float64(c.CorrectReviews) / float64(c.TotalReviews)
}
