package elo

// Rating is a learner-side rating: either the overall rating or a
// per-subject one. The zero value is not meaningful; use NewRating.
type Rating struct {
	Value   float64 `json:"value"`
	Matches int     `json:"matches"`
}

// NewRating returns the rating for a learner with no recorded attempts.
func NewRating() Rating {
	return Rating{Value: InitialRating, Matches: 0}
}

// Record returns the rating after one attempt against an item rated
// opponent. The K-factor is chosen from the attempt count before this
// attempt. The receiver is not modified.
func (r Rating) Record(opponent float64, correct bool) Rating {
	actual := 0.0
	if correct {
		actual = 1.0
	}
	k := KFactor(r.Matches)
	return Rating{
		Value:   float64(Update(r.Value, opponent, actual, k)),
		Matches: r.Matches + 1,
	}
}

// Band returns the display band for this rating.
func (r Rating) Band() Band {
	return BandFor(r.Value)
}
