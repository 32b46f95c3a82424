// Package elo implements the rating engine that adapts perceived question
// difficulty to the learner's demonstrated ability. Ratings follow the
// standard Elo update rule with a two-step K-factor schedule: high
// volatility while a learner (or subject) is new, lower volatility once
// enough attempts have accumulated.
package elo

import "math"

const (
	// InitialRating is the rating assigned to a new learner or subject.
	InitialRating = 1000

	// InitialKFactor applies while fewer than StabilizationMatches
	// attempts have been recorded.
	InitialKFactor = 32

	// MinKFactor applies once the rating has stabilized.
	MinKFactor = 16

	// StabilizationMatches is the attempt count at which the K-factor
	// drops from InitialKFactor to MinKFactor.
	StabilizationMatches = 30
)

// ExpectedScore returns the probability that a learner rated `rating`
// answers an item rated `opponent` correctly.
//
// P = 1 / (1 + 10^((opponent - rating) / 400))
func ExpectedScore(rating, opponent float64) float64 {
	return 1 / (1 + math.Pow(10, (opponent-rating)/400))
}

// Update returns the new rating after one attempt. actual is 1 for a
// correct answer and 0 for an incorrect one. The result is rounded to the
// nearest integer, matching how ratings are stored and displayed.
func Update(rating, opponent, actual, kFactor float64) int {
	return int(math.Round(rating + kFactor*(actual-ExpectedScore(rating, opponent))))
}

// KFactor returns the volatility constant for a learner who has played
// matchesPlayed attempts before the current one.
func KFactor(matchesPlayed int) float64 {
	if matchesPlayed < StabilizationMatches {
		return InitialKFactor
	}
	return MinKFactor
}

// Difficulty is the editorial difficulty band of an item that has no
// measured rating yet.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// SeedRating estimates an initial Elo rating for an item from its
// difficulty band.
func SeedRating(d Difficulty) float64 {
	switch d {
	case DifficultyEasy:
		return 800
	case DifficultyHard:
		return 1200
	case DifficultyExpert:
		return 1400
	default:
		return 1000
	}
}

// Band is a display label for a rating range. It is informational only
// and never drives engine behavior.
type Band string

const (
	BandBeginner     Band = "beginner"
	BandIntermediate Band = "intermediate"
	BandAdvanced     Band = "advanced"
	BandExpert       Band = "expert"
)

// BandFor returns the display band for a rating.
func BandFor(rating float64) Band {
	switch {
	case rating < 1200:
		return BandBeginner
	case rating < 1500:
		return BandIntermediate
	case rating < 1800:
		return BandAdvanced
	default:
		return BandExpert
	}
}
