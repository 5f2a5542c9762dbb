// Package scoring implements the contest engine: score validation,
// visibility filtering, aggregation, ranking and completion tracking.
// Everything in this package is a pure function of its inputs; it does
// no I/O and holds no state, so callers may invoke it concurrently.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/fornolabs/pizza-contest-api/internal/models"
)

// NumCategories is the fixed number of scoring dimensions per vote.
const NumCategories = 5

// Score bounds and granularity for a single category.
const (
	MinScore    = 0.0
	MaxScore    = 10.0
	ScoreStep   = 0.5
	stepEpsilon = 1e-9
)

var (
	// ErrScoreOutOfRange indicates a category score outside [0, 10].
	ErrScoreOutOfRange = errors.New("score out of range")
	// ErrInvalidGranularity indicates a category score that is not a
	// half-point increment.
	ErrInvalidGranularity = errors.New("score is not a half-point increment")
)

// ScoreCard holds the five category scores of one submission, in
// category order.
type ScoreCard [NumCategories]float64

// Validate checks every category score against the contest rules.
// It reports the first violation found, wrapped with the offending
// category, and performs no side effects.
func (s ScoreCard) Validate() error {
	for i, value := range s {
		if value < MinScore || value > MaxScore {
			return fmt.Errorf("category_%d: %w", i+1, ErrScoreOutOfRange)
		}
		if !isHalfStep(value) {
			return fmt.Errorf("category_%d: %w", i+1, ErrInvalidGranularity)
		}
	}

	return nil
}

// isHalfStep reports whether v lands on the 0.5 grid. Scores arrive as
// decoded JSON numbers, so the comparison tolerates float decoding noise.
func isHalfStep(v float64) bool {
	scaled := v / ScoreStep
	return math.Abs(scaled-math.Round(scaled)) < stepEpsilon
}

// VoteScores extracts the score card from a stored vote.
func VoteScores(vote models.Vote) ScoreCard {
	return ScoreCard{
		vote.Category1,
		vote.Category2,
		vote.Category3,
		vote.Category4,
		vote.Category5,
	}
}
