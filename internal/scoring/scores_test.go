package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fornolabs/pizza-contest-api/internal/models"
)

func TestScoreCardValidateAcceptsHalfSteps(t *testing.T) {
	require.NoError(t, ScoreCard{0, 2.5, 5, 7.5, 10}.Validate())
	require.NoError(t, ScoreCard{}.Validate())
}

func TestScoreCardValidateRejectsOutOfRange(t *testing.T) {
	err := ScoreCard{1, 2, 3, 4, 10.5}.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrScoreOutOfRange)
	require.Contains(t, err.Error(), "category_5")

	err = ScoreCard{-0.5, 0, 0, 0, 0}.Validate()
	require.ErrorIs(t, err, ErrScoreOutOfRange)
}

func TestScoreCardValidateRejectsInvalidGranularity(t *testing.T) {
	err := ScoreCard{7.3, 0, 0, 0, 0}.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidGranularity)
	require.Contains(t, err.Error(), "category_1")
}

func TestScoreCardValidateRangeCheckedBeforeGranularity(t *testing.T) {
	// 10.3 violates both rules; the range violation wins.
	err := ScoreCard{10.3, 0, 0, 0, 0}.Validate()
	require.ErrorIs(t, err, ErrScoreOutOfRange)
}

func TestVoteScoresKeepsCategoryOrder(t *testing.T) {
	vote := models.Vote{Category1: 1, Category2: 2, Category3: 3, Category4: 4, Category5: 5}
	require.Equal(t, ScoreCard{1, 2, 3, 4, 5}, VoteScores(vote))
}
