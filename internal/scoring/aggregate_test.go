package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fornolabs/pizza-contest-api/internal/models"
)

func TestAggregateSumsCategories(t *testing.T) {
	votes := []models.Vote{
		{PizzaID: 1, Category1: 2, Category2: 4, Category3: 6, Category4: 8, Category5: 10},
		{PizzaID: 1, Category1: 8, Category2: 6, Category3: 4, Category4: 2, Category5: 0},
	}

	score := Aggregate(1, votes)
	require.Equal(t, uint(1), score.PizzaID)
	require.Equal(t, 2, score.VoteCount)
	require.Equal(t, [NumCategories]float64{10, 10, 10, 10, 10}, score.CategorySums)
	require.InDelta(t, 50.0, score.OverallTotal(), 1e-9)
	require.InDelta(t, 5.0, score.OverallAverage(), 1e-9)
	require.Equal(t, [NumCategories]float64{5, 5, 5, 5, 5}, score.CategoryAverages())
}

func TestAggregateNoVotesYieldsZeroes(t *testing.T) {
	score := Aggregate(7, nil)
	require.Equal(t, 0, score.VoteCount)
	require.Equal(t, [NumCategories]float64{}, score.CategorySums)
	require.Equal(t, [NumCategories]float64{}, score.CategoryAverages())
	require.Zero(t, score.OverallTotal())
	require.Zero(t, score.OverallAverage())
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := models.Vote{Category1: 1.5, Category2: 3, Category3: 4.5, Category4: 6, Category5: 7.5}
	b := models.Vote{Category1: 9, Category2: 0.5, Category3: 2, Category4: 10, Category5: 5}

	require.Equal(t, Aggregate(1, []models.Vote{a, b}), Aggregate(1, []models.Vote{b, a}))
}

func TestOverallAverageMatchesMeanOfCategoryMeans(t *testing.T) {
	votes := []models.Vote{
		{Category1: 3, Category2: 5.5, Category3: 7, Category4: 2.5, Category5: 9},
		{Category1: 6, Category2: 4, Category3: 8.5, Category4: 1, Category5: 10},
		{Category1: 0, Category2: 2, Category3: 3.5, Category4: 5, Category5: 6.5},
	}

	score := Aggregate(3, votes)
	var meanOfMeans float64
	for _, avg := range score.CategoryAverages() {
		meanOfMeans += avg
	}
	meanOfMeans /= NumCategories

	require.InDelta(t, meanOfMeans, score.OverallAverage(), 1e-9)
}
