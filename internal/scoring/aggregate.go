package scoring

import "github.com/fornolabs/pizza-contest-api/internal/models"

// AggregatedScore is the reduced form of all votes for one pizza.
// Only the raw category sums and the vote count are stored; totals and
// averages are derived projections, so the two presentations can never
// drift apart.
type AggregatedScore struct {
	PizzaID      uint
	CategorySums [NumCategories]float64
	VoteCount    int
}

// Aggregate reduces the votes for one pizza into per-category sums.
// Vote order is irrelevant. An empty vote slice yields an all-zero
// score with VoteCount zero, which is a valid "not yet rated" state.
func Aggregate(pizzaID uint, votes []models.Vote) AggregatedScore {
	score := AggregatedScore{PizzaID: pizzaID, VoteCount: len(votes)}
	for _, vote := range votes {
		card := VoteScores(vote)
		for i, value := range card {
			score.CategorySums[i] += value
		}
	}

	return score
}

// CategoryAverages projects the per-category means. All zeros when no
// votes were cast.
func (a AggregatedScore) CategoryAverages() [NumCategories]float64 {
	var averages [NumCategories]float64
	if a.VoteCount == 0 {
		return averages
	}

	for i, sum := range a.CategorySums {
		averages[i] = sum / float64(a.VoteCount)
	}

	return averages
}

// OverallTotal projects the sum of the five category sums.
func (a AggregatedScore) OverallTotal() float64 {
	var total float64
	for _, sum := range a.CategorySums {
		total += sum
	}

	return total
}

// OverallAverage projects the mean of the five category means, which
// equals OverallTotal / (5 * VoteCount). Zero when no votes were cast.
func (a AggregatedScore) OverallAverage() float64 {
	if a.VoteCount == 0 {
		return 0
	}

	return a.OverallTotal() / (NumCategories * float64(a.VoteCount))
}
