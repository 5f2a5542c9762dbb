package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// Metric selects the value a ranking is sorted by.
type Metric int

// Available ranking metrics: the overall average or a single category
// average.
const (
	MetricOverall Metric = iota
	MetricCategory1
	MetricCategory2
	MetricCategory3
	MetricCategory4
	MetricCategory5
)

// ParseMetric maps the query-string form ("overall", "category_1"..
// "category_5") to a Metric.
func ParseMetric(value string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "overall":
		return MetricOverall, nil
	case "category_1":
		return MetricCategory1, nil
	case "category_2":
		return MetricCategory2, nil
	case "category_3":
		return MetricCategory3, nil
	case "category_4":
		return MetricCategory4, nil
	case "category_5":
		return MetricCategory5, nil
	default:
		return MetricOverall, fmt.Errorf("unknown ranking metric %q", value)
	}
}

// String returns the query-string form of the metric.
func (m Metric) String() string {
	if m >= MetricCategory1 && m <= MetricCategory5 {
		return fmt.Sprintf("category_%d", int(m))
	}

	return "overall"
}

// valueOf returns the average projection the metric sorts by.
func (m Metric) valueOf(score AggregatedScore) float64 {
	if m >= MetricCategory1 && m <= MetricCategory5 {
		return score.CategoryAverages()[int(m)-1]
	}

	return score.OverallAverage()
}

// RankedScore is an aggregated score with its 1-based position under a
// metric.
type RankedScore struct {
	Rank int
	AggregatedScore
}

// Rank orders the scores descending by the selected metric and assigns
// dense 1-based ranks by list position. The sort is stable: entries with
// equal metric values keep their arrival order, and equal scores receive
// consecutive distinct ranks rather than a shared one. The input slice
// is not modified.
func Rank(scores []AggregatedScore, metric Metric) []RankedScore {
	ordered := make([]AggregatedScore, len(scores))
	copy(ordered, scores)

	sort.SliceStable(ordered, func(i, j int) bool {
		return metric.valueOf(ordered[i]) > metric.valueOf(ordered[j])
	})

	ranked := make([]RankedScore, len(ordered))
	for i, score := range ordered {
		ranked[i] = RankedScore{Rank: i + 1, AggregatedScore: score}
	}

	return ranked
}
