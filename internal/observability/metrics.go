package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce         sync.Once
	httpRequestsTotal    *prometheus.CounterVec
	httpLatencySeconds   *prometheus.HistogramVec
	httpErrorsTotal      *prometheus.CounterVec
	voteSubmissionsTotal *prometheus.CounterVec
	leaderboardRequests  *prometheus.CounterVec
	leaderboardLatency   prometheus.Histogram
)

// RegisterMetrics initialises the Prometheus collectors for the contest API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contest_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contest_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		httpErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contest_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		voteSubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contest_vote_submissions_total",
			Help: "Vote submissions by outcome.",
		}, []string{"outcome"})

		leaderboardRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contest_leaderboard_requests_total",
			Help: "Leaderboard reads by cache outcome.",
		}, []string{"result"})

		leaderboardLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "contest_leaderboard_build_seconds",
			Help:    "Time spent aggregating and ranking the leaderboard.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		})

		prometheus.MustRegister(
			httpRequestsTotal,
			httpLatencySeconds,
			httpErrorsTotal,
			voteSubmissionsTotal,
			leaderboardRequests,
			leaderboardLatency,
		)
	})
}

// HTTPRequests exposes the counter for served requests.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram for served requests.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// HTTPErrors exposes the counter for error responses.
func HTTPErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return httpErrorsTotal
}

// VoteSubmissions exposes the counter for vote submission outcomes.
func VoteSubmissions() *prometheus.CounterVec {
	RegisterMetrics()
	return voteSubmissionsTotal
}

// LeaderboardRequests exposes the counter for leaderboard cache outcomes.
func LeaderboardRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return leaderboardRequests
}

// LeaderboardBuildLatency exposes the histogram for leaderboard rebuilds.
func LeaderboardBuildLatency() prometheus.Histogram {
	RegisterMetrics()
	return leaderboardLatency
}
