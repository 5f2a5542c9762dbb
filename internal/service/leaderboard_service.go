package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/fornolabs/pizza-contest-api/internal/dto"
	"github.com/fornolabs/pizza-contest-api/internal/models"
	"github.com/fornolabs/pizza-contest-api/internal/observability"
	"github.com/fornolabs/pizza-contest-api/internal/repository"
	"github.com/fornolabs/pizza-contest-api/internal/scoring"
)

// LeaderboardService produces the ranked contest view for a viewer.
// The viewer context travels explicitly through every call; nothing is
// read from ambient session state.
type LeaderboardService interface {
	Get(ctx context.Context, viewer scoring.Viewer, metric scoring.Metric) (dto.LeaderboardResponse, error)
}

type leaderboardService struct {
	pizzas   repository.PizzaRepository
	votes    repository.VoteRepository
	profiles repository.ProfileRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewLeaderboardService builds the leaderboard aggregator.
func NewLeaderboardService(pizzaRepo repository.PizzaRepository, voteRepo repository.VoteRepository, profileRepo repository.ProfileRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) LeaderboardService {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &leaderboardService{
		pizzas:   pizzaRepo,
		votes:    voteRepo,
		profiles: profileRepo,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "leaderboard_service").Logger(),
	}
}

func (s *leaderboardService) Get(ctx context.Context, viewer scoring.Viewer, metric scoring.Metric) (dto.LeaderboardResponse, error) {
	cacheKey := leaderboardCacheKey(viewer.IsAdmin, metric)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.LeaderboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				response.CacheHit = true
				observability.LeaderboardRequests().WithLabelValues("hit").Inc()
				s.logger.Debug().Str("key", cacheKey).Msg("leaderboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read leaderboard cache")
		}
	}

	pizzas, err := s.pizzas.List(ctx, repository.PizzaFilter{ActiveOnly: true})
	if err != nil {
		return dto.LeaderboardResponse{}, err
	}

	votes, err := s.votes.ListAll(ctx)
	if err != nil {
		return dto.LeaderboardResponse{}, err
	}

	profiles, err := s.profiles.List(ctx, repository.ProfileFilter{})
	if err != nil {
		return dto.LeaderboardResponse{}, err
	}

	start := time.Now()
	response := s.build(pizzas, votes, profiles, viewer, metric)
	observability.LeaderboardBuildLatency().Observe(time.Since(start).Seconds())
	observability.LeaderboardRequests().WithLabelValues("miss").Inc()

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store leaderboard cache")
			}
		}
	}

	return response, nil
}

func (s *leaderboardService) build(pizzas []models.Pizza, votes []models.Vote, profiles []models.Profile, viewer scoring.Viewer, metric scoring.Metric) dto.LeaderboardResponse {
	adminIDs := scoring.AdminIDSet(profiles)
	visible := scoring.FilterVotes(votes, adminIDs, viewer)

	votesByPizza := make(map[uint][]models.Vote, len(pizzas))
	for _, vote := range visible {
		votesByPizza[vote.PizzaID] = append(votesByPizza[vote.PizzaID], vote)
	}

	// Aggregate in listing order so equal scores keep a deterministic,
	// position-based tie-break.
	scores := make([]scoring.AggregatedScore, 0, len(pizzas))
	pizzaByID := make(map[uint]models.Pizza, len(pizzas))
	for _, pizza := range pizzas {
		pizzaByID[pizza.ID] = pizza
		scores = append(scores, scoring.Aggregate(pizza.ID, votesByPizza[pizza.ID]))
	}

	ranked := scoring.Rank(scores, metric)

	entries := make([]dto.RankedPizzaResponse, 0, len(ranked))
	for _, score := range ranked {
		pizza := pizzaByID[score.PizzaID]
		averages := score.CategoryAverages()

		entry := dto.RankedPizzaResponse{
			Rank:             score.Rank,
			PizzaID:          score.PizzaID,
			DisplayName:      scoring.DisplayName(pizza, score.Rank, viewer),
			ContestantName:   scoring.ContestantName(pizza, viewer),
			CategoryTotals:   score.CategorySums[:],
			CategoryAverages: averages[:],
			OverallTotal:     score.OverallTotal(),
			OverallAverage:   score.OverallAverage(),
			VoteCount:        score.VoteCount,
		}
		if viewer.IsAdmin {
			entry.PhotoURL = pizza.PhotoURL
		}
		entries = append(entries, entry)
	}

	return dto.LeaderboardResponse{Metric: metric.String(), Entries: entries}
}

func leaderboardCacheKey(isAdmin bool, metric scoring.Metric) string {
	audience := "public"
	if isAdmin {
		audience = "admin"
	}
	return fmt.Sprintf("leaderboard:%s:%s", audience, metric)
}

// leaderboardCacheKeys enumerates every cached leaderboard variant.
func leaderboardCacheKeys() []string {
	metrics := []scoring.Metric{
		scoring.MetricOverall,
		scoring.MetricCategory1,
		scoring.MetricCategory2,
		scoring.MetricCategory3,
		scoring.MetricCategory4,
		scoring.MetricCategory5,
	}

	keys := make([]string, 0, len(metrics)*2)
	for _, metric := range metrics {
		keys = append(keys, leaderboardCacheKey(false, metric), leaderboardCacheKey(true, metric))
	}
	return keys
}

// invalidateLeaderboardCache drops every cached leaderboard variant after
// a write that changes scores or entries. Best effort: a failed delete
// only shortens freshness, the TTL still bounds staleness.
func invalidateLeaderboardCache(ctx context.Context, cache *redis.Client, logger zerolog.Logger) {
	if cache == nil {
		return
	}

	if err := cache.Del(ctx, leaderboardCacheKeys()...).Err(); err != nil {
		logger.Warn().Err(err).Msg("failed to invalidate leaderboard cache")
	}
}
