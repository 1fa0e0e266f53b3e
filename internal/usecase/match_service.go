package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/cricsight-io/cricsight/internal/domain/match"
	"github.com/cricsight-io/cricsight/internal/platform/cache"
	"github.com/cricsight-io/cricsight/internal/platform/logging"
)

// Memoized function names. Cache refresh requests address these groups.
const (
	MemoLiveMatches = "live_matches"
	MemoScorecard   = "scorecard"
	MemoPlayerStats = "player_stats"
)

const (
	liveMatchesKey        = "all"
	defaultFanoutWorkers  = 4
	defaultScorecardLimit = 5
	maxScorecardLimit     = 20
)

// CricketGateway is the upstream match feed.
type CricketGateway interface {
	FetchLiveMatches(ctx context.Context) ([]match.Summary, error)
	FetchScorecard(ctx context.Context, matchID int64) (match.Scorecard, error)
}

type MatchService struct {
	gateway       CricketGateway
	memo          *cache.Memo
	fanoutWorkers int
	logger        *logging.Logger
}

func NewMatchService(gateway CricketGateway, memo *cache.Memo, fanoutWorkers int, logger *logging.Logger) *MatchService {
	if fanoutWorkers <= 0 {
		fanoutWorkers = defaultFanoutWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		gateway:       gateway,
		memo:          memo,
		fanoutWorkers: fanoutWorkers,
		logger:        logger,
	}
}

func (s *MatchService) LiveMatches(ctx context.Context) ([]match.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.LiveMatches")
	defer span.End()

	value, err := s.memo.GetOrLoad(ctx, MemoLiveMatches, liveMatchesKey, func(ctx context.Context) (any, error) {
		return s.gateway.FetchLiveMatches(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch live matches: %w", err)
	}

	return value.([]match.Summary), nil
}

func (s *MatchService) Scorecard(ctx context.Context, matchID int64) (match.Scorecard, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Scorecard")
	defer span.End()

	if matchID <= 0 {
		return match.Scorecard{}, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}

	key := strconv.FormatInt(matchID, 10)
	value, err := s.memo.GetOrLoad(ctx, MemoScorecard, key, func(ctx context.Context) (any, error) {
		return s.gateway.FetchScorecard(ctx, matchID)
	})
	if err != nil {
		return match.Scorecard{}, fmt.Errorf("fetch scorecard match=%d: %w", matchID, err)
	}

	return value.(match.Scorecard), nil
}

// LiveScorecards fetches scorecards for the first limit live matches
// concurrently, preserving live-feed order in the result.
func (s *MatchService) LiveScorecards(ctx context.Context, limit int) ([]match.Scorecard, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.LiveScorecards")
	defer span.End()

	if limit <= 0 {
		limit = defaultScorecardLimit
	}
	if limit > maxScorecardLimit {
		return nil, fmt.Errorf("%w: limit must be at most %d", ErrInvalidInput, maxScorecardLimit)
	}

	matches, err := s.LiveMatches(ctx)
	if err != nil {
		return nil, err
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}
	if len(matches) == 0 {
		return []match.Scorecard{}, nil
	}

	workerCount := s.fanoutWorkers
	if workerCount > len(matches) {
		workerCount = len(matches)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	return s.fanOutScorecards(ctx, pool, matches)
}

func (s *MatchService) fanOutScorecards(ctx context.Context, pool *ants.Pool, matches []match.Summary) ([]match.Scorecard, error) {
	scorecards := make([]match.Scorecard, len(matches))
	errs := make([]error, len(matches))

	var workers sync.WaitGroup
	for i, m := range matches {
		i, m := i, m
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			scorecards[i], errs[i] = s.Scorecard(ctx, m.MatchID)
		}); err != nil {
			workers.Done()
			// Already-submitted tasks still hold the result slices.
			workers.Wait()
			return nil, fmt.Errorf("submit scorecard task to worker pool: %w", err)
		}
	}
	workers.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("live scorecard match=%d: %w", matches[i].MatchID, err)
		}
	}

	return scorecards, nil
}
