package usecase

import (
	"context"
	"fmt"

	"github.com/cricsight-io/cricsight/internal/platform/cache"
	"github.com/cricsight-io/cricsight/internal/platform/logging"
)

var memoFunctions = []string{MemoLiveMatches, MemoScorecard, MemoPlayerStats}

// defaultRefreshFunctions are the groups a bare refresh clears; player stats
// stay cached unless asked for by name.
var defaultRefreshFunctions = []string{MemoLiveMatches, MemoScorecard}

// CacheService clears memoized upstream results on demand.
type CacheService struct {
	memo   *cache.Memo
	logger *logging.Logger
}

func NewCacheService(memo *cache.Memo, logger *logging.Logger) *CacheService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CacheService{memo: memo, logger: logger}
}

// Refresh clears the named memo groups and returns the names it cleared. An
// empty list clears the live-match groups only; an unknown name fails the
// whole request before anything is cleared.
func (s *CacheService) Refresh(ctx context.Context, functions []string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "CacheService.Refresh")
	defer span.End()

	if len(functions) == 0 {
		functions = defaultRefreshFunctions
	}

	for _, name := range functions {
		if !isMemoFunction(name) {
			return nil, fmt.Errorf("%w: unknown cache function %q", ErrInvalidInput, name)
		}
	}

	cleared := make([]string, 0, len(functions))
	for _, name := range functions {
		s.memo.Clear(name)
		cleared = append(cleared, name)
	}

	s.logger.InfoContext(ctx, "cache cleared", "functions", cleared)

	return cleared, nil
}

func isMemoFunction(name string) bool {
	for _, known := range memoFunctions {
		if name == known {
			return true
		}
	}
	return false
}
