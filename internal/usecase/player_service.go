package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cricsight-io/cricsight/internal/domain/player"
	"github.com/cricsight-io/cricsight/internal/platform/cache"
)

// PlayerGateway resolves a player name to a profile. The boolean result is
// false when no player matched the name.
type PlayerGateway interface {
	FetchPlayerStats(ctx context.Context, name string) (player.Profile, bool, error)
}

type PlayerService struct {
	gateway PlayerGateway
	memo    *cache.Memo
}

func NewPlayerService(gateway PlayerGateway, memo *cache.Memo) *PlayerService {
	return &PlayerService{gateway: gateway, memo: memo}
}

// PlayerStats returns the profile for the named player with display fields
// defaulted. A name that matches nobody is a not-found error, never cached.
func (s *PlayerService) PlayerStats(ctx context.Context, name string) (player.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.PlayerStats")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return player.Profile{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	key := strings.ToLower(name)
	value, err := s.memo.GetOrLoad(ctx, MemoPlayerStats, key, func(ctx context.Context) (any, error) {
		profile, found, err := s.gateway.FetchPlayerStats(ctx, name)
		if err != nil {
			return player.Profile{}, fmt.Errorf("fetch player stats: %w", err)
		}
		if !found {
			return player.Profile{}, fmt.Errorf("%w: player=%s", ErrNotFound, name)
		}
		return profile.WithDefaults(), nil
	})
	if err != nil {
		return player.Profile{}, err
	}

	return value.(player.Profile), nil
}
