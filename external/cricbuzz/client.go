package cricbuzz

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/cricsight-io/cricsight/internal/domain/match"
	"github.com/cricsight-io/cricsight/internal/domain/player"
	"github.com/cricsight-io/cricsight/internal/platform/logging"
	"github.com/cricsight-io/cricsight/internal/usecase"
)

const (
	defaultBaseURL   = "https://cricbuzz-cricket.p.rapidapi.com"
	defaultAPIHost   = "cricbuzz-cricket.p.rapidapi.com"
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 6 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIHost    string
	APIKey     string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client talks to the hosted cricket statistics API. Every request carries the
// static host and key headers; every failure (transport, timeout, non-2xx,
// undecodable body) surfaces as a single wrapped error marked
// usecase.ErrDependencyUnavailable. The client never retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiHost    string
	apiKey     string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	apiHost := strings.TrimSpace(cfg.APIHost)
	if apiHost == "" {
		apiHost = defaultAPIHost
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiHost:    apiHost,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		logger:     logger,
	}
}

// FetchLiveMatches lists currently live matches, flattened out of the
// provider's type/series nesting in payload order.
func (c *Client) FetchLiveMatches(ctx context.Context) ([]match.Summary, error) {
	var envelope liveMatchesEnvelope
	if err := c.getJSON(ctx, c.baseURL+"/matches/v1/live", &envelope); err != nil {
		return nil, err
	}

	out := make([]match.Summary, 0, 16)
	for _, typeMatch := range envelope.TypeMatches {
		for _, series := range typeMatch.SeriesMatches {
			seriesName := strings.TrimSpace(series.SeriesAdWrapper.SeriesName)
			for _, item := range series.SeriesAdWrapper.Matches {
				info := item.MatchInfo
				if info.MatchID.Int64() <= 0 {
					continue
				}
				out = append(out, match.Summary{
					SeriesName: seriesName,
					Team1:      strings.TrimSpace(info.Team1.TeamName),
					Team2:      strings.TrimSpace(info.Team2.TeamName),
					Status:     strings.TrimSpace(info.Status),
					MatchID:    info.MatchID.Int64(),
				})
			}
		}
	}
	return out, nil
}

// FetchScorecard returns the per-innings cards for one match. A payload with
// no scorecard entries yields an empty Innings slice, not an error.
func (c *Client) FetchScorecard(ctx context.Context, matchID int64) (match.Scorecard, error) {
	if matchID <= 0 {
		return match.Scorecard{}, fmt.Errorf("%w: match id must be greater than zero", usecase.ErrInvalidInput)
	}

	var envelope scorecardEnvelope
	endpoint := fmt.Sprintf("%s/mcenter/v1/%d/scard", c.baseURL, matchID)
	if err := c.getJSON(ctx, endpoint, &envelope); err != nil {
		return match.Scorecard{}, err
	}

	card := match.Scorecard{MatchID: matchID}
	for _, innings := range envelope.Scorecard {
		mapped := match.Innings{
			BattingTeam: strings.TrimSpace(innings.BatTeamDetails.BatTeamName),
		}
		for _, b := range innings.Batsman {
			mapped.Batsmen = append(mapped.Batsmen, match.BattingRow{
				Name:       strings.TrimSpace(b.BatName),
				Runs:       b.Runs.Int(),
				Balls:      b.Balls.Int(),
				Fours:      b.Fours.Int(),
				Sixes:      b.Sixes.Int(),
				StrikeRate: b.StrikeRate.Float64(),
			})
		}
		for _, bw := range innings.Bowlers {
			mapped.Bowlers = append(mapped.Bowlers, match.BowlingRow{
				Name:    strings.TrimSpace(bw.BowlName),
				Overs:   bw.Overs.Float64(),
				Runs:    bw.Runs.Int(),
				Wickets: bw.Wickets.Int(),
				Economy: bw.Economy.Float64(),
			})
		}
		card.Innings = append(card.Innings, mapped)
	}
	return card, nil
}

// FetchPlayerStats resolves a player by name (search, then detail). The false
// return means the search matched nobody; the detail call is skipped and no
// error is raised.
func (c *Client) FetchPlayerStats(ctx context.Context, playerName string) (player.Profile, bool, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return player.Profile{}, false, fmt.Errorf("%w: player name is required", usecase.ErrInvalidInput)
	}

	searchURL := c.baseURL + "/stats/v1/player/search?plrN=" + url.QueryEscape(playerName)
	var search playerSearchEnvelope
	if err := c.getJSON(ctx, searchURL, &search); err != nil {
		return player.Profile{}, false, err
	}

	if len(search.Player) == 0 || strings.TrimSpace(search.Player[0].ID.String()) == "" {
		return player.Profile{}, false, nil
	}
	playerID := strings.TrimSpace(search.Player[0].ID.String())

	var detail playerDetailEnvelope
	detailURL := c.baseURL + "/stats/v1/player/" + url.PathEscape(playerID)
	if err := c.getJSON(ctx, detailURL, &detail); err != nil {
		return player.Profile{}, false, err
	}

	return player.Profile{
		Name:              strings.TrimSpace(detail.Name),
		Nickname:          strings.TrimSpace(detail.NickName),
		DateOfBirth:       strings.TrimSpace(detail.DoB),
		BirthPlace:        strings.TrimSpace(detail.BirthPlace),
		InternationalTeam: strings.TrimSpace(detail.IntlTeam),
		Role:              strings.TrimSpace(detail.Role),
		BattingStyle:      strings.TrimSpace(detail.Bat),
		BowlingStyle:      strings.TrimSpace(detail.Bowl),
		ImageURL:          strings.TrimSpace(detail.Image),
		Teams:             strings.TrimSpace(detail.Teams),
		ProfileURL:        strings.TrimSpace(detail.ProfileURL),
		Rankings: player.Rankings{
			Batting:    detail.Ranking.Bat.String(),
			Bowling:    detail.Ranking.Bowl.String(),
			AllRounder: detail.Ranking.All.String(),
		},
	}, true, nil
}

func (c *Client) getJSON(ctx context.Context, fullURL string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-rapidapi-host", c.apiHost)
	req.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.unavailable(ctx, fullURL, crerr.Newf("send request: %s", c.redact(err.Error())))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.unavailable(ctx, fullURL, crerr.Wrap(err, "read response body"))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.unavailable(ctx, fullURL, crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw)))
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return c.unavailable(ctx, fullURL, crerr.Wrap(err, "decode provider payload"))
	}
	return nil
}

// unavailable marks the error for 503 mapping at the API boundary and emits
// the single warn-level notification the error contract allows.
func (c *Client) unavailable(ctx context.Context, fullURL string, err error) error {
	wrapped := crerr.Mark(err, usecase.ErrDependencyUnavailable)
	c.logger.WarnContext(ctx, "cricbuzz request failed", "url", fullURL, "error", wrapped)
	return wrapped
}

func (c *Client) redact(text string) string {
	if c.apiKey == "" {
		return text
	}
	return strings.ReplaceAll(text, c.apiKey, "REDACTED")
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	cut := limit
	// Back up to a rune boundary so the abbreviation stays valid UTF-8.
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut] + "..."
}
