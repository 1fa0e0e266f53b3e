package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/cricsight-io/cricsight/internal/domain/match"
	"github.com/cricsight-io/cricsight/internal/usecase"
)

type matchSummaryDTO struct {
	MatchID    int64  `json:"matchId"`
	SeriesName string `json:"seriesName"`
	Team1      string `json:"team1"`
	Team2      string `json:"team2"`
	Status     string `json:"status"`
	Label      string `json:"label"`
}

type battingRowDTO struct {
	Name       string  `json:"name"`
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strikeRate"`
}

type bowlingRowDTO struct {
	Name    string  `json:"name"`
	Overs   float64 `json:"overs"`
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Economy float64 `json:"economy"`
}

type inningsDTO struct {
	BattingTeam string          `json:"battingTeam"`
	Batsmen     []battingRowDTO `json:"batsmen"`
	Bowlers     []bowlingRowDTO `json:"bowlers"`
}

type scorecardDTO struct {
	MatchID int64        `json:"matchId"`
	HasData bool         `json:"hasData"`
	Innings []inningsDTO `json:"innings"`
}

func matchSummaryToDTO(m match.Summary) matchSummaryDTO {
	return matchSummaryDTO{
		MatchID:    m.MatchID,
		SeriesName: m.SeriesName,
		Team1:      m.Team1,
		Team2:      m.Team2,
		Status:     m.Status,
		Label:      m.Label(),
	}
}

func scorecardToDTO(card match.Scorecard) scorecardDTO {
	innings := make([]inningsDTO, 0, len(card.Innings))
	for _, inn := range card.Innings {
		batsmen := make([]battingRowDTO, 0, len(inn.Batsmen))
		for _, b := range inn.Batsmen {
			batsmen = append(batsmen, battingRowDTO{
				Name:       b.Name,
				Runs:       b.Runs,
				Balls:      b.Balls,
				Fours:      b.Fours,
				Sixes:      b.Sixes,
				StrikeRate: b.StrikeRate,
			})
		}
		bowlers := make([]bowlingRowDTO, 0, len(inn.Bowlers))
		for _, b := range inn.Bowlers {
			bowlers = append(bowlers, bowlingRowDTO{
				Name:    b.Name,
				Overs:   b.Overs,
				Runs:    b.Runs,
				Wickets: b.Wickets,
				Economy: b.Economy,
			})
		}
		innings = append(innings, inningsDTO{
			BattingTeam: inn.BattingTeam,
			Batsmen:     batsmen,
			Bowlers:     bowlers,
		})
	}

	return scorecardDTO{
		MatchID: card.MatchID,
		HasData: card.HasData(),
		Innings: innings,
	}
}

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	matches, err := h.matchService.LiveMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list live matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchSummaryDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchSummaryToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScorecard")
	defer span.End()

	raw := strings.TrimSpace(r.PathValue("matchID"))
	matchID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: match id %q is not numeric", usecase.ErrInvalidInput, raw))
		return
	}

	card, err := h.matchService.Scorecard(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get scorecard failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scorecardToDTO(card))
}

func (h *Handler) ListLiveScorecards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveScorecards")
	defer span.End()

	limit, err := parseOptionalLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	cards, err := h.matchService.LiveScorecards(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list live scorecards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scorecardDTO, 0, len(cards))
	for _, card := range cards {
		items = append(items, scorecardToDTO(card))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func parseOptionalLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: limit %q is not numeric", usecase.ErrInvalidInput, raw)
	}
	return limit, nil
}
