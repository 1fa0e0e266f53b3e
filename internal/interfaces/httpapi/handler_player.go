package httpapi

import (
	"net/http"

	"github.com/cricsight-io/cricsight/internal/domain/player"
)

type playerRankingsDTO struct {
	Batting    string `json:"batting"`
	Bowling    string `json:"bowling"`
	AllRounder string `json:"allRounder"`
}

type playerProfileDTO struct {
	Name              string            `json:"name"`
	Nickname          string            `json:"nickname"`
	DateOfBirth       string            `json:"dateOfBirth"`
	BirthPlace        string            `json:"birthPlace"`
	InternationalTeam string            `json:"internationalTeam"`
	Role              string            `json:"role"`
	BattingStyle      string            `json:"battingStyle"`
	BowlingStyle      string            `json:"bowlingStyle"`
	ImageURL          string            `json:"imageUrl,omitempty"`
	Teams             string            `json:"teams"`
	Rankings          playerRankingsDTO `json:"rankings"`
	ProfileURL        string            `json:"profileUrl,omitempty"`
}

func playerProfileToDTO(p player.Profile) playerProfileDTO {
	return playerProfileDTO{
		Name:              p.Name,
		Nickname:          p.Nickname,
		DateOfBirth:       p.DateOfBirth,
		BirthPlace:        p.BirthPlace,
		InternationalTeam: p.InternationalTeam,
		Role:              p.Role,
		BattingStyle:      p.BattingStyle,
		BowlingStyle:      p.BowlingStyle,
		ImageURL:          p.ImageURL,
		Teams:             p.Teams,
		Rankings: playerRankingsDTO{
			Batting:    p.Rankings.Batting,
			Bowling:    p.Rankings.Bowling,
			AllRounder: p.Rankings.AllRounder,
		},
		ProfileURL: p.ProfileURL,
	}
}

type playerProfileRequest struct {
	Name string `validate:"required,max=100"`
}

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerProfile")
	defer span.End()

	name := r.URL.Query().Get("name")
	if err := h.validateRequest(ctx, playerProfileRequest{Name: name}); err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.playerService.PlayerStats(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "get player profile failed", "player", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerProfileToDTO(profile))
}
