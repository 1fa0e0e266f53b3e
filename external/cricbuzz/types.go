package cricbuzz

import (
	"bytes"
	"strconv"
	"strings"
)

// Wire envelopes for the provider payloads. Cricbuzz is loose about scalar
// types (counts arrive as numbers or quoted strings depending on endpoint), so
// numeric fields use tolerant decoders that default to zero instead of failing
// the whole payload.

type liveMatchesEnvelope struct {
	TypeMatches []typeMatchItem `json:"typeMatches"`
}

type typeMatchItem struct {
	MatchType     string            `json:"matchType"`
	SeriesMatches []seriesMatchItem `json:"seriesMatches"`
}

type seriesMatchItem struct {
	SeriesAdWrapper seriesWrapper `json:"seriesAdWrapper"`
}

type seriesWrapper struct {
	SeriesName string          `json:"seriesName"`
	Matches    []matchListItem `json:"matches"`
}

type matchListItem struct {
	MatchInfo matchInfoItem `json:"matchInfo"`
}

type matchInfoItem struct {
	MatchID flexInt  `json:"matchId"`
	Status  string   `json:"status"`
	Team1   teamItem `json:"team1"`
	Team2   teamItem `json:"team2"`
}

type teamItem struct {
	TeamName string `json:"teamName"`
}

type scorecardEnvelope struct {
	Scorecard []inningsItem `json:"scorecard"`
}

type inningsItem struct {
	BatTeamDetails batTeamDetailsItem `json:"batTeamDetails"`
	Batsman        []batsmanItem      `json:"batsman"`
	Bowlers        []bowlerItem       `json:"bowlers"`
}

type batTeamDetailsItem struct {
	BatTeamName string `json:"batTeamName"`
}

type batsmanItem struct {
	BatName    string    `json:"batName"`
	Runs       flexInt   `json:"runs"`
	Balls      flexInt   `json:"balls"`
	Fours      flexInt   `json:"fours"`
	Sixes      flexInt   `json:"sixes"`
	StrikeRate flexFloat `json:"strikeRate"`
}

type bowlerItem struct {
	BowlName string    `json:"bowlName"`
	Overs    flexFloat `json:"overs"`
	Runs     flexInt   `json:"runs"`
	Wickets  flexInt   `json:"wickets"`
	Economy  flexFloat `json:"economy"`
}

type playerSearchEnvelope struct {
	Player []playerSearchItem `json:"player"`
}

type playerSearchItem struct {
	ID flexString `json:"id"`
}

type playerDetailEnvelope struct {
	Name       string      `json:"name"`
	NickName   string      `json:"nickName"`
	DoB        string      `json:"DoB"`
	BirthPlace string      `json:"birthPlace"`
	IntlTeam   string      `json:"intlTeam"`
	Role       string      `json:"role"`
	Bat        string      `json:"bat"`
	Bowl       string      `json:"bowl"`
	Image      string      `json:"image"`
	Teams      string      `json:"teams"`
	ProfileURL string      `json:"profile_url"`
	Ranking    rankingItem `json:"ranking"`
}

type rankingItem struct {
	Bat  flexString `json:"bat"`
	Bowl flexString `json:"bowl"`
	All  flexString `json:"all"`
}

// flexInt decodes a JSON number or numeric string, defaulting to zero on
// null, empty, or unparseable input.
type flexInt int64

func (v *flexInt) UnmarshalJSON(data []byte) error {
	raw := normalizeScalar(data)
	if raw == "" {
		*v = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*v = 0
		return nil
	}
	*v = flexInt(parsed)
	return nil
}

func (v flexInt) Int64() int64 { return int64(v) }
func (v flexInt) Int() int     { return int(v) }

// flexFloat mirrors flexInt for fractional values (strike rates, overs).
type flexFloat float64

func (v *flexFloat) UnmarshalJSON(data []byte) error {
	raw := normalizeScalar(data)
	if raw == "" {
		*v = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*v = 0
		return nil
	}
	*v = flexFloat(parsed)
	return nil
}

func (v flexFloat) Float64() float64 { return float64(v) }

// flexString decodes a JSON string or number as its textual form.
type flexString string

func (v *flexString) UnmarshalJSON(data []byte) error {
	*v = flexString(normalizeScalar(data))
	return nil
}

func (v flexString) String() string { return string(v) }

func normalizeScalar(data []byte) string {
	raw := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(data), `"`)))
	if raw == "null" {
		return ""
	}
	return raw
}
