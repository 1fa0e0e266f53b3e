package match

import "strings"

// Summary is one entry in the live-matches listing, flattened from the
// provider's series/match nesting.
type Summary struct {
	SeriesName string `json:"seriesName"`
	Team1      string `json:"team1"`
	Team2      string `json:"team2"`
	Status     string `json:"status"`
	MatchID    int64  `json:"matchId"`
}

// Label renders the summary the way the dashboard's match selector shows it.
func (s Summary) Label() string {
	var b strings.Builder
	if s.SeriesName != "" {
		b.WriteString(s.SeriesName)
		b.WriteString(" | ")
	}
	b.WriteString(s.Team1)
	b.WriteString(" vs ")
	b.WriteString(s.Team2)
	if s.Status != "" {
		b.WriteString(" - ")
		b.WriteString(s.Status)
	}
	return b.String()
}

// BattingRow is one batsman line of an innings. Fields absent from the
// provider payload stay at their zero values.
type BattingRow struct {
	Name       string  `json:"name"`
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strikeRate"`
}

// BowlingRow is one bowler line of an innings.
type BowlingRow struct {
	Name    string  `json:"name"`
	Overs   float64 `json:"overs"`
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Economy float64 `json:"economy"`
}

// Innings holds the batting and bowling cards for one side of a match.
type Innings struct {
	BattingTeam string       `json:"battingTeam"`
	Batsmen     []BattingRow `json:"batsmen"`
	Bowlers     []BowlingRow `json:"bowlers"`
}

// Scorecard is the full per-innings breakdown of one match. An empty Innings
// slice means the match has not produced a scorecard yet; that is a valid
// state, not an error.
type Scorecard struct {
	MatchID int64     `json:"matchId"`
	Innings []Innings `json:"innings"`
}

func (s Scorecard) HasData() bool {
	return len(s.Innings) > 0
}
