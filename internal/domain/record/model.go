package record

// Record is one row of the analytical dataset. The column set is an external
// contract shared with the query catalogue: names, order, and types must match
// the source file's schema exactly.
type Record struct {
	PlayerID       int64   `csv:"player_id"`
	PlayerName     string  `csv:"player_name"`
	MatchID        int64   `csv:"match_id"`
	MatchDesc      string  `csv:"match_desc"`
	MatchType      string  `csv:"match_type"`
	MatchDate      string  `csv:"match_date"`
	Team1          string  `csv:"team1"`
	Team2          string  `csv:"team2"`
	Team1Runs      int64   `csv:"team1_runs"`
	Team2Runs      int64   `csv:"team2_runs"`
	VenueName      string  `csv:"venue_name"`
	VenueCity      string  `csv:"venue_city"`
	Tournament     string  `csv:"tournament"`
	Country        string  `csv:"country"`
	PlayingRole    string  `csv:"playing_role"`
	BattingStyle   string  `csv:"batting_style"`
	BowlingStyle   string  `csv:"bowling_style"`
	RunsScored     int64   `csv:"runs_scored"`
	WicketsTaken   int64   `csv:"wickets_taken"`
	StrikeRate     float64 `csv:"strike_rate"`
	EconomyRate    float64 `csv:"economy_rate"`
	BattingAverage float64 `csv:"batting_average"`
	Sixes          int64   `csv:"sixes"`
	Catches        int64   `csv:"catches"`
	HatTrick       int64   `csv:"hat_trick"`
	ManOfTheMatch  int64   `csv:"man_of_the_match"`
	WinnerTeam     string  `csv:"winner_team"`
	Batsman1       string  `csv:"batsman1"`
	Batsman2       string  `csv:"batsman2"`
	DOB            string  `csv:"dob"`
}

// ColumnType is the SQL affinity a column materializes with.
type ColumnType string

const (
	TypeInteger ColumnType = "INTEGER"
	TypeReal    ColumnType = "REAL"
	TypeText    ColumnType = "TEXT"
)

// Column pairs a dataset column name with its SQL type.
type Column struct {
	Name string
	Type ColumnType
}

// Schema lists the dataset columns in file order. Dates stay TEXT in ISO-8601
// form so SQLite's DATE() and strftime() comparisons work on them directly.
var Schema = []Column{
	{Name: "player_id", Type: TypeInteger},
	{Name: "player_name", Type: TypeText},
	{Name: "match_id", Type: TypeInteger},
	{Name: "match_desc", Type: TypeText},
	{Name: "match_type", Type: TypeText},
	{Name: "match_date", Type: TypeText},
	{Name: "team1", Type: TypeText},
	{Name: "team2", Type: TypeText},
	{Name: "team1_runs", Type: TypeInteger},
	{Name: "team2_runs", Type: TypeInteger},
	{Name: "venue_name", Type: TypeText},
	{Name: "venue_city", Type: TypeText},
	{Name: "tournament", Type: TypeText},
	{Name: "country", Type: TypeText},
	{Name: "playing_role", Type: TypeText},
	{Name: "batting_style", Type: TypeText},
	{Name: "bowling_style", Type: TypeText},
	{Name: "runs_scored", Type: TypeInteger},
	{Name: "wickets_taken", Type: TypeInteger},
	{Name: "strike_rate", Type: TypeReal},
	{Name: "economy_rate", Type: TypeReal},
	{Name: "batting_average", Type: TypeReal},
	{Name: "sixes", Type: TypeInteger},
	{Name: "catches", Type: TypeInteger},
	{Name: "hat_trick", Type: TypeInteger},
	{Name: "man_of_the_match", Type: TypeInteger},
	{Name: "winner_team", Type: TypeText},
	{Name: "batsman1", Type: TypeText},
	{Name: "batsman2", Type: TypeText},
	{Name: "dob", Type: TypeText},
}

// ColumnNames returns the schema column names in order.
func ColumnNames() []string {
	out := make([]string, 0, len(Schema))
	for _, col := range Schema {
		out = append(out, col.Name)
	}
	return out
}

// Values returns the record's fields in schema order, ready for a positional
// INSERT.
func (r Record) Values() []any {
	return []any{
		r.PlayerID,
		r.PlayerName,
		r.MatchID,
		r.MatchDesc,
		r.MatchType,
		r.MatchDate,
		r.Team1,
		r.Team2,
		r.Team1Runs,
		r.Team2Runs,
		r.VenueName,
		r.VenueCity,
		r.Tournament,
		r.Country,
		r.PlayingRole,
		r.BattingStyle,
		r.BowlingStyle,
		r.RunsScored,
		r.WicketsTaken,
		r.StrikeRate,
		r.EconomyRate,
		r.BattingAverage,
		r.Sixes,
		r.Catches,
		r.HatTrick,
		r.ManOfTheMatch,
		r.WinnerTeam,
		r.Batsman1,
		r.Batsman2,
		r.DOB,
	}
}

// Table is the dataset loaded in memory, immutable after construction.
type Table struct {
	Columns []Column
	Rows    []Record
}

func (t Table) RowCount() int {
	return len(t.Rows)
}
