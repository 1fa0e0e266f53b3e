package catalogue

import (
	"fmt"
	"strings"
)

// QueryDefinition maps a human-readable name to fixed SQL text over the
// cricket_data relation. Definitions are registered once at package init and
// never mutated.
type QueryDefinition struct {
	Name string `json:"name"`
	SQL  string `json:"-"`
}

// Catalogue is the immutable, ordered set of named analytical queries.
type Catalogue struct {
	ordered []QueryDefinition
	byName  map[string]QueryDefinition
}

// New returns the default catalogue of 25 analytical queries.
func New() *Catalogue {
	return newCatalogue(definitions)
}

func newCatalogue(defs []QueryDefinition) *Catalogue {
	c := &Catalogue{
		ordered: make([]QueryDefinition, 0, len(defs)),
		byName:  make(map[string]QueryDefinition, len(defs)),
	}
	for _, def := range defs {
		if _, exists := c.byName[def.Name]; exists {
			panic(fmt.Sprintf("catalogue: duplicate query name %q", def.Name))
		}
		c.ordered = append(c.ordered, def)
		c.byName[def.Name] = def
	}
	return c
}

// Names returns the query names in definition order.
func (c *Catalogue) Names() []string {
	out := make([]string, 0, len(c.ordered))
	for _, def := range c.ordered {
		out = append(out, def.Name)
	}
	return out
}

// Get returns the definition for name.
func (c *Catalogue) Get(name string) (QueryDefinition, error) {
	def, ok := c.byName[strings.TrimSpace(name)]
	if !ok {
		return QueryDefinition{}, fmt.Errorf("query %q not found", name)
	}
	return def, nil
}

func (c *Catalogue) Len() int {
	return len(c.ordered)
}

var definitions = []QueryDefinition{
	{
		Name: "Q1. Players from India",
		SQL: `SELECT DISTINCT player_name, playing_role, batting_style, bowling_style, country
FROM cricket_data
WHERE country = 'India';`,
	},
	{
		Name: "Q2. Recent Matches (last 30 days)",
		SQL: `SELECT DISTINCT match_desc, team1, team2, venue_name AS venue, venue_city AS city, match_date
FROM cricket_data
WHERE DATE(match_date) >= DATE('now', '-30 days')
ORDER BY match_date DESC;`,
	},
	{
		Name: "Q3. Top 10 ODI Run Scorers",
		SQL: `SELECT player_name, SUM(runs_scored) AS total_runs,
       ROUND(SUM(runs_scored) * 1.0 / COUNT(DISTINCT match_id), 2) AS batting_average,
       COUNT(DISTINCT match_id) AS matches
FROM cricket_data
WHERE match_type = 'ODI'
GROUP BY player_name
ORDER BY total_runs DESC
LIMIT 10;`,
	},
	{
		Name: "Q4. Top 10 ODI Wicket Takers",
		SQL: `SELECT player_name, SUM(wickets_taken) AS total_wickets,
       ROUND(SUM(wickets_taken) * 1.0 / COUNT(DISTINCT match_id), 2) AS bowling_average,
       COUNT(DISTINCT match_id) AS matches
FROM cricket_data
WHERE match_type = 'ODI'
GROUP BY player_name
ORDER BY total_wickets DESC
LIMIT 10;`,
	},
	{
		Name: "Q5. IPL Teams and Grounds",
		SQL: `SELECT DISTINCT team1 AS team_name, venue_name AS home_ground
FROM cricket_data
WHERE tournament LIKE 'IPL%';`,
	},
	{
		Name: "Q6. Matches at Wankhede Stadium",
		SQL: `SELECT DISTINCT match_desc, team1, team2, match_date
FROM cricket_data
WHERE venue_name = 'Wankhede Stadium';`,
	},
	{
		Name: "Q7. Players with SR > 150 in T20",
		SQL: `SELECT DISTINCT player_name, strike_rate, COUNT(DISTINCT match_id) AS matches
FROM cricket_data
WHERE match_type = 'T20' AND strike_rate > 150
GROUP BY player_name, strike_rate;`,
	},
	{
		Name: "Q8. Centuries in World Cup 2019",
		SQL: `SELECT DISTINCT player_name, runs_scored AS runs, match_desc
FROM cricket_data
WHERE tournament = 'World Cup 2019' AND runs_scored >= 100;`,
	},
	{
		Name: "Q9. Virat Kohli Avg Runs",
		SQL: `SELECT player_name,
       ROUND(SUM(runs_scored) * 1.0 / COUNT(DISTINCT match_id), 2) AS avg_runs
FROM cricket_data
WHERE player_name = 'Virat Kohli'
GROUP BY player_name;`,
	},
	{
		Name: "Q10. All-rounders List",
		SQL: `SELECT DISTINCT player_name, country, batting_style, bowling_style
FROM cricket_data
WHERE playing_role = 'All-rounder';`,
	},
	{
		Name: "Q11. India Wins in 2023",
		SQL: `SELECT DISTINCT match_desc, team1, team2, match_date, winner_team
FROM cricket_data
WHERE (team1 = 'India' OR team2 = 'India')
  AND winner_team = 'India'
  AND strftime('%Y', match_date) = '2023';`,
	},
	{
		Name: "Q12. Most Sixes in IPL History",
		SQL: `SELECT player_name, SUM(sixes) AS total_sixes
FROM cricket_data
WHERE tournament LIKE 'IPL%'
GROUP BY player_name
ORDER BY total_sixes DESC
LIMIT 1;`,
	},
	{
		Name: "Q13. Best Economy in T20",
		SQL: `SELECT DISTINCT player_name, economy_rate, COUNT(DISTINCT match_id) AS matches
FROM cricket_data
WHERE match_type = 'T20'
GROUP BY player_name, economy_rate
ORDER BY economy_rate ASC
LIMIT 5;`,
	},
	{
		Name: "Q14. Highest ODI Team Total",
		SQL: `SELECT team1 AS team_name, MAX(team1_runs + team2_runs) AS highest_total
FROM cricket_data
WHERE match_type = 'ODI';`,
	},
	{
		Name: "Q15. Most Test Catches",
		SQL: `SELECT player_name, SUM(catches) AS total_catches
FROM cricket_data
WHERE match_type = 'Test'
GROUP BY player_name
ORDER BY total_catches DESC
LIMIT 1;`,
	},
	{
		Name: "Q16. Players born after 2000",
		SQL: `SELECT DISTINCT player_name, country, dob
FROM cricket_data
WHERE dob > '2000-01-01';`,
	},
	{
		Name: "Q17. Sachin Tendulkar WC Runs",
		SQL: `SELECT player_name, SUM(runs_scored) AS total_wc_runs
FROM cricket_data
WHERE player_name = 'Sachin Tendulkar' AND tournament LIKE 'World Cup%'
GROUP BY player_name;`,
	},
	{
		Name: "Q18. Matches at Eden Gardens by India",
		SQL: `SELECT DISTINCT match_desc, team1, team2, match_date
FROM cricket_data
WHERE venue_name = 'Eden Gardens'
  AND (team1 = 'India' OR team2 = 'India');`,
	},
	{
		Name: "Q19. Top 5 Partnerships in ODI",
		SQL: `SELECT batsman1, batsman2, SUM(runs_scored) AS runs, match_desc
FROM cricket_data
WHERE match_type = 'ODI'
GROUP BY batsman1, batsman2, match_desc
ORDER BY runs DESC
LIMIT 5;`,
	},
	{
		Name: "Q20. Hat-tricks Bowled",
		SQL: `SELECT DISTINCT player_name, match_desc, wickets_taken
FROM cricket_data
WHERE hat_trick = 1;`,
	},
	{
		Name: "Q21. IPL Teams with >2 Titles",
		SQL: `SELECT winner_team AS team_name, COUNT(*) AS trophies
FROM cricket_data
WHERE tournament LIKE 'IPL%'
GROUP BY winner_team
HAVING trophies > 2;`,
	},
	{
		Name: "Q22. Most MoM Awards in ODI",
		SQL: `SELECT player_name, COUNT(*) AS mom_awards
FROM cricket_data
WHERE match_type = 'ODI' AND man_of_the_match = 1
GROUP BY player_name
ORDER BY mom_awards DESC
LIMIT 1;`,
	},
	{
		Name: "Q23. Matches in IPL 2022",
		SQL: `SELECT COUNT(DISTINCT match_id) AS total_matches
FROM cricket_data
WHERE tournament = 'IPL 2022';`,
	},
	{
		Name: "Q24. Test Players Avg Batting > 50",
		SQL: `SELECT player_name, batting_average, COUNT(DISTINCT match_id) AS matches
FROM cricket_data
WHERE match_type = 'Test' AND batting_average > 50
GROUP BY player_name, batting_average
ORDER BY batting_average DESC;`,
	},
	{
		Name: "Q25. Venues Hosting >10 Matches",
		SQL: `SELECT venue_name AS venue, COUNT(DISTINCT match_id) AS total_matches
FROM cricket_data
GROUP BY venue_name
HAVING total_matches > 10
ORDER BY total_matches DESC;`,
	},
}
