package player

import "strings"

// NotAvailable is the sentinel shown for any profile field the provider did
// not return. A missing field never suppresses the rest of the profile.
const NotAvailable = "N/A"

// Rankings holds the player's current ICC ranks as reported by the provider.
// Ranks arrive as free-form strings ("2", "-", "") and are not parsed.
type Rankings struct {
	Batting    string `json:"batting"`
	Bowling    string `json:"bowling"`
	AllRounder string `json:"allRounder"`
}

// Profile is the flattened player profile card.
type Profile struct {
	Name              string   `json:"name"`
	Nickname          string   `json:"nickname"`
	DateOfBirth       string   `json:"dateOfBirth"`
	BirthPlace        string   `json:"birthPlace"`
	InternationalTeam string   `json:"internationalTeam"`
	Role              string   `json:"role"`
	BattingStyle      string   `json:"battingStyle"`
	BowlingStyle      string   `json:"bowlingStyle"`
	ImageURL          string   `json:"imageUrl"`
	Teams             string   `json:"teams"`
	Rankings          Rankings `json:"rankings"`
	ProfileURL        string   `json:"profileUrl"`
}

// WithDefaults returns a copy with every empty display field replaced by the
// NotAvailable sentinel. ImageURL and ProfileURL stay empty when absent so the
// caller can skip rendering them.
func (p Profile) WithDefaults() Profile {
	out := p
	out.Name = orNA(p.Name)
	out.Nickname = orNA(p.Nickname)
	out.DateOfBirth = orNA(p.DateOfBirth)
	out.BirthPlace = orNA(p.BirthPlace)
	out.InternationalTeam = orNA(p.InternationalTeam)
	out.Role = orNA(p.Role)
	out.BattingStyle = orNA(p.BattingStyle)
	out.BowlingStyle = orNA(p.BowlingStyle)
	out.Teams = orNA(p.Teams)
	out.Rankings.Batting = orNA(p.Rankings.Batting)
	out.Rankings.Bowling = orNA(p.Rankings.Bowling)
	out.Rankings.AllRounder = orNA(p.Rankings.AllRounder)
	return out
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotAvailable
	}
	return value
}
