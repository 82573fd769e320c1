package connect

import (
	"fmt"
	"strconv"
)

type PlayerType string

const (
	Human PlayerType = "human"
	AI    PlayerType = "ai"
)

// NoTeam marks a player who plays for themselves.
const NoTeam = 0

// Player is fixed at game creation and never mutated afterward.
type Player struct {
	Index    PlayerID   `json:"index"`
	Name     string     `json:"name"`
	Type     PlayerType `json:"type"`
	Strategy string     `json:"strategy,omitempty"`
	Team     int        `json:"team,omitempty"`
	Color    string     `json:"color"`
}

func (p Player) IsAI() bool {
	return p.Type == AI
}

func (p Player) Teamed() bool {
	return p.Team != NoTeam
}

// Label is the name wins are reported under: the team label for teamed
// players, the player's own name otherwise.
func (p Player) Label() string {
	if p.Teamed() {
		return "Team " + strconv.Itoa(p.Team)
	}
	return p.Name
}

// Teammates reports whether two players count toward each other's runs.
func Teammates(a, b Player) bool {
	return a.Teamed() && b.Teamed() && a.Team == b.Team
}

// isOpponent reports whether b can win against a: any other player when
// either side is teamless, any player on a different team otherwise.
func isOpponent(a, b Player) bool {
	return a.Index != b.Index && !Teammates(a, b)
}

var botNames = map[string]string{
	"random":          "Alice",
	"defensive":       "Bob",
	"offensive":       "Charles",
	"smart":           "Dana",
	"offensive-smart": "Eve",
	"defensive-smart": "Frank",
}

func botName(strategy string) string {
	if name, ok := botNames[strategy]; ok {
		return name
	}
	return "BOT"
}

// PlayerConfig describes one seat at game creation.
type PlayerConfig struct {
	Name     string     `json:"name"`
	Type     PlayerType `json:"type"`
	Strategy string     `json:"strategy"`
	Team     int        `json:"team"`
}

// buildRoster assigns indices, default names, and colors.
func buildRoster(configs []PlayerConfig) ([]Player, error) {
	if len(configs) < 2 {
		return nil, ErrTooFewPlayers
	}

	players := make([]Player, len(configs))
	for i, pc := range configs {
		if pc.Team < 0 {
			return nil, ErrBadTeam
		}
		name := pc.Name
		if name == "" {
			if pc.Type == AI {
				name = botName(pc.Strategy)
			} else {
				name = fmt.Sprintf("Player %d", i+1)
			}
		}
		players[i] = Player{
			Index:    PlayerID(i),
			Name:     name,
			Type:     pc.Type,
			Strategy: pc.Strategy,
			Team:     pc.Team,
		}
	}

	assignColors(players)
	return players, nil
}

// assignColors spreads hues evenly so every team, and every teamless
// player, gets a visually distinct color. Teammates share their team's hue.
func assignColors(players []Player) {
	// one color group per team plus one per teamless player, in roster order
	groups := 0
	teamGroup := map[int]int{}
	group := make([]int, len(players))
	for i, p := range players {
		if p.Teamed() {
			g, seen := teamGroup[p.Team]
			if !seen {
				g = groups
				teamGroup[p.Team] = g
				groups++
			}
			group[i] = g
		} else {
			group[i] = groups
			groups++
		}
	}

	for i := range players {
		hue := group[i] * 360 / groups
		players[i].Color = fmt.Sprintf("hsl(%d, 70%%, 50%%)", hue)
	}
}
