package player

import "fmt"

// Position represents the canonical football position classes.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// IsCanonical reports whether p is one of the four canonical classes.
func (p Position) IsCanonical() bool {
	_, ok := AllPositions[p]
	return ok
}

// Player is one record of the canonical roster provider. Records are loaded
// fresh per invocation and never mutated.
type Player struct {
	ID           int64
	DisplayName  string
	FirstName    string
	LastName     string
	TeamID       int64
	PositionCode int
	// ChanceOfPlayingNextRound is nil when the provider has no availability
	// concern for the player.
	ChanceOfPlayingNextRound *int
	Status                   string
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id must be greater than zero")
	}
	if p.DisplayName == "" {
		return fmt.Errorf("player display name is required")
	}

	return nil
}

// Roster is the read-only candidate set for one invocation, in provider order.
type Roster []Player

// ByTeam returns the roster members of teamID, preserving roster order.
func (r Roster) ByTeam(teamID int64) Roster {
	out := make(Roster, 0, 32)
	for _, p := range r {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}

// FindByID returns the player with the given canonical id.
func (r Roster) FindByID(id int64) (Player, bool) {
	for _, p := range r {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}
