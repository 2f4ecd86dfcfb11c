package identity

import "github.com/riskibarqy/fantasy-lineups/internal/domain/player"

// Resolution is a successful match together with the strategy that produced it.
type Resolution struct {
	Player   player.Player
	Strategy string
}

// Matcher runs an ordered cascade of strategies. The first strategy with a
// match wins, and within a strategy the first candidate in roster order wins.
type Matcher struct {
	strategies []Strategy
}

func NewMatcher(strategies []Strategy) *Matcher {
	out := make([]Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s.Match == nil {
			continue
		}
		out = append(out, s)
	}
	return &Matcher{strategies: out}
}

// NewDefaultMatcher uses DefaultStrategies.
func NewDefaultMatcher(n player.NameNormalizer) *Matcher {
	return NewMatcher(DefaultStrategies(n))
}

// Strategies returns the strategy names in evaluation order.
func (m *Matcher) Strategies() []string {
	names := make([]string, 0, len(m.strategies))
	for _, s := range m.strategies {
		names = append(names, s.Name)
	}
	return names
}

// Match resolves rawName among the roster members of teamID. No match is not
// an error; callers keep the entry unresolved.
func (m *Matcher) Match(rawName string, teamID int64, roster player.Roster) (Resolution, bool) {
	candidates := roster.ByTeam(teamID)
	if len(candidates) == 0 {
		return Resolution{}, false
	}

	for _, s := range m.strategies {
		p, ok := s.Match(rawName, teamID, candidates)
		if !ok || p.TeamID != teamID {
			continue
		}
		return Resolution{Player: p, Strategy: s.Name}, true
	}

	return Resolution{}, false
}
