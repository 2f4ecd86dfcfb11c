package identity

import (
	"strings"
	"unicode/utf8"

	"github.com/riskibarqy/fantasy-lineups/internal/domain/player"
)

// MatchFunc resolves a provider-printed name against the roster members of
// teamID. Implementations must never return a player of another team.
type MatchFunc func(rawName string, teamID int64, roster player.Roster) (player.Player, bool)

// Strategy is one named step of the matching cascade.
type Strategy struct {
	Name  string
	Match MatchFunc
}

const (
	StrategyExact          = "exact"
	StrategySuffix         = "suffix"
	StrategyContains4      = "contains_4"
	StrategyContains3      = "contains_3"
	StrategyLastToken      = "last_token"
	StrategyHyphenated     = "hyphenated"
	StrategyFullName       = "full_name"
	StrategyLastName       = "last_name"
	StrategyFirstName      = "first_name"
	StrategyTokenInDisplay = "token_in_display"
)

// DefaultStrategies returns the cascade in evaluation order.
func DefaultStrategies(n player.NameNormalizer) []Strategy {
	return []Strategy{
		{Name: StrategyExact, Match: ExactDisplayName(n)},
		{Name: StrategySuffix, Match: DisplayNameSuffix(n)},
		{Name: StrategyContains4, Match: DisplayNameContained(n, 4)},
		{Name: StrategyContains3, Match: DisplayNameContained(n, 3)},
		{Name: StrategyLastToken, Match: LastToken(n)},
		{Name: StrategyHyphenated, Match: HyphenatedDisplayName(n)},
		{Name: StrategyFullName, Match: FullName(n)},
		{Name: StrategyLastName, Match: LastName(n)},
		{Name: StrategyFirstName, Match: FirstName(n)},
		{Name: StrategyTokenInDisplay, Match: TokenInDisplayName(n)},
	}
}

// ExactDisplayName matches when both normalized names are equal.
func ExactDisplayName(n player.NameNormalizer) MatchFunc {
	return displayMatcher(n, func(raw, display string) bool {
		return raw == display
	})
}

// DisplayNameSuffix matches "Mohamed Salah" to display name "Salah".
func DisplayNameSuffix(n player.NameNormalizer) MatchFunc {
	return displayMatcher(n, strings.HasSuffix)
}

// DisplayNameContained matches when the raw name contains a display name of
// at least minLen letters.
func DisplayNameContained(n player.NameNormalizer, minLen int) MatchFunc {
	return displayMatcher(n, func(raw, display string) bool {
		return utf8.RuneCountInString(display) >= minLen && strings.Contains(raw, display)
	})
}

// LastToken matches when the last raw token equals or ends the display name.
func LastToken(n player.NameNormalizer) MatchFunc {
	return func(rawName string, teamID int64, roster player.Roster) (player.Player, bool) {
		last := lastToken(player.Tokens(n.Normalize(rawName)))
		if last == "" {
			return player.Player{}, false
		}
		return first(roster, teamID, func(p player.Player) bool {
			display := n.Normalize(p.DisplayName)
			return display != "" && strings.HasSuffix(display, last)
		})
	}
}

// HyphenatedDisplayName targets compound surnames such as "Alexander-Arnold".
func HyphenatedDisplayName(n player.NameNormalizer) MatchFunc {
	return displayMatcher(n, func(raw, display string) bool {
		return strings.Contains(display, "-") && strings.Contains(raw, display)
	})
}

// FullName compares the raw name with the canonical first and last name.
func FullName(n player.NameNormalizer) MatchFunc {
	return func(rawName string, teamID int64, roster player.Roster) (player.Player, bool) {
		raw := n.Normalize(rawName)
		if raw == "" {
			return player.Player{}, false
		}
		return first(roster, teamID, func(p player.Player) bool {
			return n.Normalize(p.FirstName+" "+p.LastName) == raw
		})
	}
}

// LastName matches the last raw token against a canonical last name of at
// least four letters.
func LastName(n player.NameNormalizer) MatchFunc {
	return func(rawName string, teamID int64, roster player.Roster) (player.Player, bool) {
		last := lastToken(player.Tokens(n.Normalize(rawName)))
		if last == "" {
			return player.Player{}, false
		}
		return first(roster, teamID, func(p player.Player) bool {
			lastName := n.Normalize(p.LastName)
			return utf8.RuneCountInString(lastName) >= 4 && lastName == last
		})
	}
}

// FirstName covers players known by a single given name ("Alisson", "Rodri").
func FirstName(n player.NameNormalizer) MatchFunc {
	return func(rawName string, teamID int64, roster player.Roster) (player.Player, bool) {
		raw := n.Normalize(rawName)
		tokens := player.Tokens(raw)
		if len(tokens) == 0 {
			return player.Player{}, false
		}
		return first(roster, teamID, func(p player.Player) bool {
			firstName := n.Normalize(p.FirstName)
			return firstName != "" && (firstName == raw || firstName == tokens[0])
		})
	}
}

// TokenInDisplayName is the loosest pass: any raw token of four or more
// letters found inside a display name of four or more letters.
func TokenInDisplayName(n player.NameNormalizer) MatchFunc {
	return func(rawName string, teamID int64, roster player.Roster) (player.Player, bool) {
		tokens := make([]string, 0, 4)
		for _, token := range player.Tokens(n.Normalize(rawName)) {
			if utf8.RuneCountInString(token) >= 4 {
				tokens = append(tokens, token)
			}
		}
		if len(tokens) == 0 {
			return player.Player{}, false
		}
		return first(roster, teamID, func(p player.Player) bool {
			display := n.Normalize(p.DisplayName)
			if utf8.RuneCountInString(display) < 4 {
				return false
			}
			for _, token := range tokens {
				if strings.Contains(display, token) {
					return true
				}
			}
			return false
		})
	}
}

// displayMatcher builds a strategy comparing the normalized raw name with each
// candidate's normalized display name. Empty names never match.
func displayMatcher(n player.NameNormalizer, pred func(raw, display string) bool) MatchFunc {
	return func(rawName string, teamID int64, roster player.Roster) (player.Player, bool) {
		raw := n.Normalize(rawName)
		if raw == "" {
			return player.Player{}, false
		}
		return first(roster, teamID, func(p player.Player) bool {
			display := n.Normalize(p.DisplayName)
			return display != "" && pred(raw, display)
		})
	}
}

// first returns the first roster member of teamID, in roster order, that
// satisfies pred.
func first(roster player.Roster, teamID int64, pred func(player.Player) bool) (player.Player, bool) {
	for _, p := range roster {
		if p.TeamID != teamID {
			continue
		}
		if pred(p) {
			return p, true
		}
	}
	return player.Player{}, false
}

func lastToken(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}
