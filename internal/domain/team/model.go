package team

import (
	"fmt"
	"strings"
)

// CodeMapper resolves provider team abbreviations to canonical team ids. One
// team may be known under several abbreviations (renames, alternate spellings).
type CodeMapper struct {
	byCode map[string]int64
}

// NewCodeMapper builds a mapper from canonical id to its abbreviation variants.
// An abbreviation claimed by two different teams is rejected.
func NewCodeMapper(variantsByTeam map[int64][]string) (CodeMapper, error) {
	byCode := make(map[string]int64, len(variantsByTeam)*2)
	for teamID, variants := range variantsByTeam {
		if teamID <= 0 {
			return CodeMapper{}, fmt.Errorf("team id must be greater than zero, got %d", teamID)
		}
		for _, variant := range variants {
			code := normalizeCode(variant)
			if code == "" {
				continue
			}
			if existing, ok := byCode[code]; ok && existing != teamID {
				return CodeMapper{}, fmt.Errorf("abbreviation %q mapped to teams %d and %d", code, existing, teamID)
			}
			byCode[code] = teamID
		}
	}

	return CodeMapper{byCode: byCode}, nil
}

// Resolve returns the canonical team id for abbr. Unknown abbreviations report
// false; callers skip the fixture instead of failing.
func (m CodeMapper) Resolve(abbr string) (int64, bool) {
	teamID, ok := m.byCode[normalizeCode(abbr)]
	return teamID, ok
}

// Len reports the number of known abbreviations.
func (m CodeMapper) Len() int {
	return len(m.byCode)
}

// PairKey formats the fixture key used by lineup results.
func PairKey(homeTeamID, awayTeamID int64) string {
	return fmt.Sprintf("%d-%d", homeTeamID, awayTeamID)
}

func normalizeCode(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}
