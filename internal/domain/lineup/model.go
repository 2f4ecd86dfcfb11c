package lineup

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Section is the part of a side listing an entry was printed in.
type Section string

const (
	SectionPredicted Section = "predicted_lineup"
	SectionInjuries  Section = "injury_list"
)

// RawEntry is one player occurrence extracted from a match block, before
// identity resolution.
type RawEntry struct {
	RawName     string
	RawPosition string
	Side        Side
	Section     Section
	// Tag is the inline marker text as printed (QUES, OUT, SUS), upper-cased.
	// Empty when the item carries no marker.
	Tag string
}

// MatchBlock is one fixture's worth of markup.
type MatchBlock struct {
	Index    int
	HomeAbbr string
	AwayAbbr string
	Home     []RawEntry
	Away     []RawEntry
}

// Boundary names the scanner stage an Issue was raised at.
type Boundary string

const (
	BoundaryBlock     Boundary = "block"
	BoundaryTeamAbbr  Boundary = "team_abbr"
	BoundarySide      Boundary = "side"
	BoundaryItem      Boundary = "item"
	BoundaryAttribute Boundary = "attribute"
)

// Issue is a structured parse diagnostic. Issues never abort parsing.
type Issue struct {
	Boundary Boundary
	Block    int
	Reason   string
}

func (i Issue) String() string {
	return fmt.Sprintf("block %d: %s: %s", i.Block, i.Boundary, i.Reason)
}

// Document is the parser output: blocks in document order plus diagnostics
// for everything that was skipped.
type Document struct {
	Blocks []MatchBlock
	Issues []Issue
}

// DedupeByName keeps the first occurrence of each raw name.
func DedupeByName(entries []RawEntry) []RawEntry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]RawEntry, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.RawName]; ok {
			continue
		}
		seen[entry.RawName] = struct{}{}
		out = append(out, entry)
	}
	return out
}

// Entry is the public lineup unit. CanonicalID is nil when the player could
// not be resolved; DisplayName then falls back to RawName.
type Entry struct {
	CanonicalID   *int64        `json:"canonical_id"`
	DisplayName   string        `json:"display_name"`
	RawName       string        `json:"raw_name"`
	Position      string        `json:"position"`
	Status        Status        `json:"status"`
	AbsenceReason AbsenceReason `json:"absence_reason,omitempty"`
}

// Fixture holds both sides of one match.
type Fixture struct {
	Home []Entry `json:"home"`
	Away []Entry `json:"away"`
}

func (f Fixture) IsEmpty() bool {
	return len(f.Home) == 0 && len(f.Away) == 0
}

// Find returns the entry for a canonical player id on either side.
func (f Fixture) Find(playerID int64) (Entry, bool) {
	for _, side := range [][]Entry{f.Home, f.Away} {
		for _, entry := range side {
			if entry.CanonicalID != nil && *entry.CanonicalID == playerID {
				return entry, true
			}
		}
	}
	return Entry{}, false
}

// Result maps "<home_team_id>-<away_team_id>" keys to fixtures and keeps
// insertion order. The zero value is ready to use.
type Result struct {
	keys     []string
	fixtures map[string]Fixture
}

// Set stores a fixture. A repeated key replaces the earlier fixture but keeps
// its original position.
func (r *Result) Set(key string, fixture Fixture) {
	if r.fixtures == nil {
		r.fixtures = make(map[string]Fixture)
	}
	if _, exists := r.fixtures[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.fixtures[key] = fixture
}

func (r *Result) Get(key string) (Fixture, bool) {
	fixture, ok := r.fixtures[key]
	return fixture, ok
}

// Keys returns fixture keys in insertion order.
func (r *Result) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r *Result) Len() int {
	return len(r.keys)
}

// MarshalJSON writes the fixtures as one JSON object in insertion order.
func (r *Result) MarshalJSON() ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_ = buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		encodedKey, err := sonic.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("encode fixture key %q: %w", key, err)
		}
		encodedFixture, err := sonic.Marshal(normalizeFixture(r.fixtures[key]))
		if err != nil {
			return nil, fmt.Errorf("encode fixture %q: %w", key, err)
		}
		_, _ = buf.Write(encodedKey)
		_ = buf.WriteByte(':')
		_, _ = buf.Write(encodedFixture)
	}
	_ = buf.WriteByte('}')

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func normalizeFixture(f Fixture) Fixture {
	if f.Home == nil {
		f.Home = []Entry{}
	}
	if f.Away == nil {
		f.Away = []Entry{}
	}
	return f
}
