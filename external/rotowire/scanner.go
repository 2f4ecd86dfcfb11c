package rotowire

import (
	"strings"
)

// Markers are the literal markup fragments the scanner cuts the document on.
// Zero fields fall back to DefaultMarkers.
type Markers struct {
	Block    string
	TeamAbbr string
	HomeSide string
	AwaySide string
	Item     string
	Title    string
	Player   string
	// InjuriesLabel is matched case-insensitively inside a title item.
	InjuriesLabel string
}

func DefaultMarkers() Markers {
	return Markers{
		Block:         `class="lineup is-soccer"`,
		TeamAbbr:      `class="lineup__abbr"`,
		HomeSide:      `class="lineup__list is-home"`,
		AwaySide:      `class="lineup__list is-visit"`,
		Item:          "<li",
		Title:         "lineup__title",
		Player:        "lineup__player",
		InjuriesLabel: "injuries",
	}
}

func (m Markers) withDefaults() Markers {
	def := DefaultMarkers()
	if m.Block == "" {
		m.Block = def.Block
	}
	if m.TeamAbbr == "" {
		m.TeamAbbr = def.TeamAbbr
	}
	if m.HomeSide == "" {
		m.HomeSide = def.HomeSide
	}
	if m.AwaySide == "" {
		m.AwaySide = def.AwaySide
	}
	if m.Item == "" {
		m.Item = def.Item
	}
	if m.Title == "" {
		m.Title = def.Title
	}
	if m.Player == "" {
		m.Player = def.Player
	}
	if m.InjuriesLabel == "" {
		m.InjuriesLabel = def.InjuriesLabel
	}
	m.InjuriesLabel = strings.ToLower(m.InjuriesLabel)
	return m
}

// splitBlocks returns the text following each block marker, up to the next
// marker or the end of the document. Text before the first marker is ignored.
func splitBlocks(document, marker string) []string {
	parts := strings.Split(document, marker)
	if len(parts) <= 1 {
		return nil
	}
	return parts[1:]
}

// scanAbbreviations collects the readable abbreviation tokens of a block in
// document order, stopping after limit tokens. Unreadable tokens are returned
// separately so the caller can report them.
func scanAbbreviations(block, marker string, limit int) (tokens []string, unreadable []string) {
	rest := block
	for len(tokens) < limit {
		idx := strings.Index(rest, marker)
		if idx < 0 {
			break
		}
		rest = rest[idx+len(marker):]

		closeTag := strings.IndexByte(rest, '>')
		if closeTag < 0 {
			unreadable = append(unreadable, "")
			break
		}
		rest = rest[closeTag+1:]

		text := rest
		if end := strings.IndexByte(rest, '<'); end >= 0 {
			text = rest[:end]
		}
		text = strings.TrimSpace(text)
		if !isAbbreviation(text) {
			unreadable = append(unreadable, text)
			continue
		}
		tokens = append(tokens, text)
	}
	return tokens, unreadable
}

// isAbbreviation accepts 2 to 4 upper-case ASCII letters.
func isAbbreviation(text string) bool {
	if len(text) < 2 || len(text) > 4 {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < 'A' || text[i] > 'Z' {
			return false
		}
	}
	return true
}

// sideRegion isolates the text after marker up to the start of the other
// side's marker, or the end of the block.
func sideRegion(block, marker, otherMarker string) (string, bool) {
	start := strings.Index(block, marker)
	if start < 0 {
		return "", false
	}
	region := block[start+len(marker):]
	if end := strings.Index(region, otherMarker); end >= 0 {
		region = region[:end]
	}
	return region, true
}

// splitItems cuts a side region into fragments, each starting with the item
// marker. The marker only counts when it is not followed by a word character,
// so "<link" never opens an item.
func splitItems(region, marker string) []string {
	var starts []int
	offset := 0
	for {
		idx := strings.Index(region[offset:], marker)
		if idx < 0 {
			break
		}
		pos := offset + idx
		next := pos + len(marker)
		if next >= len(region) || !isWordByte(region[next]) {
			starts = append(starts, pos)
		}
		offset = next
	}

	items := make([]string, 0, len(starts))
	for i, start := range starts {
		end := len(region)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		items = append(items, region[start:end])
	}
	return items
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
