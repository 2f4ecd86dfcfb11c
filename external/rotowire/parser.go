package rotowire

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/riskibarqy/fantasy-lineups/internal/domain/lineup"
)

const (
	positionSelector = `[class^="lineup__pos"]`
	nameSelector     = `a[title]`
	tagSelector      = `[class^="lineup__inj"]`
)

// Parser reads the lineups page. The page has no stable schema, so the
// document is cut on literal markers first and only single list items are
// handed to an HTML parser.
type Parser struct {
	markers Markers
}

func NewParser(markers Markers) *Parser {
	return &Parser{markers: markers.withDefaults()}
}

// Parse never fails. Blocks that cannot be read are left out of the result and
// described in Document.Issues.
func (p *Parser) Parse(document []byte) lineup.Document {
	var doc lineup.Document

	blocks := splitBlocks(string(document), p.markers.Block)
	if len(blocks) == 0 {
		doc.Issues = append(doc.Issues, lineup.Issue{
			Boundary: lineup.BoundaryBlock,
			Block:    -1,
			Reason:   "no match block marker found",
		})
		return doc
	}

	for index, text := range blocks {
		block, issues, ok := p.parseBlock(index, text)
		doc.Issues = append(doc.Issues, issues...)
		if ok {
			doc.Blocks = append(doc.Blocks, block)
		}
	}
	return doc
}

func (p *Parser) parseBlock(index int, text string) (lineup.MatchBlock, []lineup.Issue, bool) {
	var issues []lineup.Issue

	abbrs, unreadable := scanAbbreviations(text, p.markers.TeamAbbr, 2)
	for _, token := range unreadable {
		issues = append(issues, lineup.Issue{
			Boundary: lineup.BoundaryTeamAbbr,
			Block:    index,
			Reason:   fmt.Sprintf("unreadable team abbreviation %q", token),
		})
	}
	if len(abbrs) < 2 {
		issues = append(issues, lineup.Issue{
			Boundary: lineup.BoundaryTeamAbbr,
			Block:    index,
			Reason:   fmt.Sprintf("expected 2 team abbreviations, found %d", len(abbrs)),
		})
		return lineup.MatchBlock{}, issues, false
	}

	block := lineup.MatchBlock{
		Index:    index,
		HomeAbbr: abbrs[0],
		AwayAbbr: abbrs[1],
	}

	homeRegion, ok := sideRegion(text, p.markers.HomeSide, p.markers.AwaySide)
	if ok {
		entries, sideIssues := p.parseSide(index, homeRegion, lineup.SideHome)
		block.Home = entries
		issues = append(issues, sideIssues...)
	} else {
		issues = append(issues, missingSide(index, lineup.SideHome))
	}

	awayRegion, ok := sideRegion(text, p.markers.AwaySide, p.markers.HomeSide)
	if ok {
		entries, sideIssues := p.parseSide(index, awayRegion, lineup.SideAway)
		block.Away = entries
		issues = append(issues, sideIssues...)
	} else {
		issues = append(issues, missingSide(index, lineup.SideAway))
	}

	return block, issues, true
}

func missingSide(index int, side lineup.Side) lineup.Issue {
	return lineup.Issue{
		Boundary: lineup.BoundarySide,
		Block:    index,
		Reason:   fmt.Sprintf("%s side marker not found", side),
	}
}

// parseSide walks the items of one side. Every item after the injuries
// header belongs to the injury list.
func (p *Parser) parseSide(index int, region string, side lineup.Side) ([]lineup.RawEntry, []lineup.Issue) {
	var (
		entries []lineup.RawEntry
		issues  []lineup.Issue
	)
	section := lineup.SectionPredicted

	for _, item := range splitItems(region, p.markers.Item) {
		if p.isInjuriesHeader(item) {
			section = lineup.SectionInjuries
			continue
		}
		if !strings.Contains(item, p.markers.Player) {
			continue
		}

		entry, err := extractEntry(item)
		if err != nil {
			issues = append(issues, lineup.Issue{
				Boundary: lineup.BoundaryItem,
				Block:    index,
				Reason:   fmt.Sprintf("%s item: %v", side, err),
			})
			continue
		}
		if entry.RawName == "" {
			issues = append(issues, lineup.Issue{
				Boundary: lineup.BoundaryAttribute,
				Block:    index,
				Reason:   fmt.Sprintf("%s player item without name attribute", side),
			})
			continue
		}

		entry.Side = side
		entry.Section = section
		entries = append(entries, entry)
	}

	return lineup.DedupeByName(entries), issues
}

func (p *Parser) isInjuriesHeader(item string) bool {
	return strings.Contains(item, p.markers.Title) &&
		strings.Contains(strings.ToLower(item), p.markers.InjuriesLabel)
}

// extractEntry reads one item fragment. Lookups are scoped to the first list
// element so trailing markup of the side never leaks into the entry.
func extractEntry(fragment string) (lineup.RawEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return lineup.RawEntry{}, fmt.Errorf("parse item markup: %w", err)
	}
	item := doc.Find("li").First()
	if item.Length() == 0 {
		return lineup.RawEntry{}, fmt.Errorf("no list element in item markup")
	}

	name, _ := item.Find(nameSelector).First().Attr("title")
	return lineup.RawEntry{
		RawName:     strings.TrimSpace(name),
		RawPosition: strings.TrimSpace(item.Find(positionSelector).First().Text()),
		Tag:         strings.ToUpper(strings.TrimSpace(item.Find(tagSelector).First().Text())),
	}, nil
}
