package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/riskibarqy/fantasy-lineups/internal/domain/identity"
	"github.com/riskibarqy/fantasy-lineups/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-lineups/internal/domain/player"
	"github.com/riskibarqy/fantasy-lineups/internal/domain/team"
	"github.com/riskibarqy/fantasy-lineups/internal/platform/logging"
)

// LineupRules bundles the mapping tables applied to every entry.
type LineupRules struct {
	Teams     team.CodeMapper
	Positions player.PositionClassifier
	Matcher   *identity.Matcher
	Tags      lineup.TagTable
}

type LineupService struct {
	documents lineup.DocumentSource
	parser    lineup.Parser
	roster    player.Source
	rules     LineupRules
	logger    *logging.Logger
	metrics   *lineupMetrics
}

func NewLineupService(
	documents lineup.DocumentSource,
	parser lineup.Parser,
	roster player.Source,
	rules LineupRules,
	logger *logging.Logger,
	meter metric.Meter,
) (*LineupService, error) {
	if documents == nil || parser == nil || roster == nil {
		return nil, fmt.Errorf("%w: lineup service requires document source, parser and roster source", ErrInvalidInput)
	}
	if rules.Teams.Len() == 0 {
		return nil, fmt.Errorf("%w: team code table is empty", ErrInvalidInput)
	}
	if rules.Matcher == nil {
		rules.Matcher = identity.NewDefaultMatcher(player.DefaultNameNormalizer())
	}
	if rules.Tags == nil {
		rules.Tags = lineup.DefaultTagTable()
	}
	if logger == nil {
		logger = logging.Default()
	}

	metrics, err := newLineupMetrics(meter)
	if err != nil {
		return nil, err
	}

	return &LineupService{
		documents: documents,
		parser:    parser,
		roster:    roster,
		rules:     rules,
		logger:    logger,
		metrics:   metrics,
	}, nil
}

// BuildLineups fetches both sources, then resolves every parsed entry. Either
// fetch failing aborts the call; dropped blocks and unmatched entries only
// shrink the result.
func (s *LineupService) BuildLineups(ctx context.Context) (result *lineup.Result, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.BuildLineups")
	defer func() { endUsecaseSpan(span, err) }()

	result, _, err = s.build(ctx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("lineups.fixtures", result.Len()))
	return result, nil
}

func (s *LineupService) build(ctx context.Context) (*lineup.Result, player.Roster, error) {
	document, roster, err := s.fetchSources(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "lineup sources unavailable", "error", err)
		return nil, nil, err
	}

	parsed := s.parser.Parse(document)
	for _, issue := range parsed.Issues {
		s.metrics.recordParseIssue(ctx, string(issue.Boundary))
		s.logger.DebugContext(ctx, "lineup document issue", "boundary", string(issue.Boundary), "block", issue.Block, "reason", issue.Reason)
	}
	if len(parsed.Issues) > 0 {
		s.logger.WarnContext(ctx, "lineup document parsed with issues", "issues", len(parsed.Issues), "blocks", len(parsed.Blocks))
	}

	result := &lineup.Result{}
	for _, block := range parsed.Blocks {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		s.applyBlock(ctx, result, block, roster)
	}

	return result, roster, nil
}

// fetchSources issues both upstream calls concurrently. The first failure
// cancels the other call.
func (s *LineupService) fetchSources(ctx context.Context) ([]byte, player.Roster, error) {
	var (
		document []byte
		roster   player.Roster
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		raw, err := s.documents.FetchDocument(ctx)
		if err != nil {
			return asUpstreamFetchError(SourceLineupsDocument, err)
		}
		document = raw
		return nil
	})
	p.Go(func(ctx context.Context) error {
		players, err := s.roster.ListPlayers(ctx)
		if err != nil {
			return asUpstreamFetchError(SourceRoster, err)
		}
		roster = players
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, nil, err
	}

	return document, roster, nil
}

// asUpstreamFetchError keeps classified errors as they are and reports
// anything else as a fetch failure of source.
func asUpstreamFetchError(source UpstreamSource, err error) error {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return err
	}
	return NewUpstreamFetchError(source, err)
}

func (s *LineupService) applyBlock(ctx context.Context, result *lineup.Result, block lineup.MatchBlock, roster player.Roster) {
	homeID, homeOK := s.rules.Teams.Resolve(block.HomeAbbr)
	awayID, awayOK := s.rules.Teams.Resolve(block.AwayAbbr)
	if !homeOK || !awayOK {
		s.metrics.recordBlockDropped(ctx, dropReasonUnmappedTeam)
		s.logger.DebugContext(ctx, "skip block with unmapped team",
			"block", block.Index,
			"home_abbr", block.HomeAbbr,
			"away_abbr", block.AwayAbbr,
		)
		return
	}

	fixture := lineup.Fixture{
		Home: s.resolveSide(ctx, block.Home, homeID, roster),
		Away: s.resolveSide(ctx, block.Away, awayID, roster),
	}
	if fixture.IsEmpty() {
		s.metrics.recordBlockDropped(ctx, dropReasonEmpty)
		return
	}

	key := team.PairKey(homeID, awayID)
	if _, exists := result.Get(key); exists {
		s.logger.WarnContext(ctx, "fixture key repeated in lineup document, keeping last block", "key", key, "block", block.Index)
	}
	result.Set(key, fixture)
}

func (s *LineupService) resolveSide(ctx context.Context, entries []lineup.RawEntry, teamID int64, roster player.Roster) []lineup.Entry {
	out := make([]lineup.Entry, 0, len(entries))
	for _, raw := range entries {
		out = append(out, s.resolveEntry(ctx, raw, teamID, roster))
	}
	return out
}

func (s *LineupService) resolveEntry(ctx context.Context, raw lineup.RawEntry, teamID int64, roster player.Roster) lineup.Entry {
	status, reason := lineup.ClassifyStatus(raw.Section, s.rules.Tags.Kind(raw.Tag))
	entry := lineup.Entry{
		DisplayName:   raw.RawName,
		RawName:       raw.RawName,
		Position:      string(s.rules.Positions.Classify(raw.RawPosition)),
		Status:        status,
		AbsenceReason: reason,
	}

	resolution, ok := s.rules.Matcher.Match(raw.RawName, teamID, roster)
	if !ok {
		s.metrics.recordUnmatched(ctx)
		s.logger.DebugContext(ctx, "lineup entry unmatched", "raw_name", raw.RawName, "team_id", teamID)
		return entry
	}

	id := resolution.Player.ID
	entry.CanonicalID = &id
	if resolution.Player.DisplayName != "" {
		entry.DisplayName = resolution.Player.DisplayName
	}
	s.metrics.recordResolved(ctx, resolution.Strategy)
	return entry
}
