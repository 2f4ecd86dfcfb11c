package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fantasy-lineups/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-lineups/internal/domain/player"
	"github.com/riskibarqy/fantasy-lineups/internal/domain/team"
)

type AvailabilityPick struct {
	PlayerID   int64
	HomeTeamID int64
	AwayTeamID int64
}

type Availability struct {
	PlayerID  int64
	Indicator lineup.Indicator
	Source    lineup.IndicatorSource
	// Status is set only when Source is lineup.SourceLineup.
	Status lineup.Status
}

// Availability resolves an indicator per pick. The lineup result takes
// precedence; the roster's chance of playing is the fallback. When only the
// lineups document cannot be fetched, every pick resolves from the roster.
func (s *LineupService) Availability(ctx context.Context, picks []AvailabilityPick) (out []Availability, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Availability")
	defer func() { endUsecaseSpan(span, err) }()

	if len(picks) == 0 {
		return nil, fmt.Errorf("%w: at least one pick is required", ErrInvalidInput)
	}
	for i, pick := range picks {
		if pick.PlayerID <= 0 || pick.HomeTeamID <= 0 || pick.AwayTeamID <= 0 {
			return nil, fmt.Errorf("%w: pick %d must have positive player and team ids", ErrInvalidInput, i)
		}
	}

	result, roster, err := s.build(ctx)
	if err != nil {
		if !isDocumentFetchFailure(err) || ctx.Err() != nil {
			return nil, err
		}
		s.logger.WarnContext(ctx, "lineups document unavailable, resolving availability from roster", "error", err)
		if roster, err = s.roster.ListPlayers(ctx); err != nil {
			return nil, asUpstreamFetchError(SourceRoster, err)
		}
		result = &lineup.Result{}
	}

	out = make([]Availability, 0, len(picks))
	for _, pick := range picks {
		out = append(out, resolveAvailability(result, roster, pick))
	}
	span.SetAttributes(attribute.Int("lineups.picks", len(picks)))
	return out, nil
}

func resolveAvailability(result *lineup.Result, roster player.Roster, pick AvailabilityPick) Availability {
	if fixture, ok := result.Get(team.PairKey(pick.HomeTeamID, pick.AwayTeamID)); ok {
		if entry, found := fixture.Find(pick.PlayerID); found {
			return Availability{
				PlayerID:  pick.PlayerID,
				Indicator: lineup.IndicatorFromStatus(entry.Status),
				Source:    lineup.SourceLineup,
				Status:    entry.Status,
			}
		}
	}

	if p, ok := roster.FindByID(pick.PlayerID); ok {
		return Availability{
			PlayerID:  pick.PlayerID,
			Indicator: lineup.IndicatorFromChance(p.ChanceOfPlayingNextRound),
			Source:    lineup.SourceRoster,
		}
	}

	return Availability{
		PlayerID:  pick.PlayerID,
		Indicator: lineup.IndicatorUnknown,
		Source:    lineup.SourceNone,
	}
}

func isDocumentFetchFailure(err error) bool {
	if !errors.Is(err, ErrUpstreamFetch) {
		return false
	}
	source, ok := UpstreamSourceOf(err)
	return ok && source == SourceLineupsDocument
}
