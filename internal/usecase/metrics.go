package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "fantasy-lineups/internal/usecase"

const (
	dropReasonUnmappedTeam = "unmapped_team"
	dropReasonEmpty        = "empty"
)

type lineupMetrics struct {
	blocksDropped    metric.Int64Counter
	parseIssues      metric.Int64Counter
	entriesResolved  metric.Int64Counter
	entriesUnmatched metric.Int64Counter
}

// newLineupMetrics falls back to the global meter provider when meter is nil.
func newLineupMetrics(meter metric.Meter) (*lineupMetrics, error) {
	if meter == nil {
		meter = otel.GetMeterProvider().Meter(meterName)
	}

	blocksDropped, err := meter.Int64Counter(
		"lineups.blocks.dropped",
		metric.WithDescription("Match blocks left out of the lineup result."),
	)
	if err != nil {
		return nil, fmt.Errorf("create blocks dropped counter: %w", err)
	}
	parseIssues, err := meter.Int64Counter(
		"lineups.parse.issues",
		metric.WithDescription("Parse diagnostics raised while reading the lineup document."),
	)
	if err != nil {
		return nil, fmt.Errorf("create parse issues counter: %w", err)
	}
	entriesResolved, err := meter.Int64Counter(
		"lineups.entries.resolved",
		metric.WithDescription("Lineup entries resolved to a canonical player."),
	)
	if err != nil {
		return nil, fmt.Errorf("create entries resolved counter: %w", err)
	}
	entriesUnmatched, err := meter.Int64Counter(
		"lineups.entries.unmatched",
		metric.WithDescription("Lineup entries kept without a canonical player."),
	)
	if err != nil {
		return nil, fmt.Errorf("create entries unmatched counter: %w", err)
	}

	return &lineupMetrics{
		blocksDropped:    blocksDropped,
		parseIssues:      parseIssues,
		entriesResolved:  entriesResolved,
		entriesUnmatched: entriesUnmatched,
	}, nil
}

func (m *lineupMetrics) recordBlockDropped(ctx context.Context, reason string) {
	m.blocksDropped.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (m *lineupMetrics) recordParseIssue(ctx context.Context, boundary string) {
	m.parseIssues.Add(ctx, 1, metric.WithAttributes(attribute.String("boundary", boundary)))
}

func (m *lineupMetrics) recordResolved(ctx context.Context, strategy string) {
	m.entriesResolved.Add(ctx, 1, metric.WithAttributes(attribute.String("strategy", strategy)))
}

func (m *lineupMetrics) recordUnmatched(ctx context.Context) {
	m.entriesUnmatched.Add(ctx, 1)
}
