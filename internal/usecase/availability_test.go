package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-lineups/internal/domain/lineup"
)

func TestLineupService_Availability(t *testing.T) {
	t.Parallel()

	f := newLineupFixture(t, nil)
	f.expectSources(testRoster(), testDocument())

	got, err := f.service.Availability(context.Background(), []AvailabilityPick{
		{PlayerID: 381, HomeTeamID: 12, AwayTeamID: 1},
		{PlayerID: 11, HomeTeamID: 12, AwayTeamID: 1},
		{PlayerID: 311, HomeTeamID: 12, AwayTeamID: 1},
		{PlayerID: 50, HomeTeamID: 12, AwayTeamID: 1},
		{PlayerID: 7, HomeTeamID: 1, AwayTeamID: 12},
		{PlayerID: 999, HomeTeamID: 12, AwayTeamID: 1},
	})
	require.NoError(t, err)
	require.Equal(t, []Availability{
		{PlayerID: 381, Indicator: lineup.IndicatorAvailable, Source: lineup.SourceLineup, Status: lineup.StatusStarter},
		{PlayerID: 11, Indicator: lineup.IndicatorOut, Source: lineup.SourceLineup, Status: lineup.StatusAbsent},
		{PlayerID: 311, Indicator: lineup.IndicatorDoubt, Source: lineup.SourceLineup, Status: lineup.StatusStarterDoubt},
		// Not listed in the lineup: roster chance of playing is 75.
		{PlayerID: 50, Indicator: lineup.IndicatorDoubt, Source: lineup.SourceRoster},
		// Reversed fixture key has no lineup, roster reports no concern.
		{PlayerID: 7, Indicator: lineup.IndicatorAvailable, Source: lineup.SourceRoster},
		{PlayerID: 999, Indicator: lineup.IndicatorUnknown, Source: lineup.SourceNone},
	}, got)
}

func TestLineupService_Availability_InvalidPicks(t *testing.T) {
	t.Parallel()

	cases := map[string][]AvailabilityPick{
		"empty":            nil,
		"missing player":   {{HomeTeamID: 12, AwayTeamID: 1}},
		"negative team id": {{PlayerID: 381, HomeTeamID: -1, AwayTeamID: 1}},
	}
	for name, picks := range cases {
		picks := picks
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f := newLineupFixture(t, nil)
			_, err := f.service.Availability(context.Background(), picks)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLineupService_Availability_FallsBackToRosterWhenDocumentUnavailable(t *testing.T) {
	t.Parallel()

	f := newLineupFixture(t, nil)
	f.documents.On("FetchDocument", mock.Anything).Return(nil, NewUpstreamFetchError(SourceLineupsDocument, errors.New("status=403"))).Once()
	f.roster.On("ListPlayers", mock.Anything).Return(testRoster(), nil)

	got, err := f.service.Availability(context.Background(), []AvailabilityPick{
		{PlayerID: 381, HomeTeamID: 12, AwayTeamID: 1},
		{PlayerID: 11, HomeTeamID: 12, AwayTeamID: 1},
		{PlayerID: 50, HomeTeamID: 12, AwayTeamID: 1},
		{PlayerID: 999, HomeTeamID: 12, AwayTeamID: 1},
	})
	require.NoError(t, err)
	require.Equal(t, []Availability{
		{PlayerID: 381, Indicator: lineup.IndicatorAvailable, Source: lineup.SourceRoster},
		{PlayerID: 11, Indicator: lineup.IndicatorOut, Source: lineup.SourceRoster},
		{PlayerID: 50, Indicator: lineup.IndicatorDoubt, Source: lineup.SourceRoster},
		{PlayerID: 999, Indicator: lineup.IndicatorUnknown, Source: lineup.SourceNone},
	}, got)
}

func TestLineupService_Availability_FailsWhenRosterUnavailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document error
	}{
		{name: "document available"},
		{name: "document unavailable", document: NewUpstreamFetchError(SourceLineupsDocument, context.DeadlineExceeded)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newLineupFixture(t, nil)
			if tt.document != nil {
				f.documents.On("FetchDocument", mock.Anything).Return(nil, tt.document).Maybe()
			} else {
				f.documents.On("FetchDocument", mock.Anything).Return(documentFixture, nil).Maybe()
			}
			f.roster.On("ListPlayers", mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

			_, err := f.service.Availability(context.Background(), []AvailabilityPick{{PlayerID: 381, HomeTeamID: 12, AwayTeamID: 1}})
			require.ErrorIs(t, err, ErrUpstreamFetch)
			source, ok := UpstreamSourceOf(err)
			require.True(t, ok)
			require.Equal(t, SourceRoster, source)
		})
	}
}

func TestLineupService_Availability_CallerCancelSkipsRosterFallback(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	f := newLineupFixture(t, nil)
	f.documents.On("FetchDocument", mock.Anything).Run(func(mock.Arguments) { cancel() }).
		Return(nil, NewUpstreamFetchError(SourceLineupsDocument, context.Canceled)).Once()
	f.roster.On("ListPlayers", mock.Anything).Return(testRoster(), nil).Maybe()

	_, err := f.service.Availability(ctx, []AvailabilityPick{{PlayerID: 381, HomeTeamID: 12, AwayTeamID: 1}})
	require.ErrorIs(t, err, context.Canceled)
}
