package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-lineups/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-lineups/internal/domain/player"
)

func TestDefaultMappings(t *testing.T) {
	t.Parallel()

	m, err := DefaultMappings()
	require.NoError(t, err)

	codes, err := m.TeamCodes()
	require.NoError(t, err)
	for abbr, want := range map[string]int64{"ARS": 1, "BRN": 3, "BHA": 6, "LDS": 11, "LIV": 12, "NOT": 16, "WOL": 20} {
		got, ok := codes.Resolve(abbr)
		require.True(t, ok, abbr)
		require.Equal(t, want, got, abbr)
	}
	_, ok := codes.Resolve("XYZ")
	require.False(t, ok)

	classifier := player.NewPositionClassifier(m.PositionCodes())
	require.Equal(t, player.PositionMidfielder, classifier.Classify("DMC"))
	require.Equal(t, player.PositionForward, classifier.Classify("ST"))

	require.Equal(t, "lukasz fabianski", m.NameNormalizer().Normalize("Łukasz Fabiański"))
	require.Equal(t, "grosskreutz", m.NameNormalizer().Normalize("GROẞKREUTZ"))

	tags := m.TagTable()
	require.Equal(t, lineup.TagDoubt, tags.Kind("QUES"))
	require.Equal(t, lineup.TagSuspended, tags.Kind("sus"))
	require.Equal(t, lineup.TagOut, tags.Kind("OUT"))
}

func TestLoadMappings_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mappings.yaml")
	content := `
teams:
  1: [ARS, AFC]
  2: [AVL]
positions:
  goalkeeper: [GK, POR]
  defensive_midfield: [DM]
  defender: [CB]
  forward: [ST]
  midfielder: [CM]
name_substitutions:
  "ø": o
inline_tags:
  QUES: doubt
  GTD: doubt
  SUS: suspended
  OUT: out
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	m, err := LoadMappings(path)
	require.NoError(t, err)

	codes, err := m.TeamCodes()
	require.NoError(t, err)
	got, ok := codes.Resolve("AFC")
	require.True(t, ok)
	require.Equal(t, int64(1), got)
	require.Equal(t, lineup.TagDoubt, m.TagTable().Kind("GTD"))
	require.Equal(t, player.PositionGoalkeeper, player.NewPositionClassifier(m.PositionCodes()).Classify("POR"))
}

func TestLoadMappings_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadMappings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseMappings_Invalid(t *testing.T) {
	t.Parallel()

	base := `
positions:
  goalkeeper: [GK]
  defensive_midfield: [DM]
  defender: [CB]
  forward: [ST]
  midfielder: [CM]
name_substitutions:
  "ø": o
inline_tags:
  OUT: out
`
	cases := map[string]string{
		"shared abbreviation": "teams:\n  1: [ARS]\n  2: [ARS]\n" + base,
		"non positive team":   "teams:\n  0: [ARS]\n" + base,
		"empty team variants": "teams:\n  1: []\n" + base,
		"long abbreviation":   "teams:\n  1: [ARSENAL]\n" + base,
		"unknown tag kind": `
teams:
  1: [ARS]
positions:
  goalkeeper: [GK]
  defensive_midfield: [DM]
  defender: [CB]
  forward: [ST]
  midfielder: [CM]
name_substitutions:
  "ø": o
inline_tags:
  OUT: injured
`,
		"multi letter substitution key": `
teams:
  1: [ARS]
positions:
  goalkeeper: [GK]
  defensive_midfield: [DM]
  defender: [CB]
  forward: [ST]
  midfielder: [CM]
name_substitutions:
  "oe": o
inline_tags:
  OUT: out
`,
		"uppercase substitution": strings.Replace(base, `"ø": o`, `"ø": O`, 1) + "teams:\n  1: [ARS]\n",
		"accented substitution":  strings.Replace(base, `"ø": o`, `"ø": "é"`, 1) + "teams:\n  1: [ARS]\n",
		"dotted substitution":    strings.Replace(base, `"ø": o`, `"ø": "o."`, 1) + "teams:\n  1: [ARS]\n",
		"self substitution":      strings.Replace(base, `"ø": o`, `"ø": "ø"`, 1) + "teams:\n  1: [ARS]\n",
		"unknown field": "teams:\n  1: [ARS]\nextra: true\n" + base,
		"missing teams": base,
	}

	for name, raw := range cases {
		if _, err := ParseMappings([]byte(raw)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
