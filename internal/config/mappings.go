package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/fantasy-lineups/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-lineups/internal/domain/player"
	"github.com/riskibarqy/fantasy-lineups/internal/domain/team"
)

//go:embed mappings.yaml
var defaultMappings []byte

// Mappings holds the provider vocabularies the lineup pipeline depends on.
type Mappings struct {
	Teams             map[int64][]string `yaml:"teams" validate:"required,min=1,dive,keys,gt=0,endkeys,required,min=1,dive,required,alpha,min=2,max=4"`
	Positions         PositionMappings   `yaml:"positions"`
	NameSubstitutions map[string]string  `yaml:"name_substitutions" validate:"required,min=1,dive,keys,required,endkeys,required"`
	InlineTags        map[string]string  `yaml:"inline_tags" validate:"required,min=1,dive,keys,required,endkeys,oneof=doubt suspended out"`
}

type PositionMappings struct {
	Goalkeeper        []string `yaml:"goalkeeper" validate:"required,min=1,dive,required"`
	DefensiveMidfield []string `yaml:"defensive_midfield" validate:"required,min=1,dive,required"`
	Defender          []string `yaml:"defender" validate:"required,min=1,dive,required"`
	Forward           []string `yaml:"forward" validate:"required,min=1,dive,required"`
	Midfielder        []string `yaml:"midfielder" validate:"required,min=1,dive,required"`
}

// LoadMappings reads the mapping tables from path, or the embedded defaults
// when path is empty.
func LoadMappings(path string) (Mappings, error) {
	if strings.TrimSpace(path) == "" {
		return ParseMappings(defaultMappings)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Mappings{}, fmt.Errorf("read mappings file %s: %w", path, err)
	}
	return ParseMappings(raw)
}

// DefaultMappings returns the embedded tables.
func DefaultMappings() (Mappings, error) {
	return ParseMappings(defaultMappings)
}

func ParseMappings(raw []byte) (Mappings, error) {
	var out Mappings
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&out); err != nil {
		return Mappings{}, fmt.Errorf("decode mappings: %w", err)
	}
	if err := out.Validate(); err != nil {
		return Mappings{}, err
	}
	return out, nil
}

func (m Mappings) Validate() error {
	if err := validator.New().Struct(m); err != nil {
		return fmt.Errorf("validate mappings: %w", err)
	}
	for from := range m.NameSubstitutions {
		if utf8.RuneCountInString(from) != 1 {
			return fmt.Errorf("validate mappings: name substitution key %q must be a single letter", from)
		}
	}
	normalizer := m.NameNormalizer()
	for from, to := range m.NameSubstitutions {
		if normalizer.Normalize(to) != to {
			return fmt.Errorf("validate mappings: name substitution for %q must already be normalized, got %q", from, to)
		}
	}
	if _, err := team.NewCodeMapper(m.Teams); err != nil {
		return fmt.Errorf("validate mappings: %w", err)
	}
	return nil
}

func (m Mappings) TeamCodes() (team.CodeMapper, error) {
	return team.NewCodeMapper(m.Teams)
}

func (m Mappings) PositionCodes() player.PositionCodes {
	return player.PositionCodes{
		Goalkeeper:        m.Positions.Goalkeeper,
		DefensiveMidfield: m.Positions.DefensiveMidfield,
		Defender:          m.Positions.Defender,
		Forward:           m.Positions.Forward,
		Midfielder:        m.Positions.Midfielder,
	}
}

func (m Mappings) NameNormalizer() player.NameNormalizer {
	substitutions := make(map[rune]string, len(m.NameSubstitutions))
	for from, to := range m.NameSubstitutions {
		r, _ := utf8.DecodeRuneInString(from)
		substitutions[r] = to
	}
	return player.NewNameNormalizer(substitutions)
}

func (m Mappings) TagTable() lineup.TagTable {
	out := make(lineup.TagTable, len(m.InlineTags))
	for tag, kind := range m.InlineTags {
		out[strings.ToUpper(strings.TrimSpace(tag))] = lineup.TagKind(kind)
	}
	return out
}
