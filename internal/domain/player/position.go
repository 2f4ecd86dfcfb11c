package player

import "strings"

// PositionCodes lists provider position abbreviations per rule of the
// classifier. Prefix rules (D*, FW*, M*, AM*) are structural and always apply.
type PositionCodes struct {
	Goalkeeper        []string
	DefensiveMidfield []string
	Defender          []string
	Forward           []string
	Midfielder        []string
}

// DefaultPositionCodes mirrors the detailed codes printed by lineup providers
// (DL, DC, DMC, AML, FWR, ...).
func DefaultPositionCodes() PositionCodes {
	return PositionCodes{
		Goalkeeper:        []string{"GK"},
		DefensiveMidfield: []string{"DM", "DMC", "DML", "DMR", "CDM"},
		Defender:          []string{"CB", "LB", "RB", "LWB", "RWB"},
		Forward:           []string{"ST", "CF", "F", "FC"},
		Midfielder:        []string{"CM", "LM", "RM", "CAM"},
	}
}

// PositionClassifier maps provider position codes to the four canonical
// classes. Rules are ordered and the first match wins.
type PositionClassifier struct {
	goalkeeper        map[string]struct{}
	defensiveMidfield map[string]struct{}
	defender          map[string]struct{}
	forward           map[string]struct{}
	midfielder        map[string]struct{}
}

func NewPositionClassifier(codes PositionCodes) PositionClassifier {
	return PositionClassifier{
		goalkeeper:        codeSet(codes.Goalkeeper),
		defensiveMidfield: codeSet(codes.DefensiveMidfield),
		defender:          codeSet(codes.Defender),
		forward:           codeSet(codes.Forward),
		midfielder:        codeSet(codes.Midfielder),
	}
}

// Classify returns a canonical position, or the upper-cased trimmed code when
// no rule applies. Unmapped codes are not an error.
func (c PositionClassifier) Classify(raw string) Position {
	code := strings.ToUpper(strings.TrimSpace(raw))

	switch {
	case has(c.goalkeeper, code):
		return PositionGoalkeeper
	// Checked before the D* prefix rule: DMC is a midfielder.
	case has(c.defensiveMidfield, code):
		return PositionMidfielder
	case strings.HasPrefix(code, "D") || has(c.defender, code):
		return PositionDefender
	case strings.HasPrefix(code, "FW") || has(c.forward, code):
		return PositionForward
	case strings.HasPrefix(code, "M") || strings.HasPrefix(code, "AM") || has(c.midfielder, code):
		return PositionMidfielder
	}

	if head, _, found := strings.Cut(code, "/"); found {
		switch strings.TrimSpace(head) {
		case "F":
			return PositionForward
		case "D":
			return PositionDefender
		default:
			return PositionMidfielder
		}
	}

	return Position(code)
}

func codeSet(codes []string) map[string]struct{} {
	out := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		out[code] = struct{}{}
	}
	return out
}

func has(set map[string]struct{}, code string) bool {
	_, ok := set[code]
	return ok
}
