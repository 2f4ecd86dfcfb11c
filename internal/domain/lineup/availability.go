package lineup

// Indicator is the coarse availability shown next to a picked player.
type Indicator string

const (
	IndicatorAvailable Indicator = "available"
	IndicatorDoubt     Indicator = "doubt"
	IndicatorOut       Indicator = "out"
	IndicatorUnknown   Indicator = "unknown"
)

// IndicatorSource tells which signal produced an indicator.
type IndicatorSource string

const (
	SourceLineup IndicatorSource = "lineup"
	SourceRoster IndicatorSource = "roster"
	SourceNone   IndicatorSource = "none"
)

func IndicatorFromStatus(status Status) Indicator {
	switch status {
	case StatusStarter:
		return IndicatorAvailable
	case StatusStarterDoubt, StatusDoubt:
		return IndicatorDoubt
	case StatusAbsent:
		return IndicatorOut
	default:
		return IndicatorUnknown
	}
}

// IndicatorFromChance maps the roster provider's chance-of-playing percentage.
// A nil chance means the provider reports no concern.
func IndicatorFromChance(chance *int) Indicator {
	if chance == nil {
		return IndicatorAvailable
	}
	switch *chance {
	case 100:
		return IndicatorAvailable
	case 75, 50:
		return IndicatorDoubt
	default:
		return IndicatorOut
	}
}
