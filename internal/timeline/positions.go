package timeline

// Player position abbreviations, goalkeeper through forward line.
const (
	Goalkeeper            = "GK"
	LeftBack              = "LB"
	LeftCenterBack        = "LCB"
	RightCenterBack       = "RCB"
	RightBack             = "RB"
	DefensiveMidfielder   = "CDM"
	DefensiveMidfielderDM = "DM"
	CentralMidfielder     = "CM"
	AttackingMidfielder   = "CAM"
	AttackingMidfielderAM = "AM"
	LeftMidfielder        = "LM"
	LeftWinger            = "LW"
	RightMidfielder       = "RM"
	RightWinger           = "RW"
	SecondStriker         = "SS"
	CenterForward         = "CF"
	Striker               = "ST"
)

var positions = []string{
	Goalkeeper,
	LeftBack, LeftCenterBack, RightCenterBack, RightBack,
	DefensiveMidfielder, DefensiveMidfielderDM,
	CentralMidfielder,
	AttackingMidfielder, AttackingMidfielderAM,
	LeftMidfielder, LeftWinger, RightMidfielder, RightWinger,
	SecondStriker, CenterForward, Striker,
}

// AllPositions lists every known position abbreviation.
func AllPositions() []string {
	out := make([]string, len(positions))
	copy(out, positions)
	return out
}

// IsValidPosition reports whether abbr is a known position.
func IsValidPosition(abbr string) bool {
	for _, p := range positions {
		if p == abbr {
			return true
		}
	}
	return false
}
