package combat

import (
	"fmt"

	"gridfight/internal/config"
)

const (
	MinTier = 1
	MaxTier = 4
)

type StatLine struct {
	AttackPower int
	DefenseRate float64
}

// StatTable maps a difficulty tier to the stat line of each faction.
type StatTable map[int]map[Faction]StatLine

// DefaultStats is the built-in table; assets/difficulty.yaml mirrors it.
var DefaultStats = StatTable{
	1: {FactionPlayer: {-50, 0.30}, FactionMonster: {-20, 0.50}},
	2: {FactionPlayer: {-40, 0.35}, FactionMonster: {-25, 0.45}},
	3: {FactionPlayer: {-25, 0.30}, FactionMonster: {-35, 0.40}},
	4: {FactionPlayer: {-35, 0.40}, FactionMonster: {-50, 0.40}},
}

func (t StatTable) Lookup(tier int, f Faction) (StatLine, error) {
	row, ok := t[tier]
	if !ok || tier < MinTier || tier > MaxTier {
		return StatLine{}, fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidDifficulty, tier, MinTier, MaxTier)
	}
	line, ok := row[f]
	if !ok {
		return StatLine{}, fmt.Errorf("%w: tier %d has no %s stats", ErrInvalidDifficulty, tier, f)
	}
	return line, nil
}

// NewStatTable converts a loaded difficulty file. Every tier 1-4 must be
// present with a negative attack and a defense rate in [0,1).
func NewStatTable(dc *config.DifficultyConfig) (StatTable, error) {
	if dc == nil {
		return DefaultStats, nil
	}
	t := StatTable{}
	for _, td := range dc.Tiers {
		if td.Tier < MinTier || td.Tier > MaxTier {
			return nil, fmt.Errorf("%w: tier %d in table", ErrInvalidDifficulty, td.Tier)
		}
		if _, dup := t[td.Tier]; dup {
			return nil, fmt.Errorf("%w: tier %d listed twice", ErrInvalidDifficulty, td.Tier)
		}
		p, err := statLineOf(td.Tier, td.Player)
		if err != nil {
			return nil, err
		}
		m, err := statLineOf(td.Tier, td.Monster)
		if err != nil {
			return nil, err
		}
		t[td.Tier] = map[Faction]StatLine{FactionPlayer: p, FactionMonster: m}
	}
	for tier := MinTier; tier <= MaxTier; tier++ {
		if _, ok := t[tier]; !ok {
			return nil, fmt.Errorf("%w: tier %d missing from table", ErrInvalidDifficulty, tier)
		}
	}
	return t, nil
}

func statLineOf(tier int, sd config.StatsDef) (StatLine, error) {
	if sd.Attack >= 0 {
		return StatLine{}, fmt.Errorf("%w: tier %d attack %d must be negative", ErrInvalidDifficulty, tier, sd.Attack)
	}
	if sd.Defense < 0 || sd.Defense >= 1 {
		return StatLine{}, fmt.Errorf("%w: tier %d defense %.2f outside [0,1)", ErrInvalidDifficulty, tier, sd.Defense)
	}
	return StatLine{AttackPower: sd.Attack, DefenseRate: sd.Defense}, nil
}
