package combat

const StartingHP = 100

// Rand is the randomness the engine draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Character is either the player or a monster; Faction decides which
// markers it treats as hostile.
type Character struct {
	Name        string
	Faction     Faction
	HP          int
	Pos         Pos
	AttackPower int
	DefenseRate float64
}

func NewCharacter(name string, f Faction, pos Pos) *Character {
	line := DefaultStats[MinTier][f]
	return &Character{
		Name:        name,
		Faction:     f,
		HP:          StartingHP,
		Pos:         pos,
		AttackPower: line.AttackPower,
		DefenseRate: line.DefenseRate,
	}
}

func (c *Character) Alive() bool     { return c.HP > 0 }
func (c *Character) IsMonster() bool { return c.Faction == FactionMonster }

func (c *Character) SetHP(hp int) {
	if hp < 0 {
		hp = 0
	}
	c.HP = hp
}

func (c *Character) SetDifficulty(tier int) error {
	return c.SetDifficultyFrom(DefaultStats, tier)
}

func (c *Character) SetDifficultyFrom(t StatTable, tier int) error {
	line, err := t.Lookup(tier, c.Faction)
	if err != nil {
		return err
	}
	c.AttackPower = line.AttackPower
	c.DefenseRate = line.DefenseRate
	return nil
}

func (c *Character) RollDefense(rng Rand) bool {
	return rng.Float64() < c.DefenseRate
}

// DecideMove picks a uniformly random direction for a monster. The
// player never decides on its own.
func (c *Character) DecideMove(rng Rand) (Direction, bool) {
	if c.Faction != FactionMonster {
		return "", false
	}
	return Directions[rng.Intn(len(Directions))], true
}

// Attack lets src strike dst. It reports whether the blow landed; a
// successful defense leaves dst untouched.
func Attack(src, dst *Character, rng Rand) bool {
	if dst.RollDefense(rng) {
		return false
	}
	dst.SetHP(dst.HP + src.AttackPower)
	return true
}
