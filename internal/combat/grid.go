package combat

import (
	"fmt"

	"gridfight/internal/config"
)

// MinSide keeps the four spawn corners distinct.
const MinSide = 2

// Grid holds the cell markers and the roster. Roster order is fixed:
// player, then Monster1 (top-right), Monster2 (bottom-left) and
// Monster3 (top-left).
type Grid struct {
	H, W   int
	cells  [][]Marker
	roster []*Character
}

// NewGrid places the four characters in the corners. Both sides must
// be at least MinSide: a 1xN or Nx1 grid fails with ErrInvalidDimensions
// because its corners overlap.
func NewGrid(height, width int, playerName string) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d must be positive", ErrInvalidDimensions, height, width)
	}
	if height < MinSide || width < MinSide {
		return nil, fmt.Errorf("%w: %dx%d leaves no room for four corners", ErrInvalidDimensions, height, width)
	}
	if playerName == "" {
		playerName = config.DefaultPlayerName
	}
	g := &Grid{H: height, W: width, cells: make([][]Marker, height)}
	for r := range g.cells {
		g.cells[r] = make([]Marker, width)
	}

	bottom, right := height-1, width-1
	g.spawn(NewCharacter(playerName, FactionPlayer, Pos{bottom, right}))
	g.spawn(NewCharacter("Monster1", FactionMonster, Pos{0, right}))
	g.spawn(NewCharacter("Monster2", FactionMonster, Pos{bottom, 0}))
	g.spawn(NewCharacter("Monster3", FactionMonster, Pos{0, 0}))
	return g, nil
}

func (g *Grid) spawn(c *Character) {
	g.roster = append(g.roster, c)
	g.set(c.Pos, markerFor(c.Faction))
}

func (g *Grid) InBounds(p Pos) bool { return inBounds(p, g.H, g.W) }

func (g *Grid) CellAt(row, col int) (Marker, error) {
	p := Pos{row, col}
	if !g.InBounds(p) {
		return MarkerEmpty, fmt.Errorf("%w: %s on %dx%d", ErrOutOfBounds, p, g.H, g.W)
	}
	return g.at(p), nil
}

func (g *Grid) at(p Pos) Marker     { return g.cells[p.Row][p.Col] }
func (g *Grid) set(p Pos, m Marker) { g.cells[p.Row][p.Col] = m }

func (g *Grid) Player() *Character { return g.roster[0] }

func (g *Grid) Monsters() []*Character { return g.roster[1:] }

// Roster returns the characters in their fixed order. The slice is a
// copy; the characters are shared.
func (g *Grid) Roster() []*Character {
	out := make([]*Character, len(g.roster))
	copy(out, g.roster)
	return out
}

// Cells returns a copy of the marker matrix.
func (g *Grid) Cells() [][]Marker {
	out := make([][]Marker, g.H)
	for r := range g.cells {
		out[r] = append([]Marker(nil), g.cells[r]...)
	}
	return out
}

// monsterAt scans the whole roster for the live monster standing on p.
func (g *Grid) monsterAt(p Pos) *Character {
	for _, m := range g.Monsters() {
		if m.Alive() && m.Pos == p {
			return m
		}
	}
	return nil
}

func (g *Grid) AllMonstersDead() bool {
	for _, m := range g.Monsters() {
		if m.Alive() {
			return false
		}
	}
	return true
}
