package combat

import "github.com/stretchr/testify/require"

// stubRand returns scripted values, then repeats its fallbacks.
type stubRand struct {
	floats []float64
	ints   []int
	f      float64
	n      int
}

func (s *stubRand) Float64() float64 {
	if len(s.floats) > 0 {
		v := s.floats[0]
		s.floats = s.floats[1:]
		return v
	}
	return s.f
}

func (s *stubRand) Intn(n int) int {
	if len(s.ints) > 0 {
		v := s.ints[0]
		s.ints = s.ints[1:]
		return v % n
	}
	return s.n % n
}

// defenses always fail against a 0.99 roll at every tier
func alwaysHit() *stubRand { return &stubRand{f: 0.99} }

func alwaysBlock() *stubRand { return &stubRand{f: 0} }

func newTestGrid(t require.TestingT, h, w int) *Grid {
	g, err := NewGrid(h, w, "Hero")
	require.NoError(t, err)
	return g
}

// place moves c to p, fixing up both cells.
func place(g *Grid, c *Character, p Pos) {
	if g.InBounds(c.Pos) && g.at(c.Pos) == markerFor(c.Faction) {
		g.set(c.Pos, MarkerEmpty)
	}
	c.Pos = p
	g.set(p, markerFor(c.Faction))
}

// kill marks m dead where it stands.
func kill(g *Grid, m *Character) {
	m.HP = 0
	g.set(m.Pos, MarkerDead)
}

// clearMonsters removes every monster marker, leaving only the player.
func clearMonsters(g *Grid) {
	for _, m := range g.Monsters() {
		g.set(m.Pos, MarkerEmpty)
		m.Pos = Pos{-1, -1}
	}
}

func markerCounts(g *Grid) map[Marker]int {
	out := map[Marker]int{}
	for _, row := range g.cells {
		for _, m := range row {
			out[m]++
		}
	}
	return out
}
