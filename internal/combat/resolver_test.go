package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestResolveMoveToEmpty(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	r := NewResolver(g, alwaysHit(), nil, nil)
	p := g.Player()

	res, err := r.Resolve(p, "left")
	require.NoError(t, err)
	assert.Equal(t, OutcomeMoved, res.Outcome)
	assert.Equal(t, Pos{2, 2}, res.From)
	assert.Equal(t, Pos{2, 1}, res.To)
	assert.Equal(t, Pos{2, 1}, p.Pos)

	from, _ := g.CellAt(2, 2)
	to, _ := g.CellAt(2, 1)
	assert.Equal(t, MarkerEmpty, from)
	assert.Equal(t, MarkerPlayer, to)
}

func TestResolveMove_Property_InteriorStep(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := rapid.IntRange(3, 9).Draw(rt, "h")
		w := rapid.IntRange(3, 9).Draw(rt, "w")
		row := rapid.IntRange(1, h-2).Draw(rt, "row")
		col := rapid.IntRange(1, w-2).Draw(rt, "col")
		dir := rapid.SampledFrom(Directions[:]).Draw(rt, "dir")

		g := newTestGrid(rt, h, w)
		clearMonsters(g)
		p := g.Player()
		place(g, p, Pos{row, col})

		r := NewResolver(g, alwaysHit(), nil, nil)
		res, err := r.ResolveMove(p, dir)
		require.NoError(rt, err)

		off, _ := dir.Offset()
		want := Pos{row, col}.Add(off)
		assert.Equal(rt, OutcomeMoved, res.Outcome)
		assert.Equal(rt, want, p.Pos)
		assert.Equal(rt, MarkerPlayer, g.at(want))
		assert.Equal(rt, MarkerEmpty, g.at(Pos{row, col}))
		assert.Equal(rt, 1, markerCounts(g)[MarkerPlayer])
	})
}

func TestResolveMove_Property_EdgeBlocks(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := rapid.IntRange(2, 8).Draw(rt, "h")
		w := rapid.IntRange(2, 8).Draw(rt, "w")
		dir := rapid.SampledFrom(Directions[:]).Draw(rt, "dir")
		faction := Faction(rapid.IntRange(0, 1).Draw(rt, "faction"))

		// a cell on the edge the move points at
		var p Pos
		switch dir {
		case Up:
			p = Pos{0, rapid.IntRange(0, w-1).Draw(rt, "col")}
		case Down:
			p = Pos{h - 1, rapid.IntRange(0, w-1).Draw(rt, "col")}
		case Left:
			p = Pos{rapid.IntRange(0, h-1).Draw(rt, "row"), 0}
		case Right:
			p = Pos{rapid.IntRange(0, h-1).Draw(rt, "row"), w - 1}
		}

		g := newTestGrid(rt, h, w)
		clearMonsters(g)
		mover := g.Player()
		if faction == FactionMonster {
			g.set(mover.Pos, MarkerEmpty)
			mover = g.Monsters()[0]
		}
		place(g, mover, p)
		before := g.Cells()

		r := NewResolver(g, alwaysHit(), nil, nil)
		res, err := r.ResolveMove(mover, dir)
		require.NoError(rt, err)
		assert.Equal(rt, OutcomeBlockedEdge, res.Outcome)
		assert.Equal(rt, p, mover.Pos)
		assert.Equal(rt, before, g.Cells())
	})
}

func TestPlayerAttackKillsMonster(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	var events []Event
	r := NewResolver(g, alwaysHit(), func(ev Event) { events = append(events, ev) }, nil)
	p := g.Player()
	m := g.Monsters()[1] // Monster2, bottom-left
	place(g, m, Pos{2, 1})
	m.DefenseRate = 0

	res, err := r.Resolve(p, "left")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAttack, res.Outcome)
	assert.Equal(t, "Monster2", res.Target)
	assert.True(t, res.Hit)
	assert.False(t, res.Killed)
	assert.Equal(t, 50, m.HP)
	assert.Equal(t, Pos{2, 2}, p.Pos, "attacker stays put")
	assert.Equal(t, MarkerMonster, g.at(Pos{2, 1}))

	res, err = r.Resolve(p, "left")
	require.NoError(t, err)
	assert.True(t, res.Killed)
	assert.Equal(t, 0, m.HP)
	assert.Equal(t, MarkerDead, g.at(Pos{2, 1}))
	assert.Equal(t, Pos{2, 2}, p.Pos)

	res, err = r.Resolve(p, "left")
	require.NoError(t, err)
	assert.Equal(t, OutcomeBlockedDead, res.Outcome)
	assert.Equal(t, 0, m.HP)
	assert.Equal(t, MarkerDead, g.at(Pos{2, 1}))
	assert.Equal(t, Pos{2, 2}, p.Pos)

	var types []string
	for _, ev := range events {
		types = append(types, ev.Type)
	}
	assert.Equal(t, []string{"Hit", "Hit", "Death", "Blocked"}, types)
}

func TestPlayerAttackDefended(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	r := NewResolver(g, alwaysBlock(), nil, nil)
	m := g.Monsters()[0] // Monster1, top-right
	place(g, m, Pos{1, 2})

	res, err := r.Resolve(g.Player(), "up")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAttack, res.Outcome)
	assert.False(t, res.Hit)
	assert.Equal(t, 100, m.HP)
	assert.Equal(t, MarkerMonster, g.at(Pos{1, 2}))
}

func TestMonsterAttacksPlayer(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	r := NewResolver(g, alwaysHit(), nil, nil)
	p := g.Player()
	m := g.Monsters()[0]
	place(g, m, Pos{1, 2})
	p.HP = 10

	res, err := r.ResolveMove(m, Down)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAttack, res.Outcome)
	assert.Equal(t, "Hero", res.Target)
	assert.Equal(t, 0, p.HP)
	assert.Equal(t, Pos{1, 2}, m.Pos)
	assert.Equal(t, MarkerPlayer, g.at(p.Pos), "the player's cell keeps its marker")
}

func TestMonsterBlockedByAllyAndDead(t *testing.T) {
	g := newTestGrid(t, 2, 2)
	r := NewResolver(g, alwaysHit(), nil, nil)
	ms := g.Monsters()
	m1, m3 := ms[0], ms[2] // (0,1) and (0,0)

	res, err := r.ResolveMove(m3, Right)
	require.NoError(t, err)
	assert.Equal(t, OutcomeBlockedAlly, res.Outcome)
	assert.Equal(t, Pos{0, 0}, m3.Pos)

	kill(g, m1)
	res, err = r.ResolveMove(m3, Right)
	require.NoError(t, err)
	assert.Equal(t, OutcomeBlockedAlly, res.Outcome)
	assert.Equal(t, MarkerDead, g.at(Pos{0, 1}))
}

func TestDeadMoverDoesNothing(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	r := NewResolver(g, alwaysHit(), nil, nil)
	m := g.Monsters()[0]
	kill(g, m)
	before := g.Cells()

	res, err := r.ResolveMove(m, Down)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, res.Outcome)
	assert.Equal(t, Pos{0, 2}, m.Pos)
	assert.Equal(t, before, g.Cells())
}

func TestInvalidDirectionChangesNothing(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	r := NewResolver(g, alwaysHit(), nil, nil)
	before := g.Cells()

	for _, tok := range []string{"jump", "", "UP", " left", "north"} {
		res, err := r.Resolve(g.Player(), tok)
		assert.ErrorIs(t, err, ErrInvalidDirection, "token %q", tok)
		assert.Equal(t, OutcomeNone, res.Outcome)
	}
	_, err := r.ResolveMove(g.Player(), Direction("sideways"))
	assert.ErrorIs(t, err, ErrInvalidDirection)

	assert.Equal(t, before, g.Cells())
	for _, c := range g.Roster() {
		assert.Equal(t, StartingHP, c.HP)
	}
	assert.Equal(t, Pos{2, 2}, g.Player().Pos)
}

func TestDeadMarker_Property_Permanent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := newTestGrid(rt, 4, 4)
		victim := g.Monsters()[rapid.IntRange(0, 2).Draw(rt, "victim")]
		at := victim.Pos
		kill(g, victim)

		rng := &stubRand{
			f: rapid.Float64Range(0, 0.999).Draw(rt, "roll"),
			n: rapid.IntRange(0, 3).Draw(rt, "n"),
		}
		r := NewResolver(g, rng, nil, nil)
		steps := rapid.SliceOfN(rapid.SampledFrom(Directions[:]), 1, 30).Draw(rt, "steps")
		for i, d := range steps {
			mover := g.Roster()[i%4]
			_, err := r.ResolveMove(mover, d)
			require.NoError(rt, err)
			assert.Equal(rt, MarkerDead, g.at(at))
			assert.Equal(rt, at, victim.Pos)
			assert.Equal(rt, 0, victim.HP)
		}
	})
}
