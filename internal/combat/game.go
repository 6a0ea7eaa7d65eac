package combat

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Cause int

const (
	CauseOngoing Cause = iota
	CausePlayerWon
	CausePlayerDied
)

func (c Cause) String() string {
	switch c {
	case CausePlayerWon:
		return "player_won"
	case CausePlayerDied:
		return "player_died"
	default:
		return "ongoing"
	}
}

func (c Cause) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Cause) UnmarshalText(b []byte) error {
	for _, cand := range []Cause{CauseOngoing, CausePlayerWon, CausePlayerDied} {
		if cand.String() == string(b) {
			*c = cand
			return nil
		}
	}
	return fmt.Errorf("unknown cause %q", b)
}

type RoundResult struct {
	ContinueGame bool  `json:"continue_game"`
	GameOver     bool  `json:"game_over"`
	Cause        Cause `json:"cause"`
	// TurnConsumed is false when the input was rejected; the caller
	// must not advance its round counter.
	TurnConsumed bool         `json:"turn_consumed"`
	Round        int          `json:"round"`
	Moves        []MoveResult `json:"moves,omitempty"`
}

type Options struct {
	Height     int
	Width      int
	PlayerName string
	Difficulty int
	// Stats replaces DefaultStats when set.
	Stats  StatTable
	Rng    Rand
	Logger *zap.Logger
	Emit   func(Event)
}

// Game is one session: a grid, its roster and the round counter.
type Game struct {
	ID         uuid.UUID
	Grid       *Grid
	Difficulty int

	round    int
	cause    Cause
	resolver *Resolver
	rng      Rand
	emit     func(Event)
	log      *zap.Logger
}

func NewGame(opts Options) (*Game, error) {
	if opts.Rng == nil {
		return nil, errors.New("combat: nil random source")
	}
	stats := opts.Stats
	if stats == nil {
		stats = DefaultStats
	}
	if _, err := stats.Lookup(opts.Difficulty, FactionPlayer); err != nil {
		return nil, err
	}
	grid, err := NewGrid(opts.Height, opts.Width, opts.PlayerName)
	if err != nil {
		return nil, err
	}
	for _, c := range grid.roster {
		if err := c.SetDifficultyFrom(stats, opts.Difficulty); err != nil {
			return nil, err
		}
	}

	emit := opts.Emit
	if emit == nil {
		emit = func(Event) {}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		ID:         uuid.New(),
		Grid:       grid,
		Difficulty: opts.Difficulty,
		rng:        opts.Rng,
		emit:       emit,
	}
	g.log = log.With(zap.String("game", g.ID.String()))
	g.resolver = NewResolver(grid, opts.Rng, emit, g.log)
	g.resolver.Round = g.Round

	for _, c := range grid.roster {
		emit(Event{Round: 0, Type: "Spawn", Payload: map[string]any{
			"id": c.Name, "faction": c.Faction.String(), "x": c.Pos.Col, "y": c.Pos.Row,
			"hp": c.HP, "attack": c.AttackPower, "defense": c.DefenseRate,
		}})
	}
	g.log.Info("game started", zap.Int("height", grid.H), zap.Int("width", grid.W),
		zap.String("player", grid.Player().Name), zap.Int("difficulty", opts.Difficulty))
	return g, nil
}

// Round is the number of rounds played so far.
func (g *Game) Round() int   { return g.round }
func (g *Game) Cause() Cause { return g.cause }
func (g *Game) Over() bool   { return g.cause != CauseOngoing }

func (g *Game) Player() *Character { return g.Grid.Player() }

// AdvanceRound plays the player's move for input and then one move for
// every living monster in roster order.
func (g *Game) AdvanceRound(input string) (RoundResult, error) {
	if g.Over() {
		return RoundResult{GameOver: true, Cause: g.cause, Round: g.round}, ErrGameOver
	}
	player := g.Grid.Player()
	dir, err := ParseDirection(input)
	if err != nil {
		g.log.Warn("input rejected", zap.String("input", input))
		return RoundResult{ContinueGame: true, Cause: CauseOngoing, Round: g.round}, err
	}

	g.round++
	moves := make([]MoveResult, 0, len(g.Grid.roster))
	mv, err := g.resolver.ResolveMove(player, dir)
	if err != nil {
		return RoundResult{}, fmt.Errorf("player move: %w", err)
	}
	moves = append(moves, mv)

	for _, m := range g.Grid.Monsters() {
		if !m.Alive() {
			continue
		}
		d, _ := m.DecideMove(g.rng)
		mv, err := g.resolver.ResolveMove(m, d)
		if err != nil {
			return RoundResult{}, fmt.Errorf("%s move: %w", m.Name, err)
		}
		moves = append(moves, mv)
	}

	switch {
	case g.Grid.AllMonstersDead():
		g.cause = CausePlayerWon
	case !player.Alive():
		g.cause = CausePlayerDied
	}

	hp := map[string]any{}
	for _, c := range g.Grid.roster {
		hp[c.Name] = c.HP
	}
	g.emit(Event{Round: g.round, Type: "RoundEnd", Payload: hp})
	if g.Over() {
		g.emit(Event{Round: g.round, Type: "GameOver", Payload: map[string]any{"cause": g.cause.String()}})
		g.log.Info("game over", zap.Stringer("cause", g.cause), zap.Int("rounds", g.round))
	}

	return RoundResult{
		ContinueGame: !g.Over(),
		GameOver:     g.Over(),
		Cause:        g.cause,
		TurnConsumed: true,
		Round:        g.round,
		Moves:        moves,
	}, nil
}

type CharacterStatus struct {
	Name    string `json:"name"`
	Faction string `json:"faction"`
	HP      int    `json:"hp"`
	Pos     Pos    `json:"pos"`
	Alive   bool   `json:"alive"`
}

// Snapshot is everything a presenter needs after a round.
type Snapshot struct {
	ID         string            `json:"id"`
	Round      int               `json:"round"`
	Cause      Cause             `json:"cause"`
	Cells      [][]Marker        `json:"cells"`
	Characters []CharacterStatus `json:"characters"`
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{ID: g.ID.String(), Round: g.round, Cause: g.cause, Cells: g.Grid.Cells()}
	for _, c := range g.Grid.roster {
		s.Characters = append(s.Characters, CharacterStatus{
			Name: c.Name, Faction: c.Faction.String(), HP: c.HP, Pos: c.Pos, Alive: c.Alive(),
		})
	}
	return s
}
