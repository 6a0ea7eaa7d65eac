package combat

import (
	"fmt"

	"go.uber.org/zap"
)

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeBlockedEdge
	OutcomeMoved
	OutcomeAttack
	OutcomeBlockedDead
	OutcomeBlockedAlly
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBlockedEdge:
		return "blocked-by-edge"
	case OutcomeMoved:
		return "moved"
	case OutcomeAttack:
		return "attack"
	case OutcomeBlockedDead:
		return "blocked-by-dead"
	case OutcomeBlockedAlly:
		return "blocked-by-ally"
	default:
		return "none"
	}
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// MoveResult describes what one move attempt did to the board.
type MoveResult struct {
	Actor     string    `json:"actor"`
	Direction Direction `json:"direction"`
	Outcome   Outcome   `json:"outcome"`
	From      Pos       `json:"from"`
	To        Pos       `json:"to"`
	Target    string    `json:"target,omitempty"`
	Hit       bool      `json:"hit,omitempty"`
	Killed    bool      `json:"killed,omitempty"`
	TargetHP  int       `json:"target_hp"`
}

type Resolver struct {
	Grid *Grid
	Rng  Rand
	Emit func(ev Event)
	// Round stamps emitted events.
	Round func() int

	log *zap.Logger
}

func NewResolver(g *Grid, rng Rand, emit func(Event), log *zap.Logger) *Resolver {
	if emit == nil {
		emit = func(Event) {}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{Grid: g, Rng: rng, Emit: emit, Round: func() int { return 0 }, log: log}
}

// Resolve parses token and resolves it for c. A bad token changes nothing.
func (r *Resolver) Resolve(c *Character, token string) (MoveResult, error) {
	dir, err := ParseDirection(token)
	if err != nil {
		return MoveResult{Actor: c.Name, Outcome: OutcomeNone, From: c.Pos, To: c.Pos}, err
	}
	return r.ResolveMove(c, dir)
}

// ResolveMove applies one step of c in dir. Attacks never move the
// attacker; dead markers block everyone for the rest of the game.
func (r *Resolver) ResolveMove(c *Character, dir Direction) (MoveResult, error) {
	off, ok := dir.Offset()
	if !ok {
		return MoveResult{Actor: c.Name, Outcome: OutcomeNone, From: c.Pos, To: c.Pos}, fmt.Errorf("%w: %q", ErrInvalidDirection, string(dir))
	}
	res := MoveResult{Actor: c.Name, Direction: dir, From: c.Pos, To: c.Pos}
	if !c.Alive() {
		return res, nil
	}

	g := r.Grid
	dst := c.Pos.Add(off)
	if !g.InBounds(dst) {
		res.Outcome = OutcomeBlockedEdge
		r.report(res, "can't move that way")
		return res, nil
	}

	switch cell := g.at(dst); {
	case cell == markerFor(opposing(c.Faction)):
		r.attack(c, dst, &res)
	case cell == MarkerEmpty:
		g.set(dst, markerFor(c.Faction))
		g.set(c.Pos, MarkerEmpty)
		c.Pos = dst
		res.Outcome = OutcomeMoved
		res.To = dst
		r.Emit(Event{Round: r.Round(), Type: "Move", Payload: map[string]any{
			"id": c.Name, "dir": string(dir),
			"from": []int{res.From.Row, res.From.Col}, "to": []int{dst.Row, dst.Col},
		}})
		r.log.Debug("move", zap.String("actor", c.Name), zap.String("dir", string(dir)),
			zap.Stringer("from", res.From), zap.Stringer("to", dst))
	case cell == MarkerDead && c.Faction == FactionPlayer:
		res.Outcome = OutcomeBlockedDead
		r.report(res, "that monster is already dead")
	case (cell == MarkerMonster || cell == MarkerDead) && c.Faction == FactionMonster:
		res.Outcome = OutcomeBlockedAlly
		r.report(res, "blocked")
	}
	return res, nil
}

func (r *Resolver) attack(c *Character, at Pos, res *MoveResult) {
	var target *Character
	if c.Faction == FactionPlayer {
		target = r.Grid.monsterAt(at)
	} else {
		target = r.Grid.Player()
	}
	if target == nil {
		// marker without a roster member; nothing to fight
		r.log.Warn("hostile marker without occupant", zap.Stringer("cell", at))
		return
	}

	res.Outcome = OutcomeAttack
	res.Target = target.Name
	res.Hit = Attack(c, target, r.Rng)
	res.TargetHP = target.HP

	kind := "Miss"
	if res.Hit {
		kind = "Hit"
	}
	r.Emit(Event{Round: r.Round(), Type: kind, Payload: map[string]any{
		"caster": c.Name, "target": target.Name, "dmg": -c.AttackPower, "hp": target.HP, "hit": res.Hit,
	}})
	r.log.Debug("attack", zap.String("attacker", c.Name), zap.String("target", target.Name),
		zap.Bool("hit", res.Hit), zap.Int("target_hp", target.HP))

	if !target.Alive() && target.Faction == FactionMonster {
		r.Grid.set(at, MarkerDead)
		res.Killed = true
		r.Emit(Event{Round: r.Round(), Type: "Death", Payload: map[string]any{
			"id": target.Name, "killer": c.Name, "x": at.Col, "y": at.Row,
		}})
		r.log.Info("monster slain", zap.String("monster", target.Name), zap.String("by", c.Name))
	}
}

func (r *Resolver) report(res MoveResult, reason string) {
	r.Emit(Event{Round: r.Round(), Type: "Blocked", Payload: map[string]any{
		"id": res.Actor, "dir": string(res.Direction), "outcome": res.Outcome.String(), "text": reason,
	}})
	r.log.Debug("move blocked", zap.String("actor", res.Actor), zap.String("dir", string(res.Direction)),
		zap.Stringer("outcome", res.Outcome))
}
