package combat

import "encoding/json"

type SimResult struct {
	ID            string `json:"id"`
	Cause         Cause  `json:"cause"`
	Rounds        int    `json:"rounds"`
	Stalled       bool   `json:"stalled"`
	PlayerHP      int    `json:"player_hp"`
	MonstersAlive int    `json:"monsters_alive"`
	Kills         int    `json:"kills"`
	Hits          int    `json:"hits"`
	Misses        int    `json:"misses"`
}

// RunAuto plays g with a player that picks uniformly random directions
// from rng until the game ends or maxRounds rounds have been played.
func RunAuto(g *Game, rng Rand, maxRounds int) SimResult {
	res := SimResult{ID: g.ID.String()}
	for !g.Over() && g.Round() < maxRounds {
		dir := Directions[rng.Intn(len(Directions))]
		rr, err := g.AdvanceRound(string(dir))
		if err != nil {
			break
		}
		// the player's move always comes first
		if len(rr.Moves) == 0 || rr.Moves[0].Outcome != OutcomeAttack {
			continue
		}
		mv := rr.Moves[0]
		if mv.Hit {
			res.Hits++
		} else {
			res.Misses++
		}
		if mv.Killed {
			res.Kills++
		}
	}

	res.Cause = g.Cause()
	res.Rounds = g.Round()
	res.Stalled = !g.Over()
	res.PlayerHP = g.Player().HP
	for _, m := range g.Grid.Monsters() {
		if m.Alive() {
			res.MonstersAlive++
		}
	}
	return res
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
