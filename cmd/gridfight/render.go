package main

import (
	"fmt"
	"io"
	"strings"

	"gridfight/internal/combat"
)

var glyphs = map[combat.Marker]string{
	combat.MarkerEmpty:   ".",
	combat.MarkerPlayer:  "*",
	combat.MarkerMonster: "%",
	combat.MarkerDead:    "x",
}

func renderBoard(w io.Writer, s combat.Snapshot) {
	fmt.Fprintln(w, "\nCurrent game map:")
	for _, row := range s.Cells {
		cells := make([]string, len(row))
		for i, m := range row {
			cells[i] = glyphs[m]
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}

func renderStatus(w io.Writer, s combat.Snapshot) {
	fmt.Fprintln(w, "\nCurrent Health Status:")
	for _, c := range s.Characters {
		fmt.Fprintf(w, "Health %s: %d\n", c.Name, c.HP)
	}
}

func renderRound(w io.Writer, rr combat.RoundResult) {
	for i, mv := range rr.Moves {
		fmt.Fprintf(w, "%s is moving %s\n", mv.Actor, mv.Direction)
		fmt.Fprintln(w, describe(mv, i == 0))
	}
}

func describe(mv combat.MoveResult, player bool) string {
	switch mv.Outcome {
	case combat.OutcomeMoved:
		return fmt.Sprintf("%s moved %s to %s", mv.Actor, mv.Direction, mv.To)
	case combat.OutcomeBlockedEdge:
		if player {
			return fmt.Sprintf("You can't go %s. You lose a move.", mv.Direction)
		}
		return fmt.Sprintf("%s can't go %s", mv.Actor, mv.Direction)
	case combat.OutcomeAttack:
		line := fmt.Sprintf("!!MISS!! %s successfully defended attack from %s", mv.Target, mv.Actor)
		if mv.Hit {
			line = fmt.Sprintf("!!HIT!! %s successfully attacked %s", mv.Actor, mv.Target)
		}
		if mv.Killed {
			line += fmt.Sprintf("\n%s has been slain", mv.Target)
		}
		return line
	case combat.OutcomeBlockedDead:
		return "That monster is already dead. You lose a move."
	case combat.OutcomeBlockedAlly:
		return fmt.Sprintf("%s is blocked", mv.Actor)
	default:
		return fmt.Sprintf("%s does nothing", mv.Actor)
	}
}

func renderOutcome(w io.Writer, c combat.Cause) {
	switch c {
	case combat.CausePlayerWon:
		fmt.Fprintln(w, "YOU HAVE WON!")
	case combat.CausePlayerDied:
		fmt.Fprintln(w, "YOU HAVE DIED!")
	}
}
