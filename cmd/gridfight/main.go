package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"gridfight/internal/combat"
	"gridfight/internal/config"
	"gridfight/internal/util"
)

func main() {
	sess, err := config.LoadSession()
	if err != nil {
		exitf("%v", err)
	}

	var sessionFile, out string
	var n, maxRounds int
	flag.StringVar(&sessionFile, "config", "", "YAML session file (applied over env, under args and flags)")
	flag.StringVar(&out, "out", "", "event log (single) or summary file (batch); empty prints the summary to stdout")
	flag.IntVar(&n, "n", 0, "autoplay n games with a random player instead of reading moves")
	flag.IntVar(&maxRounds, "max-rounds", 500, "round cap for autoplay games")
	seed := flag.Int64("seed", 0, "random seed (0 = fresh)")
	diffFile := flag.String("difficulty-file", "", "YAML difficulty table")
	flag.Parse()

	if sessionFile != "" {
		if err := config.LoadSessionFile(sessionFile, &sess); err != nil {
			exitf("%v", err)
		}
	}
	if err := applyArgs(&sess, flag.Args()); err != nil {
		exitf("%v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			sess.Seed = *seed
		case "difficulty-file":
			sess.DifficultyFile = *diffFile
		}
	})
	sess.PlayerName = config.NormalizeName(sess.PlayerName)

	log, err := util.NewLogger(sess.LogLevel, sess.LogFile)
	if err != nil {
		exitf("%v", err)
	}
	defer log.Sync()

	stats := combat.DefaultStats
	if sess.DifficultyFile != "" {
		dc, err := config.LoadDifficulty(sess.DifficultyFile)
		if err != nil {
			exitf("%v", err)
		}
		if stats, err = combat.NewStatTable(dc); err != nil {
			exitf("%v", err)
		}
	}

	if n > 0 {
		if err := runBatch(os.Stdout, sess, stats, n, maxRounds, out, log); err != nil {
			exitf("%v", err)
		}
		return
	}
	if err := play(os.Stdin, os.Stdout, sess, stats, log, out); err != nil {
		exitf("%v", err)
	}
}

type gameLog struct {
	ID     string          `json:"id"`
	Player string          `json:"player"`
	Tier   int             `json:"difficulty"`
	Final  combat.Snapshot `json:"final"`
	Events []combat.Event  `json:"events"`
}

// play runs the console loop: one token per line, "0" quits, and a
// finished game offers a replay at a new difficulty.
func play(in io.Reader, w io.Writer, sess config.Session, stats combat.StatTable, log *zap.Logger, out string) error {
	sc := bufio.NewScanner(in)
	rng, err := util.New(sess.Seed)
	if err != nil {
		return err
	}
	var logs []gameLog

	for {
		fmt.Fprintf(w, "Welcome to the Game, %s!\nYou chose difficulty level %d.\nAre you ready to challenge the monsters?\n",
			sess.PlayerName, sess.Difficulty)

		var events []combat.Event
		g, err := combat.NewGame(combat.Options{
			Height:     sess.Height,
			Width:      sess.Width,
			PlayerName: sess.PlayerName,
			Difficulty: sess.Difficulty,
			Stats:      stats,
			Rng:        rng,
			Logger:     log,
			Emit:       func(ev combat.Event) { events = append(events, ev) },
		})
		if err != nil {
			return err
		}
		renderBoard(w, g.Snapshot())

		quit := false
		for !g.Over() {
			fmt.Fprintf(w, "\nRound %d\n", g.Round()+1)
			if !sc.Scan() {
				quit = true
				break
			}
			input := strings.TrimSpace(sc.Text())
			if input == "0" {
				fmt.Fprintln(w, "Exiting the game.")
				quit = true
				break
			}
			rr, err := g.AdvanceRound(input)
			if errors.Is(err, combat.ErrInvalidDirection) {
				fmt.Fprintln(w, "Use only keywords up, down, left, right")
				continue
			}
			if err != nil {
				return err
			}
			snap := g.Snapshot()
			renderRound(w, rr)
			renderStatus(w, snap)
			renderOutcome(w, rr.Cause)
			renderBoard(w, snap)
		}

		logs = append(logs, gameLog{
			ID: g.ID.String(), Player: sess.PlayerName, Tier: sess.Difficulty,
			Final: g.Snapshot(), Events: events,
		})
		if quit {
			break
		}

		fmt.Fprint(w, "Game over! Do you want to play again? (yes/no): ")
		if !sc.Scan() || strings.ToLower(strings.TrimSpace(sc.Text())) != "yes" {
			break
		}
		tier, ok := askDifficulty(sc, w)
		if !ok {
			break
		}
		sess.Difficulty = tier
	}

	fmt.Fprintln(w, "Thanks for playing!")
	if out != "" {
		if err := os.WriteFile(out, combat.MarshalPretty(logs), 0644); err != nil {
			return err
		}
	}
	return sc.Err()
}

// askDifficulty prompts until it reads a tier in range or input ends.
func askDifficulty(sc *bufio.Scanner, w io.Writer) (int, bool) {
	for {
		fmt.Fprintf(w, "Please choose the difficulty (%d-%d): ", combat.MinTier, combat.MaxTier)
		if !sc.Scan() {
			return 0, false
		}
		tier, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err == nil && tier >= combat.MinTier && tier <= combat.MaxTier {
			return tier, true
		}
		fmt.Fprintln(w, "Invalid difficulty level.")
	}
}

// runBatch autoplays n games on a worker pool and writes a JSON summary.
func runBatch(w io.Writer, sess config.Session, stats combat.StatTable, n, maxRounds int, out string, log *zap.Logger) error {
	base := sess.Seed
	if base == 0 {
		s, err := util.NewSeed()
		if err != nil {
			return err
		}
		base = s
	}
	// fail fast on a bad session before starting workers
	if _, err := combat.NewGame(combat.Options{
		Height: sess.Height, Width: sess.Width, Difficulty: sess.Difficulty, Stats: stats, Rng: rand.New(rand.NewSource(base)),
	}); err != nil {
		return err
	}

	type stat struct {
		Won, Died, Stalled int
		Rounds, Hits, Miss int
	}
	var st stat
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	workers := 8
	jobs := make(chan int, n)
	for wk := 0; wk < workers; wk++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// seed depends on the job only, never on the worker
				rng := rand.New(rand.NewSource(base + int64(i)))
				g, err := combat.NewGame(combat.Options{
					Height:     sess.Height,
					Width:      sess.Width,
					PlayerName: sess.PlayerName,
					Difficulty: sess.Difficulty,
					Stats:      stats,
					Rng:        rng,
					Logger:     log,
				})
				if err != nil {
					log.Error("batch game", zap.Error(err))
					continue
				}
				res := combat.RunAuto(g, rng, maxRounds)

				mu.Lock()
				switch {
				case res.Stalled:
					st.Stalled++
				case res.Cause == combat.CausePlayerWon:
					st.Won++
				default:
					st.Died++
				}
				st.Rounds += res.Rounds
				st.Hits += res.Hits
				st.Miss += res.Misses
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	hitRatio := 0.0
	if st.Hits+st.Miss > 0 {
		hitRatio = float64(st.Hits) / float64(st.Hits+st.Miss)
	}
	summary := map[string]any{
		"runs":       n,
		"seed":       base,
		"difficulty": sess.Difficulty,
		"grid":       []int{sess.Height, sess.Width},
		"win_rate":   float64(st.Won) / float64(n),
		"death_rate": float64(st.Died) / float64(n),
		"stall_rate": float64(st.Stalled) / float64(n),
		"avg_rounds": float64(st.Rounds) / float64(n),
		"hit_ratio":  hitRatio,
	}
	if out == "" {
		_, err := w.Write(append(combat.MarshalPretty(summary), '\n'))
		return err
	}
	if err := os.WriteFile(out, combat.MarshalPretty(summary), 0644); err != nil {
		return err
	}
	fmt.Fprintf(w, "Batch %d done -> %s\n", n, out)
	return nil
}

// exitf writes a formatted error message to stderr and exits with code 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
