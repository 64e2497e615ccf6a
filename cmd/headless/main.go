package main

import (
	"flag"
	"fmt"
	"math/rand"

	"aimrange/internal/game"
)

// A scripted shooter drives full rounds without a display, which makes spawn
// cadence and scoring tuning visible without playing sixty-second sessions
// by hand.

type runStats struct {
	runIndex int
	seed     int64
	score    int
	spawned  int
	hits     int
	misses   int
}

func main() {
	runs := flag.Int("runs", 5, "number of rounds to simulate")
	seed := flag.Int64("seed", 1, "base RNG seed (run i uses seed+i)")
	accuracy := flag.Float64("accuracy", 0.6, "probability an aimed shot targets a live target")
	shotMs := flag.Float64("shot-ms", 450, "milliseconds between scripted shots")
	dt := flag.Float64("dt", 16.0, "simulation step in milliseconds")
	flag.Parse()

	cfg := game.LoadConfig()
	var all []runStats
	for i := 0; i < *runs; i++ {
		all = append(all, simulate(cfg, *seed+int64(i), i, *accuracy, *shotMs, *dt))
	}
	report(all)
}

func simulate(cfg game.Config, seed int64, idx int, accuracy, shotMs, dt float64) runStats {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation only
	s := game.NewSession(cfg, rng, nil)
	s.Start()

	// The shooter uses its own RNG stream so aim decisions do not perturb
	// spawn randomness between accuracy settings.
	aim := rand.New(rand.NewSource(seed * 7919)) // #nosec G404

	shotTimer := 0.0
	for s.Phase() == game.PhaseRunning {
		s.Advance(dt)
		shotTimer += dt
		if shotTimer < shotMs {
			continue
		}
		// Hold fire on an empty range; the timer stays armed so the next
		// spawn is engaged immediately.
		ts := s.Targets()
		if len(ts) == 0 {
			continue
		}
		shotTimer = 0
		if s.Ammo() == 0 {
			s.Reload()
		}
		if aim.Float64() < accuracy {
			t := ts[aim.Intn(len(ts))]
			s.Shoot(t.X+t.Side()/2, t.Y+t.Side()/2)
		} else {
			s.Shoot(aim.Float64()*float64(game.PlayW()), aim.Float64()*float64(game.PlayH()))
		}
	}

	return runStats{
		runIndex: idx,
		seed:     seed,
		score:    s.Score(),
		spawned:  s.Spawned,
		hits:     s.Hits,
		misses:   s.Misses,
	}
}

func report(all []runStats) {
	if len(all) == 0 {
		fmt.Println("no runs simulated")
		return
	}
	fmt.Println("run  seed       score  spawned  hits  misses")
	minScore, maxScore, total := all[0].score, all[0].score, 0
	for _, r := range all {
		fmt.Printf("%-4d %-10d %-6d %-8d %-5d %-6d\n",
			r.runIndex, r.seed, r.score, r.spawned, r.hits, r.misses)
		total += r.score
		if r.score < minScore {
			minScore = r.score
		}
		if r.score > maxScore {
			maxScore = r.score
		}
	}
	fmt.Printf("\nscore: min=%d mean=%.1f max=%d over %d runs\n",
		minScore, float64(total)/float64(len(all)), maxScore, len(all))
}
