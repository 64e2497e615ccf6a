package game

import (
	"math"
	"math/rand"
)

const (
	preSpawnCount    = 3
	spawnDecayMs     = 25.0
	spawnFloorMs     = 350.0
	difficultyStep   = 15.0 // seconds of elapsed play per difficulty increase
	difficultyLevels = 4
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota // before the first start
	PhaseRunning
	PhasePaused
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// ShotResult is what a trigger pull produced.
type ShotResult int

const (
	ShotNoAmmo ShotResult = iota // dry fire, silent no-op
	ShotMiss
	ShotHit
)

func (r ShotResult) String() string {
	switch r {
	case ShotHit:
		return "hit"
	case ShotMiss:
		return "miss"
	case ShotNoAmmo:
		return "no_ammo"
	default:
		return "unknown"
	}
}

// Session owns all mutable play state for one timed round: score, ammo,
// countdown, spawn cadence and the active target collection. All mutation
// happens on the frame loop's goroutine; there is no locking.
type Session struct {
	rng   *rand.Rand
	store *ScoreStore

	roundSeconds float64
	maxAmmo      int
	spawnStartMs float64

	phase         Phase
	score         int
	ammo          int
	timeLeft      float64 // seconds, clamped at 0
	spawnInterval float64 // ms, shrinks to spawnFloorMs
	spawnTimer    float64 // ms accumulated toward the next spawn
	targets       []*Target

	best    int
	newBest bool

	// Counters for the HUD and the headless report.
	Spawned int
	Hits    int
	Misses  int
}

// NewSession builds an idle session. The stored best score is read once here;
// a nil store means no persistence (headless runs, tests).
func NewSession(cfg Config, rng *rand.Rand, store *ScoreStore) *Session {
	s := &Session{
		rng:          rng,
		store:        store,
		roundSeconds: float64(cfg.RoundSeconds),
		maxAmmo:      cfg.MaxAmmo,
		spawnStartMs: float64(cfg.SpawnStartMs),
	}
	s.best = store.Load()
	return s
}

func (s *Session) Phase() Phase       { return s.phase }
func (s *Session) Score() int         { return s.score }
func (s *Session) Ammo() int          { return s.ammo }
func (s *Session) Best() int          { return s.best }
func (s *Session) NewBest() bool      { return s.newBest }
func (s *Session) Targets() []*Target { return s.targets }

// TimeLeft returns the remaining time in seconds (never negative).
func (s *Session) TimeLeft() float64 { return s.timeLeft }

// DisplayTime is the countdown as shown on the HUD: whole seconds rounded up,
// floored at 0.
func (s *Session) DisplayTime() int {
	t := int(math.Ceil(s.timeLeft))
	if t < 0 {
		t = 0
	}
	return t
}

// Difficulty steps up every 15 seconds of elapsed play, capped at 4.
func (s *Session) Difficulty() int {
	elapsed := s.roundSeconds - s.timeLeft
	step := int(elapsed / difficultyStep)
	if step > difficultyLevels-1 {
		step = difficultyLevels - 1
	}
	return 1 + step
}

// Start begins a fresh round, from any phase. Prior state is discarded:
// score zeroed, ammo refilled, clock reset, targets cleared and a few
// pre-spawned so the range is never empty on the first frame.
func (s *Session) Start() {
	s.phase = PhaseRunning
	s.score = 0
	s.ammo = s.maxAmmo
	s.timeLeft = s.roundSeconds
	s.spawnInterval = s.spawnStartMs
	s.spawnTimer = 0
	s.targets = s.targets[:0]
	s.newBest = false
	s.Spawned = 0
	s.Hits = 0
	s.Misses = 0
	for i := 0; i < preSpawnCount; i++ {
		s.spawn()
	}
}

func (s *Session) spawn() {
	s.targets = append(s.targets, SpawnTarget(s.rng, s.Difficulty()))
	s.Spawned++
}

// Advance runs one simulation step of dt milliseconds: spawn cadence, target
// motion, countdown and the end-of-round transition. A paused or idle session
// is left untouched.
func (s *Session) Advance(dt float64) {
	if s.phase != PhaseRunning {
		return
	}

	s.spawnTimer += dt
	if s.spawnTimer > s.spawnInterval {
		s.spawn()
		s.spawnTimer = 0
		s.spawnInterval -= spawnDecayMs
		if s.spawnInterval < spawnFloorMs {
			s.spawnInterval = spawnFloorMs
		}
	}

	kept := s.targets[:0]
	for _, t := range s.targets {
		if !t.Alive {
			continue
		}
		t.Update(dt)
		kept = append(kept, t)
	}
	s.targets = kept

	s.timeLeft -= dt / 1000
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.end()
	}
}

// end transitions to Ended and persists the best score if beaten.
// The best score only ever moves up.
func (s *Session) end() {
	s.phase = PhaseEnded
	if s.score > s.best {
		s.best = s.score
		s.newBest = true
		s.store.Save(s.best)
	}
}

// Shoot fires at play-area coordinates (x, y). With no ammo it is a silent
// no-op. Otherwise one round is spent and the target collection is scanned
// newest-first, so overlapping targets credit the most recently spawned; the
// first alive target containing the point is scored and removed.
func (s *Session) Shoot(x, y float64) ShotResult {
	if s.phase != PhaseRunning {
		return ShotNoAmmo
	}
	if s.ammo <= 0 {
		return ShotNoAmmo
	}
	s.ammo--

	for i := len(s.targets) - 1; i >= 0; i-- {
		t := s.targets[i]
		if !t.Alive || !t.ContainsPoint(x, y) {
			continue
		}
		s.score += t.Points
		t.Alive = false
		s.targets = append(s.targets[:i], s.targets[i+1:]...)
		s.Hits++
		return ShotHit
	}
	s.Misses++
	return ShotMiss
}

// Reload refills ammo to the maximum. Only meaningful mid-round.
func (s *Session) Reload() {
	if s.phase != PhaseRunning {
		return
	}
	s.ammo = s.maxAmmo
}

// TogglePause flips between Running and Paused. No-op in other phases.
func (s *Session) TogglePause() {
	switch s.phase {
	case PhaseRunning:
		s.phase = PhasePaused
	case PhasePaused:
		s.phase = PhaseRunning
	}
}

// SpawnInterval exposes the current spawn gap in milliseconds.
func (s *Session) SpawnInterval() float64 { return s.spawnInterval }
