package game

import (
	"math/rand"
	"path/filepath"
	"testing"
)

func testConfig() Config {
	return Config{RoundSeconds: 60, MaxAmmo: 10, SpawnStartMs: 1000}
}

func newTestSession(seed int64) *Session {
	return NewSession(testConfig(), rand.New(rand.NewSource(seed)), nil)
}

// --- lifecycle ---

func TestSession_StartsIdle(t *testing.T) {
	s := newTestSession(1)
	if s.Phase() != PhaseIdle {
		t.Fatalf("fresh session should be idle, got %v", s.Phase())
	}
	if len(s.Targets()) != 0 {
		t.Fatal("no targets before the first start")
	}
}

func TestSession_StartResetsEverything(t *testing.T) {
	s := newTestSession(1)
	s.Start()
	s.score = 75
	s.ammo = 2
	s.timeLeft = 10
	s.spawnInterval = 400
	s.Advance(450) // trips the spawn timer so the target set grows

	s.Start()
	if s.Score() != 0 {
		t.Fatalf("score should reset to 0, got %d", s.Score())
	}
	if s.Ammo() != 10 {
		t.Fatalf("ammo should reset to 10, got %d", s.Ammo())
	}
	if s.TimeLeft() != 60 {
		t.Fatalf("time should reset to 60, got %.1f", s.TimeLeft())
	}
	if s.SpawnInterval() != 1000 {
		t.Fatalf("spawn interval should reset to 1000, got %.1f", s.SpawnInterval())
	}
	if len(s.Targets()) != preSpawnCount {
		t.Fatalf("expected %d pre-spawned targets, got %d", preSpawnCount, len(s.Targets()))
	}
	for _, tg := range s.Targets() {
		if !tg.Alive {
			t.Fatal("pre-spawned targets should be alive")
		}
	}
}

func TestSession_RestartWorksFromEnded(t *testing.T) {
	s := newTestSession(1)
	s.Start()
	s.timeLeft = 0.001
	s.Advance(10)
	if s.Phase() != PhaseEnded {
		t.Fatalf("expected ended, got %v", s.Phase())
	}
	s.Start()
	if s.Phase() != PhaseRunning {
		t.Fatalf("restart should run again, got %v", s.Phase())
	}
}

// --- shooting ---

func TestShoot_NewestTargetWinsOverlap(t *testing.T) {
	s := newTestSession(1)
	s.Start()
	older := &Target{X: 100, Y: 100, Size: 2, Points: 15, Alive: true}
	newer := &Target{X: 110, Y: 110, Size: 1, Points: 5, Alive: true}
	s.targets = []*Target{older, newer}

	// (115, 115) is inside both boxes.
	if res := s.Shoot(115, 115); res != ShotHit {
		t.Fatalf("expected hit, got %v", res)
	}
	if s.Score() != 5 {
		t.Fatalf("the newer target should be credited: want 5 points, got %d", s.Score())
	}
	if len(s.targets) != 1 || s.targets[0] != older {
		t.Fatal("only the newer target should be removed")
	}
	if newer.Alive {
		t.Fatal("hit target should be marked dead")
	}
}

func TestShoot_MissLeavesTargets(t *testing.T) {
	s := newTestSession(1)
	s.Start()
	s.targets = []*Target{{X: 100, Y: 100, Size: 1, Points: 5, Alive: true}}
	if res := s.Shoot(500, 400); res != ShotMiss {
		t.Fatalf("expected miss, got %v", res)
	}
	if s.Score() != 0 || len(s.targets) != 1 {
		t.Fatal("a miss must not score or remove targets")
	}
	if s.Ammo() != 9 {
		t.Fatalf("a miss still spends ammo: want 9, got %d", s.Ammo())
	}
}

func TestShoot_NoAmmoIsSilentNoOp(t *testing.T) {
	s := newTestSession(1)
	s.Start()
	s.ammo = 0
	s.targets = []*Target{{X: 100, Y: 100, Size: 1, Points: 5, Alive: true}}
	if res := s.Shoot(110, 110); res != ShotNoAmmo {
		t.Fatalf("expected dry fire, got %v", res)
	}
	if s.Ammo() != 0 {
		t.Fatalf("ammo must never go negative, got %d", s.Ammo())
	}
	if s.Score() != 0 || len(s.targets) != 1 {
		t.Fatal("dry fire must not score or remove targets")
	}
}

func TestShoot_IgnoredWhilePaused(t *testing.T) {
	s := newTestSession(1)
	s.Start()
	s.TogglePause()
	before := s.Ammo()
	s.Shoot(400, 250)
	if s.Ammo() != before {
		t.Fatal("shooting while paused should not spend ammo")
	}
}

func TestReload_RefillsOnlyWhileRunning(t *testing.T) {
	s := newTestSession(1)
	s.Start()
	s.ammo = 1
	s.Reload()
	if s.Ammo() != 10 {
		t.Fatalf("reload should refill to 10, got %d", s.Ammo())
	}
	s.TogglePause()
	s.ammo = 1
	s.Reload()
	if s.Ammo() != 1 {
		t.Fatal("reload should be a no-op while paused")
	}
}

// --- clock / spawning ---

func TestAdvance_PausedMutatesNothing(t *testing.T) {
	s := newTestSession(1)
	s.Start()
	s.TogglePause()
	before := s.TimeLeft()
	targetsBefore := len(s.Targets())
	s.Advance(5000)
	if s.TimeLeft() != before || len(s.Targets()) != targetsBefore {
		t.Fatal("a paused session must not advance")
	}
	s.TogglePause()
	if s.Phase() != PhaseRunning {
		t.Fatalf("unpause should resume, got %v", s.Phase())
	}
}

func TestAdvance_SpawnIntervalFloor(t *testing.T) {
	s := newTestSession(1)
	s.Start()
	for i := 0; i < 40 && s.Phase() == PhaseRunning; i++ {
		s.Advance(s.SpawnInterval() + 1)
		if s.SpawnInterval() < spawnFloorMs {
			t.Fatalf("spawn interval dropped below the floor: %.1f", s.SpawnInterval())
		}
	}
	if s.SpawnInterval() != spawnFloorMs {
		t.Fatalf("interval should have tightened to %.0f, got %.1f", spawnFloorMs, s.SpawnInterval())
	}
}

func TestDifficulty_StepFunction(t *testing.T) {
	s := newTestSession(1)
	s.Start()
	cases := []struct {
		timeLeft float64
		want     int
	}{
		{60, 1},
		{44, 2},
		{29, 3},
		{5, 4},
		{0, 4}, // capped
	}
	for _, c := range cases {
		s.timeLeft = c.timeLeft
		if got := s.Difficulty(); got != c.want {
			t.Fatalf("difficulty(timeLeft=%.0f) = %d, want %d", c.timeLeft, got, c.want)
		}
	}
}

func TestAdvance_RemovesDeadTargets(t *testing.T) {
	s := newTestSession(1)
	s.Start()
	dead := &Target{X: 100, Y: 100, Size: 1, Alive: false}
	live := &Target{X: 300, Y: 300, VX: 0.01, Size: 1, Alive: true}
	s.targets = []*Target{dead, live}
	s.Advance(16)
	for _, tg := range s.Targets() {
		if tg == dead {
			t.Fatal("dead targets should be swept on advance")
		}
	}
}

// --- countdown / end of round ---

func TestAdvance_FullRoundEndsAtZero(t *testing.T) {
	s := newTestSession(5)
	s.Start()
	for ms := 0.0; ms < 61000; ms += 16 {
		s.Advance(16)
	}
	if s.Phase() != PhaseEnded {
		t.Fatalf("61 simulated seconds should end the round, got %v", s.Phase())
	}
	if s.TimeLeft() != 0 {
		t.Fatalf("time remaining should clamp at 0, got %.3f", s.TimeLeft())
	}
	if s.DisplayTime() != 0 {
		t.Fatalf("display time should read 0, got %d", s.DisplayTime())
	}
}

func TestDisplayTime_CeilsSeconds(t *testing.T) {
	s := newTestSession(1)
	s.Start()
	s.timeLeft = 44.2
	if got := s.DisplayTime(); got != 45 {
		t.Fatalf("44.2s should display as 45, got %d", got)
	}
}

func TestEnd_NewBestPersisted(t *testing.T) {
	store := NewScoreStore(filepath.Join(t.TempDir(), "highscore.json"))
	store.Save(100)

	s := NewSession(testConfig(), rand.New(rand.NewSource(1)), store)
	s.Start()
	s.score = 120
	s.timeLeft = 0.001
	s.Advance(10)

	if !s.NewBest() {
		t.Fatal("120 should beat a stored best of 100")
	}
	if s.Best() != 120 {
		t.Fatalf("best should now be 120, got %d", s.Best())
	}
	if got := store.Load(); got != 120 {
		t.Fatalf("stored best should be 120, got %d", got)
	}
}

func TestEnd_LowerScoreKeepsBest(t *testing.T) {
	store := NewScoreStore(filepath.Join(t.TempDir(), "highscore.json"))
	store.Save(100)

	s := NewSession(testConfig(), rand.New(rand.NewSource(1)), store)
	s.Start()
	s.score = 80
	s.timeLeft = 0.001
	s.Advance(10)

	if s.NewBest() {
		t.Fatal("80 should not beat a stored best of 100")
	}
	if got := store.Load(); got != 100 {
		t.Fatalf("stored best should remain 100, got %d", got)
	}
}
