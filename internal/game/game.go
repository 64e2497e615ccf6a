package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// hudH is the control strip below the play area.
	hudH = 60

	screenW = playW
	screenH = playH + hudH

	// hudScale is the integer upscale factor applied to all HUD text.
	hudScale = 2

	// summaryDelayMs is the pause between the round ending and the score
	// summary appearing, so the final frame is visible for a beat.
	summaryDelayMs = 1000.0

	// maxFrameMs caps a single simulation step; a dragged or hidden window
	// otherwise delivers one huge dt and teleports every target.
	maxFrameMs = 100.0
)

// ScreenW and ScreenH expose the logical resolution for window sizing.
func ScreenW() int { return screenW }
func ScreenH() int { return screenH }

// PlayW and PlayH expose the play-area size for headless drivers.
func PlayW() int { return playW }
func PlayH() int { return playH }

type button struct {
	x, y, w, h float32
	label      func() string
	onClick    func()
}

func (b *button) contains(mx, my int) bool {
	x := float32(mx)
	y := float32(my)
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// Game wires the session to ebiten: input translation, frame timing, sound
// cues and rendering. All state mutation happens inside Update on the one
// frame goroutine.
type Game struct {
	cfg     Config
	session *Session
	sounds  *soundBank
	buttons []*button

	pointerX, pointerY int
	pointerKnown       bool

	lastFrame time.Time
	prevPhase Phase

	// End-of-round summary presentation.
	summaryWait float64 // ms until the summary panel appears
	showSummary bool

	hudBuf   *ebiten.Image
	titleBuf *ebiten.Image
}

func New(cfg Config) *Game {
	store := NewScoreStore(cfg.ScoreFile)
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	g := &Game{
		cfg:      cfg,
		session:  NewSession(cfg, rng, store),
		sounds:   newSoundBank(),
		hudBuf:   ebiten.NewImage(screenW/hudScale, screenH/hudScale),
		titleBuf: newTitleImage(),
	}
	g.initButtons()
	return g
}

func (g *Game) initButtons() {
	const bw, bh = 90, 28
	by := float32(playH + (hudH-bh)/2)
	g.buttons = []*button{
		{
			x: screenW - 3*(bw+10), y: by, w: bw, h: bh,
			label: func() string {
				if g.session.Phase() == PhaseIdle {
					return "Start"
				}
				return "Restart"
			},
			onClick: g.startRound,
		},
		{
			x: screenW - 2*(bw+10), y: by, w: bw, h: bh,
			label: func() string {
				if g.session.Phase() == PhasePaused {
					return "Resume"
				}
				return "Pause"
			},
			onClick: g.session.TogglePause,
		},
		{
			x: screenW - (bw + 10), y: by, w: bw, h: bh,
			label: func() string {
				if g.sounds.muted {
					return "Unmute"
				}
				return "Mute"
			},
			onClick: g.sounds.toggleMute,
		},
	}
}

func (g *Game) startRound() {
	g.session.Start()
	g.showSummary = false
	g.summaryWait = 0
}

func (g *Game) Update() error {
	dt := g.frameDt()
	g.trackPointer()
	g.handleInput()

	g.session.Advance(dt)

	// Edge-detect the end-of-round transition to arm the summary delay.
	if g.session.Phase() == PhaseEnded && g.prevPhase != PhaseEnded {
		g.summaryWait = summaryDelayMs
	}
	g.prevPhase = g.session.Phase()

	if g.session.Phase() == PhaseEnded && !g.showSummary {
		g.summaryWait -= dt
		if g.summaryWait <= 0 {
			g.showSummary = true
		}
	}
	return nil
}

// frameDt returns the wall-clock milliseconds since the previous Update,
// capped at maxFrameMs. The first frame reports 0.
func (g *Game) frameDt() float64 {
	now := time.Now()
	if g.lastFrame.IsZero() {
		g.lastFrame = now
		return 0
	}
	dt := float64(now.Sub(g.lastFrame).Microseconds()) / 1000
	g.lastFrame = now
	if dt > maxFrameMs {
		dt = maxFrameMs
	}
	return dt
}

// trackPointer records the cursor for crosshair rendering. The crosshair is
// only drawn once the cursor has actually been seen moving inside the window.
func (g *Game) trackPointer() {
	mx, my := ebiten.CursorPosition()
	if mx != g.pointerX || my != g.pointerY {
		g.pointerKnown = true
	}
	g.pointerX = mx
	g.pointerY = my
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sounds.toggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && g.showSummary {
		if err := clipboard.WriteAll(g.summaryLine()); err != nil {
			log.Printf("clipboard copy failed: %v", err)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.pointerKnown = true
		for _, b := range g.buttons {
			if b.contains(mx, my) {
				b.onClick()
				return
			}
		}
		if my < playH {
			switch g.session.Shoot(float64(mx), float64(my)) {
			case ShotHit:
				g.sounds.playHit()
			case ShotMiss:
				g.sounds.playMiss()
			}
		}
	}
}

func (g *Game) summaryLine() string {
	s := g.session
	line := fmt.Sprintf("Aim Range: %d points, best %d", s.Score(), s.Best())
	if s.NewBest() {
		line += " (new best!)"
	}
	return line
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}
