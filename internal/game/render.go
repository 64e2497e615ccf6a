package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	gridBlock = 50 // checkerboard granularity in pixels

	// Debug font metrics at 1x, used to centre HUD text.
	charW = 6
	lineH = 12
)

var (
	baseCol  = color.RGBA{R: 24, G: 28, B: 34, A: 255}
	checkCol = color.RGBA{R: 29, G: 34, B: 41, A: 255}
	stripCol = color.RGBA{R: 12, G: 14, B: 16, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.hudBuf.Clear()

	if g.session.Phase() == PhaseIdle {
		g.drawIdleScreen(screen)
	} else {
		g.drawPlayfield(screen)
		for _, t := range g.session.Targets() {
			t.Draw(screen)
		}
		if g.pointerKnown && g.pointerY < playH {
			g.drawCrosshair(screen)
		}
		g.drawStats()
	}

	g.drawControlStrip(screen)

	if g.showSummary {
		g.drawSummary(screen)
	}

	// All text was written into hudBuf at 1x; blit it once, scaled.
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(hudScale, hudScale)
	screen.DrawImage(g.hudBuf, opts)
}

// drawPlayfield paints the base colour plus a subtle checkerboard so target
// motion reads against something other than a flat fill.
func (g *Game) drawPlayfield(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, playW, playH, baseCol, false)
	for by := 0; by*gridBlock < playH; by++ {
		for bx := 0; bx*gridBlock < playW; bx++ {
			if (bx+by)%2 != 0 {
				continue
			}
			w := float32(gridBlock)
			h := float32(gridBlock)
			if (bx+1)*gridBlock > playW {
				w = float32(playW - bx*gridBlock)
			}
			if (by+1)*gridBlock > playH {
				h = float32(playH - by*gridBlock)
			}
			vector.FillRect(screen, float32(bx*gridBlock), float32(by*gridBlock), w, h, checkCol, false)
		}
	}
}

// drawCrosshair renders a chunky dark cross with a smaller bright inset,
// centred on the last known pointer position.
func (g *Game) drawCrosshair(screen *ebiten.Image) {
	x := float32(g.pointerX)
	y := float32(g.pointerY)

	dark := color.RGBA{R: 16, G: 16, B: 16, A: 230}
	vector.FillRect(screen, x-3, y-18, 6, 36, dark, false)
	vector.FillRect(screen, x-18, y-3, 36, 6, dark, false)

	bright := color.RGBA{R: 245, G: 235, B: 90, A: 255}
	vector.FillRect(screen, x-1, y-9, 2, 18, bright, false)
	vector.FillRect(screen, x-9, y-1, 18, 2, bright, false)
}

// drawStats writes the live HUD fields into the text buffer.
func (g *Game) drawStats() {
	s := g.session
	line := fmt.Sprintf("SCORE %d   TIME %d   AMMO %d/%d   BEST %d",
		s.Score(), s.DisplayTime(), s.Ammo(), g.cfg.MaxAmmo, s.Best())
	ebitenutil.DebugPrintAt(g.hudBuf, line, 8, playH/hudScale+4)

	if s.Phase() == PhasePaused {
		g.printCentered("PAUSED", playH/2/hudScale)
	}
}

// drawControlStrip draws the bottom bar and its three buttons. Labels go
// into the text buffer so they come out at HUD scale.
func (g *Game) drawControlStrip(screen *ebiten.Image) {
	vector.FillRect(screen, 0, playH, screenW, hudH, stripCol, false)
	vector.StrokeLine(screen, 0, playH, screenW, playH, 1.0,
		color.RGBA{R: 60, G: 70, B: 80, A: 255}, false)

	for _, b := range g.buttons {
		vector.FillRect(screen, b.x, b.y, b.w, b.h,
			color.RGBA{R: 34, G: 40, B: 48, A: 255}, false)
		vector.StrokeRect(screen, b.x, b.y, b.w, b.h, 1.0,
			color.RGBA{R: 90, G: 105, B: 120, A: 255}, false)

		label := b.label()
		tx := int(b.x+b.w/2)/hudScale - len(label)*charW/2
		ty := int(b.y+b.h/2)/hudScale - lineH/2 + 1
		ebitenutil.DebugPrintAt(g.hudBuf, label, tx, ty)
	}

	ebitenutil.DebugPrintAt(g.hudBuf, "R=reload  P=pause  M=mute", 8, playH/hudScale+16)
}

// drawIdleScreen shows the title and start prompt before the first round.
func (g *Game) drawIdleScreen(screen *ebiten.Image) {
	g.drawPlayfield(screen)

	const titleScale = 5
	tw := g.titleBuf.Bounds().Dx()
	th := g.titleBuf.Bounds().Dy()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(titleScale, titleScale)
	opts.GeoM.Translate(float64(playW-tw*titleScale)/2, float64(playH/2-th*titleScale))
	screen.DrawImage(g.titleBuf, opts)

	g.printCentered("click the targets before time runs out", playH/2/hudScale+10)
	g.printCentered("press Start to begin", playH/2/hudScale+24)
}

// drawSummary renders the modal end-of-round panel.
func (g *Game) drawSummary(screen *ebiten.Image) {
	const pw, ph = 360, 140
	px := float32(playW-pw) / 2
	py := float32(playH-ph) / 2

	vector.FillRect(screen, px, py, pw, ph,
		color.RGBA{R: 6, G: 10, B: 6, A: 230}, false)
	vector.StrokeRect(screen, px, py, pw, ph, 1.0,
		color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	vector.StrokeLine(screen, px+1, py+1, px+pw-1, py+1, 1.0,
		color.RGBA{R: 80, G: 140, B: 80, A: 80}, false)

	s := g.session
	top := int(py)/hudScale + 8
	g.printCentered("TIME!", top)
	g.printCentered(fmt.Sprintf("final score: %d", s.Score()), top+lineH+2)
	if s.NewBest() {
		g.printCentered("NEW BEST!", top+2*(lineH+2))
	} else {
		g.printCentered(fmt.Sprintf("best: %d", s.Best()), top+2*(lineH+2))
	}
	g.printCentered("Restart to play again   C=copy result", top+4*(lineH+2))
}

// printCentered writes a line into the text buffer, horizontally centred at
// 1x buffer coordinates.
func (g *Game) printCentered(line string, y int) {
	x := screenW/hudScale/2 - len(line)*charW/2
	ebitenutil.DebugPrintAt(g.hudBuf, line, x, y)
}

// newTitleImage renders the title once at 1x; Draw blits it scaled up.
func newTitleImage() *ebiten.Image {
	const title = "AIM RANGE"
	face := basicfont.Face7x13
	w := face.Advance * len(title)
	img := ebiten.NewImage(w, face.Height)
	text.Draw(img, title, face, 0, face.Ascent, color.RGBA{R: 235, G: 240, B: 245, A: 255})
	return img
}
