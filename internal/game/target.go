package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// Play area in logical pixels. The HUD strip sits below it.
	playW = 800
	playH = 500

	// margin keeps targets fully on screen; bounces clamp against it.
	margin = 20

	// tierPx is the side length per size tier (tier 1 = 20px, tier 3 = 60px).
	tierPx = 20
)

// palette is the fixed set of target colours a spawn picks from.
var palette = [5]color.RGBA{
	{R: 220, G: 60, B: 60, A: 255},  // red
	{R: 240, G: 160, B: 40, A: 255}, // orange
	{R: 70, G: 170, B: 90, A: 255},  // green
	{R: 70, G: 120, B: 220, A: 255}, // blue
	{R: 180, G: 80, B: 200, A: 255}, // purple
}

// Target is a destructible moving square worth points when hit.
// Position is the top-left corner; velocity is in pixels per millisecond.
type Target struct {
	X, Y   float64
	VX, VY float64
	Size   int // tier 1-3
	Color  color.RGBA
	Points int
	Alive  bool
}

// Side returns the target's square side length in pixels.
func (t *Target) Side() float64 {
	return float64(t.Size * tierPx)
}

// Update advances the target by dt milliseconds and bounces it elastically
// off the margin boundary: the position is clamped to the boundary and the
// corresponding velocity component inverted, per axis.
func (t *Target) Update(dt float64) {
	t.X += t.VX * dt
	t.Y += t.VY * dt

	maxX := float64(playW) - margin - t.Side()
	maxY := float64(playH) - margin - t.Side()

	if t.X < margin {
		t.X = margin
		t.VX = -t.VX
	} else if t.X > maxX {
		t.X = maxX
		t.VX = -t.VX
	}
	if t.Y < margin {
		t.Y = margin
		t.VY = -t.VY
	} else if t.Y > maxY {
		t.Y = maxY
		t.VY = -t.VY
	}
}

// ContainsPoint reports whether the point lies within the target's bounding
// box. Bounds are inclusive, so a shot exactly on the edge counts.
func (t *Target) ContainsPoint(px, py float64) bool {
	return px >= t.X && px <= t.X+t.Side() &&
		py >= t.Y && py <= t.Y+t.Side()
}

// Draw paints the target as a bullseye of three nested squares: the body in
// the target colour, a contrasting mid square, and a bright inner square.
func (t *Target) Draw(screen *ebiten.Image) {
	side := float32(t.Side())
	x := float32(t.X)
	y := float32(t.Y)
	vector.FillRect(screen, x, y, side, side, t.Color, false)

	mid := side * 0.6
	off := (side - mid) / 2
	vector.FillRect(screen, x+off, y+off, mid, mid,
		color.RGBA{R: 30, G: 30, B: 36, A: 255}, false)

	inner := side * 0.25
	off = (side - inner) / 2
	vector.FillRect(screen, x+off, y+off, inner, inner,
		color.RGBA{R: 245, G: 245, B: 235, A: 255}, false)
}

// rollSize picks a size tier with the weighted nested draw:
// 20% tier 3, then 40% of the remainder tier 2 (32% overall), else tier 1 (48%).
func rollSize(rng *rand.Rand) int {
	if rng.Float64() < 0.2 {
		return 3
	}
	if rng.Float64() < 0.4 {
		return 2
	}
	return 1
}

// sizePoints maps a size tier to its point value. Bigger targets are slower
// to miss, so they pay more.
func sizePoints(size int) int {
	switch size {
	case 3:
		return 30
	case 2:
		return 15
	default:
		return 5
	}
}

// SpawnTarget creates one target with difficulty-scaled randomised attributes:
// uniform in-bounds position, uniform heading, speed (0.05+0.03*difficulty)
// px/ms scaled by a random factor in [0.4, 2.0), and a palette colour.
func SpawnTarget(rng *rand.Rand, difficulty int) *Target {
	size := rollSize(rng)
	side := float64(size * tierPx)

	x := margin + rng.Float64()*(float64(playW)-2*margin-side)
	y := margin + rng.Float64()*(float64(playH)-2*margin-side)

	angle := rng.Float64() * 2 * math.Pi
	speed := (0.05 + 0.03*float64(difficulty)) * (0.4 + rng.Float64()*1.6)

	return &Target{
		X:      x,
		Y:      y,
		VX:     math.Cos(angle) * speed,
		VY:     math.Sin(angle) * speed,
		Size:   size,
		Color:  palette[rng.Intn(len(palette))],
		Points: sizePoints(size),
		Alive:  true,
	}
}
