package game

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// soundBank synthesizes and plays the two feedback tones. If the audio
// context cannot be created the bank stays silent and every cue is a no-op.
type soundBank struct {
	ctx   *audio.Context
	muted bool
	hit   []byte
	miss  []byte
}

func newSoundBank() (sb *soundBank) {
	sb = &soundBank{}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("audio init failed (continuing without sound): %v", r)
			sb.ctx = nil
		}
	}()
	sb.hit = synthTone(880, 90, true)
	sb.miss = synthTone(220, 130, false)
	sb.ctx = audio.NewContext(sampleRate)
	return sb
}

// synthTone renders a short decaying tone as 16-bit LE stereo PCM.
// square=true gives the brighter "hit" timbre, false a soft sine.
func synthTone(freq float64, ms int, square bool) []byte {
	n := sampleRate * ms / 1000
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
		if square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		// Linear fade-out keeps the tone from clicking at the end.
		env := 1 - float64(i)/float64(n)
		s := int16(v * env * 0.25 * math.MaxInt16)
		buf[4*i] = byte(s)
		buf[4*i+1] = byte(s >> 8)
		buf[4*i+2] = byte(s)
		buf[4*i+3] = byte(s >> 8)
	}
	return buf
}

func (sb *soundBank) play(tone []byte) {
	if sb.ctx == nil || sb.muted {
		return
	}
	sb.ctx.NewPlayerFromBytes(tone).Play()
}

func (sb *soundBank) playHit()  { sb.play(sb.hit) }
func (sb *soundBank) playMiss() { sb.play(sb.miss) }

func (sb *soundBank) toggleMute() { sb.muted = !sb.muted }
