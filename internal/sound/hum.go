// Package sound plays a soft tone whose loudness follows how far the
// particles have been pushed from their anchors.
package sound

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/particle-rings/internal/config"
	"github.com/iburimskiy/particle-rings/internal/mathx"
)

const (
	baseFreq = 110.0
	maxGain  = 0.25
)

// Hum is an endless beep.Streamer. The game thread sets the level; the
// speaker thread reads it.
type Hum struct {
	sampleRate beep.SampleRate
	phase      float64

	mu    sync.RWMutex
	level float64
}

func NewHum(sr beep.SampleRate) *Hum {
	return &Hum{sampleRate: sr}
}

// SetLevel smooths the loudness toward target in [0,1].
func (h *Hum) SetLevel(target float64) {
	target = mathx.Clamp01(target)
	h.mu.Lock()
	h.level = mathx.Lerp(target, h.level, config.SmoothingFactor)
	h.mu.Unlock()
}

func (h *Hum) Level() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.level
}

func (h *Hum) Stream(samples [][2]float64) (int, bool) {
	gain := h.Level() * maxGain
	step := 2 * math.Pi * baseFreq / float64(h.sampleRate)
	for i := range samples {
		// Root plus a quieter fifth.
		v := gain * (math.Sin(h.phase) + 0.5*math.Sin(1.5*h.phase)) / 1.5
		samples[i][0] = v
		samples[i][1] = v
		h.phase += step
		if h.phase > 4*math.Pi {
			h.phase -= 4 * math.Pi
		}
	}
	return len(samples), true
}

func (h *Hum) Err() error { return nil }
