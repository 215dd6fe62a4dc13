package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/rs/zerolog/log"
)

// Player owns the speaker while the sketch runs.
type Player struct {
	hum   *Hum
	ctrl  *beep.Ctrl
	muted bool
}

// Start initializes the speaker and begins playing the hum.
func Start(sampleRate int, volume float64) (*Player, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}

	hum := NewHum(sr)
	ctrl := &beep.Ctrl{Streamer: hum}
	speaker.Play(&effects.Volume{Streamer: ctrl, Base: 2, Volume: volume})
	log.Info().Int("sample_rate", sampleRate).Float64("volume", volume).Msg("audio started")

	return &Player{hum: hum, ctrl: ctrl}, nil
}

// SetLevel forwards the loudness target to the hum.
func (p *Player) SetLevel(level float64) {
	p.hum.SetLevel(level)
}

// ToggleMute pauses or resumes output.
func (p *Player) ToggleMute() {
	speaker.Lock()
	p.muted = !p.muted
	p.ctrl.Paused = p.muted
	speaker.Unlock()
}

func (p *Player) Muted() bool { return p.muted }

func (p *Player) Close() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	speaker.Close()
}
