// Package audio plays short synthesized cues for game events.
package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player plays cues without blocking the caller.
type Player interface {
	Play(c Cue)
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// Close does nothing.
func (Nop) Close() {}

// CueFor maps a game event to its cue.
func CueFor(e core.Event) (Cue, bool) {
	switch e {
	case core.EventAte:
		return CueEat, true
	case core.EventCollided:
		return CueCrash, true
	case core.EventBoardFull:
		return CueWin, true
	case core.EventRestarted:
		return CueRestart, true
	}
	return 0, false
}

// PlayEvents plays the cue of every event in order.
func PlayEvents(p Player, events []core.Event) {
	for _, e := range events {
		if c, ok := CueFor(e); ok {
			p.Play(c)
		}
	}
}

// SoundManager mixes cues onto the system speaker.
type SoundManager struct {
	mu     sync.Mutex
	volume float64
	mixer  *beep.Mixer
	closed bool

	// add hands a streamer to the output; release shuts it down.
	add     func(beep.Streamer)
	release func()
}

func newManager(volume float64) *SoundManager {
	return &SoundManager{
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Play queues c; overlapping cues are mixed.
func (m *SoundManager) Play(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	if s := CueStreamer(c, sampleRate, m.volume); s != nil {
		m.add(s)
	}
}

// Close silences pending cues and releases the speaker.
func (m *SoundManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	if m.release != nil {
		m.release()
	}
}

// Open returns a SoundManager when enabled, falling back to Nop when audio
// is disabled or the device cannot be opened. The error reports the
// fallback reason and is informational.
func Open(enabled bool, volume float64) (Player, error) {
	if !enabled {
		return Nop{}, nil
	}
	m, err := NewSoundManager(volume)
	if err != nil {
		return Nop{}, err
	}
	return m, nil
}
