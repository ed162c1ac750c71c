//go:build !nosound

package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// NewSoundManager opens the speaker and starts the mixer. volume is 0..1.
func NewSoundManager(volume float64) (*SoundManager, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	m := newManager(volume)
	m.add = func(s beep.Streamer) {
		speaker.Lock()
		m.mixer.Add(s)
		speaker.Unlock()
	}
	m.release = func() {
		speaker.Clear()
		speaker.Close()
	}
	speaker.Play(m.mixer)
	return m, nil
}
