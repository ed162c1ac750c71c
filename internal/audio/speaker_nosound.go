//go:build nosound

package audio

import "errors"

// ErrNoSound is returned when the binary was built with the nosound tag.
var ErrNoSound = errors.New("audio: built without sound support (nosound tag)")

// NewSoundManager always fails in headless builds; Open falls back to Nop.
func NewSoundManager(float64) (*SoundManager, error) {
	return nil, ErrNoSound
}
