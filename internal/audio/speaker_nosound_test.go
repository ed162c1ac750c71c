//go:build nosound

package audio

import (
	"errors"
	"testing"
)

func TestOpenWithoutSoundSupport(t *testing.T) {
	p, err := Open(true, 0.5)
	if !errors.Is(err, ErrNoSound) {
		t.Errorf("Open(true) err = %v, expected ErrNoSound", err)
	}
	if _, ok := p.(Nop); !ok {
		t.Errorf("Open(true) = %T, expected Nop fallback", p)
	}
}
