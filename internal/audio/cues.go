package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue is a short sound tied to a game event.
type Cue int

const (
	CueEat Cue = iota
	CueCrash
	CueWin
	CueRestart
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueCrash:
		return "crash"
	case CueWin:
		return "win"
	case CueRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator streams a tone of the given frequency for d.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which lasts d, with linear attack and release ramps.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s linearly; 0 or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one enveloped tone.
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// CueStreamer builds the sound for c at the given master volume.
func CueStreamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueEat:
		// B5 then E6
		s = beep.Seq(
			note(987.77, 60*time.Millisecond, WaveSquare, rate),
			note(1318.51, 90*time.Millisecond, WaveSquare, rate),
		)
	case CueCrash:
		s = note(110, 250*time.Millisecond, WaveSaw, rate)
	case CueWin:
		// C5 E5 G5 C6 arpeggio over a held C4
		s = beep.Mix(
			beep.Seq(
				note(523.25, 100*time.Millisecond, WaveSquare, rate),
				note(659.25, 100*time.Millisecond, WaveSquare, rate),
				note(783.99, 100*time.Millisecond, WaveSquare, rate),
				note(1046.50, 250*time.Millisecond, WaveSquare, rate),
			),
			withVolume(note(261.63, 550*time.Millisecond, WaveSine, rate), 0.5),
		)
	case CueRestart:
		s = note(660, 80*time.Millisecond, WaveSine, rate)
	default:
		return nil
	}
	return withVolume(s, volume)
}
