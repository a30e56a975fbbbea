package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// oscillator generates a fixed-frequency sine wave with a linear fade-out,
// so short blips end without a click.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewTone creates a streamer playing a sine tone for the given duration.
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		val := math.Sin(2 * math.Pi * o.phase)
		val *= fadeOut(o.position, o.duration)

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep generates a sine wave gliding linearly from one frequency to another.
type sweep struct {
	fromFreq float64
	toFreq   float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweep creates a streamer gliding from fromFreq to toFreq over duration.
func NewSweep(fromFreq, toFreq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		fromFreq: fromFreq,
		toFreq:   toFreq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, false
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.fromFreq + progress*(s.toFreq-s.fromFreq)

		val := math.Sin(2 * math.Pi * s.phase)
		val *= fadeOut(s.position, s.duration)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase = s.phase - math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// fadeOut returns a gain factor fading linearly to zero over the last quarter.
func fadeOut(position, duration int) float64 {
	fadeStart := duration * 3 / 4
	if position < fadeStart || duration == fadeStart {
		return 1.0
	}
	return 1.0 - float64(position-fadeStart)/float64(duration-fadeStart)
}
