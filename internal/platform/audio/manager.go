// Package audio plays short synthesized sound effects for game events.
// Tones are generated rather than loaded from files, so the binary ships no
// assets. Audio failing to initialize is never fatal: the manager silently
// drops every play request.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/snack/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and mixes the game's sound effects.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enabled     bool
	initialized bool
}

// NewManager creates a sound manager. A disabled manager never touches the
// speaker and every play call is a no-op.
func NewManager(enabled bool) *Manager {
	return &Manager{
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}
}

// Init opens the speaker. Returns the speaker error, which callers should
// treat as a downgrade to silent mode rather than a failure.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close stops all playing sounds.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// HandleEvents plays the effect matching each simulation event.
func (m *Manager) HandleEvents(events []core.Event) {
	for _, ev := range events {
		switch ev {
		case core.EventFoodEaten:
			m.play(NewTone(880, 60*time.Millisecond, sampleRate))
		case core.EventGameOver:
			m.play(NewSweep(440, 110, 300*time.Millisecond, sampleRate))
		case core.EventWin:
			m.play(beep.Seq(
				NewTone(523.25, 120*time.Millisecond, sampleRate),
				NewTone(659.25, 120*time.Millisecond, sampleRate),
				NewTone(783.99, 180*time.Millisecond, sampleRate),
			))
		}
	}
}

// play adds a streamer to the mixer if the speaker is up.
func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}
