package audio

import (
	"sync"
	"time"

	"go-missile-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays procedural sound effects for game events
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device. Game events are ignored until it succeeds.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.InterceptorFired:
		sm.play(time.Millisecond*120, NewSweepGenerator(sampleRate, 900, 1800))
	case event.RocketIntercepted:
		sm.play(time.Millisecond*250, NewBlastGenerator(sampleRate, 0.25, 12))
	case event.RocketImpact:
		sm.play(time.Millisecond*400, NewBlastGenerator(sampleRate, 0.35, 6))
	case event.CityDestroyed, event.TurretDestroyed:
		sm.play(time.Millisecond*350, NewSweepGenerator(sampleRate, 220, 60))
	case event.RoundEnded, event.GameWon:
		sm.play(time.Millisecond*300, NewSweepGenerator(sampleRate, 440, 880))
	case event.GameLost:
		sm.play(time.Millisecond*900, NewSweepGenerator(sampleRate, 300, 40))
	}
}

func (sm *SoundManager) play(d time.Duration, s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(d), s))
	speaker.Unlock()
}
