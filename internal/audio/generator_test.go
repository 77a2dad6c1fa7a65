package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"go-missile-defense/internal/event"
)

func TestSweepGenerator_BoundedAndNonSilent(t *testing.T) {
	g := NewSweepGenerator(beep.SampleRate(44100), 900, 1800)
	buf := make([][2]float64, 4096)

	n, ok := g.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	peak := 0.0
	for _, s := range buf {
		if s[0] != s[1] {
			t.Fatal("channels should match")
		}
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 || peak > 1 {
		t.Errorf("peak = %v, want (0, 1]", peak)
	}
	if g.Err() != nil {
		t.Error("unexpected error")
	}
}

func TestBlastGenerator_Decays(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewBlastGenerator(rate, 0.3, 10)

	early := make([][2]float64, 2000)
	g.Stream(early)
	skip := make([][2]float64, rate.N(time.Millisecond*500))
	g.Stream(skip)
	late := make([][2]float64, 2000)
	g.Stream(late)

	if energy(late) >= energy(early) {
		t.Errorf("late energy %v should be below early %v", energy(late), energy(early))
	}
}

func energy(buf [][2]float64) float64 {
	sum := 0.0
	for _, s := range buf {
		sum += s[0] * s[0]
	}
	return sum
}

func TestSoundManager_IgnoresEventsBeforeInit(t *testing.T) {
	sm := NewSoundManager()
	// Без устройства вывода события просто игнорируются
	sm.OnEvent(event.Event{Type: event.InterceptorFired})
	sm.OnEvent(event.Event{Type: event.GameLost})
	sm.Cleanup()
}
