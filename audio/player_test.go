package audio

import (
	"testing"
	"time"

	"github.com/lixenwraith/torus/game"
)

var _ game.Feedback = (*Player)(nil)

func TestPlayer_DisabledIsSilent(t *testing.T) {
	p, err := NewPlayer(false)
	if err != nil {
		t.Fatalf("NewPlayer(false): %v", err)
	}
	if p.Enabled() {
		t.Fatal("disabled player reports enabled")
	}

	p.Toggled(true)
	p.Toggled(false)
	p.Cleared()
	p.AutorunChanged(true)
	p.AutorunChanged(false)
	p.Close()

	if p.Played() != 0 {
		t.Errorf("disabled player played %d cues", p.Played())
	}
}

func TestCueStreamer_Length(t *testing.T) {
	for c, tn := range cueTones {
		s, err := cueStreamer(c)
		if err != nil {
			t.Fatalf("cue %d: %v", c, err)
		}

		want := sampleRate.N(tn.duration)
		buf := make([][2]float64, 512)
		total := 0
		for {
			n, ok := s.Stream(buf)
			total += n
			if !ok || n == 0 {
				break
			}
		}
		if total != want {
			t.Errorf("cue %d streamed %d samples, want %d", c, total, want)
		}
	}
}

func TestCueStreamer_Unknown(t *testing.T) {
	if _, err := cueStreamer(Cue(99)); err == nil {
		t.Error("expected error for unknown cue")
	}
}

func TestCueTones_Distinct(t *testing.T) {
	seen := make(map[float64]Cue)
	for c, tn := range cueTones {
		if prev, ok := seen[tn.freq]; ok {
			t.Errorf("cues %d and %d share %vHz", prev, c, tn.freq)
		}
		seen[tn.freq] = c
		if tn.duration <= 0 || tn.duration > time.Second {
			t.Errorf("cue %d duration %v out of range", c, tn.duration)
		}
	}
}
