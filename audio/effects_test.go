package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams everything a bounded streamer produces
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("Streamer never terminated")
	return nil
}

func TestOscillatorBoundsAndTermination(t *testing.T) {
	rate := beep.SampleRate(44100)

	waves := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"triangle", WaveTriangle},
		{"noise", WaveNoise},
	}

	for _, tt := range waves {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440.0, 50*time.Millisecond, tt.wave, rate)
			samples := drain(t, osc)

			want := rate.N(50 * time.Millisecond)
			if len(samples) != want {
				t.Errorf("Got %d samples, want %d", len(samples), want)
			}
			for i, s := range samples {
				if s[0] < -1.0 || s[0] > 1.0 || s[1] < -1.0 || s[1] > 1.0 {
					t.Fatalf("Sample %d out of range: %v", i, s)
				}
				if s[0] != s[1] {
					t.Fatalf("Sample %d channels differ: %v", i, s)
				}
			}
			if osc.Err() != nil {
				t.Errorf("Err() = %v", osc.Err())
			}
		})
	}
}

func TestOscillatorSquareIsBipolar(t *testing.T) {
	osc := NewOscillator(220.0, 20*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	for i, s := range drain(t, osc) {
		if s[0] != 1.0 && s[0] != -1.0 {
			t.Fatalf("Sample %d = %f, want -1 or 1", i, s[0])
		}
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 10 * time.Millisecond
	release := 20 * time.Millisecond

	// a constant full-scale source makes the envelope directly visible
	osc := NewOscillator(0, duration, WaveSquare, rate)
	shaped := NewEnvelope(osc, duration, attack, release, rate)
	samples := drain(t, shaped)

	if len(samples) != rate.N(duration) {
		t.Fatalf("Got %d samples, want %d", len(samples), rate.N(duration))
	}
	if samples[0][0] != 0 {
		t.Errorf("First sample = %f, want 0 at attack start", samples[0][0])
	}

	sustainIdx := rate.N(attack) + 10
	if samples[sustainIdx][0] != 1.0 {
		t.Errorf("Sustain sample = %f, want full scale", samples[sustainIdx][0])
	}

	last := samples[len(samples)-1][0]
	if last > 0.01 {
		t.Errorf("Final sample = %f, want near 0 after release", last)
	}
}

func TestCueGeneratorsTerminate(t *testing.T) {
	rate := beep.SampleRate(44100)

	cues := []struct {
		name string
		s    beep.Streamer
	}{
		{"click", CreateClickSound(rate, 1.0)},
		{"error", CreateErrorSound(rate, 1.0)},
		{"coin", CreateCoinSound(rate, 1.0)},
		{"success", CreateSuccessSound(rate, 1.0)},
		{"bell", CreateBellSound(rate, 1.0)},
		{"sizzle", CreateSizzleSound(rate, 1.0)},
	}

	for _, tt := range cues {
		t.Run(tt.name, func(t *testing.T) {
			samples := drain(t, tt.s)
			if len(samples) == 0 {
				t.Error("Cue produced no samples")
			}
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 10*time.Millisecond, WaveSine, rate)
	muted := newVolume(osc, 0)

	for i, s := range drain(t, muted) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Sample %d = %v, want silence", i, s)
		}
	}
}
