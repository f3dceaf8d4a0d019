package main

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-vec/dsp/fft"
	"github.com/cwbudde/algo-vec/dsp/window"
	"github.com/cwbudde/algo-vec/internal/testutil"
)

const testRate = 8000

// toneFile writes a 16-bit WAV with the same sine on every channel.
func toneFile(t *testing.T, freq, amp float64, channels, frames int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tone.wav")
	err := writeTone(path, toneOptions{
		frequency: freq,
		amplitude: amp,
		duration:  float64(frames) / testRate,
		rate:      testRate,
		channels:  channels,
		bitDepth:  16,
	})
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadMonoMixesChannels(t *testing.T) {
	path := toneFile(t, 500, 0.5, 2, 4096)
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	samples, rate, err := readMono(f)
	if err != nil {
		t.Fatal(err)
	}
	if rate != testRate || len(samples) != 4096 {
		t.Fatalf("rate=%d len=%d", rate, len(samples))
	}
	want := testutil.DeterministicSine(500, testRate, 0.5, 4096)
	testutil.RequireSliceNearlyEqual(t, samples, want, 1e-4)
}

func TestReadMonoRejectsGarbage(t *testing.T) {
	_, _, err := readMono(bytes.NewReader([]byte("definitely not a riff file")))
	if !errors.Is(err, errNotWAV) {
		t.Fatalf("err = %v", err)
	}
}

func TestAnalyzeFindsTone(t *testing.T) {
	// 500 Hz sits exactly on bin 64 of a 1024-point frame at 8 kHz.
	path := toneFile(t, 500, 0.5, 1, 8192)
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	samples, _, err := readMono(f)
	if err != nil {
		t.Fatal(err)
	}

	for _, backend := range []string{fft.DefaultBackend, fft.GonumBackend} {
		bins, err := analyze(samples, config{
			order:   10,
			frames:  8,
			window:  window.TypeHann,
			backend: backend,
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(bins) != 513 {
			t.Fatalf("len(bins) = %d", len(bins))
		}
		peaks := strongest(bins, 3)
		if len(peaks) == 0 || peaks[0].index != 64 {
			t.Fatalf("%s: peaks = %v", backend, peaks)
		}
		if math.Abs(peaks[0].amplitude-0.5) > 1e-3 {
			t.Errorf("%s: amplitude = %v, want 0.5", backend, peaks[0].amplitude)
		}
		if got := peaks[0].frequency(testRate, 1024); got != 500 {
			t.Errorf("frequency = %v", got)
		}
		if math.Abs(peaks[0].level()-20*math.Log10(0.5)) > 0.01 {
			t.Errorf("level = %v", peaks[0].level())
		}
	}
}

func TestAnalyzeValidation(t *testing.T) {
	samples := make([]float64, 100)
	if _, err := analyze(samples, config{order: 10, frames: 1, backend: fft.DefaultBackend}); err == nil {
		t.Error("expected error for short input")
	}
	if _, err := analyze(samples, config{order: 0, frames: 1, backend: fft.DefaultBackend}); err == nil {
		t.Error("expected error for order 0")
	}
	if _, err := analyze(samples, config{order: 4, frames: 0, backend: fft.DefaultBackend}); err == nil {
		t.Error("expected error for empty average")
	}
	if _, err := analyze(samples, config{order: 4, frames: 1, backend: "missing"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestStrongestOrdersPeaks(t *testing.T) {
	bins := []bin{{0, 0.1}, {1, 0.5}, {2, 0.2}, {3, 0.9}, {4, 0.3}, {5, 0.4}}
	got := strongest(bins, 2)
	if len(got) != 2 || got[0].index != 3 || got[1].index != 1 {
		t.Fatalf("strongest = %v", got)
	}
	if all := strongest(bins, 10); len(all) != 3 {
		t.Errorf("peaks = %v", all)
	}
	if (bin{amplitude: 0}).level() != math.Inf(-1) {
		t.Error("zero amplitude should be -Inf dB")
	}
}

func TestWriteToneValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	bad := []toneOptions{
		{frequency: 100, amplitude: 0.5, duration: 1, rate: 8000, channels: 1, bitDepth: 12},
		{frequency: 100, amplitude: 0.5, duration: 0, rate: 8000, channels: 1, bitDepth: 16},
		{frequency: 100, amplitude: 2, duration: 1, rate: 8000, channels: 1, bitDepth: 16},
	}
	for _, opts := range bad {
		if err := writeTone(path, opts); err == nil {
			t.Errorf("writeTone(%+v) succeeded", opts)
		}
	}
}

func TestCommandLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.wav")

	var out bytes.Buffer
	gen := newRootCmd(&out)
	gen.SetArgs([]string{"tone", "-f", "500", "-s", "8000", "-d", "1.024", "-c", "2", path})
	if err := gen.Execute(); err != nil {
		t.Fatalf("tone: %v", err)
	}

	root := newRootCmd(&out)
	root.SetArgs([]string{"-n", "1024", "-a", "8", "-t", "1", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.Contains(out.String(), "500.0") {
		t.Errorf("output missing 500 Hz peak:\n%s", out.String())
	}

	bad := newRootCmd(&out)
	bad.SetArgs([]string{"-w", "triangle", path})
	if err := bad.Execute(); err == nil {
		t.Error("expected error for unknown window")
	}
}
