package main

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-vec/dsp/average"
	"github.com/cwbudde/algo-vec/dsp/convert"
	"github.com/cwbudde/algo-vec/dsp/fft"
	"github.com/cwbudde/algo-vec/dsp/vector"
	"github.com/cwbudde/algo-vec/dsp/window"
)

type config struct {
	order   int
	hop     int
	frames  int
	window  window.Type
	backend string
}

type bin struct {
	index     int
	amplitude float64
}

func (b bin) frequency(rate, n int) float64 {
	return float64(b.index) * float64(rate) / float64(n)
}

func (b bin) level() float64 {
	if b.amplitude <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(b.amplitude)
}

// analyzer owns the per-frame buffers so the frame loop does not allocate.
type analyzer struct {
	engine *fft.ComplexEngine[complex128]
	frame  *vector.Buffer[complex128]
	mag    *vector.Buffer[float64]
	avg    *average.Running[float64]
	window window.Type
}

func newAnalyzer(cfg config) (*analyzer, error) {
	if cfg.order < 1 {
		return nil, fmt.Errorf("frame length must be at least 2 samples")
	}
	if cfg.frames < 1 {
		return nil, fmt.Errorf("average length must be positive: %d", cfg.frames)
	}

	engine, err := fft.NewComplexEngine[complex128](cfg.order, fft.WithBackend(cfg.backend))
	if err != nil {
		return nil, err
	}
	n := engine.Len()
	a := &analyzer{engine: engine, window: cfg.window}
	if a.frame, err = vector.New[complex128](n); err != nil {
		a.release()
		return nil, err
	}
	if a.mag, err = vector.New[float64](n); err != nil {
		a.release()
		return nil, err
	}
	if a.avg, err = average.New[float64](n, cfg.frames); err != nil {
		a.release()
		return nil, err
	}
	return a, nil
}

func (a *analyzer) release() {
	a.engine.Release()
	if a.frame != nil {
		a.frame.Release()
	}
	if a.mag != nil {
		a.mag.Release()
	}
	if a.avg != nil {
		a.avg.Release()
	}
}

// push transforms one frame and adds its magnitude spectrum to the average.
func (a *analyzer) push(samples []float64) error {
	data := a.frame.Data()
	for i := range data {
		data[i] = complex(samples[i], 0)
	}
	if err := window.Apply(a.window, a.frame, window.WithPeriodic()); err != nil {
		return err
	}
	if err := a.engine.ForwardInPlace(a.frame); err != nil {
		return err
	}
	if err := convert.Magnitude64(a.frame, a.mag); err != nil {
		return err
	}
	return a.avg.Add(a.mag)
}

// analyze returns the averaged single-sided amplitude spectrum of samples,
// corrected for the window's coherent gain.
func analyze(samples []float64, cfg config) ([]bin, error) {
	a, err := newAnalyzer(cfg)
	if err != nil {
		return nil, err
	}
	defer a.release()

	n := a.engine.Len()
	hop := cfg.hop
	if hop <= 0 {
		hop = n / 2
	}
	if len(samples) < n {
		return nil, fmt.Errorf("input has %d samples, frame needs %d", len(samples), n)
	}

	for pos := 0; pos+n <= len(samples); pos += hop {
		if err := a.push(samples[pos : pos+n]); err != nil {
			return nil, err
		}
	}

	mean := a.mag
	if err := a.avg.Get(mean); err != nil {
		return nil, err
	}
	gain, err := window.CoherentGain(window.Generate(cfg.window, n, window.WithPeriodic()))
	if err != nil {
		return nil, err
	}
	if err := mean.MulC(2 / (float64(n) * gain)); err != nil {
		return nil, err
	}

	half := n/2 + 1
	bins := make([]bin, half)
	for i := range bins {
		bins[i] = bin{index: i, amplitude: mean.At(i)}
	}
	// DC and Nyquist have no mirrored half.
	bins[0].amplitude /= 2
	bins[half-1].amplitude /= 2
	return bins, nil
}

// strongest returns up to k local maxima of bins, loudest first.
func strongest(bins []bin, k int) []bin {
	var peaks []bin
	for i, b := range bins {
		if i > 0 && bins[i-1].amplitude >= b.amplitude {
			continue
		}
		if i+1 < len(bins) && bins[i+1].amplitude > b.amplitude {
			continue
		}
		peaks = append(peaks, b)
	}
	slices.SortStableFunc(peaks, func(x, y bin) int {
		switch {
		case x.amplitude > y.amplitude:
			return -1
		case x.amplitude < y.amplitude:
			return 1
		default:
			return 0
		}
	})
	if k >= 0 && len(peaks) > k {
		peaks = peaks[:k]
	}
	return peaks
}
