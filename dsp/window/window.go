package window

import (
	"fmt"
	"math"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBartlett
	// TypeBlackmanStd is the classic Blackman window (alpha = 0.16).
	TypeBlackmanStd
	// TypeBlackmanOpt is the Blackman family member whose alpha depends on
	// the window length and places the third sidelobe on a zero.
	TypeBlackmanOpt
	TypeKaiser
)

var typeNames = map[Type]string{
	TypeRectangular: "Rectangular",
	TypeHann:        "Hann",
	TypeHamming:     "Hamming",
	TypeBartlett:    "Bartlett",
	TypeBlackmanStd: "BlackmanStd",
	TypeBlackmanOpt: "BlackmanOpt",
	TypeKaiser:      "Kaiser",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Types returns every supported window type.
func Types() []Type {
	return []Type{
		TypeRectangular, TypeHann, TypeHamming, TypeBartlett,
		TypeBlackmanStd, TypeBlackmanOpt, TypeKaiser,
	}
}

// Option configures window generation.
type Option func(*config)

type config struct {
	beta     float64
	periodic bool
}

func defaultConfig() config {
	return config{beta: 8}
}

// WithBeta sets the Kaiser shape parameter. Negative values are ignored.
func WithBeta(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.beta = v
		}
	}
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

var (
	hannCoeffs        = []float64{0.5, -0.5}
	hammingCoeffs     = []float64{0.54, -0.46}
	blackmanStdCoeffs = blackmanCoeffs(-0.16)
)

// blackmanCoeffs returns the cosine terms of the Blackman family for alpha.
func blackmanCoeffs(alpha float64) []float64 {
	return []float64{(alpha + 1) / 2, -0.5, -alpha / 2}
}

// Generate returns window coefficients of the given length, or nil for
// length <= 0.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	blackman := blackmanStdCoeffs
	if t == TypeBlackmanOpt && length > 1 {
		den := float64(length - 1)
		if cfg.periodic {
			den = float64(length)
		}
		blackman = blackmanCoeffs(-0.5 / (1 + math.Cos(2*math.Pi/den)))
	}

	out := make([]float64, length)
	for i := range out {
		x := samplePosition(i, length, cfg.periodic)
		switch t {
		case TypeHann:
			out[i] = cosineFromCoeffs(x, hannCoeffs)
		case TypeHamming:
			out[i] = cosineFromCoeffs(x, hammingCoeffs)
		case TypeBartlett:
			out[i] = 1 - math.Abs(2*x-1)
		case TypeBlackmanStd, TypeBlackmanOpt:
			out[i] = cosineFromCoeffs(x, blackman)
		case TypeKaiser:
			out[i] = kaiserAt(x, cfg.beta)
		default:
			out[i] = 1
		}
	}
	return out
}

// CoherentGain returns sum(w[n]) / N, the DC response of the window.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}
	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}
	return sum / float64(len(coeffs)), nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0.5
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

// besselI0 returns a numerical approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
