package vector

// Built-in kernel providers. The generic entry covers every element type;
// gonum and vecmath override selected float64 operations.
import (
	_ "github.com/cwbudde/algo-vec/dsp/kernel/generic"
	_ "github.com/cwbudde/algo-vec/dsp/kernel/gonum"
	_ "github.com/cwbudde/algo-vec/dsp/kernel/vecmath"
)
