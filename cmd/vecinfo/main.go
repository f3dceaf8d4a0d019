// Command vecinfo prints which kernel providers and FFT backends are
// registered and which of them the current CPU resolves to.
//
// Usage:
//
//	vecinfo [flags]
//
// Examples:
//
//	vecinfo
//	vecinfo -ops float64
//	vecinfo -size 4096
//	vecinfo -check
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/cmplx"
	"os"
	"reflect"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-vec/dsp/fft"
	"github.com/cwbudde/algo-vec/dsp/kernel"
	"github.com/cwbudde/algo-vec/dsp/vector"
)

var errNotSupported = errors.New("not supported")

func main() {
	size := flag.Int("size", 1024, "transform length used for the plan size table")
	ops := flag.String("ops", "", "print the provider of every kernel for one element type (e.g. float64, 32fc)")
	check := flag.Bool("check", false, "run an impulse round trip on every backend")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints registered kernel providers and FFT backends.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	features := cpu.DetectFeatures()
	out := os.Stdout
	fmt.Fprintf(out, "arch %s, force-generic %v\n\n", features.Architecture, features.ForceGeneric)

	if *ops != "" {
		if err := printOpSources(out, *ops, features); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printEntries(out, features)
	fmt.Fprintln(out)
	printBackends(out, fft.Order(*size))

	if *check {
		fmt.Fprintln(out)
		if err := runCheck(out, fft.Order(*size)); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

type entryRow struct {
	name     string
	simd     cpu.SIMDLevel
	priority int
	usable   bool
	selected bool
}

func rows[E any](entries []kernel.Entry[E], features cpu.Features) []entryRow {
	out := make([]entryRow, len(entries))
	selected := false
	for i, e := range entries {
		usable := cpu.Supports(features, e.SIMDLevel)
		out[i] = entryRow{
			name:     e.Name,
			simd:     e.SIMDLevel,
			priority: e.Priority,
			usable:   usable,
			selected: usable && !selected,
		}
		if usable {
			selected = true
		}
	}
	return out
}

func printEntries(w io.Writer, features cpu.Features) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Type\tProvider\tSIMD\tPriority\tState\n")
	fmt.Fprintf(tw, "----\t--------\t----\t--------\t-----\n")

	write := func(label string, rs []entryRow) {
		for _, r := range rs {
			state := "unavailable"
			switch {
			case r.selected:
				state = "primary"
			case r.usable:
				state = "fallback"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", label, r.name, r.simd, r.priority, state)
		}
	}
	write(kernel.KindInt16.String(), rows(kernel.Entries[int16](), features))
	write(kernel.KindInt32.String(), rows(kernel.Entries[int32](), features))
	write(kernel.KindFloat32.String(), rows(kernel.Entries[float32](), features))
	write(kernel.KindFloat64.String(), rows(kernel.Entries[float64](), features))
	write(kernel.KindComplex64.String(), rows(kernel.Entries[complex64](), features))
	write(kernel.KindComplex128.String(), rows(kernel.Entries[complex128](), features))
	write("convert", rows(kernel.Conv.ListEntries(), features))
	_ = tw.Flush()
}

// opSources maps every kernel field of E to the name of the highest
// priority usable entry that implements it.
func opSources[E any](entries []kernel.Entry[E], features cpu.Features) ([]string, map[string]string) {
	typ := reflect.TypeFor[E]()
	names := make([]string, typ.NumField())
	src := make(map[string]string, typ.NumField())
	for i := range names {
		names[i] = typ.Field(i).Name
	}
	for _, e := range entries {
		if !cpu.Supports(features, e.SIMDLevel) {
			continue
		}
		v := reflect.ValueOf(e.Ops)
		for i, name := range names {
			if _, done := src[name]; !done && !v.Field(i).IsNil() {
				src[name] = e.Name
			}
		}
	}
	return names, src
}

func printOpSources(w io.Writer, typ string, features cpu.Features) error {
	var (
		names []string
		src   map[string]string
	)
	switch strings.ToLower(typ) {
	case "int16", kernel.KindInt16.String():
		names, src = opSources(kernel.Entries[int16](), features)
	case "int32", kernel.KindInt32.String():
		names, src = opSources(kernel.Entries[int32](), features)
	case "float32", kernel.KindFloat32.String():
		names, src = opSources(kernel.Entries[float32](), features)
	case "float64", kernel.KindFloat64.String():
		names, src = opSources(kernel.Entries[float64](), features)
	case "complex64", kernel.KindComplex64.String():
		names, src = opSources(kernel.Entries[complex64](), features)
	case "complex128", kernel.KindComplex128.String():
		names, src = opSources(kernel.Entries[complex128](), features)
	case "convert":
		names, src = opSources(kernel.Conv.ListEntries(), features)
	default:
		return fmt.Errorf("unknown element type %q", typ)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tProvider\n")
	fmt.Fprintf(tw, "------\t--------\n")
	for _, name := range names {
		p, ok := src[name]
		if !ok {
			p = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, p)
	}
	return tw.Flush()
}

func printBackends(w io.Writer, order int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Backend\tType\tLength\tSpec [B]\tInit [B]\tWork [B]\n")
	fmt.Fprintf(tw, "-------\t----\t------\t--------\t--------\t--------\n")
	for _, name := range fft.Backends() {
		sizes, n, err := planSizes[complex64](name, order)
		writePlanRow(tw, name, kernel.KindComplex64, sizes, n, err)
		sizes, n, err = planSizes[complex128](name, order)
		writePlanRow(tw, name, kernel.KindComplex128, sizes, n, err)
	}
	_ = tw.Flush()
}

func planSizes[C kernel.Complex](name string, order int) (fft.Sizes, int, error) {
	if !fft.Supports[C](name) {
		return fft.Sizes{}, 0, errNotSupported
	}
	p, err := fft.NewPlan[C](order, fft.WithBackend(name))
	if err != nil {
		return fft.Sizes{}, 0, err
	}
	defer p.Release()
	return p.Sizes(), p.Len(), nil
}

func writePlanRow(w io.Writer, name string, kind kernel.Kind, sizes fft.Sizes, n int, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s\t%s\t-\t%v\t\t\n", name, kind, err)
		return
	}
	fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n", name, kind, n, sizes.Spec, sizes.Init, sizes.Work)
}

// runCheck transforms an impulse forward and back on every backend and
// reports the worst deviation from the input.
func runCheck(w io.Writer, order int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Backend\tType\tMax error\n")
	fmt.Fprintf(tw, "-------\t----\t---------\n")
	for _, name := range fft.Backends() {
		if fft.Supports[complex64](name) {
			e, err := roundTrip[complex64](name, order)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", name, kernel.KindComplex64, err)
			}
			fmt.Fprintf(tw, "%s\t%s\t%.3g\n", name, kernel.KindComplex64, e)
		}
		if fft.Supports[complex128](name) {
			e, err := roundTrip[complex128](name, order)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", name, kernel.KindComplex128, err)
			}
			fmt.Fprintf(tw, "%s\t%s\t%.3g\n", name, kernel.KindComplex128, e)
		}
	}
	return tw.Flush()
}

func roundTrip[C kernel.Complex](name string, order int) (float64, error) {
	e, err := fft.NewComplexEngine[C](order, fft.WithBackend(name))
	if err != nil {
		return 0, err
	}
	defer e.Release()

	buf, err := vector.New[C](e.Len())
	if err != nil {
		return 0, err
	}
	defer buf.Release()
	buf.SetAt(0, 1)

	if err := e.ForwardInPlace(buf); err != nil {
		return 0, err
	}
	if err := e.InverseInPlace(buf); err != nil {
		return 0, err
	}

	worst := 0.0
	for i, v := range buf.Data() {
		want := 0.0
		if i == 0 {
			want = 1
		}
		if d := cmplx.Abs(complex128(v) - complex(want, 0)); d > worst {
			worst = d
		}
	}
	return worst, nil
}
