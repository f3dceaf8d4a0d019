// Command wininfo prints coefficients and gain figures of the FFT window
// functions.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all known window types.
//
// Examples:
//
//	wininfo hann
//	wininfo -size 1024 blackman blackman-opt
//	wininfo -size 4096 -beta 6 kaiser
//	wininfo -coeffs -size 8 bartlett
//	wininfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vec/dsp/window"
)

var registry = map[string]window.Type{
	"rectangular":  window.TypeRectangular,
	"hann":         window.TypeHann,
	"hamming":      window.TypeHamming,
	"bartlett":     window.TypeBartlett,
	"blackman":     window.TypeBlackmanStd,
	"blackman-opt": window.TypeBlackmanOpt,
	"kaiser":       window.TypeKaiser,
}

func main() {
	size := flag.Int("size", 1024, "window length in samples")
	beta := flag.Float64("beta", 8, "Kaiser shape parameter")
	list := flag.Bool("list", false, "list available window names")
	coeffs := flag.Bool("coeffs", false, "print the coefficients instead of the summary")
	periodic := flag.Bool("periodic", false, "use periodic (FFT) form instead of symmetric")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints gain figures of FFT window functions.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all windows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for _, n := range sortedNames() {
			fmt.Println(n)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		names = sortedNames()
	}

	opts := []window.Option{window.WithBeta(*beta)}
	if *periodic {
		opts = append(opts, window.WithPeriodic())
	}

	var types []window.Type
	var labels []string
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		t, ok := registry[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown window %q (use -list to see available)\n", name)
			continue
		}
		types = append(types, t)
		labels = append(labels, name)
	}
	if len(types) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window types\n")
		os.Exit(1)
	}

	if *coeffs {
		printCoefficients(labels, types, *size, opts)
		return
	}
	printSummary(labels, types, *size, opts)
}

func sortedNames() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func printSummary(labels []string, types []window.Type, size int, opts []window.Option) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t-------------\t-----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for i, t := range types {
		w := window.Generate(t, size, opts...)
		gain, err := window.CoherentGain(w)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %s: %v\n", labels[i], err)
			return
		}
		enbw, err := window.EquivalentNoiseBandwidth(w)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %s: %v\n", labels[i], err)
			return
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\n", labels[i], size, gain, enbw); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printCoefficients(labels []string, types []window.Type, size int, opts []window.Option) {
	for i, t := range types {
		fmt.Printf("%s:", labels[i])
		for _, c := range window.Generate(t, size, opts...) {
			fmt.Printf(" %.6f", c)
		}
		fmt.Println()
	}
}
