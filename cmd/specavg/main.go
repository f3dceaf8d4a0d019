// Command specavg prints the strongest frequency bins of a WAV file's
// averaged magnitude spectrum.
//
// The file is mixed down to mono, cut into overlapping frames, windowed,
// transformed and the magnitude spectra are fed through a running average
// over the last --avg frames.
//
// Examples:
//
//	specavg tone.wav
//	specavg -n 4096 -w blackman-opt -t 5 speech.wav
//	specavg --backend gonum --avg 16 music.wav
//	specavg tone -f 1000 -d 2 tone.wav
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-vec/dsp/fft"
	"github.com/cwbudde/algo-vec/dsp/window"
)

var windowNames = map[string]window.Type{
	"rectangular":  window.TypeRectangular,
	"hann":         window.TypeHann,
	"hamming":      window.TypeHamming,
	"bartlett":     window.TypeBartlett,
	"blackman":     window.TypeBlackmanStd,
	"blackman-opt": window.TypeBlackmanOpt,
	"kaiser":       window.TypeKaiser,
}

type options struct {
	size    int
	hop     int
	avg     int
	window  string
	top     int
	backend string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "specavg [flags] file.wav",
		Short:         "Print the strongest bins of a WAV file's averaged spectrum",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, args[0], opts)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	flags := rootCmd.Flags()
	flags.IntVarP(&opts.size, "size", "n", 2048, "frame length in samples, rounded up to a power of two")
	flags.IntVar(&opts.hop, "hop", 0, "frame advance in samples (default size/2)")
	flags.IntVarP(&opts.avg, "avg", "a", 32, "number of frames in the running average")
	flags.StringVarP(&opts.window, "window", "w", "hann", "window function")
	flags.IntVarP(&opts.top, "top", "t", 10, "number of bins to print")
	flags.StringVar(&opts.backend, "backend", fft.DefaultBackend, "FFT backend")

	rootCmd.AddCommand(newToneCmd())
	return rootCmd
}

func run(out io.Writer, path string, opts options) error {
	wt, ok := windowNames[strings.ToLower(opts.window)]
	if !ok {
		return fmt.Errorf("unknown window %q", opts.window)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	samples, rate, err := readMono(f)
	if err != nil {
		return err
	}

	cfg := config{
		order:   fft.Order(opts.size),
		hop:     opts.hop,
		frames:  opts.avg,
		window:  wt,
		backend: opts.backend,
	}
	bins, err := analyze(samples, cfg)
	if err != nil {
		return err
	}
	return printBins(out, bins, rate, 1<<cfg.order, opts.top)
}

func printBins(out io.Writer, bins []bin, rate, n, top int) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Bin\tFrequency [Hz]\tAmplitude\tLevel [dBFS]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---\t--------------\t---------\t------------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, b := range strongest(bins, top) {
		if _, err := fmt.Fprintf(tw, "%d\t%.1f\t%.6f\t%.2f\n",
			b.index, b.frequency(rate, n), b.amplitude, b.level()); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}
