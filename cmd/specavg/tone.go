package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"
)

type toneOptions struct {
	frequency float64
	amplitude float64
	duration  float64
	rate      int
	channels  int
	bitDepth  int
}

func newToneCmd() *cobra.Command {
	var opts toneOptions

	cmd := &cobra.Command{
		Use:   "tone [flags] file.wav",
		Short: "Write a sine tone to a PCM WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeTone(args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64VarP(&opts.frequency, "frequency", "f", 1000, "tone frequency in Hz")
	flags.Float64Var(&opts.amplitude, "amplitude", 0.5, "peak amplitude relative to full scale")
	flags.Float64VarP(&opts.duration, "duration", "d", 1, "length in seconds")
	flags.IntVarP(&opts.rate, "sample-rate", "s", 48000, "sample rate in Hz")
	flags.IntVarP(&opts.channels, "channels", "c", 1, "number of channels")
	flags.IntVarP(&opts.bitDepth, "bit-depth", "b", 16, "bits per sample (16, 24 or 32)")
	return cmd
}

func writeTone(path string, opts toneOptions) error {
	switch opts.bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("unsupported bit depth %d", opts.bitDepth)
	}
	if opts.rate <= 0 || opts.channels <= 0 || opts.duration <= 0 {
		return fmt.Errorf("sample rate, channels and duration must be positive")
	}
	if opts.amplitude < 0 || opts.amplitude > 1 {
		return fmt.Errorf("amplitude must be in [0, 1]: %v", opts.amplitude)
	}

	frames := int(math.Round(opts.duration * float64(opts.rate)))
	full := float64(int64(1)<<(opts.bitDepth-1) - 1)
	step := 2 * math.Pi * opts.frequency / float64(opts.rate)

	data := make([]int, frames*opts.channels)
	for i := 0; i < frames; i++ {
		v := int(math.Round(opts.amplitude * full * math.Sin(step*float64(i))))
		for c := 0; c < opts.channels; c++ {
			data[i*opts.channels+c] = v
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(file, opts.rate, opts.bitDepth, opts.channels, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: opts.channels,
			SampleRate:  opts.rate,
		},
		Data:           data,
		SourceBitDepth: opts.bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		_ = file.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
