package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

var errNotWAV = errors.New("not a valid WAV file")

// readMono decodes a PCM WAV stream, averages its channels and scales the
// samples to [-1, 1). It returns the samples and the sample rate.
func readMono(r io.ReadSeeker) ([]float64, int, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, 0, errNotWAV
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("decode: missing channel layout: %w", errNotWAV)
	}

	depth := buf.SourceBitDepth
	if depth <= 0 {
		depth = int(d.BitDepth)
	}
	if depth <= 0 || depth > 32 {
		return nil, 0, fmt.Errorf("unsupported bit depth %d", depth)
	}

	channels := buf.Format.NumChannels
	scale := 1 / float64(uint64(1)<<(depth-1)) / float64(channels)

	frames := len(buf.Data) / channels
	out := make([]float64, frames)
	for i := range out {
		sum := 0
		for c := 0; c < channels; c++ {
			sum += buf.Data[i*channels+c]
		}
		out[i] = float64(sum) * scale
	}
	return out, buf.Format.SampleRate, nil
}
