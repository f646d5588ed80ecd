// SPDX-License-Identifier: MIT

package wavio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/katalvlaran/neuroloop/nlmath"
)

var (
	// ErrNotWAV reports a file the WAV decoder refuses to parse.
	ErrNotWAV = errors.New("wavio: not a valid WAV file")
	// ErrNoData reports a WAV file with no PCM samples.
	ErrNoData = errors.New("wavio: recording has no samples")
	// ErrBadTrains reports an empty or ragged fire-train matrix.
	ErrBadTrains = errors.New("wavio: fire trains must be non-empty and equal length")
)

// Recording holds a decoded multi-channel PCM file. Channels are
// de-interleaved: Samples[cidx][sidx] is the signed PCM value of
// channel cidx at epoch sidx.
type Recording struct {
	Samples  [][]int
	Rate     int
	BitDepth int
}

// Epochs returns the per-channel sample count.
func (rec *Recording) Epochs() int {
	if len(rec.Samples) == 0 {
		return 0
	}

	return len(rec.Samples[0])
}

// ReadChannels decodes the PCM WAV file at path into per-channel signed
// sample vectors.
func ReadChannels(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: opening %q: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %q", ErrNotWAV, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decoding %q: %w", path, err)
	}

	chans := buf.Format.NumChannels
	if chans < 1 || len(buf.Data) < chans {
		return nil, fmt.Errorf("%w: %q", ErrNoData, path)
	}

	epochs := len(buf.Data) / chans
	rec := &Recording{
		Samples:  make([][]int, chans),
		Rate:     buf.Format.SampleRate,
		BitDepth: int(dec.BitDepth),
	}

	for cidx := 0; cidx < chans; cidx++ {
		rec.Samples[cidx] = make([]int, epochs)
		for sidx := 0; sidx < epochs; sidx++ {
			rec.Samples[cidx][sidx] = buf.Data[sidx*chans+cidx]
		}
	}

	return rec, nil
}

// Recenter lifts signed PCM samples at the given bit depth into the
// unsigned mid-scale encoding: silence lands at half scale and the full
// PCM swing occupies [0, 1<<bitDepth). The front-end auto-ranger maps
// that band onto whatever window the chain is tuned for.
func Recenter[T nlmath.Unsigned](signed []int, bitDepth uint) []T {
	mid := int64(1) << (bitDepth - 1)

	out := make([]T, len(signed))
	for sidx, v := range signed {
		out[sidx] = T(int64(v) + mid)
	}

	return out
}

// WriteFireTrains encodes per-channel fire flags as a 16-bit marker WAV
// at path: a full-scale sample wherever the train fired, silence
// elsewhere. All trains must share one length.
func WriteFireTrains(path string, fires [][]bool, rate int) error {
	chans := len(fires)
	if chans < 1 {
		return ErrBadTrains
	}

	epochs := len(fires[0])
	for _, train := range fires {
		if len(train) != epochs {
			return ErrBadTrains
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: creating %q: %w", path, err)
	}
	defer f.Close()

	const fullScale = 1<<15 - 1

	data := make([]int, epochs*chans)
	for cidx, train := range fires {
		for sidx, fired := range train {
			if fired {
				data[sidx*chans+cidx] = fullScale
			}
		}
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: chans, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}

	enc := wav.NewEncoder(f, rate, 16, chans, 1)
	if err = enc.Write(buf); err != nil {
		enc.Close()
		return fmt.Errorf("wavio: encoding %q: %w", path, err)
	}

	if err = enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalizing %q: %w", path, err)
	}

	return nil
}
