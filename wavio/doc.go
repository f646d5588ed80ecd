// SPDX-License-Identifier: MIT

// Package wavio bridges recorded WAV signals and the sample grids the
// decision core consumes.
//
// What: ReadChannels decodes a PCM WAV file into per-channel sample
// vectors plus rate and bit-depth metadata. Recenter lifts signed PCM
// samples into the unsigned mid-scale encoding the front-end auto-ranger
// expects. WriteFireTrains exports per-channel fire flags as a marker
// WAV (full-scale pulse wherever a trigger fired) so ordinary audio
// tooling can overlay trigger timing on the source recording.
//
// Why: offline tuning. Recorded sessions are replayed through the same
// fixed-point chain that runs live, and the resulting fire trains are
// inspected next to the raw signal in any waveform viewer.
//
// Complexity: decoding and encoding are linear in the sample count.
//
// Errors: ErrNotWAV for files the decoder rejects, ErrNoData for
// recordings without PCM samples, ErrBadTrains for empty or ragged
// fire-train matrices.
package wavio
