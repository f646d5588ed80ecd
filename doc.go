// Package neuroloop is a fixed-point decision core for closed-loop
// neural stimulation — from wraparound integer arithmetic to
// phase-locked pulse scheduling.
//
// 🚀 What is neuroloop?
//
//	A deterministic, allocation-stable signal chain that brings together:
//		• Integer primitives: unsigned wraparound arithmetic, sign-safe shifts
//		• Cell grids: bank×channel sample matrices with an active sub-rectangle
//		• Filtering: cascaded biquad sections & shared-history FIR banks
//		• Front end: per-channel auto-ranging with latched attenuation/offset
//		• Estimation: analytic zero-crossing magnitude & period tracking
//		• Detection: running-average thresholds with hysteresis & debounce
//		• Decision: winner-take-all voting and budgeted phase-locked triggers
//		• Tooling: CSV coefficient sheets, WAV ingestion & fire-train export
//
// ✨ Why choose neuroloop?
//
//   - Deterministic – shifts instead of division, no floats on the hot path
//   - Single-owner – no goroutines or locks; one caller steps each epoch
//   - Portable semantics – the same arithmetic on any unsigned width
//   - Inspectable – every run carries an ID and exports to plain files
//
// Under the hood, everything is organized per stage:
//
//	nlmath/    — wraparound integer helpers underpinning every stage
//	cellgrid/  — bank×channel grids and the shared geometry contract
//	biquad/    — cascaded IIR filter banks
//	fir/       — shared-history FIR filter banks
//	autorange/ — auto-ranging front end
//	analytic/  — zero-crossing magnitude/period estimators
//	threshold/ — averagers, single/dual detectors, deglitching
//	voting/    — per-channel winner-take-all bank selection
//	trigger/   — phase-locked pulse state machines with a shared budget
//	lutmap/    — pessimal-scan lookup tables
//	coeffio/   — CSV coefficient sheets and run manifests
//	wavio/     — WAV ingestion and fire-train export
//	pipeline/  — the per-epoch scheduler wiring the stages end to end
//
// Quick ASCII example:
//
//	signal ──► autorange ──► filters ──► estimate ──► detect ──► vote ──► trigger ──► pulse
//
//	one column per epoch, one decision per channel.
//
// Dive into the per-package docs for the arithmetic contracts, and into
// examples/ for complete runs from recorded WAV files to marker exports.
//
//	go get github.com/katalvlaran/neuroloop
package neuroloop
