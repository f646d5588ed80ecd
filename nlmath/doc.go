// Package nlmath provides the integer arithmetic substrate shared by every
// neuroloop processing stage: explicit wrapping interpretation of unsigned
// samples, sign-safe shifts, type limits, and division-free modulo.
//
// What:
//
//   - Wraparound reading of unsigned values as signed, zero-centered samples
//     (IsNeg, Negate, Magnitude) with documented two's-complement semantics.
//   - Shr / ShrWrapped: right shifts with explicit signedness intent, usable
//     as the fixed-point scaling step of filters and averagers.
//   - MaxOf / MinOf / IsSigned: representable-range queries for any integer
//     type parameter, resolved per instantiation.
//   - FastModulo: shift-and-subtract modulo with a fixed iteration count,
//     for small known quotients.
//
// Why:
//
//   - The decision core mirrors a hardware implementation bit for bit.
//     Division is avoided entirely, every latency is data-independent, and
//     wrapping is an explicit, visible choice rather than an accident of the
//     representation.
//
// Complexity:
//
//   - All scalar helpers: O(1), allocation-free.
//   - FastModulo: O(steps), independent of the operand values.
//
// Errors: none. Every input has defined behavior.
package nlmath
