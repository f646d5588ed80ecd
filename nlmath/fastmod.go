// SPDX-License-Identifier: MIT

package nlmath

// FastModulo reduces x modulo modulus by conditional shift-and-subtract,
// testing quotients up to (2^steps)-1. The loop always runs all steps so
// latency does not depend on the operand values, mirroring the hardware
// datapath. A modulus of zero or zero steps returns x unchanged.
// Complexity: O(steps), independent of x.
func FastModulo[T Unsigned](x, modulus T, steps uint) T {
	if modulus == 0 {
		return x
	}

	for shift := steps; shift > 0; shift-- {
		testval := modulus << (shift - 1)
		if x >= testval {
			x -= testval
		}
	}

	return x
}
