// SPDX-License-Identifier: MIT

package lutmap_test

import (
	"fmt"

	"github.com/katalvlaran/neuroloop/lutmap"
)

// A descending table acts as a stepwise greatest-entry-at-most map:
// inputs land on the closest configured step at or below them, and
// inputs below every step read zero.
func ExampleTable_LookupLE() {
	tb, _ := lutmap.NewTable[uint16, uint16](3)
	tb.SetEntry(0, 100, 1000)
	tb.SetEntry(1, 50, 500)
	tb.SetEntry(2, 10, 100)
	tb.SetActiveRows(3)

	fmt.Println(tb.LookupLE(75))
	fmt.Println(tb.LookupLE(100))
	fmt.Println(tb.LookupLE(5))

	// Output:
	// 500
	// 1000
	// 0
}
