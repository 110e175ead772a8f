// SPDX-License-Identifier: MIT

package archnode_test

import (
	"fmt"

	"github.com/katalvlaran/archimesh/archnode"
)

// ExampleCompletionAlternatives lists the nodes a border vertex touching
// two squares can still become.
func ExampleCompletionAlternatives() {
	matches, completions := archnode.CompletionAlternatives([]int{0, 4, 4})
	for i, m := range matches {
		fmt.Println(archnode.Letter(m), archnode.Format(archnode.Catalog[m]), "needs", completions[i])
	}
	// Output:
	// N 3.4^2.6 needs [6 3]
	// N 6.4^2.3 needs [3 6]
	// S 4^4 needs [4 4]
	// T 3^3.4^2 needs [3 3 3]
}
