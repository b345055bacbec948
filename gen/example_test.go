// File: gen/example_test.go
package gen_test

import (
	"fmt"
	"os"

	"github.com/sakshi2912/graphgen/edgelist"
	"github.com/sakshi2912/graphgen/gen"
)

// ExampleComplete demonstrates the deterministic pipeline: build K_4 and
// serialize it with the default two-count header.
func ExampleComplete() {
	g, err := gen.Build(gen.Complete(4))
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	if err = edgelist.Write(os.Stdout, g); err != nil {
		fmt.Println("write:", err)
	}

	// Output:
	// 4 6
	// 0 1
	// 0 2
	// 0 3
	// 1 2
	// 1 3
	// 2 3
}

// ExampleGrid shows the row-major id scheme of the 2×2 lattice.
func ExampleGrid() {
	g, err := gen.Build(gen.Grid(2, 2))
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	if err = edgelist.Write(os.Stdout, g); err != nil {
		fmt.Println("write:", err)
	}

	// Output:
	// 4 4
	// 0 1
	// 0 2
	// 1 3
	// 2 3
}

// ExampleSmallWorld shows the unrewired ring lattice: with rewireProb=0 no
// random source is needed and the output is the pure C_6 ring.
func ExampleSmallWorld() {
	g, err := gen.Build(gen.SmallWorld(6, 2, 0.0))
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	if err = edgelist.Write(os.Stdout, g); err != nil {
		fmt.Println("write:", err)
	}

	// Output:
	// 6 6
	// 0 1
	// 1 2
	// 2 3
	// 3 4
	// 4 5
	// 0 5
}
