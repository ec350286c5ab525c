package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphinv/builder"
)

// ExampleBuild composes a triangle and a separate edge.
func ExampleBuild() {
	m, err := builder.Build(nil, builder.Complete(3), builder.Path(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m)
	// Output:
	// 0 1 1 0 0
	// 1 0 1 0 0
	// 1 1 0 0 0
	// 0 0 0 0 1
	// 0 0 0 1 0
}
