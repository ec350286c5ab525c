// Command graphinv computes coloring and symmetry invariants of small simple
// graphs given as compact codes.
//
//	graphinv gen cycle 5                 # DeS
//	graphinv info DeS                    # G6: DeS, distinguishing number: 3
//	graphinv distinguish --max-colors 4 DeS
//	graphinv autgroup --tool dreadnaut --colors 1,1,1,2,3 DeS
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
