// Command lvlattice runs the bundled lattice-fixpoint problems on generated
// inputs and checks each result against its sequential reference.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lvlattice:", err)
		stop()
		os.Exit(1)
	}
}
