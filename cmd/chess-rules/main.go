// chess-rules validates chess moves and reports the state of a position.
//
// Moves are written as origin and destination squares, e.g. "E2E4", with an
// optional Q, R, B or N suffix choosing a promotion piece. Every command
// replays its moves from the standard starting position.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

const programVersion = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
