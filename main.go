// ggm is a modular IRC command bot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ggm/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ggm: %v\n", err)
		os.Exit(1)
	}
}
