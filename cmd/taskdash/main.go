package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskdash/cmd/taskdash/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.Execute(ctx)
}
