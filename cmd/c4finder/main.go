package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/c4finder/cmd"
)

var version = "v0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd.Execute(ctx, version)
}
