package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/ivlev/animcore/internal/cli"
)

// BuildVersion is set at link time with -ldflags "-X main.BuildVersion=...".
var BuildVersion = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand(BuildVersion).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
