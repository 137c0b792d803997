// Package main provides the CLI entrypoint for frame-transformer.
//
// frame-transformer loads declarative frame configurations and:
//   - Checks them, optionally re-checking on every save
//   - Lists declared frames
//   - Resolves transformation chains between two frames
//   - Dumps the loaded configuration as YAML, TOML or a debug tree
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Errorf("frame-transformer-%s: %v", version, err)
		os.Exit(1)
	}
}
