// Where: cmd/clear-lambda-storage/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/epsagon/clear-lambda-storage/internal/app"
	"github.com/epsagon/clear-lambda-storage/internal/pruner"
)

var newRunner = func() app.PruneRunner { return pruner.New() }

// buildDependencies constructs the runtime dependencies required by the CLI.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:    os.Stdout,
		Runner: newRunner(),
	}
}
