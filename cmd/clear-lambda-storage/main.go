// Where: cmd/clear-lambda-storage/main.go
// What: CLI entrypoint.
// Why: Run the version pruner with configured dependencies.
package main

import (
	"os"

	"github.com/epsagon/clear-lambda-storage/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
