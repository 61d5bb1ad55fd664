// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable flag parser and run driver.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/epsagon/clear-lambda-storage/internal/config"
	"github.com/epsagon/clear-lambda-storage/internal/meta"
	"github.com/epsagon/clear-lambda-storage/internal/pruner"
	"github.com/epsagon/clear-lambda-storage/internal/version"
)

// PruneRunner executes one pruning pass with resolved settings.
type PruneRunner interface {
	Run(ctx context.Context, settings config.Settings) (pruner.Report, error)
}

// Dependencies holds all injected dependencies required for CLI execution.
// This structure enables dependency injection for testing.
type Dependencies struct {
	Out    io.Writer
	Runner PruneRunner
}

// CLI defines the command-line interface structure parsed by Kong.
// The tool is a single command; every option is a flag.
type CLI struct {
	TokenKeyID    string   `name:"token-key-id" help:"AWS access key id (pair with --token-secret; default: credential chain)"`
	TokenSecret   string   `name:"token-secret" help:"AWS secret access key (pair with --token-key-id)"`
	Profile       string   `help:"AWS credentials profile to use instead of an explicit token pair"`
	Regions       []string `sep:"," help:"Limit the scan to these regions (default: every region enabled for the account)"`
	NumToKeep     *int     `name:"num-to-keep" help:"Newest published versions to keep per function (default 2)"`
	FunctionNames []string `name:"function-names" sep:"," help:"Only prune the named functions"`
	DryRun        bool     `name:"dry-run" help:"Report deletion candidates without deleting anything"`
	Yes           bool     `short:"y" help:"Skip confirmation prompt"`
	EndpointURL   string   `name:"endpoint-url" help:"Override the AWS endpoint (local stacks)"`
	EnvFile       string   `name:"env-file" help:"Path to .env file"`
	Version       bool     `help:"Show version information"`
}

// Run is the main entry point for CLI execution. It parses the command-line
// arguments, resolves the run settings, and executes the prune.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Removes old versions of AWS Lambda functions to reclaim code storage."),
	)
	if err != nil {
		return exitWithError(out, err)
	}
	if _, err := parser.Parse(args); err != nil {
		return exitWithError(out, err)
	}

	if cli.Version {
		fmt.Fprintln(out, version.String())
		return 0
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else {
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(); err != nil {
				fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
			}
		}
	}

	settings, err := buildSettings(cli, out)
	if err != nil {
		return exitWithError(out, err)
	}

	return runPrune(settings, deps, out)
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
