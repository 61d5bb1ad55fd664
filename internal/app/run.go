// Where: internal/app/run.go
// What: Settings resolution and prune execution helpers.
// Why: Delete versions only with resolved scope and explicit confirmation.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/epsagon/clear-lambda-storage/internal/config"
)

// buildSettings resolves the effective run options: built-in defaults first,
// then the defaults file, then flags. A defaults file that cannot even be
// located is skipped with a warning, not silently.
func buildSettings(cli CLI, out io.Writer) (config.Settings, error) {
	settings := config.Default()

	path, err := config.Path()
	if err != nil {
		fmt.Fprintf(out, "Warning: failed to resolve config file path: %v\n", err)
	} else {
		file, found, err := config.LoadFile(path)
		if err != nil {
			return config.Settings{}, err
		}
		if found {
			settings = file.Apply(settings)
		}
	}

	if cli.TokenKeyID != "" {
		settings.AccessKeyID = cli.TokenKeyID
	}
	if cli.TokenSecret != "" {
		settings.SecretAccessKey = cli.TokenSecret
	}
	if cli.Profile != "" {
		settings.Profile = cli.Profile
	}
	if len(cli.Regions) > 0 {
		settings.Regions = cli.Regions
	}
	if cli.NumToKeep != nil {
		settings.NumToKeep = *cli.NumToKeep
	}
	if len(cli.FunctionNames) > 0 {
		settings.FunctionNames = cli.FunctionNames
	}
	if cli.EndpointURL != "" {
		settings.EndpointURL = cli.EndpointURL
	}
	if cli.DryRun {
		settings.DryRun = true
	}
	if cli.Yes {
		settings.AssumeYes = true
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// runPrune executes the pruning pass, with a docker system prune-like prompt.
// Dry runs never prompt; real runs without --yes need an interactive yes.
func runPrune(settings config.Settings, deps Dependencies, out io.Writer) int {
	if deps.Runner == nil {
		fmt.Fprintln(out, "prune: runner not configured")
		return 1
	}

	if !settings.DryRun {
		printRunWarning(out, settings)
		if !settings.AssumeYes {
			if !isTerminal(os.Stdin) {
				return exitWithError(out, fmt.Errorf("deleting versions requires --yes in non-interactive mode"))
			}
			confirmed, err := promptYesNo("Are you sure you want to continue?")
			if err != nil {
				return exitWithError(out, err)
			}
			if !confirmed {
				fmt.Fprintln(out, "Aborted.")
				return 1
			}
		}
	}

	if _, err := deps.Runner.Run(context.Background(), settings); err != nil {
		return exitWithError(out, err)
	}
	return 0
}

func printRunWarning(out io.Writer, settings config.Settings) {
	fmt.Fprintln(out, "WARNING! This will delete:")
	if len(settings.FunctionNames) > 0 {
		fmt.Fprintf(out, "  - published versions of: %s\n", strings.Join(settings.FunctionNames, ", "))
	} else {
		fmt.Fprintln(out, "  - published versions of every Lambda function")
	}
	fmt.Fprintf(out, "  - except the newest %d versions of each function\n", settings.NumToKeep)
	fmt.Fprintln(out, "  - except versions referenced by an alias")
	if len(settings.Regions) > 0 {
		fmt.Fprintf(out, "  - across regions: %s\n", strings.Join(settings.Regions, ", "))
	} else {
		fmt.Fprintln(out, "  - across every region enabled for the account")
	}
	fmt.Fprintln(out, "")
}
