// Where: internal/pruner/functions.go
// What: Per-region function scanning and version deletion.
// Why: Apply the retention plan to every function while isolating per-function failures.
package pruner

import (
	"context"
	"fmt"
	"io"

	"github.com/epsagon/clear-lambda-storage/internal/config"
)

// FunctionSummary identifies one function discovered in a region.
type FunctionSummary struct {
	Name string
}

// LambdaAPI is the slice of the function service the pruner needs.
type LambdaAPI interface {
	ListFunctions(ctx context.Context) ([]FunctionSummary, error)
	ListVersions(ctx context.Context, functionName string) ([]Version, error)
	ListAliasedVersions(ctx context.Context, functionName string) (map[string]struct{}, error)
	DeleteVersion(ctx context.Context, functionName, qualifier string) error
}

// pruneRegion lists the region's functions and prunes each one. Listing
// failures are fatal; everything after that is per-function.
func pruneRegion(
	ctx context.Context,
	client LambdaAPI,
	settings config.Settings,
	report *Report,
	out io.Writer,
) error {
	if client == nil {
		return fmt.Errorf("lambda client not configured")
	}
	if out == nil {
		out = io.Discard
	}

	functions, err := client.ListFunctions(ctx)
	if err != nil {
		return err
	}

	filter := settings.FunctionNameSet()
	for _, fn := range functions {
		if fn.Name == "" {
			continue
		}
		if filter != nil {
			if _, ok := filter[fn.Name]; !ok {
				continue
			}
		}
		report.Functions++
		pruneFunction(ctx, client, fn.Name, settings, report, out)
	}
	return nil
}

// pruneFunction enumerates one function's versions and deletes the plan's
// candidates. Any enumeration failure skips the function; any deletion
// failure skips that version. Neither stops the run.
func pruneFunction(
	ctx context.Context,
	client LambdaAPI,
	functionName string,
	settings config.Settings,
	report *Report,
	out io.Writer,
) {
	versions, err := client.ListVersions(ctx, functionName)
	if err != nil {
		fmt.Fprintf(out, "❌ Skipping %s: %v\n", functionName, err)
		report.SkippedFunctions++
		return
	}

	aliased, err := client.ListAliasedVersions(ctx, functionName)
	if err != nil {
		fmt.Fprintf(out, "❌ Skipping %s: %v\n", functionName, err)
		report.SkippedFunctions++
		return
	}

	plan := BuildPlan(versions, aliased, settings.NumToKeep)
	fmt.Fprintf(out, "%s: %d published versions, %d protected, %d to delete\n",
		functionName, len(versions), len(plan.Keep), len(plan.Delete))
	if len(plan.Delete) == 0 {
		return
	}

	report.TouchedFunctions++
	for _, v := range plan.Delete {
		if settings.DryRun {
			fmt.Fprintf(out, "Would delete %s version %s\n", functionName, v.Qualifier)
			report.DeletedVersions++
			report.FreedBytes += v.CodeSize
			continue
		}

		fmt.Fprintf(out, "Deleting %s version %s\n", functionName, v.Qualifier)
		if err := client.DeleteVersion(ctx, functionName, v.Qualifier); err != nil {
			fmt.Fprintf(out, "❌ %v\n", err)
			report.FailedDeletions++
			continue
		}
		report.DeletedVersions++
		report.FreedBytes += v.CodeSize
	}
}
