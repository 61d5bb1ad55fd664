// Where: internal/pruner/pruner.go
// What: Pruning run entrypoint across one or more regions.
// Why: Reclaim code-storage quota by deleting old unreferenced versions.
package pruner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/epsagon/clear-lambda-storage/internal/config"
	"github.com/epsagon/clear-lambda-storage/internal/ui"
)

type Runner struct {
	Out     io.Writer
	Clients ClientFactory
}

func New() *Runner {
	return &Runner{
		Out:     os.Stdout,
		Clients: awsClientFactory{},
	}
}

// Run implements app.PruneRunner interface.
// It scans every requested region, deletes the versions the retention plan
// selects, and returns the aggregated totals. Discovery failures abort the
// run; per-function failures are reported and skipped.
func (r *Runner) Run(ctx context.Context, settings config.Settings) (Report, error) {
	report := Report{DryRun: settings.DryRun}

	if r == nil {
		return report, fmt.Errorf("pruner is nil")
	}

	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	clients := r.Clients
	if clients == nil {
		return report, fmt.Errorf("client factory not configured")
	}

	console := ui.New(out)

	regions := settings.Regions
	if len(regions) == 0 {
		discovered, err := clients.Regions(ctx, settings)
		if err != nil {
			// Rejected credentials abort; a denied or unavailable
			// discovery call gets the built-in list instead.
			var authErr *AuthenticationError
			if errors.As(err, &authErr) {
				return report, err
			}
			console.Info(fmt.Sprintf("region discovery unavailable (%v); using the built-in region list", err))
			discovered = DefaultRegions()
		}
		regions = discovered
	}
	for _, region := range regions {
		region = strings.TrimSpace(region)
		if region == "" {
			continue
		}

		client, err := clients.Lambda(ctx, region, settings)
		if err != nil {
			return report, err
		}

		console.Header("🔎", fmt.Sprintf("Scanning region %s", region))
		if err := pruneRegion(ctx, client, settings, &report, out); err != nil {
			return report, err
		}
		report.Regions++
	}

	fmt.Fprintln(out, strings.Repeat("-", 10))
	if report.DryRun {
		console.Info(report.Summary())
	} else {
		console.Success(report.Summary())
	}
	return report, nil
}
