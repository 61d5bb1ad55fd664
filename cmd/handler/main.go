// Where: cmd/handler/main.go
// What: Lambda handler entrypoint for scheduled pruning.
// Why: Run the cleaner inside the account it cleans, on a timer.
package main

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/epsagon/clear-lambda-storage/internal/config"
	"github.com/epsagon/clear-lambda-storage/internal/meta"
	"github.com/epsagon/clear-lambda-storage/internal/pruner"
)

// handle runs one pruning pass with environment-driven settings. Progress
// goes to the function's log stream; the invocation result is the summary.
func handle(ctx context.Context) (string, error) {
	report, err := pruner.New().Run(ctx, settingsFromEnv())
	if err != nil {
		return "", err
	}
	return report.Summary(), nil
}

// settingsFromEnv builds run settings from the function's environment. The
// execution role provides credentials, so no token or profile options exist
// here.
func settingsFromEnv() config.Settings {
	settings := config.Default()
	if raw := os.Getenv(meta.EnvKey(meta.EnvSuffixNumToKeep)); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			settings.NumToKeep = n
		}
	}
	if raw := os.Getenv(meta.EnvKey(meta.EnvSuffixRegions)); raw != "" {
		settings.Regions = splitList(raw)
	}
	if raw := os.Getenv(meta.EnvKey(meta.EnvSuffixFunctionNames)); raw != "" {
		settings.FunctionNames = splitList(raw)
	}
	if raw := os.Getenv(meta.EnvKey(meta.EnvSuffixDryRun)); raw == "1" || strings.EqualFold(raw, "true") {
		settings.DryRun = true
	}
	return settings
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func main() {
	lambda.Start(handle)
}
