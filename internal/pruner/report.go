// Where: internal/pruner/report.go
// What: Aggregated totals for one pruning run.
// Why: The CLI prints the summary and the Lambda handler returns it as the invocation result.
package pruner

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Report totals one run across every scanned region.
type Report struct {
	Regions          int
	Functions        int   // functions scanned
	TouchedFunctions int   // functions with at least one deletion candidate acted on
	DeletedVersions  int   // versions deleted, or candidates counted in dry-run
	FreedBytes       int64 // code storage reclaimed, per version CodeSize
	SkippedFunctions int   // functions skipped after an enumeration failure
	FailedDeletions  int   // individual deletions that failed
	DryRun           bool
}

// Errors counts everything the run had to work around.
func (r Report) Errors() int {
	return r.SkippedFunctions + r.FailedDeletions
}

// Summary renders the closing line, e.g.
// "Deleted 12 versions from 3 functions (freed 34 MiB)".
func (r Report) Summary() string {
	verb, freed := "Deleted", "freed"
	if r.DryRun {
		verb, freed = "Would delete", "reclaiming"
	}
	line := fmt.Sprintf("%s %d versions from %d functions (%s %s)",
		verb, r.DeletedVersions, r.TouchedFunctions, freed, humanize.IBytes(uint64(r.FreedBytes)))
	if n := r.Errors(); n > 0 {
		line += fmt.Sprintf("; %d errors", n)
	}
	return line
}
