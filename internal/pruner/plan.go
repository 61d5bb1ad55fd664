// Where: internal/pruner/plan.go
// What: Pure retention decision over a function's published versions.
// Why: Keep the protect-or-delete policy deterministic and testable in isolation.
package pruner

// Version is one immutable published snapshot of a function.
type Version struct {
	Qualifier string // the platform's numeric qualifier, e.g. "42"
	Number    int64  // Qualifier parsed for ordering
	CodeSize  int64  // package size in bytes
}

// Plan splits a function's versions into the protected set and the
// deletion candidates, oldest candidate first.
type Plan struct {
	Keep   []Version
	Delete []Version
}

// BuildPlan decides which versions are safe to delete. versions must be
// ascending by Number; the newest keep versions are always protected, as is
// any version whose qualifier appears in aliased. Inputs are not mutated and
// the same inputs always produce the same plan.
func BuildPlan(versions []Version, aliased map[string]struct{}, keep int) Plan {
	if keep < 0 {
		keep = 0
	}

	cut := len(versions) - keep
	if cut < 0 {
		cut = 0
	}

	var plan Plan
	for i, v := range versions {
		_, isAliased := aliased[v.Qualifier]
		if i >= cut || isAliased {
			plan.Keep = append(plan.Keep, v)
			continue
		}
		plan.Delete = append(plan.Delete, v)
	}
	return plan
}
