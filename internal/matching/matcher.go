// Package matching compares canonicalized skill sets from a resume and a job
// description using set algebra.
package matching

import (
	"sort"

	"github.com/jonathan/resume-analyzer/internal/relations"
)

// Result holds the three disjoint outcome sets over canonical tokens.
//
// Invariants: Matched and Missing together cover the canonicalized job-skill
// set, Matched and Extra together cover the canonicalized resume-skill set,
// and the three sets are pairwise disjoint by construction. Treat as
// immutable once built.
type Result struct {
	Matched map[string]bool
	Missing map[string]bool
	Extra   map[string]bool
}

// Match canonicalizes both skill sets via the resolver and partitions them:
// matched is in both, missing is in the job only, extra is in the resume only.
func Match(resolver *relations.Resolver, resumeSkills, jobSkills map[string]bool) Result {
	resume := resolver.CanonicalSet(resumeSkills)
	job := resolver.CanonicalSet(jobSkills)

	result := Result{
		Matched: make(map[string]bool),
		Missing: make(map[string]bool),
		Extra:   make(map[string]bool),
	}

	for skill := range job {
		if resume[skill] {
			result.Matched[skill] = true
		} else {
			result.Missing[skill] = true
		}
	}

	for skill := range resume {
		if !job[skill] {
			result.Extra[skill] = true
		}
	}

	return result
}

// Sorted returns the set's members in alphabetical order, for deterministic
// output.
func Sorted(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for skill := range set {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}
