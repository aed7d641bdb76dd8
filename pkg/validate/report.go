package validate

import (
	"fmt"
	"strings"
)

// CheckResult is the outcome of one invariant check.
type CheckResult struct {
	Name    string
	Passed  bool
	Details string
}

// Report aggregates every check run against one mesh or LOD set.
type Report struct {
	Passed  bool
	Checks  []CheckResult
	Errors  []string
}

// NewReport returns an empty, passing report.
func NewReport() *Report {
	return &Report{Passed: true}
}

// Add appends a check result, failing the report if the check failed.
func (r *Report) Add(result CheckResult) {
	r.Checks = append(r.Checks, result)
	if !result.Passed {
		r.Passed = false
		r.Errors = append(r.Errors, fmt.Sprintf("%s: %s", result.Name, result.Details))
	}
}

// Summary renders a human-readable report, in the style of a pass/fail
// constraint listing.
func (r *Report) Summary() string {
	var b strings.Builder
	if r.Passed {
		b.WriteString("Status: PASSED\n")
	} else {
		b.WriteString("Status: FAILED\n")
	}
	for i, c := range r.Checks {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "  %d. [%s] %s: %s\n", i+1, status, c.Name, c.Details)
	}
	return b.String()
}
