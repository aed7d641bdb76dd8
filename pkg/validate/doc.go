// Package validate checks the testable properties a generated mesh must
// hold (spec §8): outward triangle winding, weld topology preservation,
// and LOD triangle-count monotonicity. Each check is independent and
// returns a CheckResult; Report aggregates a run over one mesh.
package validate
