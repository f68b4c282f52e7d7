// SPDX-License-Identifier: MIT

package eigen

// Test-Bridge (White-Box) for the internal Options Snapshot
//
// Purpose:
//   - Expose a read-only view of resolved internal Options to eigen_test ONLY,
//     without widening the prod API.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update GatherOptionsSnapshot_TestOnly accordingly (tests will
//     catch drift).

// OptionsSnapshot is a stable, read-only view of the resolved configuration.
type OptionsSnapshot struct {
	Triangle       Triangle
	BlockFactor    int
	IntBlockFactor int
	Tolerance      float64
	LoggerSet      bool
	BackendSet     bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as the solver does and
// returns the snapshot for assertion.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Triangle:       o.triangle,
		BlockFactor:    o.blockFactor,
		IntBlockFactor: o.intBlockFactor,
		Tolerance:      o.abstol,
		LoggerSet:      o.logger != nil,
		BackendSet:     o.backend != nil,
	}
}
