// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for hioload-mem pools.
// The allocators themselves never log or export; this package pulls
// their stats snapshots on demand:
//   - MetricsRegistry for point-in-time stat publication
//   - DebugProbes for pull-based state dumps
//
// All primitives are concurrent-safe.
package control
