// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, hot-reload, runtime metrics and debug introspection for
// hioload-mem.
//
// Provides concurrent-safe state handling primitives including:
//   - Static configuration loading (file + environment) and validation
//   - Dynamic key/value overrides with reload hooks
//   - Metric snapshots of shared pool counters
//   - Debug probes for pools and platform facts
package control
