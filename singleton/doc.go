// Package singleton implements an enforced single-instance counter handle.
//
// The process-wide state is an explicit cell exposed only through accessor
// functions: GetInstance lazily materializes the one Handle; New constructs
// the same handle on first use and fails with ViolationError on any later
// attempt. The handle's slot table is frozen before it is published, so
// overriding a slot after the fact is a no-op while the original operations
// stay callable.
//
// Freezing applies to the handle's own shape only. The underlying counter
// remains mutable through the frozen slots; it is the sole concurrency
// sensitive point in this package and is guarded by an atomic integer, while
// a mutex guards one-time creation of the cell itself.
package singleton
