// Package patterns provides small, explicit implementations of three classic
// design patterns for Go.
//
// The repository demonstrates each pattern as a standalone library package:
//
//   - prototype: shared-behavior delegation over explicit method tables with
//     an iterative parent-pointer lookup chain
//   - singleton: an enforced single-instance counter handle with a frozen
//     slot table over an encapsulated state cell
//   - proxy: reads and writes to a key/value target mediated by an
//     interception policy with optional validation rules
//
// The goal is to keep every mechanism explicit (delegation chains, state
// cells, interception slots) instead of leaning on host-language magic, and to
// keep the surface area intentionally small.
//
// See subpackages:
//   - prototype, singleton, proxy: the pattern libraries
//   - demo: the demo registry, script loading and the runner
//   - cmd/patterns: CLI driver that runs the demonstrations
//   - examples/*: runnable walkthroughs for each pattern
package patterns
