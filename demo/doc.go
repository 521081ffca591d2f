// Package demo bundles the runnable pattern demonstrations behind a small
// registry and runner.
//
// Each demo produces its console lines as values rather than printing, so the
// same output the driver renders is directly assertable in tests. Demo
// parameters come from a Script, either the compiled-in default or a YAML file.
package demo
