// Package prototype implements shared-behavior delegation over explicit
// method tables.
//
// It models a named behavior table (Behavior) shared by reference across many
// Instance values, plus an optional parent pointer forming a delegation chain.
// Member lookup consults an instance's own data first, then walks the chain
// iteratively until the member is found or the chain is exhausted.
//
// Design goals:
//   - Explicit delegation: the chain is a plain parent pointer walked in a loop,
//     not host-language method resolution.
//   - Shared by reference: adding a method to a Behavior after instances exist
//     is immediately visible to all of them.
//   - Cheap instances: an Instance holds only its own data and a non-owning
//     reference to its Behavior.
//
// Notes on performance:
//   - The success path of Invoke is a map read (own data), a map read per chain
//     level, and a function call.
//   - Error paths avoid fmt.Errorf; typed errors build their messages with
//     strconv.Quote so failed lookups stay inexpensive when used for control flow.
package prototype
