// Package proxy mediates reads and writes to a key/value target through an
// interception policy.
//
// A Policy carries two optional capability slots: OnGet runs instead of a raw
// read, OnSet runs instead of a raw write and decides whether the write is
// applied. A Binding is the thin mediator tying one Target to one Policy; the
// target may outlive or be outlived by the binding, which never owns the
// target's values.
//
// Interceptors return diagnostic notes instead of printing, so behavior stays
// assertable without depending on output-stream formatting. A rejected write
// is not an error: Set returns normally with Outcome.Applied == false.
//
// Built-in policy constructors (Tracing, Validating) are instances, not core
// rules; arbitrary policies compose from plain functions and Rule values.
package proxy
