// Package logger dispatches diagnostic messages from the loader and
// the layers beneath it to the registered recorders.
//
// A Logger owns an ordered recorder registry and the auxiliary context
// store that enriches messages with object names and session labels.
// Construct one explicitly with New or NewWithDefaults and thread it
// through call sites, or use the process-wide Instance, which is built
// exactly once on first use.
//
// Dispatch is synchronous and fan-out: a message reaches every
// recorder whose severity and category filters contain all of the
// message's bits, and the debug-utils path additionally requires the
// debug-utils recorder kind. The boolean returned by the log methods
// aggregates the recorders' terminate requests; acting on it is the
// caller's responsibility.
package logger
