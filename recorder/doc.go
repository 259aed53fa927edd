// Package recorder provides the Recorder interface and its built-in
// implementations for forwarding filtered diagnostic messages to
// output sinks.
//
// Every recorder carries a unique identifier used for later removal, a
// severity filter, a category filter, and a Kind. Standard-kind
// recorders only receive generic messages; debug-utils-kind recorders
// additionally receive payloads logged through the debug-utils path.
//
// Built-in recorders:
//
//   - ConsoleRecorder writes formatted messages synchronously to any
//     io.Writer. NewStdErrRecorder gives the error-only stderr sink the
//     process always starts with; NewStdOutRecorder gives the
//     configurable-verbosity stdout sink.
//   - DebugUtilsRecorder forwards to a caller-supplied callback in the
//     debug-utils payload shape and can request process termination
//     based on the callback's return value.
//   - ZapRecorder forwards generic messages to a zap logger as
//     structured entries.
//
// A recorder signals failure only through its boolean return value;
// dispatch never retries or removes a failing recorder.
package recorder
