// Package formatter defines how diagnostic messages are serialized for
// console sinks.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Recorders
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on the
// write path.
//
// The built-in TextFormatter renders one header line per message
// (severity, categories, command, message id, text) followed by an
// indented line per referenced object and per active session label.
// It formats into a pooled bytes.Buffer; buffers larger than 64 KiB
// are not returned to the pool so a single huge message cannot
// permanently inflate memory usage.
package formatter
