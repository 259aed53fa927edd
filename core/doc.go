// Package core defines the shared value types used across the diaglog
// subsystem.
//
// It provides the two flag vocabularies that classify diagnostic
// messages — the loader's native Severity and Category bits and the
// debug-utils extension's DebugUtilsSeverity and DebugUtilsType bits —
// together with the total translation functions between them, and the
// two message shapes recorders receive: the generic Message and the
// debug-utils CallbackData.
//
// A message always carries exactly one severity bit but may carry
// several category bits. Recorder filters are unions of bits; a
// recorder fires only when its filter contains every bit the message
// carries. Translation between the vocabularies is bit-for-bit and
// drops unknown bits silently; there is no error path.
package core
