// Package auxdata holds the auxiliary context that enriches diagnostic
// messages: caller-assigned names for opaque object handles and the
// nested label regions active on each session.
//
// The Store is mutated from arbitrary caller goroutines; every
// operation is protected by a single mutex. Label stacks are strictly
// per-session and must be deleted via DeleteSessionLabels when the
// owning session is torn down — nothing collects abandoned stacks
// automatically.
package auxdata
