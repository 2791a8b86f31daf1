// Package rtstate implements the thread-local runtime state a script
// carries: the current input/output streams, the host thread-affinity
// token, a per-thread regex pattern cache, and the "last match" state that
// gives the `=~` operator its global-find continuation semantics. See
// spec.md §4.5 and §4.6.
//
// A State snapshot (State itself holds only pointers and value types cheap
// to copy) can be handed to a suspension primitive, which stores it in the
// [cont.Frame] it creates. cont carries that value along the chain but does
// not restore it when frames resume.
package rtstate
