// Package registry implements the function/method registry and dispatch
// layer compiled script code targets: per spec.md §4.4, a Descriptor
// reflects a Go implementation's shape once at registration time, and a
// uniform Wrapper normalizes every call — named-argument, single-list, or
// plain positional — into the same receiver/continuation/source/offset/args
// invocation, propagating async-ness exactly when the spec's rule says it
// must.
//
// Grounded on the teacher's registry.go (eventloop package): that file's
// weak-pointer-plus-ring-buffer promise table is the teacher's answer to
// "a dense, append-mostly table looked up by a small integer key, built to
// be read far more than written" — the same shape this package needs for
// its name-to-Descriptor table, minus the weak-reference scavenging, since
// descriptors are never garbage (they live as long as the Registry that
// holds them, per spec.md §5's append-only-then-read-only lifecycle).
package registry
