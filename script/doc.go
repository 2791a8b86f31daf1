// Package script wires the core runtime (cont, registry, class, rtstate)
// into the single embedding surface spec.md §6 describes: compile/run
// entry points, descriptor registration, and class creation.
//
// A [Runtime] bundles a [host.Host], a [registry.Registry], and a class
// table; [Runtime.Run] and [Runtime.RunSync] drive a [CompiledScript]
// through [cont.Run]/[cont.RunSync], handing it a fresh [rtstate.State] for
// the duration of that one invocation. The lexer/parser/codegen that
// produces a CompiledScript is out of scope (spec.md §1); script only
// defines the interface it must satisfy to be driven.
//
// Grounded on goja-eventloop's Adapter: the same "own a host.Host-shaped
// dependency, expose Run/RunSync, delegate everything else to narrower
// collaborators" binding pattern, generalized from goja's single VM type to
// this runtime's registry+class-table pair.
package script
