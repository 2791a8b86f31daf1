// Package value, together with its arith.go, access.go, list.go, map.go,
// decimal.go and print.go, implements the dynamic Value type and the
// operator semantics (arithmetic, comparison, equality, indexing, field
// access) the embedding runtime needs at every point it evaluates an
// expression. None of this package depends on package cont: the Callable,
// Instance and Iterator marker interfaces let registry, class and iterator
// supply suspending implementations without value ever importing cont,
// keeping the dependency graph acyclic (registry/class/iterator → value,
// never the reverse).
package value
