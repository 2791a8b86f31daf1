// Package class implements ClassDescriptor from spec.md §3: the
// dispatch-time metadata a class-instance value.Value consults for field
// and method lookup. It is deliberately narrow — everything about how a
// class body is compiled or how instances are constructed is out of
// scope per spec.md §1; class only has to answer "what does this instance
// look like, and what does the base-class chain add to that."
//
// Grounded on MongooseMoo-barn's db.Object model: a name, a parent chain
// (here a single BaseClass reference rather than MOO's multiple-parent
// list, since spec.md §3 names a single "base class reference"), ordered
// property/verb maps resolved by walking that chain (db/reader.go's
// resolvePropertyNames and db/store.go's FindVerb), adapted from MOO's
// object tree to a declared, closed class hierarchy.
package class
