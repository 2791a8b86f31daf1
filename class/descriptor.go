package class

import (
	"fmt"

	"github.com/scriptrt/scriptrt/checkpoint"
	"github.com/scriptrt/scriptrt/registry"
	"github.com/scriptrt/scriptrt/value"
)

// FieldDescriptor is one entry of a class's ordered field name→type map
// (spec.md §3): a declared static type for the mutable cell every instance
// carries, and whether omitting an initializer at construction is an
// error.
type FieldDescriptor struct {
	Name      string
	Type      value.Kind
	Mandatory bool
	Default   value.Value
}

// Descriptor is a ClassDescriptor (spec.md §3): name, package, interface
// flag, base-class reference, interface list, ordered field map,
// mandatory-field set, ordered method map, inner-class table, and
// init-method descriptor, plus the optional checkpoint codec spec.md §6's
// create-class builder attaches.
//
// Grounded on MongooseMoo-barn's db.Object, adapted from MOO's multi-parent
// object tree to a single declared BaseClass reference, matching spec.md
// §3's singular "base class reference" (this language does not support
// multiple inheritance, only interfaces, which carry no implementation of
// their own to inherit).
type Descriptor struct {
	Name        string
	Package     string
	IsInterface bool

	BaseClass  *Descriptor
	Interfaces []*Descriptor

	fields      map[string]*FieldDescriptor
	fieldOrder  []string
	mandatory   map[string]bool

	methods     map[string]*registry.Descriptor
	methodOrder []string

	InnerClasses map[string]*Descriptor

	Init *registry.Descriptor

	CheckpointCodec *checkpoint.Codec

	// TypeRemap maps a field's previously-declared type name to its
	// current one, consulted when restoring a checkpoint encoded against
	// an older version of this class (spec.md §6's `create-class` builder
	// accepts "type-remap entries").
	TypeRemap map[string]string

	// AutoImport marks this class as automatically visible in a script's
	// global namespace without an explicit import statement, per spec.md
	// §6's `create-class` builder "auto-import flag".
	AutoImport bool
}

// New constructs an empty Descriptor for a class named name, declared in
// package pkg. Use the Add* methods to populate it, then treat it as
// immutable once registered (spec.md §3: "descriptors are built during
// registration and are effectively immutable thereafter").
func New(name, pkg string) *Descriptor {
	return &Descriptor{
		Name:         name,
		Package:      pkg,
		fields:       make(map[string]*FieldDescriptor),
		mandatory:    make(map[string]bool),
		methods:      make(map[string]*registry.Descriptor),
		InnerClasses: make(map[string]*Descriptor),
	}
}

// AddField declares f as one of d's own (non-inherited) fields. It is an
// error to redeclare a field name already present on d or any ancestor in
// d.BaseClass's chain.
func (d *Descriptor) AddField(f FieldDescriptor) error {
	if _, _, ok := d.LookupField(f.Name); ok {
		return fmt.Errorf("class: field %q already declared on %s or an ancestor", f.Name, d.Name)
	}
	fCopy := f
	d.fields[f.Name] = &fCopy
	d.fieldOrder = append(d.fieldOrder, f.Name)
	if f.Mandatory {
		d.mandatory[f.Name] = true
	}
	return nil
}

// AddMethod declares m as one of d's own methods, keyed by m.Name. If an
// ancestor already declares a method with the same name, m must match its
// signature (spec.md §3: "override is permitted for methods only if the
// signature matches"); otherwise AddMethod returns an error instead of
// silently shadowing.
func (d *Descriptor) AddMethod(m *registry.Descriptor) error {
	if existing, _, ok := d.LookupMethod(m.Name); ok {
		if !signaturesMatch(existing, m) {
			return fmt.Errorf("class: method %q on %s does not match the signature it overrides on an ancestor", m.Name, d.Name)
		}
	}
	if _, ok := d.methods[m.Name]; !ok {
		d.methodOrder = append(d.methodOrder, m.Name)
	}
	d.methods[m.Name] = m
	return nil
}

// AddInterface records that d declares conformance to iface. class does
// not itself verify conformance (the compiled code generator does, per
// spec.md §1's carve-out); Descriptor only carries the declaration so
// dispatch-time reflection (e.g. "is this instance also an iface") can
// consult it.
func (d *Descriptor) AddInterface(iface *Descriptor) {
	d.Interfaces = append(d.Interfaces, iface)
}

// AddInnerClass registers inner as a class nested within d, addressable as
// d.Name + "." + inner.Name by the (out-of-scope) compiler's name
// resolution.
func (d *Descriptor) AddInnerClass(inner *Descriptor) {
	d.InnerClasses[inner.Name] = inner
}

// OwnFields returns d's own (non-inherited) fields in declaration order.
func (d *Descriptor) OwnFields() []*FieldDescriptor {
	out := make([]*FieldDescriptor, len(d.fieldOrder))
	for i, name := range d.fieldOrder {
		out[i] = d.fields[name]
	}
	return out
}

// OwnMethods returns d's own (non-inherited or overriding) methods in
// declaration order.
func (d *Descriptor) OwnMethods() []*registry.Descriptor {
	out := make([]*registry.Descriptor, len(d.methodOrder))
	for i, name := range d.methodOrder {
		out[i] = d.methods[name]
	}
	return out
}

// signaturesMatch reports whether two method descriptors are compatible
// enough for one to override the other: same parameter count, same
// mandatory-argument count, same variadic-ness, and the same async-ness.
// Parameter names and default values are permitted to differ (a subclass
// may rename a parameter or change its default), matching the leniency
// most single-dispatch OO languages apply to covariant overrides.
func signaturesMatch(base, override *registry.Descriptor) bool {
	if len(base.Params) != len(override.Params) {
		return false
	}
	if base.Mandatory != override.Mandatory {
		return false
	}
	if base.Variadic != override.Variadic {
		return false
	}
	if base.Async != override.Async {
		return false
	}
	return true
}
