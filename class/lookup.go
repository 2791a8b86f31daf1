package class

import "github.com/scriptrt/scriptrt/registry"

// LookupField resolves name against d's own fields, then its BaseClass
// chain, per spec.md §3 ("lookup of fields and methods walks the
// base-class chain"). It returns the FieldDescriptor and the Descriptor
// that actually declares it (which may be d itself or an ancestor).
//
// Grounded on MongooseMoo-barn's db/reader.go resolvePropertyNames, which
// walks an object's parent chain to resolve inherited property names;
// adapted here from MOO's multi-parent walk to a single BaseClass chain,
// with cycle detection in case of a malformed (non-registry-validated)
// descriptor graph.
func (d *Descriptor) LookupField(name string) (*FieldDescriptor, *Descriptor, bool) {
	seen := make(map[*Descriptor]bool)
	for cur := d; cur != nil; cur = cur.BaseClass {
		if seen[cur] {
			break
		}
		seen[cur] = true
		if f, ok := cur.fields[name]; ok {
			return f, cur, true
		}
	}
	return nil, nil, false
}

// LookupMethod resolves name the same way LookupField does, returning the
// registry.Descriptor and the Descriptor that declares it.
//
// Grounded on MongooseMoo-barn's db/store.go Store.FindVerb, which walks
// an object's inheritance chain (there, breadth-first over multiple
// parents) looking for the first ancestor defining the named verb; adapted
// to this language's single-base-class model, where the chain is linear
// and breadth-first degenerates to the same walk as LookupField's.
func (d *Descriptor) LookupMethod(name string) (*registry.Descriptor, *Descriptor, bool) {
	seen := make(map[*Descriptor]bool)
	for cur := d; cur != nil; cur = cur.BaseClass {
		if seen[cur] {
			break
		}
		seen[cur] = true
		if m, ok := cur.methods[name]; ok {
			return m, cur, true
		}
	}
	return nil, nil, false
}

// MandatoryFields returns the set of field names that must receive an
// explicit initializer at construction time, across d's entire base-class
// chain (a subclass cannot relax a field an ancestor declared mandatory).
func (d *Descriptor) MandatoryFields() map[string]bool {
	out := make(map[string]bool)
	seen := make(map[*Descriptor]bool)
	for cur := d; cur != nil; cur = cur.BaseClass {
		if seen[cur] {
			break
		}
		seen[cur] = true
		for name := range cur.mandatory {
			out[name] = true
		}
	}
	return out
}

// IsSubclassOf reports whether d is other, or descends from other via the
// BaseClass chain.
func (d *Descriptor) IsSubclassOf(other *Descriptor) bool {
	seen := make(map[*Descriptor]bool)
	for cur := d; cur != nil; cur = cur.BaseClass {
		if cur == other {
			return true
		}
		if seen[cur] {
			break
		}
		seen[cur] = true
	}
	return false
}

// Implements reports whether d declares conformance to iface, directly or
// via an ancestor in the BaseClass chain.
func (d *Descriptor) Implements(iface *Descriptor) bool {
	seen := make(map[*Descriptor]bool)
	for cur := d; cur != nil; cur = cur.BaseClass {
		if seen[cur] {
			break
		}
		seen[cur] = true
		for _, got := range cur.Interfaces {
			if got == iface {
				return true
			}
		}
	}
	return false
}
