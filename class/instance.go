package class

import (
	"fmt"

	"github.com/scriptrt/scriptrt/value"
)

// Instance is the concrete value.Instance implementation every
// class-instance Value wraps (value.FromInstance). It holds one mutable
// cell per field resolved from its Descriptor's base-class chain, keyed by
// field name.
type Instance struct {
	desc   *Descriptor
	fields map[string]value.Value
}

var _ value.Instance = (*Instance)(nil)

// NewInstance constructs an Instance of desc, seeding each field resolved
// from desc's base-class chain with init's entry if present, else the
// field's declared Default. It returns a plain error naming the first
// mandatory field missing from init.
func NewInstance(desc *Descriptor, init map[string]value.Value) (*Instance, error) {
	inst := &Instance{desc: desc, fields: make(map[string]value.Value)}

	for _, name := range allFieldNames(desc) {
		fd, _, _ := desc.LookupField(name)
		if v, ok := init[name]; ok {
			inst.fields[name] = v
			continue
		}
		if fd.Mandatory {
			return nil, fmt.Errorf("class: missing mandatory field %q constructing %s", name, desc.Name)
		}
		inst.fields[name] = fd.Default
	}

	return inst, nil
}

// allFieldNames collects every field name visible on desc, own fields
// first then ancestors', in base-chain order, de-duplicated so an
// overridden field's nearest declaration wins the ordering position.
func allFieldNames(desc *Descriptor) []string {
	var names []string
	seenName := make(map[string]bool)
	seenDesc := make(map[*Descriptor]bool)
	for cur := desc; cur != nil; cur = cur.BaseClass {
		if seenDesc[cur] {
			break
		}
		seenDesc[cur] = true
		for _, n := range cur.fieldOrder {
			if !seenName[n] {
				seenName[n] = true
				names = append(names, n)
			}
		}
	}
	return names
}

// ClassName implements value.Instance.
func (i *Instance) ClassName() string { return i.desc.Name }

// Descriptor returns the class descriptor i was constructed from.
func (i *Instance) Descriptor() *Descriptor { return i.desc }

// GetField implements value.Instance: it reads the live cell if the field
// name resolves against i.desc's base-class chain, else reports false.
func (i *Instance) GetField(name string) (value.Value, bool) {
	if _, _, ok := i.desc.LookupField(name); !ok {
		return value.Value{}, false
	}
	v, ok := i.fields[name]
	return v, ok
}

// SetField implements value.Instance: it writes the live cell if name
// resolves against i.desc's base-class chain, else reports false without
// creating a new field (fields are fixed by the descriptor, not ad hoc).
func (i *Instance) SetField(name string, v value.Value) bool {
	if _, _, ok := i.desc.LookupField(name); !ok {
		return false
	}
	i.fields[name] = v
	return true
}
