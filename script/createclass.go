package script

import (
	"fmt"
	"reflect"

	"github.com/scriptrt/scriptrt/checkpoint"
	"github.com/scriptrt/scriptrt/class"
	"github.com/scriptrt/scriptrt/registry"
)

var instanceReceiverType = reflect.TypeOf((*class.Instance)(nil))

// ClassBuilder accumulates a class.Descriptor's declaration, matching
// spec.md §6's `create-class(name) → builder … → register()` chain. Every
// builder method except Register returns the builder itself for chaining; errors are
// accumulated and surfaced by Register, following the same
// accumulate-then-validate shape registry.Spec's reflection pipeline uses
// for its own construction-time failures.
type ClassBuilder struct {
	rt   *Runtime
	desc *class.Descriptor
	err  error
}

// CreateClass begins declaring a class named name, per spec.md §6.
func (rt *Runtime) CreateClass(name string) *ClassBuilder {
	return &ClassBuilder{rt: rt, desc: class.New(name, "")}
}

// Package sets the class's declared package name.
func (b *ClassBuilder) Package(pkg string) *ClassBuilder {
	b.desc.Package = pkg
	return b
}

// Interface marks the class under construction as an interface declaration
// (carries no field or method implementation of its own beyond signatures
// other classes must match to conform).
func (b *ClassBuilder) Interface() *ClassBuilder {
	b.desc.IsInterface = true
	return b
}

// Base sets the class's single base class by name, looked up against
// b.rt's already-registered classes. It is an error to name a class that
// has not yet been registered: base classes must be declared before their
// subclasses, mirroring the append-only registration order spec.md §5
// requires of the function registry.
func (b *ClassBuilder) Base(name string) *ClassBuilder {
	if b.err != nil {
		return b
	}
	base, ok := b.rt.Class(name)
	if !ok {
		b.err = fmt.Errorf("script: CreateClass(%q): base class %q is not registered", b.desc.Name, name)
		return b
	}
	b.desc.BaseClass = base
	return b
}

// Implements declares that the class under construction conforms to the
// named, already-registered interface.
func (b *ClassBuilder) Implements(name string) *ClassBuilder {
	if b.err != nil {
		return b
	}
	iface, ok := b.rt.Class(name)
	if !ok {
		b.err = fmt.Errorf("script: CreateClass(%q): interface %q is not registered", b.desc.Name, name)
		return b
	}
	b.desc.AddInterface(iface)
	return b
}

// Field declares one of the class's own fields.
func (b *ClassBuilder) Field(f class.FieldDescriptor) *ClassBuilder {
	if b.err != nil {
		return b
	}
	b.err = b.desc.AddField(f)
	return b
}

// Method declares one of the class's own methods: spec's implementation
// must accept *class.Instance as its receiver. Method reflects spec
// against b.rt's Registry (so the method is callable through the same
// Wrapper/Dispatch path as a global function) and attaches the resulting
// descriptor to the class under construction, enforcing the
// override-compatibility check against any ancestor's method of the same
// name (spec.md §3).
func (b *ClassBuilder) Method(spec registry.Spec) *ClassBuilder {
	if b.err != nil {
		return b
	}
	d, err := b.rt.RegisterMethod(instanceReceiverType, spec)
	if err != nil {
		b.err = err
		return b
	}
	if err := b.desc.AddMethod(d); err != nil {
		b.err = err
		return b
	}
	return b
}

// Init declares the class's init method, invoked once per instance at
// construction time by the (out-of-scope) compiled code generator.
func (b *ClassBuilder) Init(d *registry.Descriptor) *ClassBuilder {
	b.desc.Init = d
	return b
}

// InnerClass nests inner (itself built and registered independently)
// within the class under construction.
func (b *ClassBuilder) InnerClass(inner *class.Descriptor) *ClassBuilder {
	b.desc.AddInnerClass(inner)
	return b
}

// Checkpoint attaches codec as the class's checkpoint/restore encoder
// pair, per spec.md §6.
func (b *ClassBuilder) Checkpoint(codec checkpoint.Codec) *ClassBuilder {
	b.desc.CheckpointCodec = &codec
	return b
}

// TypeRemap records that a field previously declared as oldType should be
// treated as the class's current declared type when restoring an
// older-version checkpoint, per spec.md §6's "type-remap entries".
func (b *ClassBuilder) TypeRemap(oldType, currentType string) *ClassBuilder {
	if b.desc.TypeRemap == nil {
		b.desc.TypeRemap = make(map[string]string)
	}
	b.desc.TypeRemap[oldType] = currentType
	return b
}

// AutoImport marks the class as automatically visible in a script's global
// namespace, per spec.md §6's "auto-import flag".
func (b *ClassBuilder) AutoImport() *ClassBuilder {
	b.desc.AutoImport = true
	return b
}

// Register finalizes the class under construction: it fails if any prior
// builder call recorded an error, then adds the class.Descriptor to b.rt's
// class table and returns it.
func (b *ClassBuilder) Register() (*class.Descriptor, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.rt.registerClass(b.desc)
	return b.desc, nil
}
