package registry

import (
	"fmt"
	"reflect"

	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/value"
)

var (
	continuationType = reflect.TypeOf((*cont.Continuation)(nil))
	stringType       = reflect.TypeOf("")
	intType          = reflect.TypeOf(int(0))
	valueType        = reflect.TypeOf(value.Value{})
	valueSliceType   = reflect.TypeOf([]value.Value(nil))
	errorType        = reflect.TypeOf((*error)(nil)).Elem()
)

// reflectRegister implements spec.md §4.4's registration pipeline: reflect
// spec.Impl's Go signature, strip its reserved receiver/continuation/
// source+offset prefix, and derive Async, NeedsLocation, Variadic, and
// Mandatory from what remains. receiverType is nil for a global function.
func reflectRegister(receiverType reflect.Type, spec Spec) (*Descriptor, error) {
	implType := reflect.TypeOf(spec.Impl)
	if implType == nil || implType.Kind() != reflect.Func {
		return nil, fmt.Errorf("registry: %q: Impl must be a function, got %T", spec.Name, spec.Impl)
	}
	if spec.Name == "" {
		return nil, fmt.Errorf("registry: Spec.Name must not be empty")
	}

	idx := 0
	if receiverType != nil {
		if implType.NumIn() < 1 || implType.In(0) != receiverType {
			return nil, fmt.Errorf("registry: %q: first parameter must be %s to serve as receiver", spec.Name, receiverType)
		}
		idx = 1
	}

	async := idx < implType.NumIn() && implType.In(idx) == continuationType
	if async {
		idx++
	}

	needsLocation := idx+1 < implType.NumIn() && implType.In(idx) == stringType && implType.In(idx+1) == intType
	if needsLocation {
		idx += 2
	}

	variadic := implType.IsVariadic()
	fixedCount := implType.NumIn() - idx
	if variadic {
		fixedCount--
		if fixedCount < 0 {
			return nil, fmt.Errorf("registry: %q: variadic implementation has no fixed parameters to check", spec.Name)
		}
	}

	for i := 0; i < fixedCount; i++ {
		if t := implType.In(idx + i); t != valueType {
			return nil, fmt.Errorf("registry: %q: parameter %d: expected value.Value, got %s", spec.Name, i, t)
		}
	}
	if variadic {
		if t := implType.In(implType.NumIn() - 1); t != valueSliceType {
			return nil, fmt.Errorf("registry: %q: variadic parameter must be ...value.Value, got %s", spec.Name, t)
		}
	}
	if fixedCount != len(spec.Params) {
		return nil, fmt.Errorf("registry: %q: Impl declares %d fixed value.Value parameter(s), Spec.Params has %d", spec.Name, fixedCount, len(spec.Params))
	}

	if implType.NumOut() != 2 || implType.Out(0) != valueType || !implType.Out(1).AssignableTo(errorType) {
		return nil, fmt.Errorf("registry: %q: Impl must return (value.Value, error)", spec.Name)
	}

	if !async {
		for _, p := range spec.Params {
			if p.Async {
				return nil, fmt.Errorf("registry: %q: parameter %q marked async but the function has no *cont.Continuation parameter", spec.Name, p.Name)
			}
		}
	}

	params := make([]Param, len(spec.Params))
	mandatory := 0
	seenOptional := false
	var asyncArgs []int
	for i, ps := range spec.Params {
		params[i] = Param{Name: ps.Name, Default: ps.Default, Async: ps.Async}
		if ps.Default == nil {
			if seenOptional {
				return nil, fmt.Errorf("registry: %q: mandatory parameter %q follows an optional parameter", spec.Name, ps.Name)
			}
			mandatory++
		} else {
			seenOptional = true
		}
		if ps.Async {
			asyncArgs = append(asyncArgs, i+1)
		}
	}

	d := &Descriptor{
		Name:          spec.Name,
		Aliases:       append([]string(nil), spec.Aliases...),
		ReceiverType:  receiverType,
		ReturnType:    implType.Out(0),
		Params:        params,
		Mandatory:     mandatory,
		Variadic:      variadic,
		NeedsLocation: needsLocation,
		Async:         async,
		AsyncArgs:     asyncArgs,
	}
	d.wrap = buildWrapper(d, reflect.ValueOf(spec.Impl), receiverType != nil, async, needsLocation, variadic)
	return d, nil
}

// buildWrapper closes over the reflected shape once at registration time,
// so every subsequent call pays only the cost of a reflect.Value.Call, not
// a repeat of the shape analysis above.
func buildWrapper(d *Descriptor, impl reflect.Value, hasReceiver, hasContinuation, needsLocation, variadic bool) Wrapper {
	fixed := len(d.Params)
	return func(receiver value.Value, k *cont.Continuation, source string, offset int, args []value.Value) (value.Value, error) {
		in := make([]reflect.Value, 0, fixed+4)
		if hasReceiver {
			in = append(in, reflect.ValueOf(receiver.AsInstance()))
		}
		if hasContinuation {
			in = append(in, reflect.ValueOf(k))
		}
		if needsLocation {
			in = append(in, reflect.ValueOf(source), reflect.ValueOf(offset))
		}
		limit := fixed
		if limit > len(args) {
			limit = len(args)
		}
		for i := 0; i < limit; i++ {
			in = append(in, reflect.ValueOf(args[i]))
		}
		if variadic {
			extra := make([]value.Value, 0)
			if len(args) > fixed {
				extra = args[fixed:]
			}
			in = append(in, reflect.ValueOf(extra))
		}

		var out []reflect.Value
		if variadic {
			out = impl.CallSlice(in)
		} else {
			out = impl.Call(in)
		}
		result, _ := out[0].Interface().(value.Value)
		var err error
		if e, _ := out[1].Interface().(error); e != nil {
			err = e
		}
		return result, err
	}
}
