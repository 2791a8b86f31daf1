package value

import "github.com/scriptrt/scriptrt/rterrors"

// Index implements the '[]' operator for list and map receivers. Negative
// list indices count from the end, per spec.md §4.5. A missing map key
// yields null rather than an error; an out-of-range list index is a
// bounds-error.
func Index(recv, key Value, source string, offset int) (Value, error) {
	switch recv.kind {
	case KindList:
		i, err := normalizeListIndex(recv.list, key, source, offset)
		if err != nil {
			return Null, err
		}
		v, _ := recv.list.Get(i)
		return v, nil
	case KindMap:
		if key.kind != KindString {
			return Null, rterrors.NewType("map key must be a string", source, offset)
		}
		v, ok := recv.m.Get(key.s)
		if !ok {
			return Null, nil
		}
		return v, nil
	case KindString:
		i, err := normalizeStringIndex(recv.s, key, source, offset)
		if err != nil {
			return Null, err
		}
		return Str(string([]rune(recv.s)[i])), nil
	case KindNull:
		return Null, rterrors.NewNullDeref("value is null", source, offset)
	default:
		return Null, rterrors.NewType("value does not support '[]'", source, offset)
	}
}

// IndexOrNull implements the '?[]' null-safe index operator: indexing into
// null yields null instead of raising null-deref.
func IndexOrNull(recv, key Value, source string, offset int) (Value, error) {
	if recv.kind == KindNull {
		return Null, nil
	}
	return Index(recv, key, source, offset)
}

// StoreIndex implements index-assignment ('list[i] = v', 'map[k] = v').
// Storing past the end of a list grows it with null padding; storing a
// negative index is a bounds-error.
func StoreIndex(recv, key, v Value, source string, offset int) error {
	switch recv.kind {
	case KindList:
		if key.kind != KindInt32 && key.kind != KindInt64 {
			return rterrors.NewType("list index must be an integer", source, offset)
		}
		i := int(toInt64(key))
		if i < 0 {
			i += recv.list.Len()
		}
		if i < 0 {
			return rterrors.NewBounds("list index out of range", source, offset)
		}
		recv.list.Set(i, v)
		return nil
	case KindMap:
		if key.kind != KindString {
			return rterrors.NewType("map key must be a string", source, offset)
		}
		recv.m.Set(key.s, v)
		return nil
	case KindNull:
		return rterrors.NewNullDeref("value is null", source, offset)
	default:
		return rterrors.NewType("value does not support index assignment", source, offset)
	}
}

func normalizeListIndex(l *List, key Value, source string, offset int) (int, error) {
	if key.kind != KindInt32 && key.kind != KindInt64 {
		return 0, rterrors.NewType("list index must be an integer", source, offset)
	}
	i := int(toInt64(key))
	if i < 0 {
		i += l.Len()
	}
	if i < 0 || i >= l.Len() {
		return 0, rterrors.NewBounds("list index out of range", source, offset)
	}
	return i, nil
}

func normalizeStringIndex(s string, key Value, source string, offset int) (int, error) {
	if key.kind != KindInt32 && key.kind != KindInt64 {
		return 0, rterrors.NewType("string index must be an integer", source, offset)
	}
	runes := []rune(s)
	i := int(toInt64(key))
	if i < 0 {
		i += len(runes)
	}
	if i < 0 || i >= len(runes) {
		return 0, rterrors.NewBounds("string index out of range", source, offset)
	}
	return i, nil
}

// Field implements the '.' field-access operator against a class instance.
func Field(recv Value, name string, source string, offset int) (Value, error) {
	switch recv.kind {
	case KindNull:
		return Null, rterrors.NewNullDeref("value is null", source, offset)
	case KindInstance:
		v, ok := recv.inst.GetField(name)
		if !ok {
			return Null, rterrors.New(rterrors.KindType, "no such field '"+name+"'", source, offset)
		}
		return v, nil
	default:
		return Null, rterrors.NewType("value does not support '.'", source, offset)
	}
}

// FieldOrNull implements the '?.' null-safe field-access operator.
func FieldOrNull(recv Value, name string, source string, offset int) (Value, error) {
	if recv.kind == KindNull {
		return Null, nil
	}
	return Field(recv, name, source, offset)
}

// StoreField implements field assignment ('instance.field = v').
func StoreField(recv Value, name string, v Value, source string, offset int) error {
	switch recv.kind {
	case KindNull:
		return rterrors.NewNullDeref("value is null", source, offset)
	case KindInstance:
		if !recv.inst.SetField(name, v) {
			return rterrors.New(rterrors.KindType, "no such field '"+name+"'", source, offset)
		}
		return nil
	default:
		return rterrors.NewType("value does not support field assignment", source, offset)
	}
}

// LoadOrCreateMap implements the auto-vivification form of nested index
// assignment ('x.y.z = v' where 'y' does not yet exist): if recv[key] is
// currently null, a fresh empty map is stored there and returned instead,
// so the caller can continue descending. This mirrors the "load or create"
// helper spec.md §4.5 describes for chained assignment targets.
func LoadOrCreateMap(recv, key Value, source string, offset int) (Value, error) {
	cur, err := Index(recv, key, source, offset)
	if err != nil {
		return Null, err
	}
	if !cur.IsNull() {
		return cur, nil
	}
	fresh := FromMap(NewMap())
	if err := StoreIndex(recv, key, fresh, source, offset); err != nil {
		return Null, err
	}
	return fresh, nil
}

// LoadOrCreateList is the list-valued analogue of LoadOrCreateMap.
func LoadOrCreateList(recv, key Value, source string, offset int) (Value, error) {
	cur, err := Index(recv, key, source, offset)
	if err != nil {
		return Null, err
	}
	if !cur.IsNull() {
		return cur, nil
	}
	fresh := FromList(NewList())
	if err := StoreIndex(recv, key, fresh, source, offset); err != nil {
		return Null, err
	}
	return fresh, nil
}
