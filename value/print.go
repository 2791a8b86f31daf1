package value

import (
	"strconv"
	"strings"
)

// identity returns a stable identity key for the reference types list, map
// and instance carry, used only for cycle detection during printing.
func identity(v Value) (any, bool) {
	switch v.kind {
	case KindList:
		return v.list, true
	case KindMap:
		return v.m, true
	case KindInstance:
		return v.inst, true
	default:
		return nil, false
	}
}

func writeValue(sb *strings.Builder, v Value, seen map[any]bool) {
	if id, ok := identity(v); ok {
		if seen == nil {
			seen = make(map[any]bool, 4)
		}
		if seen[id] {
			sb.WriteString("<circular>")
			return
		}
		seen[id] = true
		defer delete(seen, id)
	}

	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindInt32, KindInt64:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat64:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindDecimal:
		sb.WriteString(v.dec.String())
	case KindString:
		sb.WriteString(v.s)
	case KindList:
		sb.WriteByte('[')
		for i, e := range v.list.items {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, e, seen)
		}
		sb.WriteByte(']')
	case KindMap:
		sb.WriteByte('{')
		for i, k := range v.m.keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			entry, _ := v.m.Get(k)
			writeValue(sb, entry, seen)
		}
		sb.WriteByte('}')
	case KindCallable:
		sb.WriteString("function:")
		sb.WriteString(v.call.CallableName())
	case KindInstance:
		sb.WriteString(v.inst.ClassName())
		sb.WriteString("@instance")
	case KindIterator:
		sb.WriteString("iterator")
	}
}
