package value

import (
	"math/big"
	"strings"

	"github.com/scriptrt/scriptrt/rterrors"
)

// MinScale is the default minimum decimal division scale used when a
// Runtime does not configure a different one (see spec.md §4.5 and
// rtstate.State.DecimalMinScale). It is exported so callers needing a
// standalone default (tests, for example) need not depend on rtstate.
const MinScale = 10

// rank orders operand kinds for widening: decimal > double > long > int.
func rank(k Kind) int {
	switch k {
	case KindInt32:
		return 0
	case KindInt64:
		return 1
	case KindFloat64:
		return 2
	case KindDecimal:
		return 3
	default:
		return -1
	}
}

func widen(a, b Value) Kind {
	ra, rb := rank(a.kind), rank(b.kind)
	if ra >= rb {
		return a.kind
	}
	return b.kind
}

func toDecimal(v Value) Decimal {
	switch v.kind {
	case KindInt32, KindInt64:
		return NewDecimalFromInt64(v.i)
	case KindFloat64:
		return NewDecimalFromFloat64(v.f)
	case KindDecimal:
		return v.dec
	default:
		return Decimal{}
	}
}

func toFloat64(v Value) float64 {
	switch v.kind {
	case KindInt32, KindInt64:
		return float64(v.i)
	case KindFloat64:
		return v.f
	case KindDecimal:
		return v.dec.Float64()
	default:
		return 0
	}
}

func toInt64(v Value) int64 {
	switch v.kind {
	case KindInt32, KindInt64:
		return v.i
	case KindFloat64:
		return int64(v.f)
	case KindDecimal:
		d := v.dec.ensure()
		divisor := new(big.Int).Exp(bigTen, big.NewInt(int64(d.scale)), nil)
		return new(big.Int).Quo(d.unscaled, divisor).Int64()
	default:
		return 0
	}
}

// numericBinOp applies the appropriate arithmetic at the widened type, given
// callbacks per representation.
func numericBinOp(a, b Value, onInt func(int64, int64) int64, onFloat func(float64, float64) float64, onDecimal func(Decimal, Decimal) Decimal) Value {
	switch widen(a, b) {
	case KindInt32:
		return Int32(int32(onInt(toInt64(a), toInt64(b))))
	case KindInt64:
		return Int64(onInt(toInt64(a), toInt64(b)))
	case KindFloat64:
		return Float64(onFloat(toFloat64(a), toFloat64(b)))
	case KindDecimal:
		return FromDecimal(onDecimal(toDecimal(a), toDecimal(b)))
	default:
		return Null
	}
}

// Plus implements the '+' operator: numeric addition with widening,
// string/list/map concatenation per spec.md §4.5. source/offset locate any
// resulting type-error.
func Plus(a, b Value, source string, offset int) (Value, error) {
	switch {
	case a.kind == KindString:
		return Str(a.s + stringify(b)), nil
	case a.kind == KindList && b.kind == KindList:
		return FromList(a.list.ConcatCopy(b.list)), nil
	case a.kind == KindList:
		return FromList(a.list.AppendCopy(b)), nil
	case a.kind == KindMap && b.kind == KindMap:
		return FromMap(a.m.MergeCopy(b.m)), nil
	case a.IsNumeric() && b.IsNumeric():
		return numericBinOp(a, b,
			func(x, y int64) int64 { return x + y },
			func(x, y float64) float64 { return x + y },
			Add), nil
	default:
		return Null, rterrors.NewType("operands to '+' are not compatible", source, offset)
	}
}

// Minus implements the '-' operator.
func Minus(a, b Value, source string, offset int) (Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Null, rterrors.NewType("operands to '-' are not numeric", source, offset)
	}
	return numericBinOp(a, b,
		func(x, y int64) int64 { return x - y },
		func(x, y float64) float64 { return x - y },
		Sub), nil
}

// Times implements the '*' operator: numeric multiplication with widening,
// or string-repeat when the left operand is a string.
func Times(a, b Value, source string, offset int) (Value, error) {
	if a.kind == KindString {
		n := toInt64(b)
		if n < 0 {
			return Null, rterrors.NewType("string repeat count must be non-negative", source, offset)
		}
		return Str(strings.Repeat(a.s, int(n))), nil
	}
	if !a.IsNumeric() || !b.IsNumeric() {
		return Null, rterrors.NewType("operands to '*' are not compatible", source, offset)
	}
	return numericBinOp(a, b,
		func(x, y int64) int64 { return x * y },
		func(x, y float64) float64 { return x * y },
		Mul), nil
}

// DivValues implements the '/' operator, taking the configured minimum
// decimal scale from minScale (see rtstate.State.DecimalMinScale).
func DivValues(a, b Value, minScale int32, source string, offset int) (Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Null, rterrors.NewType("operands to '/' are not numeric", source, offset)
	}
	if widen(a, b) == KindDecimal {
		bd := toDecimal(b)
		if bd.IsZero() {
			return Null, rterrors.NewDivideByZero(source, offset)
		}
		return FromDecimal(Div(toDecimal(a), bd, minScale)), nil
	}
	bf := toFloat64(b)
	if widen(a, b) != KindFloat64 && toInt64(b) == 0 {
		return Null, rterrors.NewDivideByZero(source, offset)
	}
	if widen(a, b) == KindFloat64 {
		return Float64(toFloat64(a) / bf), nil
	}
	return numericBinOp(a, b,
		func(x, y int64) int64 { return x / y },
		func(x, y float64) float64 { return x / y },
		func(x, y Decimal) Decimal { return Div(x, y, minScale) }), nil
}

// stringify renders v for '+'-with-string-left-operand concatenation,
// which uses the display form rather than an error for non-string operands.
func stringify(v Value) string { return v.String() }

// Compare returns -1, 0, or 1 per the runtime's natural ordering: numbers
// compare numerically with widening, booleans false<true, strings
// lexicographically, null sorts before non-null; mixed non-comparable
// types return an error (resolving the Open Question in spec.md §9: this
// runtime treats cross-kind comparisons as an error except null-vs-any,
// which always orders null first — see DESIGN.md).
func Compare(a, b Value, source string, offset int) (int, error) {
	if a.kind == KindNull || b.kind == KindNull {
		if a.kind == b.kind {
			return 0, nil
		}
		if a.kind == KindNull {
			return -1, nil
		}
		return 1, nil
	}
	if a.IsNumeric() && b.IsNumeric() {
		switch widen(a, b) {
		case KindDecimal:
			return Cmp(toDecimal(a), toDecimal(b)), nil
		case KindFloat64:
			x, y := toFloat64(a), toFloat64(b)
			switch {
			case x < y:
				return -1, nil
			case x > y:
				return 1, nil
			default:
				return 0, nil
			}
		default:
			x, y := toInt64(a), toInt64(b)
			switch {
			case x < y:
				return -1, nil
			case x > y:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	if a.kind == KindBool && b.kind == KindBool {
		if a.b == b.b {
			return 0, nil
		}
		if !a.b {
			return -1, nil
		}
		return 1, nil
	}
	if a.kind == KindString && b.kind == KindString {
		return strings.Compare(a.s, b.s), nil
	}
	return 0, rterrors.NewType("values are not comparable", source, offset)
}

// Equal implements structural, recursive equality: lists and maps compare
// element-wise; class instances compare equal only when their class
// matches and every field compares equal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		if a.IsNumeric() && b.IsNumeric() {
			eq, err := Compare(a, b, "", 0)
			return err == nil && eq == 0
		}
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt32, KindInt64:
		return a.i == b.i
	case KindFloat64:
		return a.f == b.f
	case KindDecimal:
		return Cmp(a.dec, b.dec) == 0
	case KindString:
		return a.s == b.s
	case KindList:
		if a.list.Len() != b.list.Len() {
			return false
		}
		for i := 0; i < a.list.Len(); i++ {
			av, _ := a.list.Get(i)
			bv, _ := b.list.Get(i)
			if !Equal(av, bv) {
				return false
			}
		}
		return true
	case KindMap:
		if a.m.Len() != b.m.Len() {
			return false
		}
		for _, k := range a.m.keys {
			av, _ := a.m.Get(k)
			bv, ok := b.m.Get(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case KindInstance:
		if a.inst.ClassName() != b.inst.ClassName() {
			return false
		}
		ca, okA := a.inst.(fieldEnumerator)
		cb, okB := b.inst.(fieldEnumerator)
		if !okA || !okB {
			return a.inst == b.inst
		}
		fa := ca.FieldNames()
		if len(fa) != len(cb.FieldNames()) {
			return false
		}
		for _, name := range fa {
			av, _ := a.inst.GetField(name)
			bv, ok := b.inst.GetField(name)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// fieldEnumerator is an optional extension of Instance letting Equal
// discover field names without importing package class.
type fieldEnumerator interface {
	FieldNames() []string
}
