package wavm

import "strings"

// ValueType is one of the machine's closed set of scalar value kinds.
// The numeric encoding is part of the proof format and never changes.
type ValueType uint8

const (
	I32         ValueType = 0 // 32-bit integer
	I64         ValueType = 1 // 64-bit integer
	F32         ValueType = 2 // 32-bit float (unused by the binding layer)
	F64         ValueType = 3 // 64-bit float (unused by the binding layer)
	RefNull     ValueType = 4 // null reference
	FuncRef     ValueType = 5 // function reference
	InternalRef ValueType = 6 // interpreter-internal return address
)

func (t ValueType) String() string {
	switch t {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case RefNull:
		return "refnull"
	case FuncRef:
		return "funcref"
	case InternalRef:
		return "internalref"
	}
	return "unknown"
}

// FuncType is a function signature: ordered parameter and result types.
type FuncType struct {
	Params  []ValueType
	Results []ValueType
}

// NewFuncType builds a signature from parameter and result lists.
// Either list may be nil.
func NewFuncType(params, results []ValueType) FuncType {
	return FuncType{Params: params, Results: results}
}

// Equals reports positional equality of both type lists.
func (ty FuncType) Equals(other FuncType) bool {
	if len(ty.Params) != len(other.Params) || len(ty.Results) != len(other.Results) {
		return false
	}
	for i, p := range ty.Params {
		if p != other.Params[i] {
			return false
		}
	}
	for i, r := range ty.Results {
		if r != other.Results[i] {
			return false
		}
	}
	return true
}

func (ty FuncType) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range ty.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(") -> (")
	for i, r := range ty.Results {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
	}
	b.WriteByte(')')
	return b.String()
}
