package gvariant

import (
	"fmt"
	"math"
)

// Kind identifies which case of the [Value] sum type is populated.
type Kind int

const (
	KindBool Kind = iota
	KindU8
	KindI16
	KindU16
	KindI32
	KindU32
	KindI64
	KindU64
	KindF64
	KindStr
	KindMaybe
	KindArray
	KindTuple
	KindDictEntry
	KindDict
	KindVariant
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindU8:
		return "u8"
	case KindI16:
		return "i16"
	case KindU16:
		return "u16"
	case KindI32:
		return "i32"
	case KindU32:
		return "u32"
	case KindI64:
		return "i64"
	case KindU64:
		return "u64"
	case KindF64:
		return "f64"
	case KindStr:
		return "str"
	case KindMaybe:
		return "maybe"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindDictEntry:
		return "dict-entry"
	case KindDict:
		return "dict"
	case KindVariant:
		return "variant"
	default:
		return "unknown"
	}
}

// A Value is a dynamically-typed GVariant value: a tagged union over
// every case the format can represent. Values are immutable once
// constructed; the zero Value is not meaningful on its own (its Kind
// is KindBool with a false payload).
//
// Use the constructor functions (BoolValue, U8Value, ...) to build a
// Value and the accessor methods (Bool, U8, ...) to read one back.
// Each accessor's second return value reports whether the Value was
// actually of that kind.
type Value struct {
	kind Kind

	scalar uint64 // holds Bool/U8/I16/U16/I32/U32/I64/U64 bit patterns, and F64 via math.Float64bits
	str    string

	maybe   *Value // nil == absent
	list    []Value
	entry   *DictEntry
	dict    *Dict
	variant *Variant
}

func BoolValue(v bool) Value {
	var s uint64
	if v {
		s = 1
	}
	return Value{kind: KindBool, scalar: s}
}
func U8Value(v uint8) Value   { return Value{kind: KindU8, scalar: uint64(v)} }
func I16Value(v int16) Value  { return Value{kind: KindI16, scalar: uint64(uint16(v))} }
func U16Value(v uint16) Value { return Value{kind: KindU16, scalar: uint64(v)} }
func I32Value(v int32) Value  { return Value{kind: KindI32, scalar: uint64(uint32(v))} }
func U32Value(v uint32) Value { return Value{kind: KindU32, scalar: uint64(v)} }
func I64Value(v int64) Value  { return Value{kind: KindI64, scalar: uint64(v)} }
func U64Value(v uint64) Value { return Value{kind: KindU64, scalar: v} }
func F64Value(v float64) Value {
	return Value{kind: KindF64, scalar: math.Float64bits(v)}
}
func StrValue(v string) Value { return Value{kind: KindStr, str: v} }

// MaybeValue builds a present Maybe value wrapping inner.
func MaybeValue(inner Value) Value {
	return Value{kind: KindMaybe, maybe: &inner}
}

// AbsentValue builds an absent Maybe value. The element type is not
// tracked on Value itself (Value carries no static type); the [Codec]
// that encodes or decodes the maybe supplies it.
func AbsentValue() Value {
	return Value{kind: KindMaybe, maybe: nil}
}

// ArrayValue builds an array Value from its elements.
func ArrayValue(elems []Value) Value {
	return Value{kind: KindArray, list: elems}
}

// TupleValue builds a tuple (structure) Value from its components in
// order.
func TupleValue(fields []Value) Value {
	return Value{kind: KindTuple, list: fields}
}

// DictEntryValue builds a dictionary-entry Value.
func DictEntryValue(e DictEntry) Value {
	return Value{kind: KindDictEntry, entry: &e}
}

// DictValue builds a dictionary Value.
func DictValue(d Dict) Value {
	return Value{kind: KindDict, dict: &d}
}

// VariantValue builds a variant Value.
func VariantValue(v Variant) Value {
	return Value{kind: KindVariant, variant: &v}
}

// Kind reports which case of the sum type v holds.
func (v Value) Kind() Kind { return v.kind }

func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.scalar != 0, true
}
func (v Value) U8() (uint8, bool) {
	if v.kind != KindU8 {
		return 0, false
	}
	return uint8(v.scalar), true
}
func (v Value) I16() (int16, bool) {
	if v.kind != KindI16 {
		return 0, false
	}
	return int16(uint16(v.scalar)), true
}
func (v Value) U16() (uint16, bool) {
	if v.kind != KindU16 {
		return 0, false
	}
	return uint16(v.scalar), true
}
func (v Value) I32() (int32, bool) {
	if v.kind != KindI32 {
		return 0, false
	}
	return int32(uint32(v.scalar)), true
}
func (v Value) U32() (uint32, bool) {
	if v.kind != KindU32 {
		return 0, false
	}
	return uint32(v.scalar), true
}
func (v Value) I64() (int64, bool) {
	if v.kind != KindI64 {
		return 0, false
	}
	return int64(v.scalar), true
}
func (v Value) U64() (uint64, bool) {
	if v.kind != KindU64 {
		return 0, false
	}
	return v.scalar, true
}
func (v Value) F64() (float64, bool) {
	if v.kind != KindF64 {
		return 0, false
	}
	return math.Float64frombits(v.scalar), true
}
func (v Value) Str() (string, bool) {
	if v.kind != KindStr {
		return "", false
	}
	return v.str, true
}

// Maybe reports the wrapped value and whether it is present. ok is
// false if v is not a KindMaybe value at all.
func (v Value) Maybe() (inner Value, present bool, ok bool) {
	if v.kind != KindMaybe {
		return Value{}, false, false
	}
	if v.maybe == nil {
		return Value{}, false, true
	}
	return *v.maybe, true, true
}

func (v Value) Array() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.list, true
}

func (v Value) Tuple() ([]Value, bool) {
	if v.kind != KindTuple {
		return nil, false
	}
	return v.list, true
}

func (v Value) DictEntry() (DictEntry, bool) {
	if v.kind != KindDictEntry {
		return DictEntry{}, false
	}
	return *v.entry, true
}

func (v Value) Dict() (Dict, bool) {
	if v.kind != KindDict {
		return Dict{}, false
	}
	return *v.dict, true
}

func (v Value) Variant() (Variant, bool) {
	if v.kind != KindVariant {
		return Variant{}, false
	}
	return *v.variant, true
}

// rawKey returns a comparable Go value suitable for use as a map key,
// for the basic types the GVariant grammar allows as dictionary keys.
// It panics for any other kind, since the signature parser only ever
// builds dict-entry codecs over basic-type keys.
func (v Value) rawKey() any {
	switch v.kind {
	case KindBool, KindU8, KindI16, KindU16, KindI32, KindU32, KindI64, KindU64, KindF64:
		return v.scalar
	case KindStr:
		return v.str
	default:
		panic(fmt.Sprintf("gvariant: %s is not a valid dictionary key type", v.kind))
	}
}

// DictEntry is a decoded GVariant dictionary-entry ("{kv}") value: a
// key paired with a value.
type DictEntry struct {
	Key   Value
	Value Value
}
