package gvariant

import (
	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/mds/value"

	"github.com/danderson/gvariant/internal/cache"
)

// Signature is a parsed GVariant type signature: an immutable string
// together with the [Codec] it compiles to. Two signatures describe
// the same type exactly when their strings are equal; use [Signature.Equal]
// rather than == to compare them, since the compiled codec is not
// itself comparable.
type Signature struct {
	str   string
	codec Codec[Value]
}

// String returns the signature's GVariant type string, e.g. "a{sv}".
func (s Signature) String() string { return s.str }

// Codec returns the [Codec] compiled from s, operating on the dynamic
// [Value] representation.
func (s Signature) Codec() Codec[Value] { return s.codec }

// Equal reports whether s and o describe the same type.
func (s Signature) Equal(o Signature) bool { return s.str == o.str }

var sigCache cache.Cache[string, Signature]

// ParseSignature parses a GVariant type signature string and compiles
// it into a [Codec] over the dynamic [Value] representation. Results
// are memoized, so repeated parses of the same string are cheap.
func ParseSignature(s string) (Signature, error) {
	if sig, err, found := sigCache.Get(s); found {
		return sig, err
	}

	p := &sigParser{input: s}
	codec, err := p.parseType()
	if err == nil && p.pos != len(s) {
		err = sigErr(s, p.pos, "unconsumed trailing characters %q", s[p.pos:])
	}
	if err != nil {
		sigCache.SetErr(s, err)
		return Signature{}, err
	}

	sig := Signature{str: s, codec: codec}
	sigCache.Set(s, sig)
	return sig, nil
}

// ParseSignatureBytes is [ParseSignature] for callers holding a raw
// ASCII signature as a byte slice, e.g. one just read off the wire
// alongside a variant's payload.
func ParseSignatureBytes(b []byte) (Signature, error) {
	return ParseSignature(string(b))
}

// basicKeyLetters is the set of signature bytes allowed as a
// dictionary entry's key type: GVariant permits only basic
// (non-container) types as dictionary keys.
var basicKeyLetters = mapset.New[byte]('b', 'y', 'n', 'q', 'i', 'u', 'x', 't', 'd', 's', 'o', 'g')

// sigParser is a recursive-descent parser over a single signature
// string, tracking position for error reporting.
type sigParser struct {
	input string
	pos   int
}

func (p *sigParser) errf(reason string, args ...any) error {
	return sigErr(p.input, p.pos, reason, args...)
}

func (p *sigParser) peek() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// parseType parses exactly one complete type starting at p.pos and
// leaves p.pos just past it.
func (p *sigParser) parseType() (Codec[Value], error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errf("unexpected end of signature")
	}
	p.pos++

	switch c {
	case 'b':
		return lift(BoolCodec(), "bool", BoolValue, Value.Bool), nil
	case 'y':
		return lift(Uint8Codec(), "u8", U8Value, Value.U8), nil
	case 'n':
		return lift(Int16Codec(), "i16", I16Value, Value.I16), nil
	case 'q':
		return lift(Uint16Codec(), "u16", U16Value, Value.U16), nil
	case 'i':
		return lift(Int32Codec(), "i32", I32Value, Value.I32), nil
	case 'u':
		return lift(Uint32Codec(), "u32", U32Value, Value.U32), nil
	case 'x':
		return lift(Int64Codec(), "i64", I64Value, Value.I64), nil
	case 't':
		return lift(Uint64Codec(), "u64", U64Value, Value.U64), nil
	case 'd':
		return lift(Float64Codec(), "f64", F64Value, Value.F64), nil
	case 's', 'o', 'g':
		return lift(StringCodec(), "str", StrValue, Value.Str), nil
	case 'v':
		return lift(VariantCodec(), "variant", VariantValue, Value.Variant), nil

	case 'm':
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return liftMaybe(elem), nil

	case '(':
		fields, err := p.parseUntil(')')
		if err != nil {
			return nil, err
		}
		return lift(TupleCodec(fields...), "tuple", TupleValue, Value.Tuple), nil

	case 'a':
		if next, ok := p.peek(); ok && next == '{' {
			p.pos++
			key, val, err := p.parseDictEntryTypes('}')
			if err != nil {
				return nil, err
			}
			return lift(DictCodec(key, val), "dict", DictValue, Value.Dict), nil
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return lift(ArrayCodec[Value](elem), "array", ArrayValue, Value.Array), nil

	case '{':
		key, val, err := p.parseDictEntryTypes('}')
		if err != nil {
			return nil, err
		}
		return lift(DictEntryCodec(key, val), "dict-entry", DictEntryValue, Value.DictEntry), nil

	default:
		return nil, p.errf("unknown signature byte %q", c)
	}
}

// parseUntil parses types until it sees closer, consuming closer.
func (p *sigParser) parseUntil(closer byte) ([]Codec[Value], error) {
	var fields []Codec[Value]
	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.errf("missing closing %q", closer)
		}
		if c == closer {
			p.pos++
			return fields, nil
		}
		field, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
}

// parseDictEntryTypes parses the key and value types of a dictionary
// entry, validating that the key is a basic type, and consumes closer.
func (p *sigParser) parseDictEntryTypes(closer byte) (key, val Codec[Value], err error) {
	keyByte, ok := p.peek()
	if !ok {
		return nil, nil, p.errf("unexpected end of signature in dictionary entry")
	}
	if !basicKeyLetters.Has(keyByte) {
		return nil, nil, p.errf("invalid dictionary key type %q, must be a basic type", keyByte)
	}
	key, err = p.parseType()
	if err != nil {
		return nil, nil, err
	}
	val, err = p.parseType()
	if err != nil {
		return nil, nil, err
	}
	c, ok := p.peek()
	if !ok || c != closer {
		return nil, nil, p.errf("missing closing %q in dictionary entry", closer)
	}
	p.pos++
	return key, val, nil
}

// lift adapts a Codec[T] for one of GVariant's concretely-typed
// primitives into a Codec[Value], so that compiled signature trees can
// operate uniformly over the dynamic representation.
func lift[T any](inner Codec[T], typeName string, wrap func(T) Value, unwrap func(Value) (T, bool)) Codec[Value] {
	return liftedCodec[T]{inner, typeName, wrap, unwrap}
}

type liftedCodec[T any] struct {
	inner    Codec[T]
	typeName string
	wrap     func(T) Value
	unwrap   func(Value) (T, bool)
}

func (c liftedCodec[T]) Alignment() int         { return c.inner.Alignment() }
func (c liftedCodec[T]) FixedSize() (int, bool) { return c.inner.FixedSize() }

func (c liftedCodec[T]) Decode(data []byte) (Value, error) {
	v, err := c.inner.Decode(data)
	if err != nil {
		return Value{}, err
	}
	return c.wrap(v), nil
}

func (c liftedCodec[T]) Encode(v Value) ([]byte, error) {
	t, ok := c.unwrap(v)
	if !ok {
		return nil, usageErr("expected %s value, got %s", c.typeName, v.Kind())
	}
	return c.inner.Encode(t)
}

// liftMaybe adapts a Codec[value.Maybe[Value]] into a Codec[Value].
// It's separate from the generic lift helper because Value's own
// Maybe accessor has a three-result shape (inner, present, ok) rather
// than the two-result shape the other accessors share.
func liftMaybe(elem Codec[Value]) Codec[Value] {
	return maybeValueCodec{MaybeCodec[Value](elem)}
}

type maybeValueCodec struct {
	inner Codec[value.Maybe[Value]]
}

func (c maybeValueCodec) Alignment() int         { return c.inner.Alignment() }
func (c maybeValueCodec) FixedSize() (int, bool) { return c.inner.FixedSize() }

func (c maybeValueCodec) Decode(data []byte) (Value, error) {
	m, err := c.inner.Decode(data)
	if err != nil {
		return Value{}, err
	}
	if inner, ok := m.GetOK(); ok {
		return MaybeValue(inner), nil
	}
	return AbsentValue(), nil
}

func (c maybeValueCodec) Encode(v Value) ([]byte, error) {
	inner, present, ok := v.Maybe()
	if !ok {
		return nil, usageErr("expected maybe value, got %s", v.Kind())
	}
	m := value.Absent[Value]()
	if present {
		m = value.Just(inner)
	}
	return c.inner.Encode(m)
}
