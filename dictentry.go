package gvariant

// dictEntryCodec implements Codec[DictEntry] as a thin wrapper over a
// 2-component tuple codec, matching the original's
// DictionaryEntryDecoder, which wraps a TupleDecoder(keyDecoder,
// valueDecoder).
type dictEntryCodec struct {
	tuple Codec[[]Value]
}

// DictEntryCodec returns the [Codec] for the GVariant "{kv}" type: a
// single key/value pair. key must decode/encode one of GVariant's
// basic types, per the format's rule that dictionary keys cannot be
// container types.
func DictEntryCodec(key, val Codec[Value]) Codec[DictEntry] {
	return dictEntryCodec{TupleCodec(key, val)}
}

func (c dictEntryCodec) Alignment() int         { return c.tuple.Alignment() }
func (c dictEntryCodec) FixedSize() (int, bool) { return c.tuple.FixedSize() }

func (c dictEntryCodec) Decode(data []byte) (DictEntry, error) {
	fields, err := c.tuple.Decode(data)
	if err != nil {
		return DictEntry{}, err
	}
	return DictEntry{fields[0], fields[1]}, nil
}

func (c dictEntryCodec) Encode(v DictEntry) ([]byte, error) {
	return c.tuple.Encode([]Value{v.Key, v.Value})
}
