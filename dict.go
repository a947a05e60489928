package gvariant

// Dict is a decoded GVariant dictionary ("a{kv}"): a mapping with
// unique keys that preserves the insertion (wire) order of its
// entries, per the data model's ordering guarantee.
type Dict struct {
	entries []DictEntry
	index   map[any]int
}

// NewDict builds a Dict from entries, in order. It returns a
// [MalformedInput] error if entries contains two entries with equal
// keys: this package resolves the "duplicate dictionary keys" open
// question by rejecting duplicates rather than silently keeping the
// last one.
func NewDict(entries ...DictEntry) (Dict, error) {
	d := Dict{
		entries: make([]DictEntry, 0, len(entries)),
		index:   make(map[any]int, len(entries)),
	}
	for _, e := range entries {
		if err := d.add(e); err != nil {
			return Dict{}, err
		}
	}
	return d, nil
}

func (d *Dict) add(e DictEntry) error {
	k := e.Key.rawKey()
	if _, dup := d.index[k]; dup {
		return malformed("dictionary", "duplicate key")
	}
	d.index[k] = len(d.entries)
	d.entries = append(d.entries, e)
	return nil
}

// Len returns the number of entries in d.
func (d Dict) Len() int { return len(d.entries) }

// Entries returns d's entries in wire (insertion) order. The returned
// slice must not be mutated.
func (d Dict) Entries() []DictEntry { return d.entries }

// Get looks up key and reports whether it was found.
func (d Dict) Get(key Value) (Value, bool) {
	i, ok := d.index[key.rawKey()]
	if !ok {
		return Value{}, false
	}
	return d.entries[i].Value, true
}

// dictCodec implements Codec[Dict] as an array of dictionary entries,
// matching the original DictionaryDecoder, which wraps an
// ArrayDecoder<Entry<K,V>>.
type dictCodec struct {
	entry Codec[DictEntry]
}

// DictCodec returns the [Codec] for the GVariant "a{kv}" type: a
// dictionary mapping keys decoded by key to values decoded by val.
// key must be a codec for one of GVariant's basic types.
func DictCodec(key, val Codec[Value]) Codec[Dict] {
	return dictCodec{DictEntryCodec(key, val)}
}

func (c dictCodec) Alignment() int         { return c.entry.Alignment() }
func (c dictCodec) FixedSize() (int, bool) { return 0, false }

func (c dictCodec) Decode(data []byte) (Dict, error) {
	entries, err := decodeArray(c.entry, data)
	if err != nil {
		return Dict{}, err
	}
	d, err := NewDict(entries...)
	if err != nil {
		return Dict{}, err
	}
	return d, nil
}

func (c dictCodec) Encode(v Dict) ([]byte, error) {
	return encodeArray(c.entry, v.entries)
}
