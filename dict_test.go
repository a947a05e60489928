package gvariant

import "testing"

func TestDictRoundTrip(t *testing.T) {
	key := lift(StringCodec(), "str", StrValue, Value.Str)
	val := lift(Int32Codec(), "i32", I32Value, Value.I32)
	c := DictCodec(key, val)

	d, err := NewDict(
		DictEntry{StrValue("a"), I32Value(1)},
		DictEntry{StrValue("b"), I32Value(2)},
	)
	if err != nil {
		t.Fatal(err)
	}

	b, err := c.Encode(d)
	if err != nil {
		t.Fatal(err)
	}
	back, err := c.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if back.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", back.Len())
	}
	v, ok := back.Get(StrValue("b"))
	if !ok {
		t.Fatal("key \"b\" not found after round trip")
	}
	n, _ := v.I32()
	if n != 2 {
		t.Errorf("dict[\"b\"] = %d, want 2", n)
	}
}

func TestDictDuplicateKeyRejected(t *testing.T) {
	_, err := NewDict(
		DictEntry{StrValue("a"), I32Value(1)},
		DictEntry{StrValue("a"), I32Value(2)},
	)
	if err == nil {
		t.Fatal("want error constructing a dict with a duplicate key")
	}
}

func TestDictDecodeRejectsDuplicateKey(t *testing.T) {
	key := lift(Uint8Codec(), "u8", U8Value, Value.U8)
	val := lift(Uint8Codec(), "u8", U8Value, Value.U8)
	c := DictCodec(key, val)

	// Two {yy} entries with equal keys, encoded by hand: each entry is
	// a fixed-size 2-byte tuple, so the array has no framing offsets.
	if _, err := c.Decode([]byte{1, 10, 1, 20}); err == nil {
		t.Fatal("want error decoding a dictionary with a duplicate key")
	}
}

func TestDictPreservesInsertionOrder(t *testing.T) {
	d, err := NewDict(
		DictEntry{StrValue("z"), I32Value(1)},
		DictEntry{StrValue("a"), I32Value(2)},
	)
	if err != nil {
		t.Fatal(err)
	}
	entries := d.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	k0, _ := entries[0].Key.Str()
	k1, _ := entries[1].Key.Str()
	if k0 != "z" || k1 != "a" {
		t.Errorf("entries in order [%q %q], want [z a]", k0, k1)
	}
}
