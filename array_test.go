package gvariant

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArrayOfBoolExactBytes(t *testing.T) {
	// Concrete scenario 3: Array<Bool> = [true,false,false,true,true].
	c := ArrayCodec[bool](BoolCodec())
	want := []byte{1, 0, 0, 1, 1}
	got, err := c.Encode([]bool{true, false, false, true, true})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Encode mismatch (-want +got):\n%s", diff)
	}
	back, err := c.Decode(got)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]bool{true, false, false, true, true}, back); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestArrayEmpty(t *testing.T) {
	c := ArrayCodec[int32](Int32Codec())
	got, err := c.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("Encode(nil) = %v, want empty", got)
	}
	back, err := c.Decode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 0 {
		t.Fatalf("Decode(nil) = %v, want empty", back)
	}
}

func TestArrayOfVariableWidthStructures(t *testing.T) {
	// Concrete scenario 5: [("hi",-2),("bye",-1)] of type a(si), little-endian i.
	str := lift(StringCodec(), "str", StrValue, Value.Str)
	i32 := lift(Int32Codec(), "i32", I32Value, Value.I32)
	elem := TupleCodec(str, i32)
	c := ArrayCodec[[]Value](elem)

	in := [][]Value{
		{StrValue("hi"), I32Value(-2)},
		{StrValue("bye"), I32Value(-1)},
	}
	got, err := c.Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 23 {
		t.Fatalf("len(encoded) = %d, want 23", len(got))
	}
	wantTail := []byte{0x04, 0x09, 0x15}
	if diff := cmp.Diff(wantTail, got[len(got)-3:]); diff != "" {
		t.Errorf("trailer mismatch (-want +got):\n%s", diff)
	}

	back, err := c.Decode(got)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 {
		t.Fatalf("Decode produced %d elements, want 2", len(back))
	}
	s0, _ := back[0][0].Str()
	n0, _ := back[0][1].I32()
	s1, _ := back[1][0].Str()
	n1, _ := back[1][1].I32()
	if s0 != "hi" || n0 != -2 || s1 != "bye" || n1 != -1 {
		t.Errorf("decoded = [(%q,%d),(%q,%d)], want [(hi,-2),(bye,-1)]", s0, n0, s1, n1)
	}
}

func TestArrayFixedSizeLengthMismatch(t *testing.T) {
	c := ArrayCodec[int32](Int32Codec())
	if _, err := c.Decode([]byte{1, 2, 3}); err == nil {
		t.Fatal("want error decoding a length not a multiple of the element size")
	}
}
