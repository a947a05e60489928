package gvariant

import (
	"errors"
	"testing"
)

func TestVariantInt32ExactBytes(t *testing.T) {
	// Concrete scenario 8: Variant carrying i = 9 with signature "i".
	sig, err := ParseSignature("i")
	if err != nil {
		t.Fatal(err)
	}
	v := Variant{sig, I32Value(9)}

	got, err := VariantCodec().Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x09, 0x00, 0x00, 0x00, 0x00, 'i'}
	if string(got) != string(want) {
		t.Errorf("Encode = % x, want % x", got, want)
	}

	back, err := VariantCodec().Decode(got)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Sig.Equal(sig) {
		t.Errorf("decoded signature = %q, want %q", back.Sig, sig)
	}
	n, ok := back.Val.I32()
	if !ok || n != 9 {
		t.Errorf("decoded value = (%d, %v), want (9, true)", n, ok)
	}
}

func TestVariantInvalidSignature(t *testing.T) {
	// Concrete scenario 9: bytes 00 00 2E ('.' is not a legal signature byte).
	_, err := VariantCodec().Decode([]byte{0x00, 0x00, 0x2E})
	if err == nil {
		t.Fatal("want error decoding a variant with an invalid trailing signature")
	}
	var wrapped MalformedInput
	if !errors.As(err, &wrapped) {
		t.Errorf("err = %v, want a MalformedInput wrapping a SignatureParseError", err)
	}
	var parseErr SignatureParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("err = %v, want to unwrap to a SignatureParseError", err)
	}
}

func TestVariantMissingSeparator(t *testing.T) {
	// Concrete scenario 10: a single byte 01 has no zero byte to split on.
	_, err := VariantCodec().Decode([]byte{0x01})
	if err == nil {
		t.Fatal("want error decoding a variant with no NUL separator")
	}
}

func TestVariantRoundTripNested(t *testing.T) {
	inner, err := ParseSignature("as")
	if err != nil {
		t.Fatal(err)
	}
	outerSig, err := ParseSignature("v")
	if err != nil {
		t.Fatal(err)
	}

	arr := ArrayValue([]Value{StrValue("x"), StrValue("y")})
	v := Variant{inner, arr}
	nested := Variant{outerSig, VariantValue(v)}

	b, err := VariantCodec().Encode(nested)
	if err != nil {
		t.Fatal(err)
	}
	back, err := VariantCodec().Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	innerVariant, ok := back.Val.Variant()
	if !ok {
		t.Fatal("decoded value is not a variant")
	}
	elems, ok := innerVariant.Val.Array()
	if !ok || len(elems) != 2 {
		t.Fatalf("decoded inner array = %v, want 2 string elements", elems)
	}
	s0, _ := elems[0].Str()
	s1, _ := elems[1].Str()
	if s0 != "x" || s1 != "y" {
		t.Errorf("decoded elements = (%q, %q), want (x, y)", s0, s1)
	}
}
