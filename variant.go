package gvariant

// Variant pairs a [Signature] with the [Value] it describes, mirroring
// the GVariant "v" type: a dynamically-typed container that carries
// its own type information on the wire.
type Variant struct {
	Sig Signature
	Val Value
}

type variantCodec struct{}

// VariantCodec returns the [Codec] for the GVariant "v" type.
func VariantCodec() Codec[Variant] { return variantCodec{} }

func (variantCodec) Alignment() int         { return 8 }
func (variantCodec) FixedSize() (int, bool) { return 0, false }

// Decode locates the last zero byte in data, which is guaranteed to
// be the separator between the payload and the trailing ASCII
// signature: the signature grammar never contains a zero byte, so the
// last one in the slice always belongs to the separator, even if the
// payload itself contains zero bytes. The scan must start from the
// end for exactly that reason.
func (variantCodec) Decode(data []byte) (Variant, error) {
	sep := -1
	for i := len(data) - 1; i >= 0; i-- {
		if data[i] == 0 {
			sep = i
			break
		}
	}
	if sep < 0 {
		return Variant{}, malformed("variant", "no NUL separator between payload and signature")
	}

	sig, err := ParseSignature(string(data[sep+1:]))
	if err != nil {
		return Variant{}, malformed("variant", "parsing inner signature: %w", err)
	}

	val, err := sig.Codec().Decode(data[:sep])
	if err != nil {
		return Variant{}, malformed("variant", "decoding inner value of type %q: %w", sig, err)
	}
	return Variant{sig, val}, nil
}

func (variantCodec) Encode(v Variant) ([]byte, error) {
	out, err := v.Sig.Codec().Encode(v.Val)
	if err != nil {
		return nil, err
	}
	out = append(out, 0)
	out = append(out, v.Sig.String()...)
	return out, nil
}
