// Package gvariant decodes and encodes values in the GVariant binary
// serialization format used by GLib and the GNOME desktop stack.
//
// The package is built around [Codec], a small interface capturing
// the four things GVariant's wire format needs to know about any
// type: its alignment, its fixed size (if it has one), how to decode
// a bounded byte slice into a value, and how to encode a value back
// into bytes. Every GVariant type — the primitives, the maybe, array,
// tuple, dictionary-entry, dictionary and variant composites, and a
// handful of combinators — is a [Codec] implementation.
//
// Callers build a codec tree in one of two ways: by composing the
// primitive factories and combinators directly in code (e.g.
// [ArrayCodec], [TupleCodec], [WithByteOrder]), or by parsing a
// GVariant type signature string with [ParseSignature] and taking the
// resulting [Signature]'s [Signature.Codec], which decodes into the
// dynamically-typed [Value] sum type.
//
// GVariant's defining difficulty is not any single type, but the
// interaction between alignment padding, the framing-offset trailers
// that give variable-width arrays and tuples a computable length
// without a leading size prefix, and the small differences between
// how arrays, tuples, maybes and variants each use those offsets. All
// of that bookkeeping lives in this package so that call sites never
// have to reason about padding and offsets by hand.
package gvariant
