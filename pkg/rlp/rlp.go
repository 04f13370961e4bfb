// Package rlp implements the Recursive Length Prefix (RLP) encoding scheme
// used by the Ethereum protocol family to serialize byte strings, big-endian
// integers and ordered lists of them into a deterministic byte sequence.
//
// The package only encodes. Decoding RLP data back into structured form is
// out of scope.
package rlp

const (
	// extendedLengthThreshold is the largest payload length that fits in a
	// short form header byte. Anything longer uses the long form, where the
	// header carries the length of the big-endian encoded payload length.
	extendedLengthThreshold = 55

	offsetItemShort = 0x80
	offsetItemLong  = 0xb7
	offsetListShort = 0xc0
	offsetListLong  = 0xf7
)

// Kind describes what the bytes of an Element represent.
type Kind int

const (
	// KindInvalid is the zero value of Kind. The encoder rejects it.
	KindInvalid Kind = iota
	// KindByteString is an opaque byte string encoded verbatim.
	KindByteString
	// The integer kinds hold a fixed-width big-endian unsigned integer.
	// Leading zero bytes are trimmed during encoding and the value zero
	// encodes as the empty string marker.
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt128
	KindInt256
	KindInt512
	KindInt1024
)

// intWidths maps each integer kind to its width in bytes.
var intWidths = map[Kind]int{
	KindInt8:    1,
	KindInt16:   2,
	KindInt32:   4,
	KindInt64:   8,
	KindInt128:  16,
	KindInt256:  32,
	KindInt512:  64,
	KindInt1024: 128,
}

func (k Kind) isInteger() bool {
	return k >= KindInt8 && k <= KindInt1024
}

// IntKindFromWidth returns the integer kind matching the width in bytes.
// Only the discrete widths 1, 2, 4, 8, 16, 32, 64 and 128 are supported;
// any other width returns ErrBadArgument.
func IntKindFromWidth(width int) (Kind, error) {
	for kind := KindInt8; kind <= KindInt1024; kind++ {
		if intWidths[kind] == width {
			return kind, nil
		}
	}
	return KindInvalid, ErrBadArgument
}
