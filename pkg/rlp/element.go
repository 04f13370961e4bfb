package rlp

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Element is a single value to be encoded as one RLP item. It is a borrowed
// view over caller-owned bytes; the encoder never copies or retains Data
// beyond the encode call.
type Element struct {
	Kind Kind
	Data []byte
}

// ByteStringElement returns an element encoding data as an opaque byte
// string. Empty and nil data encode as the empty string marker.
func ByteStringElement(data []byte) *Element {
	return &Element{Kind: KindByteString, Data: data}
}

// IntElement returns an element encoding data as a big-endian unsigned
// integer of the given width in bytes. The width must be one of the
// supported integer widths and data must be exactly width bytes long.
func IntElement(width int, data []byte) (*Element, error) {
	kind, err := IntKindFromWidth(width)
	if err != nil {
		return nil, fmt.Errorf("%w: unsupported integer width %d", ErrBadArgument, width)
	}
	if len(data) != width {
		return nil, fmt.Errorf("%w: integer data must be %d bytes but received %d", ErrBadArgument, width, len(data))
	}
	return &Element{Kind: kind, Data: data}, nil
}

// Uint64Element returns an 8 byte wide integer element holding v.
func Uint64Element(v uint64) *Element {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, v)
	return &Element{Kind: KindInt64, Data: data}
}

// StringElement returns a byte string element holding the NFC normalized
// form of s.
func StringElement(s string) *Element {
	return ByteStringElement([]byte(norm.NFC.String(s)))
}

// validate checks the element against its declared kind.
func (e *Element) validate() error {
	if e == nil || e.Kind == KindInvalid {
		return ErrBadArgument
	}
	if e.Kind.isInteger() {
		if intWidths[e.Kind] != len(e.Data) {
			return ErrBadArgument
		}
		return nil
	}
	if e.Kind != KindByteString {
		return ErrBadArgument
	}
	return nil
}

// payload returns the canonical item payload. Integers are trimmed to their
// minimal big-endian form with the value zero becoming empty. The returned
// slice aliases Data; the source is never mutated.
func (e *Element) payload() []byte {
	if !e.Kind.isInteger() {
		return e.Data
	}
	for i, b := range e.Data {
		if b != 0 {
			return e.Data[i:]
		}
	}
	return nil
}
