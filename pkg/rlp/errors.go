package rlp

import "errors"

var (
	// ErrBadArgument represents a nil element, an invalid kind or an integer
	// element whose data does not match the declared width.
	ErrBadArgument = errors.New("bad argument")
	// ErrInsufficientCapacity represents a destination buffer too small for
	// the header and payload.
	ErrInsufficientCapacity = errors.New("insufficient output capacity")
	// ErrIllegalOverlap represents a destination buffer sharing memory with
	// an element source buffer.
	ErrIllegalOverlap = errors.New("output overlaps element source")
)
