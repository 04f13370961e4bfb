package rlp

// EncodeElement encodes elem as a single RLP item into dst and returns the
// number of bytes written. Every check runs before the first write, so a
// failed call leaves dst untouched.
func EncodeElement(dst []byte, elem *Element) (int, error) {
	if len(dst) == 0 {
		return 0, ErrBadArgument
	}
	if err := elem.validate(); err != nil {
		return 0, err
	}
	payload := elem.payload()
	size := itemSize(payload)
	if size > len(dst) {
		return 0, ErrInsufficientCapacity
	}
	if overlap(dst, elem.Data) {
		return 0, ErrIllegalOverlap
	}
	switch length := len(payload); {
	case length == 0:
		dst[0] = offsetItemShort
	case length == 1 && payload[0] < offsetItemShort:
		// A single byte below 0x80 is its own encoding.
		dst[0] = payload[0]
	case length <= extendedLengthThreshold:
		dst[0] = offsetItemShort + byte(length)
		copy(dst[1:], payload)
	default:
		lengthBytes := lengthSize(length)
		dst[0] = offsetItemLong + byte(lengthBytes)
		putLength(dst[1:1+lengthBytes], length)
		copy(dst[1+lengthBytes:size], payload)
	}
	return size, nil
}

// EncodeList encodes elems in order as one RLP list into dst and returns the
// number of bytes written. Validation failures surface before anything is
// written, but an element failing in the payload pass can leave dst partially
// written; on any error the contents of dst are undefined.
func EncodeList(dst []byte, elems []*Element) (int, error) {
	if len(dst) == 0 {
		return 0, ErrBadArgument
	}
	// Fail fast before writing. The length+1 bound is conservative; the
	// exact size of each child is only known once it is encoded.
	remaining := len(dst)
	for _, elem := range elems {
		if elem == nil {
			return 0, ErrBadArgument
		}
		if remaining < len(elem.Data)+1 {
			return 0, ErrInsufficientCapacity
		}
		remaining -= len(elem.Data) + 1
		if overlap(dst, elem.Data) {
			return 0, ErrIllegalOverlap
		}
	}
	// The list header depends on the total payload size, so children are
	// encoded first, starting at offset zero.
	total := 0
	for _, elem := range elems {
		n, err := EncodeElement(dst[total:], elem)
		if err != nil {
			return 0, err
		}
		total += n
	}
	headerBytes := listHeaderSize(total)
	if headerBytes+total > len(dst) {
		return 0, ErrInsufficientCapacity
	}
	// Shift the payload right to free the header prefix. copy has memmove
	// semantics, so the overlapping move is safe.
	copy(dst[headerBytes:headerBytes+total], dst[:total])
	if total <= extendedLengthThreshold {
		dst[0] = offsetListShort + byte(total)
	} else {
		dst[0] = offsetListLong + byte(headerBytes-1)
		putLength(dst[1:headerBytes], total)
	}
	return headerBytes + total, nil
}

// ElementSize returns the exact encoded size of elem in bytes.
func ElementSize(elem *Element) (int, error) {
	if err := elem.validate(); err != nil {
		return 0, err
	}
	return itemSize(elem.payload()), nil
}

// ListSize returns the exact encoded size of the list in bytes. Note that
// EncodeList additionally requires room for its conservative pre-flight
// bound, so destination buffers sized with ListSize alone can still be
// rejected; it is meant for sizing the result, not the scratch buffer.
func ListSize(elems []*Element) (int, error) {
	total := 0
	for _, elem := range elems {
		size, err := ElementSize(elem)
		if err != nil {
			return 0, err
		}
		total += size
	}
	return listHeaderSize(total) + total, nil
}

// itemSize returns the encoded size of a canonical item payload.
func itemSize(payload []byte) int {
	switch length := len(payload); {
	case length == 0:
		return 1
	case length == 1 && payload[0] < offsetItemShort:
		return 1
	case length <= extendedLengthThreshold:
		return 1 + length
	default:
		return 1 + lengthSize(length) + length
	}
}

// listHeaderSize returns the header size for a list payload of the given
// total length.
func listHeaderSize(total int) int {
	if total <= extendedLengthThreshold {
		return 1
	}
	return 1 + lengthSize(total)
}

// lengthSize returns the number of bytes in the minimal big-endian encoding
// of n without leading zeros.
func lengthSize(n int) int {
	size := 0
	for ; n > 0; n >>= 8 {
		size++
	}
	return size
}

// putLength writes n big-endian into dst, which must be exactly
// lengthSize(n) bytes.
func putLength(dst []byte, n int) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(n)
		n >>= 8
	}
}
