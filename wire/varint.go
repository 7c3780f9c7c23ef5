package wire

// MaxVarintLen is the maximum number of bytes a base-128 varint may occupy.
// A 64-bit value needs at most 10 bytes at 7 payload bits per byte.
const MaxVarintLen = 10

// Uvarint decodes a base-128 variable-length integer from the start of data.
//
// Each byte contributes 7 payload bits; a set high bit signals continuation.
// Decoding is capped at MaxVarintLen bytes: if no terminating byte (high bit
// clear) is found within the cap, the partial accumulation is returned with
// n = MaxVarintLen, signaling the caller that the value is unreliable. If
// data runs out before a terminator, the partial accumulation is returned
// with n = len(data).
//
// Parameters:
//   - data: Bytes starting with the varint
//
// Returns:
//   - value: Decoded (possibly partial) value; 0 for empty input
//   - n: Number of bytes consumed; 0 for empty input
func Uvarint(data []byte) (value uint64, n int) {
	var shift uint
	for i, b := range data {
		value |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return value, i + 1
		}
		if i+1 == MaxVarintLen {
			return value, MaxVarintLen
		}
		shift += 7
	}

	return value, len(data)
}

// AppendUvarint appends the minimal base-128 encoding of v to dst and
// returns the extended slice.
//
// Parameters:
//   - dst: Destination slice (may be nil)
//   - v: Value to encode
//
// Returns:
//   - []byte: dst with the encoded varint appended
func AppendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// UvarintLen returns the number of bytes the minimal encoding of v occupies.
// This is a fast inline calculation without allocating a temporary buffer.
func UvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}
