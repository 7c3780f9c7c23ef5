package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUvarint_SingleByte(t *testing.T) {
	value, n := Uvarint([]byte{0x00})
	require.Equal(t, uint64(0), value)
	require.Equal(t, 1, n)

	value, n = Uvarint([]byte{0x7F})
	require.Equal(t, uint64(127), value)
	require.Equal(t, 1, n)
}

func TestUvarint_MultiByte(t *testing.T) {
	// 300 = 0b1_0010_1100 -> 0xAC 0x02
	value, n := Uvarint([]byte{0xAC, 0x02})
	require.Equal(t, uint64(300), value)
	require.Equal(t, 2, n)

	// Trailing bytes beyond the terminator are ignored.
	value, n = Uvarint([]byte{0xAC, 0x02, 0xFF, 0xFF})
	require.Equal(t, uint64(300), value)
	require.Equal(t, 2, n)
}

func TestUvarint_Empty(t *testing.T) {
	value, n := Uvarint(nil)
	require.Equal(t, uint64(0), value)
	require.Equal(t, 0, n)

	value, n = Uvarint([]byte{})
	require.Equal(t, uint64(0), value)
	require.Equal(t, 0, n)
}

func TestUvarint_MissingTerminator(t *testing.T) {
	// 12 continuation bytes with no terminator: decoding caps at 10 bytes
	// and reports the partial accumulation.
	data := make([]byte, 12)
	for i := range data {
		data[i] = 0x80
	}

	value, n := Uvarint(data)
	require.Equal(t, MaxVarintLen, n)
	require.Equal(t, uint64(0), value) // all payload bits are zero
}

func TestUvarint_TruncatedInput(t *testing.T) {
	// Continuation bit set on the last available byte: consume everything
	// and return the partial value.
	value, n := Uvarint([]byte{0xAC})
	require.Equal(t, 1, n)
	require.Equal(t, uint64(0x2C), value)
}

func TestUvarint_RoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 127, 128, 300, 16383, 16384,
		1 << 21, 1<<28 - 1, 1 << 35, 1 << 56,
		1<<63 - 1, 1 << 63, ^uint64(0),
	}

	for _, v := range values {
		encoded := AppendUvarint(nil, v)
		require.Equal(t, UvarintLen(v), len(encoded), "minimal length for %d", v)

		decoded, n := Uvarint(encoded)
		require.Equal(t, v, decoded)
		require.Equal(t, len(encoded), n)
	}
}

func TestUvarintLen_Boundaries(t *testing.T) {
	require.Equal(t, 1, UvarintLen(0))
	require.Equal(t, 1, UvarintLen(127))
	require.Equal(t, 2, UvarintLen(128))
	require.Equal(t, 2, UvarintLen(16383))
	require.Equal(t, 3, UvarintLen(16384))
	require.Equal(t, 10, UvarintLen(^uint64(0)))
}
