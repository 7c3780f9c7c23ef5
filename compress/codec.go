package compress

import "fmt"

// Kind identifies a recognized compression framing.
type Kind uint8

const (
	// KindNone means no known frame magic was recognized.
	KindNone Kind = iota
	// KindZstd is a Zstandard frame.
	KindZstd
	// KindLZ4 is an LZ4 frame.
	KindLZ4
	// KindS2 is an S2/Snappy framed stream.
	KindS2
)

// String returns the codec name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindZstd:
		return "zstd"
	case KindLZ4:
		return "lz4"
	case KindS2:
		return "s2"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Codec compresses and decompresses one framing format. Implementations are
// stateless and safe for concurrent use.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Frame magics for the supported formats.
var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
	s2Magic   = []byte{0xFF, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}
)

// Detect sniffs the frame magic at the start of data.
//
// Parameters:
//   - data: Blob bytes to sniff
//
// Returns:
//   - Kind: Recognized framing, or KindNone
func Detect(data []byte) Kind {
	switch {
	case hasPrefix(data, zstdMagic):
		return KindZstd
	case hasPrefix(data, lz4Magic):
		return KindLZ4
	case hasPrefix(data, s2Magic):
		return KindS2
	default:
		return KindNone
	}
}

// GetCodec returns the codec for a recognized framing.
//
// Parameters:
//   - kind: Framing kind from Detect
//
// Returns:
//   - Codec: Codec instance for the kind
//   - error: Unsupported kind error
func GetCodec(kind Kind) (Codec, error) {
	switch kind {
	case KindZstd:
		return ZstdCodec{}, nil
	case KindLZ4:
		return LZ4Codec{}, nil
	case KindS2:
		return S2Codec{}, nil
	default:
		return nil, fmt.Errorf("unsupported compression kind: %s", kind)
	}
}

// Expand decompresses data when its framing is recognized, and returns the
// input unchanged otherwise. Decompression failure also falls back to the
// input: a blob that merely starts with bytes resembling a frame magic must
// still reach the analysis layers.
//
// Parameters:
//   - data: Blob bytes, possibly compressed
//
// Returns:
//   - []byte: Plain bytes (the input itself when nothing was recognized)
//   - Kind: Framing that was successfully expanded, or KindNone
func Expand(data []byte) ([]byte, Kind) {
	kind := Detect(data)
	if kind == KindNone {
		return data, KindNone
	}

	codec, err := GetCodec(kind)
	if err != nil {
		return data, KindNone
	}

	plain, err := codec.Decompress(data)
	if err != nil || plain == nil {
		return data, KindNone
	}

	return plain, kind
}

func hasPrefix(data, magic []byte) bool {
	if len(data) < len(magic) {
		return false
	}
	for i := range magic {
		if data[i] != magic[i] {
			return false
		}
	}

	return true
}
