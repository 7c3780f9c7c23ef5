package compress

// ZstdCodec handles Zstandard frames. The implementation is selected at build
// time: gozstd (cgo) under the cgo_zstd build tag, klauspost/compress/zstd
// otherwise.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec.
//
// Returns:
//   - ZstdCodec: New Zstandard codec instance
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
