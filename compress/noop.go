package compress

// NoopCodec passes data through unchanged. Useful for callers that want the
// Codec interface over an uncompressed blob.
type NoopCodec struct{}

var _ Codec = (*NoopCodec)(nil)

// NewNoopCodec creates a new no-op codec.
func NewNoopCodec() NoopCodec {
	return NoopCodec{}
}

// Compress returns the input unchanged.
func (c NoopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input unchanged.
func (c NoopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
