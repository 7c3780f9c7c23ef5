package compress

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Codec handles S2 framed streams. Streams written by this codec open with
// the Snappy stream identifier chunk, which is the magic Detect matches.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress compresses the input data into an S2 framed stream.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	writer := s2.NewWriter(&buf, s2.WriterSnappyCompat())
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("s2 compression failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("s2 stream finalization failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses an S2 framed stream.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	reader := s2.NewReader(bytes.NewReader(data))
	decompressed, err := readCapped(reader)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return decompressed, nil
}
