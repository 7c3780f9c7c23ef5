package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// maxDecompressedSize caps decompression output. A catalog blob expanding
// past this limit is corrupted data, not a real payload.
const maxDecompressedSize = 128 * 1024 * 1024

// LZ4Codec handles LZ4 frames. The frame format carries the magic number
// that Detect relies on, so block compression is deliberately not used here.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 codec.
//
// Returns:
//   - LZ4Codec: New LZ4 codec instance
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Compress compresses the input data into an LZ4 frame.
//
// Parameters:
//   - data: Input data to compress
//
// Returns:
//   - []byte: Compressed frame (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	writer := lz4.NewWriter(&buf)
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("lz4 frame finalization failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses an LZ4 frame.
//
// Parameters:
//   - data: Compressed frame to decompress
//
// Returns:
//   - []byte: Decompressed data (nil if input is empty)
//   - error: Decompression error, or a size error past the 128MB limit
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	reader := lz4.NewReader(bytes.NewReader(data))
	decompressed, err := readCapped(reader)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return decompressed, nil
}

// readCapped reads all of r, failing once output exceeds maxDecompressedSize.
func readCapped(r io.Reader) ([]byte, error) {
	limited := io.LimitReader(r, maxDecompressedSize+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}
	if len(data) > maxDecompressedSize {
		return nil, fmt.Errorf("decompressed size exceeds %d byte limit", maxDecompressedSize)
	}

	return data, nil
}
