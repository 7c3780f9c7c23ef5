package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPayload() []byte {
	var buf bytes.Buffer
	for i := 0; i < 64; i++ {
		buf.WriteString("com.apple.Home Increase Warmth photos_IncreaseWarmth_1.0.0_intent_title ")
	}

	return buf.Bytes()
}

func getAllCodecs() map[Kind]Codec {
	return map[Kind]Codec{
		KindZstd: NewZstdCodec(),
		KindLZ4:  NewLZ4Codec(),
		KindS2:   NewS2Codec(),
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	payload := testPayload()

	for kind, codec := range getAllCodecs() {
		compressed, err := codec.Compress(payload)
		require.NoError(t, err, "compress with %s", kind)
		require.NotEmpty(t, compressed)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err, "decompress with %s", kind)
		require.Equal(t, payload, decompressed, "round trip with %s", kind)
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for kind, codec := range getAllCodecs() {
		decompressed, err := codec.Decompress(nil)
		require.NoError(t, err, "empty decompress with %s", kind)
		require.Empty(t, decompressed)
	}
}

func TestDetect_Magics(t *testing.T) {
	payload := testPayload()

	for kind, codec := range getAllCodecs() {
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Equal(t, kind, Detect(compressed), "detect %s output", kind)
	}

	require.Equal(t, KindNone, Detect(nil))
	require.Equal(t, KindNone, Detect([]byte{0x28, 0xB5}))
	require.Equal(t, KindNone, Detect([]byte("plain text payload")))
}

func TestGetCodec(t *testing.T) {
	for _, kind := range []Kind{KindZstd, KindLZ4, KindS2} {
		codec, err := GetCodec(kind)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(KindNone)
	require.Error(t, err)
}

func TestExpand_CompressedBlob(t *testing.T) {
	payload := testPayload()

	for kind, codec := range getAllCodecs() {
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)

		plain, detected := Expand(compressed)
		require.Equal(t, kind, detected)
		require.Equal(t, payload, plain)
	}
}

func TestExpand_PlainBlob(t *testing.T) {
	payload := []byte("no compression framing here")
	plain, kind := Expand(payload)
	require.Equal(t, KindNone, kind)
	require.Equal(t, payload, plain)
}

func TestExpand_CorruptedFrame(t *testing.T) {
	// A zstd magic followed by garbage must fall back to the raw bytes.
	blob := append([]byte{0x28, 0xB5, 0x2F, 0xFD}, []byte("not a real frame")...)

	plain, kind := Expand(blob)
	require.Equal(t, KindNone, kind)
	require.Equal(t, blob, plain)
}

func TestNoopCodec(t *testing.T) {
	payload := testPayload()
	codec := NewNoopCodec()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "none", KindNone.String())
	require.Equal(t, "zstd", KindZstd.String())
	require.Equal(t, "lz4", KindLZ4.String())
	require.Equal(t, "s2", KindS2.String())
}
