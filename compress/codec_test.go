package compress

import (
	"testing"

	"github.com/luojia65/coruscant/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() []byte {
	data := make([]byte, 4096)
	pattern := []byte("compound entry: name, payload, nested list of ints")
	for i := range data {
		data[i] = pattern[i%len(pattern)]
	}

	return data
}

func TestCreateCodec_RoundTrip(t *testing.T) {
	algorithms := []format.CompressionAlgorithm{
		format.CompressionNone,
		format.CompressionGzip,
		format.CompressionZlib,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionZstd,
	}

	data := sampleDocument()

	for _, algo := range algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			codec, err := CreateCodec(algo, format.LevelNone, "test")
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, data, decompressed)
		})
	}
}

func TestCreateCodec_InvalidAlgorithm(t *testing.T) {
	_, err := CreateCodec(format.CompressionAlgorithm(0xff), format.LevelNone, "test")
	require.Error(t, err)
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionGzip)
	require.NoError(t, err)
	require.NotNil(t, codec)
}

func TestNoOpCodec_DoesNotCopy(t *testing.T) {
	codec := NewNoOpCodec()
	data := []byte("unchanged")

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, compressed)
	assert.Same(t, &data[0], &compressed[0])

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestGzipCodec_Levels(t *testing.T) {
	data := sampleDocument()

	for _, level := range []format.CompressionLevel{format.LevelFast, format.LevelNone, format.LevelBest} {
		codec := NewGzipCodec(level)

		compressed, err := codec.Compress(data)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		assert.Equal(t, data, decompressed)
	}
}

func TestZlibCodec_RoundTrip(t *testing.T) {
	codec := NewZlibCodec(format.LevelBest)
	data := sampleDocument()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(data))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestLZ4Codec_EmptyInput(t *testing.T) {
	codec := NewLZ4Codec()

	compressed, err := codec.Compress(nil)
	require.NoError(t, err)
	assert.Nil(t, compressed)

	decompressed, err := codec.Decompress(nil)
	require.NoError(t, err)
	assert.Nil(t, decompressed)
}

func TestS2Codec_RoundTrip(t *testing.T) {
	codec := NewS2Codec()
	data := sampleDocument()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestZstdCodec_Levels(t *testing.T) {
	data := sampleDocument()

	for _, level := range []format.CompressionLevel{format.LevelFast, format.LevelNone, format.LevelBest} {
		codec := NewZstdCodec(level)

		compressed, err := codec.Compress(data)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		assert.Equal(t, data, decompressed)
	}
}
