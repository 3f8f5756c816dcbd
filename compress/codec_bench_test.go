package compress

import (
	"fmt"
	"testing"

	"github.com/luojia65/coruscant/format"
)

func generateBenchmarkData(size int) []byte {
	data := make([]byte, size)
	pattern := []byte("end of compound; name length, payload bytes, nested list header")
	for i := range data {
		data[i] = pattern[i%len(pattern)]
	}

	return data
}

func BenchmarkCodec_Compress(b *testing.B) {
	sizes := []int{1024, 16384, 65536}
	algorithms := []format.CompressionAlgorithm{
		format.CompressionGzip,
		format.CompressionZlib,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionZstd,
	}

	for _, algo := range algorithms {
		codec, err := CreateCodec(algo, format.LevelNone, "bench")
		if err != nil {
			b.Fatal(err)
		}

		for _, size := range sizes {
			data := generateBenchmarkData(size)
			b.Run(fmt.Sprintf("%s/%dKB", algo, size/1024), func(b *testing.B) {
				b.SetBytes(int64(size))
				b.ResetTimer()
				for b.Loop() {
					_, _ = codec.Compress(data)
				}
			})
		}
	}
}

func BenchmarkCodec_Decompress(b *testing.B) {
	sizes := []int{1024, 16384, 65536}
	algorithms := []format.CompressionAlgorithm{
		format.CompressionGzip,
		format.CompressionZlib,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionZstd,
	}

	for _, algo := range algorithms {
		codec, err := CreateCodec(algo, format.LevelNone, "bench")
		if err != nil {
			b.Fatal(err)
		}

		for _, size := range sizes {
			data := generateBenchmarkData(size)
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			b.Run(fmt.Sprintf("%s/%dKB", algo, size/1024), func(b *testing.B) {
				b.SetBytes(int64(size))
				b.ResetTimer()
				for b.Loop() {
					_, _ = codec.Decompress(compressed)
				}
			})
		}
	}
}
