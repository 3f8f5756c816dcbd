package compress

import (
	"github.com/luojia65/coruscant/format"
	"github.com/valyala/gozstd"
)

// ZstdCodec is the best-ratio additive preset, suited to archival or
// cold-storage NBT blobs. It backs format.CompressionZstd.
type ZstdCodec struct {
	level int
}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a zstd codec at the given effort preset.
func NewZstdCodec(level format.CompressionLevel) ZstdCodec {
	switch level {
	case format.LevelFast:
		return ZstdCodec{level: 1}
	case format.LevelBest:
		return ZstdCodec{level: 19}
	default:
		return ZstdCodec{level: 3}
	}
}

func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, c.level), nil
}

func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
