package nbt

import (
	"github.com/luojia65/coruscant/format"
	"github.com/luojia65/coruscant/internal/options"
)

// config holds the settings MarshalOption/UnmarshalOption mutate.
// newConfig returns the defaults: no compression, the host-endianness
// array fast path enabled, root name taken from the Root value.
type config struct {
	algorithm     format.CompressionAlgorithm
	level         format.CompressionLevel
	rootName      string
	rootNameGiven bool
	fastArrayIO   bool
}

func newConfig() *config {
	return &config{
		algorithm:   format.CompressionNone,
		level:       format.LevelNone,
		fastArrayIO: true,
	}
}

// MarshalOption configures Marshal and its streaming variants.
type MarshalOption = options.Option[*config]

// UnmarshalOption configures Unmarshal and its streaming variants.
type UnmarshalOption = options.Option[*config]

// WithCompression wraps the encoded document in algorithm at the given
// effort level. MarshalGzip/MarshalZlib ignore this option since their
// algorithm is fixed by which function is called; it applies to Marshal
// and MarshalTo.
func WithCompression(algorithm format.CompressionAlgorithm, level format.CompressionLevel) MarshalOption {
	return options.NoError(func(c *config) {
		c.algorithm = algorithm
		c.level = level
	})
}

// WithRootName overrides the name Marshal gives the top-level tag,
// regardless of the Root value's own Name field.
func WithRootName(name string) MarshalOption {
	return options.NoError(func(c *config) {
		c.rootName = name
		c.rootNameGiven = true
	})
}

// WithArrayFastPath toggles the host-endianness bulk read path
// IntArray/LongArray decoding uses by default. Disabling it forces the
// portable element-at-a-time path, useful when testing cross-platform
// decode behavior on a single machine. It has no effect on encoding.
func WithArrayFastPath(enabled bool) UnmarshalOption {
	return options.NoError(func(c *config) {
		c.fastArrayIO = enabled
	})
}
