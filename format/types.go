// Package format defines the small enums shared by the wire, codec and
// compress packages: the NBT tag-kind lattice and the compression level
// presets used by the optional stream wrappers.
package format

// TypeID identifies an NBT tag kind on the wire. The numeric values are
// fixed by the format and must not be renumbered.
type TypeID uint8

const (
	End       TypeID = 0
	Byte      TypeID = 1
	Short     TypeID = 2
	Int       TypeID = 3
	Long      TypeID = 4
	Float     TypeID = 5
	Double    TypeID = 6
	ByteArray TypeID = 7
	String    TypeID = 8
	List      TypeID = 9
	Compound  TypeID = 10
	IntArray  TypeID = 11
	LongArray TypeID = 12
)

// MaxTypeID is the highest valid TypeID. Any byte read off the wire above
// this value fails with errs.ErrTypeIDInvalid.
const MaxTypeID = LongArray

// IsValid reports whether id falls within the 0..=12 tag lattice.
func (id TypeID) IsValid() bool {
	return id <= MaxTypeID
}

func (id TypeID) String() string {
	switch id {
	case End:
		return "End"
	case Byte:
		return "Byte"
	case Short:
		return "Short"
	case Int:
		return "Int"
	case Long:
		return "Long"
	case Float:
		return "Float"
	case Double:
		return "Double"
	case ByteArray:
		return "ByteArray"
	case String:
		return "String"
	case List:
		return "List"
	case Compound:
		return "Compound"
	case IntArray:
		return "IntArray"
	case LongArray:
		return "LongArray"
	default:
		return "Unknown"
	}
}

// CompressionAlgorithm selects which stream codec wraps the encoded NBT
// document. None leaves the document as a bare big-endian byte stream;
// every other value picks one of the compress package's Codec
// implementations.
type CompressionAlgorithm uint8

const (
	CompressionNone CompressionAlgorithm = iota
	CompressionGzip
	CompressionZlib
	CompressionS2
	CompressionLZ4
	CompressionZstd
)

func (a CompressionAlgorithm) String() string {
	switch a {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZlib:
		return "Zlib"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}

// CompressionLevel is a coarse compression-effort preset, used by every
// codec in the compress package so callers don't need to know each
// algorithm's native level scale.
type CompressionLevel uint8

const (
	LevelNone CompressionLevel = 0x1 // LevelNone disables compression effort tuning; uses the codec's default.
	LevelFast CompressionLevel = 0x2 // LevelFast favors speed over ratio.
	LevelBest CompressionLevel = 0x3 // LevelBest favors ratio over speed.
)

func (l CompressionLevel) String() string {
	switch l {
	case LevelNone:
		return "None"
	case LevelFast:
		return "Fast"
	case LevelBest:
		return "Best"
	default:
		return "Unknown"
	}
}
