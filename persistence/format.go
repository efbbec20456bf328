package persistence

import "errors"

const (
	// MagicNumber identifies subspace model files (ASCII: "FSB0").
	MagicNumber = 0x46534230
	// Version is the current file format version.
	Version = 0x00010000
)

// CompressionType selects the payload compression algorithm.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZstd uses zstd compression (better ratio).
	CompressionZstd CompressionType = 2
)

// ElementType tags the numeric element kind of the stored matrices.
// Models are always written as float64; the tag exists so readers can
// reject files produced by future writers with other element kinds.
type ElementType uint8

const (
	// ElementFloat64 is the only element type the current writer emits.
	ElementFloat64 ElementType = 1
)

var (
	// ErrInvalidMagic is returned when the file does not start with the
	// subspace model magic number.
	ErrInvalidMagic = errors.New("persistence: invalid magic number")

	// ErrInvalidVersion is returned for files written by an unknown
	// format version.
	ErrInvalidVersion = errors.New("persistence: unsupported version")

	// ErrUnsupportedElementType is returned when the element-type tag is
	// not among the supported numeric kinds.
	ErrUnsupportedElementType = errors.New("persistence: unsupported element type")

	// ErrUnsupportedCompression is returned for an unknown compression tag.
	ErrUnsupportedCompression = errors.New("persistence: unsupported compression type")

	// ErrChecksumMismatch is returned when the payload checksum does not
	// match, indicating corruption.
	ErrChecksumMismatch = errors.New("persistence: checksum mismatch")
)

// fileHeader is the fixed header at the start of every model file.
type fileHeader struct {
	Magic            uint32
	Version          uint32
	Compression      CompressionType
	Element          ElementType
	DataAsRow        uint8
	Padding          [1]byte
	Rows             uint32 // eigenvector matrix rows (D)
	Cols             uint32 // eigenvector matrix cols (k)
	NumValues        uint32 // eigenvalue count
	NumComponents    uint32 // configured component count (0 = automatic)
	UncompressedSize uint32
	CompressedSize   uint32 // 0 means stored uncompressed
	Checksum         uint32 // CRC32 (IEEE) of the stored payload bytes
}
