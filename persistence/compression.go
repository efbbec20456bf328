package persistence

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var (
	zstdEncoderOnce sync.Once
	zstdEncoder     *zstd.Encoder
	zstdDecoderOnce sync.Once
	zstdDecoder     *zstd.Decoder
)

func getZstdEncoder() *zstd.Encoder {
	zstdEncoderOnce.Do(func() {
		zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	})
	return zstdEncoder
}

func getZstdDecoder() *zstd.Decoder {
	zstdDecoderOnce.Do(func() {
		zstdDecoder, _ = zstd.NewReader(nil)
	})
	return zstdDecoder
}

// compress returns the encoded payload and the stored compressed size.
// A stored size of 0 means the payload is kept uncompressed, either
// because CompressionNone was requested or the data was incompressible.
func compress(data []byte, ct CompressionType) ([]byte, uint32, error) {
	switch ct {
	case CompressionNone:
		return data, 0, nil
	case CompressionZstd:
		out := getZstdEncoder().EncodeAll(data, nil)
		if len(out) >= len(data) {
			return data, 0, nil
		}
		return out, uint32(len(out)), nil
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		buf := make([]byte, bound)
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, 0, err
		}
		if n == 0 || n >= len(data) {
			// Incompressible.
			return data, 0, nil
		}
		return buf[:n], uint32(n), nil
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrUnsupportedCompression, ct)
	}
}

// decompress reverses compress given the header tags.
func decompress(data []byte, ct CompressionType, compressedSize, uncompressedSize uint32) ([]byte, error) {
	if compressedSize == 0 {
		return data, nil
	}
	switch ct {
	case CompressionZstd:
		return getZstdDecoder().DecodeAll(data, nil)
	case CompressionLZ4:
		out := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, err
		}
		return out[:n], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCompression, ct)
	}
}
