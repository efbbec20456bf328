package persistence

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/hupe1980/facerecgo/matrix"
)

// Model is a serializable snapshot of a learned subspace: the eigenvector
// basis, its eigenvalues and the configuration the subspace was computed
// with.
type Model struct {
	Eigenvectors  *matrix.Dense // D x k, columns ordered by descending eigenvalue
	Eigenvalues   []float64     // len k, non-increasing
	NumComponents int           // configured count (0 = automatic)
	DataAsRow     bool
}

// SaveOptions configures SaveModel.
type SaveOptions struct {
	// Compression selects the payload compression. Defaults to zstd.
	Compression CompressionType
}

// SaveModel writes the model to w in the binary subspace format.
func SaveModel(w io.Writer, m *Model, optFns ...func(*SaveOptions)) error {
	opts := SaveOptions{Compression: CompressionZstd}
	for _, fn := range optFns {
		fn(&opts)
	}

	rows, cols := 0, 0
	if m.Eigenvectors != nil {
		rows, cols = m.Eigenvectors.Rows(), m.Eigenvectors.Cols()
	}

	payload := make([]byte, 8*(rows*cols+len(m.Eigenvalues)))
	off := 0
	if m.Eigenvectors != nil {
		for _, v := range m.Eigenvectors.Data() {
			binary.LittleEndian.PutUint64(payload[off:], math.Float64bits(v))
			off += 8
		}
	}
	for _, v := range m.Eigenvalues {
		binary.LittleEndian.PutUint64(payload[off:], math.Float64bits(v))
		off += 8
	}

	stored, compressedSize, err := compress(payload, opts.Compression)
	if err != nil {
		return err
	}

	header := fileHeader{
		Magic:            MagicNumber,
		Version:          Version,
		Compression:      opts.Compression,
		Element:          ElementFloat64,
		Rows:             uint32(rows),
		Cols:             uint32(cols),
		NumValues:        uint32(len(m.Eigenvalues)),
		NumComponents:    uint32(m.NumComponents),
		UncompressedSize: uint32(len(payload)),
		CompressedSize:   compressedSize,
		Checksum:         crc32.ChecksumIEEE(stored),
	}
	if m.DataAsRow {
		header.DataAsRow = 1
	}

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

// LoadModel reads a model previously written by SaveModel.
func LoadModel(r io.Reader) (*Model, error) {
	var header fileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if header.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version {
		return nil, ErrInvalidVersion
	}
	if header.Element != ElementFloat64 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedElementType, header.Element)
	}

	storedSize := header.CompressedSize
	if storedSize == 0 {
		storedSize = header.UncompressedSize
	}
	stored := make([]byte, storedSize)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	if crc32.ChecksumIEEE(stored) != header.Checksum {
		return nil, ErrChecksumMismatch
	}

	payload, err := decompress(stored, header.Compression, header.CompressedSize, header.UncompressedSize)
	if err != nil {
		return nil, err
	}

	rows := int(header.Rows)
	cols := int(header.Cols)
	numValues := int(header.NumValues)
	if len(payload) != 8*(rows*cols+numValues) {
		return nil, fmt.Errorf("persistence: payload size %d does not match header", len(payload))
	}

	m := &Model{
		NumComponents: int(header.NumComponents),
		DataAsRow:     header.DataAsRow == 1,
	}

	off := 0
	if rows*cols > 0 {
		data := make([]float64, rows*cols)
		for i := range data {
			data[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[off:]))
			off += 8
		}
		m.Eigenvectors = matrix.NewDenseData(rows, cols, data)
	}
	if numValues > 0 {
		m.Eigenvalues = make([]float64, numValues)
		for i := range m.Eigenvalues {
			m.Eigenvalues[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[off:]))
			off += 8
		}
	}
	return m, nil
}
