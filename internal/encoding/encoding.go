package encoding

import (
	"errors"
	"fmt"
	"io"

	"github.com/gfengTT/mlpack/internal/format"
	"github.com/gfengTT/mlpack/internal/mat"
)

// ErrHDF5Unsupported is reported when an HDF5 file type resolves but
// the build carries no HDF5 backend.
var ErrHDF5Unsupported = errors.New("HDF5 support is not available in this build")

// WriteDense encodes m to w using the given tabular encoding. The
// encoding must already be resolved (not AutoDetect) and valid for
// dense payloads.
func WriteDense(w io.Writer, m *mat.Dense, t format.FileType) error {
	switch t {
	case format.CSVASCII:
		return writeCSV(w, m)
	case format.RawASCII:
		return writeRawASCII(w, m)
	case format.ArmaASCII:
		return writeArmaASCII(w, m)
	case format.PGMBinary:
		return writePGM(w, m)
	case format.PPMBinary:
		return writePPM(w, m)
	case format.RawBinary:
		return writeRawBinary(w, m.Data())
	case format.ArmaBinary:
		return writeArmaBinary(w, m)
	case format.HDF5Binary:
		return ErrHDF5Unsupported
	default:
		return fmt.Errorf("no dense encoder for %s", t)
	}
}

// ReadDense decodes a dense matrix from r using the given tabular
// encoding.
func ReadDense(r io.Reader, t format.FileType) (*mat.Dense, error) {
	switch t {
	case format.CSVASCII:
		return readCSV(r)
	case format.RawASCII:
		return readRawASCII(r)
	case format.ArmaASCII:
		return readArmaASCII(r)
	case format.PGMBinary:
		return readPGM(r)
	case format.PPMBinary:
		return readPPM(r)
	case format.RawBinary:
		return readRawBinary(r)
	case format.ArmaBinary:
		return readArmaBinary(r)
	case format.HDF5Binary:
		return nil, ErrHDF5Unsupported
	default:
		return nil, fmt.Errorf("no dense decoder for %s", t)
	}
}

// WriteSparse encodes m to w using the given tabular encoding. The
// encoding must already be resolved and sparse-capable.
func WriteSparse(w io.Writer, m *mat.Sparse, t format.FileType) error {
	switch t {
	case format.CoordASCII:
		return writeCoord(w, m)
	case format.RawBinary:
		return writeRawBinary(w, densify(m).Data())
	case format.ArmaBinary:
		return writeSparseBinary(w, m)
	default:
		return fmt.Errorf("no sparse encoder for %s", t)
	}
}

// ReadSparse decodes a sparse matrix from r using the given tabular
// encoding.
func ReadSparse(r io.Reader, t format.FileType) (*mat.Sparse, error) {
	switch t {
	case format.CoordASCII:
		return readCoord(r)
	case format.RawBinary:
		d, err := readRawBinary(r)
		if err != nil {
			return nil, err
		}
		return sparsify(d), nil
	case format.ArmaBinary:
		return readSparseBinary(r)
	default:
		return nil, fmt.Errorf("no sparse decoder for %s", t)
	}
}

// densify expands a sparse matrix to dense storage.
func densify(m *mat.Sparse) *mat.Dense {
	d, _ := mat.NewDense(m.Rows(), m.Cols())
	m.DoNonZero(func(r, c int, v float64) {
		d.Set(r, c, v)
	})
	return d
}

// sparsify collects the nonzero entries of a dense matrix.
func sparsify(d *mat.Dense) *mat.Sparse {
	s, _ := mat.NewSparse(d.Rows(), d.Cols())
	for c := 0; c < d.Cols(); c++ {
		for r := 0; r < d.Rows(); r++ {
			if v := d.At(r, c); v != 0 {
				s.Set(r, c, v)
			}
		}
	}
	return s
}
