package data

import (
	"fmt"
	"os"

	"github.com/gfengTT/mlpack/internal/archive"
	"github.com/gfengTT/mlpack/internal/encoding"
	"github.com/gfengTT/mlpack/internal/format"
	"github.com/gfengTT/mlpack/internal/mat"
)

// LoadDense loads a dense matrix, deriving the encoding from the
// filename extension unless hint overrides it. Ambiguous ".txt" and
// ".bin" files are told apart by their opening bytes. When transpose
// is set the result is transposed after decoding, undoing the
// orientation transform applied at save time.
func LoadDense(filename string, fatal, transpose bool, hint format.FileType) (*mat.Dense, bool) {
	m, err := loadDense(filename, transpose, hint)
	if err != nil {
		return nil, report(fatal, fmt.Errorf("loading from %q failed: %w", filename, err))
	}
	sink().Infof("loaded %dx%d matrix from %q", m.Rows(), m.Cols(), filename)
	return m, true
}

// LoadSparse loads a sparse matrix.
func LoadSparse(filename string, fatal, transpose bool) (*mat.Sparse, bool) {
	m, err := loadSparse(filename, transpose, format.AutoDetect)
	if err != nil {
		return nil, report(fatal, fmt.Errorf("loading from %q failed: %w", filename, err))
	}
	sink().Infof("loaded %dx%d sparse matrix from %q", m.Rows(), m.Cols(), filename)
	return m, true
}

// LoadWithOptions is the unified load entry point: dest must be a
// non-nil *mat.Dense or *mat.Sparse, which is filled with the decoded
// data, and the switches come from opts instead of positional
// parameters.
func LoadWithOptions(filename string, dest any, opts Options) bool {
	var err error
	switch m := dest.(type) {
	case *mat.Dense:
		if m == nil {
			err = fmt.Errorf("nil destination matrix")
			break
		}
		var got *mat.Dense
		got, err = loadDense(filename, !opts.NoTranspose, opts.Format)
		if err == nil {
			m.CopyFrom(got)
		}
	case *mat.Sparse:
		if m == nil {
			err = fmt.Errorf("nil destination matrix")
			break
		}
		var got *mat.Sparse
		got, err = loadSparse(filename, !opts.NoTranspose, opts.Format)
		if err == nil {
			m.CopyFrom(got)
		}
	default:
		err = fmt.Errorf("cannot load into %T: destination must be *mat.Dense or *mat.Sparse", dest)
	}
	if err != nil {
		return report(opts.Fatal, fmt.Errorf("loading from %q failed: %w", filename, err))
	}
	return true
}

// LoadModel loads the object stored under the given name into obj,
// which must be a pointer. The name must match the one used at save
// time.
func LoadModel(filename, name string, obj any, fatal bool, hint format.Format) bool {
	if err := loadModel(filename, name, obj, hint); err != nil {
		return report(fatal, fmt.Errorf("loading model from %q failed: %w", filename, err))
	}
	return true
}

func loadDense(filename string, transpose bool, hint format.FileType) (*mat.Dense, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	defer f.Close()

	t, err := format.ResolveLoad(filename, hint, format.KindDense, f)
	if err != nil {
		return nil, err
	}
	sink().Infof("loading %q as %s", filename, t)

	m, err := encoding.ReadDense(f, t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if transpose {
		m = m.T()
	}
	return m, nil
}

func loadSparse(filename string, transpose bool, hint format.FileType) (*mat.Sparse, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	defer f.Close()

	t, err := format.ResolveLoad(filename, hint, format.KindSparse, f)
	if err != nil {
		return nil, err
	}
	sink().Infof("loading %q as %s", filename, t)

	m, err := encoding.ReadSparse(f, t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if transpose {
		m = m.T()
	}
	return m, nil
}

func loadModel(filename, name string, obj any, hint format.Format) error {
	t, err := format.ResolveObjectLoad(filename, hint)
	if err != nil {
		return err
	}
	sink().Infof("loading model %q from %q as %s", name, filename, t)

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	defer f.Close()

	if err := archive.NewDecoder(f, t).Decode(name, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return nil
}
