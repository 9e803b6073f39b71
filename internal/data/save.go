package data

import (
	"fmt"
	"os"

	"github.com/gfengTT/mlpack/internal/archive"
	"github.com/gfengTT/mlpack/internal/encoding"
	"github.com/gfengTT/mlpack/internal/format"
	"github.com/gfengTT/mlpack/internal/mat"
)

// SaveDense saves a dense matrix, deriving the encoding from the
// filename extension unless hint overrides it. When transpose is set
// the matrix is transposed before encoding; the caller's matrix is
// never modified.
func SaveDense(filename string, m *mat.Dense, fatal, transpose bool, hint format.FileType) bool {
	if err := saveDense(filename, m, transpose, hint); err != nil {
		return report(fatal, fmt.Errorf("saving to %q failed: %w", filename, err))
	}
	return true
}

// SaveSparse saves a sparse matrix. Only the coordinate list, raw
// binary and Armadillo binary encodings can hold sparse data; the
// extension alone governs resolution.
func SaveSparse(filename string, m *mat.Sparse, fatal, transpose bool) bool {
	if err := saveSparse(filename, m, transpose, format.AutoDetect); err != nil {
		return report(fatal, fmt.Errorf("saving to %q failed: %w", filename, err))
	}
	return true
}

// SaveModel saves a serializable object under the given name. Loading
// the file later must use the same name.
func SaveModel(filename, name string, obj any, fatal bool, hint format.Format) bool {
	if err := saveModel(filename, name, obj, hint); err != nil {
		return report(fatal, fmt.Errorf("saving model to %q failed: %w", filename, err))
	}
	return true
}

// SaveWithOptions is the unified save entry point: the payload may be
// a dense or a sparse matrix, and the switches come from opts instead
// of positional parameters.
func SaveWithOptions(filename string, payload any, opts Options) bool {
	var err error
	switch m := payload.(type) {
	case *mat.Dense:
		err = saveDense(filename, m, !opts.NoTranspose, opts.Format)
	case *mat.Sparse:
		err = saveSparse(filename, m, !opts.NoTranspose, opts.Format)
	default:
		err = fmt.Errorf("cannot save %T: payload must be *mat.Dense or *mat.Sparse", payload)
	}
	if err != nil {
		return report(opts.Fatal, fmt.Errorf("saving to %q failed: %w", filename, err))
	}
	return true
}

func saveDense(filename string, m *mat.Dense, transpose bool, hint format.FileType) error {
	if m == nil {
		return fmt.Errorf("nil matrix")
	}
	t, err := format.ResolveSave(filename, hint, format.KindDense)
	if err != nil {
		return err
	}
	sink().Infof("saving %dx%d matrix to %q as %s", m.Rows(), m.Cols(), filename, t)

	if transpose {
		m = m.T()
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if err := encoding.WriteDense(f, m, t); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

func saveSparse(filename string, m *mat.Sparse, transpose bool, hint format.FileType) error {
	if m == nil {
		return fmt.Errorf("nil matrix")
	}
	t, err := format.ResolveSave(filename, hint, format.KindSparse)
	if err != nil {
		return err
	}
	sink().Infof("saving %dx%d sparse matrix to %q as %s", m.Rows(), m.Cols(), filename, t)

	if transpose {
		m = m.T()
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if err := encoding.WriteSparse(f, m, t); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

func saveModel(filename, name string, obj any, hint format.Format) error {
	t, err := format.ResolveObjectSave(filename, hint)
	if err != nil {
		return err
	}
	sink().Infof("saving model %q to %q as %s", name, filename, t)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	if err := archive.NewEncoder(f, t).Encode(name, obj); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return nil
}
