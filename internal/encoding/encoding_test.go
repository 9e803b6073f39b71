package encoding

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfengTT/mlpack/internal/format"
	"github.com/gfengTT/mlpack/internal/mat"
)

func testDense(t *testing.T) *mat.Dense {
	t.Helper()
	m, err := mat.DenseFromSlice(2, 3, []float64{1, 4, 2.5, 5, -3, 6})
	require.NoError(t, err)
	return m
}

func TestCSVOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, testDense(t)))
	assert.Equal(t, "1,2.5,-3\n4,5,6\n", buf.String())
}

func TestRawASCIIOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRawASCII(&buf, testDense(t)))
	assert.Equal(t, "1 2.5 -3\n4 5 6\n", buf.String())
}

func TestArmaASCIIHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeArmaASCII(&buf, testDense(t)))
	assert.True(t, strings.HasPrefix(buf.String(), "ARMA_MAT_TXT_FN008\n2 3\n"))
}

func TestDenseTextRoundTrips(t *testing.T) {
	m := testDense(t)
	tests := []format.FileType{format.CSVASCII, format.RawASCII, format.ArmaASCII, format.ArmaBinary}
	for _, ft := range tests {
		t.Run(ft.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteDense(&buf, m, ft))

			got, err := ReadDense(&buf, ft)
			require.NoError(t, err)
			assert.True(t, m.Equal(got), "round trip changed the matrix")
		})
	}
}

func TestRawBinaryLosesShape(t *testing.T) {
	m := testDense(t)
	var buf bytes.Buffer
	require.NoError(t, WriteDense(&buf, m, format.RawBinary))

	// A bare stream has no dimensions; it loads as a column.
	got, err := ReadDense(&buf, format.RawBinary)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Rows())
	assert.Equal(t, 1, got.Cols())
	// Elements come back in column-major order of the original.
	assert.Equal(t, m.Data(), got.Data())
}

func TestArmaBinaryRejectsCorruptDimensions(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"negative", "ARMA_MAT_BIN_FN008\n-2 3\n", "malformed dimension"},
		{"overflow", "ARMA_MAT_BIN_FN008\n4611686018427387904 4\n", "overflow"},
		{"huge", "ARMA_MAT_BIN_FN008\n1000000000 1000000\n", "failed to read binary data"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// No element data follows the header, so any declared
			// dimensions the decoder accepts must fail on the read.
			_, err := readArmaBinary(strings.NewReader(c.header))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestSparseBinaryRejectsCorruptHeader(t *testing.T) {
	_, err := readSparseBinary(strings.NewReader("ARMA_SPM_BIN_FN008\n2 2 5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonzero count 5 exceeds 2x2 matrix")

	_, err = readSparseBinary(strings.NewReader("ARMA_SPM_BIN_FN008\n4611686018427387904 4 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overflow")

	// A truncated entry stream fails cleanly.
	_, err = readSparseBinary(strings.NewReader("ARMA_SPM_BIN_FN008\n2 2 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read sparse entry")
}

func TestArmaASCIIDimensionMismatch(t *testing.T) {
	_, err := readArmaASCII(strings.NewReader("ARMA_MAT_TXT_FN008\n3 3\n1 2\n3 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header declares")
}

func TestPGMRoundTrip(t *testing.T) {
	m, err := mat.DenseFromSlice(2, 2, []float64{0, 170, 85, 255})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writePGM(&buf, m))
	assert.True(t, strings.HasPrefix(buf.String(), "P5\n2 2\n255\n"))

	// Values already spanning 0..255 quantize onto themselves.
	got, err := readPGM(&buf)
	require.NoError(t, err)
	assert.True(t, m.Equal(got))
}

func TestPPMRoundTrip(t *testing.T) {
	m, err := mat.DenseFromSlice(2, 2, []float64{0, 170, 85, 255})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writePPM(&buf, m))
	assert.True(t, strings.HasPrefix(buf.String(), "P6\n2 2\n255\n"))

	got, err := readPPM(&buf)
	require.NoError(t, err)
	assert.True(t, m.Equal(got))
}

func TestSparseCoordOutput(t *testing.T) {
	m, err := mat.NewSparse(3, 3)
	require.NoError(t, err)
	m.Set(2, 2, -1.5)
	m.Set(0, 1, 3)

	var buf bytes.Buffer
	require.NoError(t, writeCoord(&buf, m))
	// Column-major order, tab separated.
	assert.Equal(t, "0\t1\t3\n2\t2\t-1.5\n", buf.String())
}

func TestSparseRoundTrips(t *testing.T) {
	m, err := mat.NewSparse(4, 5)
	require.NoError(t, err)
	m.Set(0, 0, 1)
	m.Set(3, 4, 2.25)
	m.Set(1, 2, -7)

	for _, ft := range []format.FileType{format.CoordASCII, format.ArmaBinary} {
		t.Run(ft.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteSparse(&buf, m, ft))

			got, err := ReadSparse(&buf, ft)
			require.NoError(t, err)
			if ft == format.CoordASCII {
				// Coordinate lists carry no explicit dimensions; the
				// trailing corner entry makes them recoverable here.
				assert.Equal(t, m.NNZ(), got.NNZ())
				assert.Equal(t, 2.25, got.At(3, 4))
			} else {
				assert.True(t, m.Equal(got))
			}
		})
	}
}

func TestSparseRawBinaryDensifies(t *testing.T) {
	m, err := mat.NewSparse(2, 2)
	require.NoError(t, err)
	m.Set(1, 0, 5)

	var buf bytes.Buffer
	require.NoError(t, WriteSparse(&buf, m, format.RawBinary))
	// 4 elements of 8 bytes, dense expansion.
	assert.Equal(t, 32, buf.Len())
}

func TestHDF5Unsupported(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDense(&buf, testDense(t), format.HDF5Binary)
	assert.ErrorIs(t, err, ErrHDF5Unsupported)

	_, err = ReadDense(&buf, format.HDF5Binary)
	assert.ErrorIs(t, err, ErrHDF5Unsupported)
}

func TestWriteDeterministic(t *testing.T) {
	m := testDense(t)
	var a, b bytes.Buffer
	require.NoError(t, WriteDense(&a, m, format.ArmaBinary))
	require.NoError(t, WriteDense(&b, m, format.ArmaBinary))
	assert.Equal(t, a.Bytes(), b.Bytes())
}
