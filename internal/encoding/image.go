package encoding

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gfengTT/mlpack/internal/mat"
)

// quantize maps the matrix range onto 0..255. A constant matrix maps
// to all zeros. The mapping is lossy; PGM and PPM round-trips recover
// the 8-bit values, not the original floats.
func quantize(m *mat.Dense) []byte {
	lo, hi := m.At(0, 0), m.At(0, 0)
	for _, v := range m.Data() {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	out := make([]byte, m.Rows()*m.Cols())
	if hi == lo {
		return out
	}
	scale := 255 / (hi - lo)
	i := 0
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			out[i] = byte((m.At(r, c)-lo)*scale + 0.5)
			i++
		}
	}
	return out
}

func writePGM(w io.Writer, m *mat.Dense) error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return fmt.Errorf("cannot write empty matrix as PGM data")
	}
	if _, err := fmt.Fprintf(w, "P5\n%d %d\n255\n", m.Cols(), m.Rows()); err != nil {
		return fmt.Errorf("failed to write PGM header: %w", err)
	}
	if _, err := w.Write(quantize(m)); err != nil {
		return fmt.Errorf("failed to write PGM pixels: %w", err)
	}
	return nil
}

func writePPM(w io.Writer, m *mat.Dense) error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return fmt.Errorf("cannot write empty matrix as PPM data")
	}
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", m.Cols(), m.Rows()); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	gray := quantize(m)
	rgb := make([]byte, 3*len(gray))
	for i, g := range gray {
		rgb[3*i] = g
		rgb[3*i+1] = g
		rgb[3*i+2] = g
	}
	if _, err := w.Write(rgb); err != nil {
		return fmt.Errorf("failed to write PPM pixels: %w", err)
	}
	return nil
}

// readNetpbmHeader parses the magic, dimensions and maximum value of a
// binary netpbm header, leaving br positioned at the pixel data.
func readNetpbmHeader(br *bufio.Reader, magic string) (width, height int, err error) {
	var gotMagic string
	var maxVal int
	if _, err := fmt.Fscan(br, &gotMagic, &width, &height, &maxVal); err != nil {
		return 0, 0, fmt.Errorf("failed to read %s header: %w", magic, err)
	}
	if gotMagic != magic {
		return 0, 0, fmt.Errorf("expected %s magic, got %q", magic, gotMagic)
	}
	if width <= 0 || height <= 0 || maxVal != 255 {
		return 0, 0, fmt.Errorf("unsupported %s geometry %dx%d with max value %d",
			magic, width, height, maxVal)
	}
	// Exactly one whitespace byte separates the header from the pixels.
	if _, err := br.ReadByte(); err != nil {
		return 0, 0, fmt.Errorf("failed to read %s header: %w", magic, err)
	}
	return width, height, nil
}

func readPGM(r io.Reader) (*mat.Dense, error) {
	br := bufio.NewReader(r)
	width, height, err := readNetpbmHeader(br, "P5")
	if err != nil {
		return nil, err
	}
	pixels := make([]byte, width*height)
	if _, err := io.ReadFull(br, pixels); err != nil {
		return nil, fmt.Errorf("failed to read PGM pixels: %w", err)
	}
	m, err := mat.NewDense(height, width)
	if err != nil {
		return nil, err
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			m.Set(r, c, float64(pixels[r*width+c]))
		}
	}
	return m, nil
}

func readPPM(r io.Reader) (*mat.Dense, error) {
	br := bufio.NewReader(r)
	width, height, err := readNetpbmHeader(br, "P6")
	if err != nil {
		return nil, err
	}
	pixels := make([]byte, 3*width*height)
	if _, err := io.ReadFull(br, pixels); err != nil {
		return nil, fmt.Errorf("failed to read PPM pixels: %w", err)
	}
	m, err := mat.NewDense(height, width)
	if err != nil {
		return nil, err
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			i := 3 * (r*width + c)
			avg := (int(pixels[i]) + int(pixels[i+1]) + int(pixels[i+2])) / 3
			m.Set(r, c, float64(avg))
		}
	}
	return m, nil
}
