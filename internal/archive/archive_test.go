package archive

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfengTT/mlpack/internal/format"
)

type regressor struct {
	Weights   []float64 `json:"weights" xml:"weights>w"`
	Intercept float64   `json:"intercept" xml:"intercept"`
	Name      string    `json:"name" xml:"name"`
}

func testModel() regressor {
	return regressor{
		Weights:   []float64{0.5, -1.25, 3},
		Intercept: 0.125,
		Name:      "ridge",
	}
}

func TestRoundTripAllFormats(t *testing.T) {
	for _, f := range []format.Format{format.FormatJSON, format.FormatXML, format.FormatBIN} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			in := testModel()
			require.NoError(t, NewEncoder(&buf, f).Encode("myModel", in))

			var out regressor
			require.NoError(t, NewDecoder(&buf, f).Decode("myModel", &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestJSONUsesNameAsKey(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf, format.FormatJSON).Encode("myModel", testModel()))

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &envelope))
	assert.Contains(t, envelope, "myModel")
	assert.Len(t, envelope, 1)
}

func TestNameMismatch(t *testing.T) {
	for _, f := range []format.Format{format.FormatJSON, format.FormatXML, format.FormatBIN} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewEncoder(&buf, f).Encode("myModel", testModel()))

			var out regressor
			err := NewDecoder(&buf, f).Decode("otherModel", &out)
			assert.ErrorIs(t, err, ErrNameMismatch)
		})
	}
}

func TestXMLNameEscaping(t *testing.T) {
	var buf bytes.Buffer
	name := `quoted "name" <here>`
	require.NoError(t, NewEncoder(&buf, format.FormatXML).Encode(name, testModel()))

	var out regressor
	require.NoError(t, NewDecoder(&buf, format.FormatXML).Decode(name, &out))
	assert.Equal(t, testModel(), out)
}

func TestGobRejectsCorruptStream(t *testing.T) {
	var out regressor
	err := NewDecoder(bytes.NewReader([]byte("not a gob stream")), format.FormatBIN).Decode("x", &out)
	assert.Error(t, err)
}
