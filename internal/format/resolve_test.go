package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSaveUnambiguous(t *testing.T) {
	tests := []struct {
		filename string
		kind     PayloadKind
		want     FileType
	}{
		{"data.csv", KindDense, CSVASCII},
		{"data.pgm", KindDense, PGMBinary},
		{"data.ppm", KindDense, PPMBinary},
		{"data.hdf5", KindDense, HDF5Binary},
		{"data.hdf", KindDense, HDF5Binary},
		{"data.h5", KindDense, HDF5Binary},
		{"data.he5", KindDense, HDF5Binary},
		{"data.tsv", KindSparse, CoordASCII},
		{"dir.v2/data.csv", KindDense, CSVASCII},
	}
	for _, tt := range tests {
		got, err := ResolveSave(tt.filename, AutoDetect, tt.kind)
		require.NoError(t, err, tt.filename)
		assert.Equal(t, tt.want, got, tt.filename)
	}
}

func TestResolveSaveAmbiguousDefaults(t *testing.T) {
	// No file exists on the save path, so ambiguity is settled by the
	// static priority table, not content inspection.
	got, err := ResolveSave("data.txt", AutoDetect, KindDense)
	require.NoError(t, err)
	assert.Equal(t, CSVASCII, got)

	got, err = ResolveSave("data.bin", AutoDetect, KindDense)
	require.NoError(t, err)
	assert.Equal(t, ArmaBinary, got)

	got, err = ResolveSave("data.bin", AutoDetect, KindSparse)
	require.NoError(t, err)
	assert.Equal(t, ArmaBinary, got)
}

func TestResolveSaveExplicitHintWins(t *testing.T) {
	// The extension says CSV; the hint must win without inspection.
	got, err := ResolveSave("data.csv", RawASCII, KindDense)
	require.NoError(t, err)
	assert.Equal(t, RawASCII, got)

	// Even a nonsensical extension is ignored under an explicit hint.
	got, err = ResolveSave("data.weird", ArmaBinary, KindDense)
	require.NoError(t, err)
	assert.Equal(t, ArmaBinary, got)

	// But a hint that cannot hold the payload kind still fails.
	_, err = ResolveSave("data.tsv", CoordASCII, KindDense)
	assert.ErrorIs(t, err, ErrUnsupportedForPayload)
}

func TestResolveSaveCaseInsensitive(t *testing.T) {
	for _, name := range []string{"DATA.CSV", "data.Csv", "data.cSV"} {
		got, err := ResolveSave(name, AutoDetect, KindDense)
		require.NoError(t, err, name)
		assert.Equal(t, CSVASCII, got, name)
	}
}

func TestResolveSaveErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		kind     PayloadKind
		wantErr  error
	}{
		{"unknown extension", "data.weird", KindDense, ErrUnknownExtension},
		{"no extension", "data", KindDense, ErrUnknownExtension},
		{"empty filename", "", KindDense, ErrUnknownExtension},
		{"trailing dot", "data.", KindDense, ErrUnknownExtension},
		{"sparse-only extension for dense", "data.tsv", KindDense, ErrUnsupportedForPayload},
		{"dense-only extension for sparse", "data.csv", KindSparse, ErrUnsupportedForPayload},
		{"pgm for sparse", "data.pgm", KindSparse, ErrUnsupportedForPayload},
		{"txt default csv invalid for sparse", "data.txt", KindSparse, ErrUnsupportedForPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveSave(tt.filename, AutoDetect, tt.kind)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolveObjectSave(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"model.json", FormatJSON},
		{"model.xml", FormatXML},
		{"model.bin", FormatBIN},
		{"model.JSON", FormatJSON},
	}
	for _, tt := range tests {
		got, err := ResolveObjectSave(tt.filename, FormatAutodetect)
		require.NoError(t, err, tt.filename)
		assert.Equal(t, tt.want, got, tt.filename)
	}

	_, err := ResolveObjectSave("model.weird", FormatAutodetect)
	assert.ErrorIs(t, err, ErrUnknownExtension)

	// Explicit format wins over the extension.
	got, err := ResolveObjectSave("model.json", FormatBIN)
	require.NoError(t, err)
	assert.Equal(t, FormatBIN, got)
}

func TestParseFileType(t *testing.T) {
	tests := []struct {
		in   string
		want FileType
	}{
		{"auto", AutoDetect},
		{"csv", CSVASCII},
		{"raw_ascii", RawASCII},
		{"arma_binary", ArmaBinary},
		{"tsv", CoordASCII},
		{"HDF5", HDF5Binary},
	}
	for _, tt := range tests {
		got, err := ParseFileType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFileType("parquet")
	assert.Error(t, err)
}
