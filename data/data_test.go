// Copyright 2026 the mlpack Go library authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfengTT/mlpack/data"
	"github.com/gfengTT/mlpack/logger"
	"github.com/gfengTT/mlpack/mat"
)

func TestMain(m *testing.M) {
	data.SetLogger(logger.Nil)
	os.Exit(m.Run())
}

func TestSaveAndLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	m, err := mat.DenseFromSlice(3, 2, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	require.True(t, data.Save(path, m, false, true, data.AutoDetect))

	got, ok := data.Load(path, false, true, data.AutoDetect)
	require.True(t, ok)
	assert.True(t, m.Equal(got))
}

func TestSaveUnknownExtensionReturnsFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.weird")

	m, err := mat.NewDense(2, 2)
	require.NoError(t, err)

	assert.False(t, data.Save(path, m, false, true, data.AutoDetect))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestModelRoundTrip(t *testing.T) {
	type model struct {
		Depth  int     `json:"depth"`
		Gain   float64 `json:"gain"`
		Labels []int   `json:"labels"`
	}

	for _, tc := range []struct {
		file string
		f    data.Format
	}{
		{"model.json", data.FormatAutodetect},
		{"model.bin", data.FormatAutodetect},
		{"model.dat", data.FormatXML},
	} {
		t.Run(tc.file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			in := model{Depth: 4, Gain: 0.75, Labels: []int{1, 0, 1}}

			require.True(t, data.SaveModel(path, "tree", in, false, tc.f))

			var out model
			require.True(t, data.LoadModel(path, "tree", &out, false, tc.f))
			assert.Equal(t, in, out)
		})
	}
}

func TestSparseUnifiedSave(t *testing.T) {
	dir := t.TempDir()

	sp, err := mat.NewSparse(3, 3)
	require.NoError(t, err)
	sp.Set(1, 1, 9)

	assert.True(t, data.SaveWithOptions(filepath.Join(dir, "s.tsv"), sp, data.Options{}))
	assert.False(t, data.SaveWithOptions(filepath.Join(dir, "s.csv"), sp, data.Options{}))
}

func TestFatalModePanicsWithFatalError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.weird")
	m, err := mat.NewDense(1, 1)
	require.NoError(t, err)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		ferr, ok := r.(*data.FatalError)
		require.True(t, ok)
		assert.ErrorIs(t, ferr, data.ErrUnknownExtension)
	}()
	data.Save(path, m, true, true, data.AutoDetect)
}
