// Copyright 2026 the mlpack Go library authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data saves and loads numeric matrices and serializable
// model objects, choosing the on-disk encoding from the filename
// extension or an explicit override.
//
// Supported tabular encodings and their extensions:
//
//	CSV               .csv, .txt
//	raw ASCII         .txt
//	Armadillo ASCII   .txt
//	PGM               .pgm
//	PPM               .ppm
//	raw binary        .bin
//	Armadillo binary  .bin
//	HDF5              .hdf5, .hdf, .h5, .he5
//	coordinate list   .tsv (sparse matrices only)
//
// Where an extension is ambiguous, saves pick CSV for ".txt" and
// Armadillo binary for ".bin"; loads inspect the file's opening bytes.
// Model objects are stored as JSON (.json), XML (.xml) or gob (.bin)
// archives under a caller-chosen name that must match at load time.
//
// Every call either fully succeeds or is reported as failed. With
// fatal set to false a failure produces one warning-level log line
// and a false return; with fatal set to true it panics with a
// *FatalError carrying the same diagnostic. A failed save may leave a
// truncated file behind; the library does not clean up partial
// writes.
//
// Example:
//
//	m, _ := mat.DenseFromSlice(3, 2, []float64{1, 2, 3, 4, 5, 6})
//	if !data.Save("out.csv", m, false, true, data.AutoDetect) {
//	    // failure was logged
//	}
//
//	loaded, ok := data.Load("out.csv", false, true, data.AutoDetect)
package data
