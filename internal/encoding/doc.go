// Package encoding implements the tabular byte encoders and decoders
// behind the save and load dispatch:
//
//	CSV          text, comma separated, one matrix row per record
//	raw ASCII    text, whitespace separated, no header
//	Arma ASCII   text, "ARMA_MAT_TXT_FN008" header with dimensions
//	PGM / PPM    binary image formats, 8-bit quantized
//	raw binary   bare little-endian float64 stream, no header
//	Arma binary  "ARMA_MAT_BIN_FN008" header, little-endian float64
//	sparse bin   "ARMA_SPM_BIN_FN008" header, (row, col, value) triplets
//	coord ASCII  text, "row<TAB>col<TAB>value" per nonzero entry
//
// Encoders receive the matrix after orientation has been applied: the
// matrix handed in here is written exactly as given, row i of the
// matrix becoming row i on disk.
package encoding
