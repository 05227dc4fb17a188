// Package filters provides PDF stream decoding filters.
//
// # Supported Filters
//
// FlateDecode (zlib/deflate):
//
//	decoded, err := filters.FlateDecode(data, params)
//
// FlateDecode undoes a predictor after inflating. The Predictor parameter
// selects it:
//   - 1: No prediction (default)
//   - 2-9: rejected with ErrUnsupportedPredictor
//   - 10 and above: PNG row prediction (None, Sub and Up rows), Columns required
//
// ASCIIHexDecode:
//
//	decoded, err := filters.ASCIIHexDecode(data)
//
// ASCII85Decode:
//
//	decoded, err := filters.ASCII85Decode(data)
//
// # Chains
//
// Chain applies several filters by name, first to last:
//
//	decoded, err := filters.Chain(data,
//	    []string{"ASCIIHexDecode", "FlateDecode"},
//	    []filters.Params{nil, {"Predictor": 12, "Columns": 4}})
//
// Every error is a *DecodeError whose Kind is one of the Err* values.
package filters
