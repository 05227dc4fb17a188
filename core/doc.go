// Package core provides the PDF object types a stream is described with and
// decodes stream data through its filter chain.
//
// # Object Types
//
// The object model covers what a stream dictionary can hold:
//
//   - [Null], [Bool], [Int], [Real], [String], [Name]
//   - [Array] and [Dict]
//   - [Stream], a dictionary plus its raw encoded bytes
//
// # Stream Decoding
//
// [DecodeStream] takes the raw bytes, the /Filter value and the /DecodeParms
// value and applies the filters in the order listed:
//
//	data, err := core.DecodeStream(raw,
//	    core.Array{core.Name("ASCII85Decode"), core.Name("FlateDecode")},
//	    core.Array{core.Null{}, core.Dict{"Predictor": core.Int(12), "Columns": core.Int(4)}})
//
// [Stream.Decode] does the same for a [Stream] using its own dictionary.
// Supported filters are FlateDecode (with PNG None, Sub and Up predictors),
// ASCIIHexDecode and ASCII85Decode.
//
// # Errors
//
// Failures are returned as *[DecodeError] and match exactly one of
// [ErrUnsupportedFilter], [ErrUnsupportedPredictor], [ErrUnsupportedRowFilter],
// [ErrMissingParameter], [ErrMalformedStream] or [ErrCorruptCompressedData]
// with errors.Is.
package core
