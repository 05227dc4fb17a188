package core

import "github.com/tsawler/pdfstream/internal/filters"

// DecodeError is the error type returned by stream decoding. Its Kind field
// holds one of the Err* values below.
type DecodeError = filters.DecodeError

// Error kinds for stream decoding; match them with errors.Is.
var (
	ErrUnsupportedFilter     = filters.ErrUnsupportedFilter
	ErrUnsupportedPredictor  = filters.ErrUnsupportedPredictor
	ErrUnsupportedRowFilter  = filters.ErrUnsupportedRowFilter
	ErrMissingParameter      = filters.ErrMissingParameter
	ErrMalformedStream       = filters.ErrMalformedStream
	ErrCorruptCompressedData = filters.ErrCorruptCompressedData
)
