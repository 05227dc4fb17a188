package filters

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// FlateDecode decompresses Flate (zlib/deflate) compressed data and then
// undoes any predictor named in params.
//
// Predictor 1 (the default) returns the inflated bytes unchanged. Predictors
// 2 through 9 are rejected with ErrUnsupportedPredictor. Predictor 10 and
// above selects PNG row reconstruction, which requires Columns.
func FlateDecode(data []byte, params Params) ([]byte, error) {
	decompressed, err := zlibDecompress(data)
	if err != nil {
		return nil, err
	}

	predictor, err := params.intParam(FlateName, "Predictor", 1)
	if err != nil {
		return nil, err
	}

	switch {
	case predictor == 1:
		return decompressed, nil

	case predictor >= 10:
		columns, ok, err := params.Int("Columns")
		if err != nil {
			return nil, &DecodeError{Kind: ErrMalformedStream, Filter: FlateName, Offset: -1, Msg: err.Error()}
		}
		if !ok {
			return nil, &DecodeError{
				Kind:   ErrMissingParameter,
				Filter: FlateName,
				Offset: -1,
				Msg:    fmt.Sprintf("Columns is required for predictor %d", predictor),
			}
		}
		return pngReconstruct(decompressed, columns)

	default:
		return nil, &DecodeError{
			Kind:     ErrUnsupportedPredictor,
			Filter:   FlateName,
			Offset:   -1,
			Expected: "1 or >= 10",
			Actual:   fmt.Sprint(predictor),
		}
	}
}

// zlibDecompress inflates a zlib-wrapped stream. Any rejection by the
// inflater, including a truncated stream or a bad checksum, is reported as
// ErrCorruptCompressedData.
func zlibDecompress(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Kind: ErrCorruptCompressedData, Filter: FlateName, Offset: -1, Msg: "bad zlib header", Err: err}
	}
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, &DecodeError{Kind: ErrCorruptCompressedData, Filter: FlateName, Offset: -1, Msg: "inflate failed", Err: err}
	}

	return buf.Bytes(), nil
}
