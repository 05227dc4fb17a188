package filters

import "fmt"

// PNG row filter tags.
const (
	pngNone = 0
	pngSub  = 1
	pngUp   = 2
)

// pngReconstruct undoes PNG row prediction. Each row is one tag byte followed
// by columns payload bytes; the output is the reconstructed payloads in row
// order. Only the None, Sub and Up row filters are supported.
func pngReconstruct(data []byte, columns int) ([]byte, error) {
	if columns <= 0 {
		return nil, &DecodeError{
			Kind:     ErrMalformedStream,
			Filter:   FlateName,
			Offset:   -1,
			Msg:      "invalid Columns",
			Expected: "> 0",
			Actual:   fmt.Sprint(columns),
		}
	}
	if len(data) == 0 {
		return []byte{}, nil
	}

	// columns < len(data) also keeps columns+1 from overflowing.
	if columns >= len(data) || len(data)%(columns+1) != 0 {
		return nil, &DecodeError{
			Kind:     ErrMalformedStream,
			Filter:   FlateName,
			Offset:   -1,
			Msg:      "data is not a whole number of rows",
			Expected: fmt.Sprintf("multiple of %d bytes", columns+1),
			Actual:   fmt.Sprintf("%d bytes", len(data)),
		}
	}

	rowSize := columns + 1
	numRows := len(data) / rowSize
	result := make([]byte, 0, numRows*columns)

	// The row above the first row is all zeros.
	prev := make([]byte, columns)

	for row := 0; row < numRows; row++ {
		rowStart := row * rowSize
		tag := data[rowStart]

		start := len(result)
		result = append(result, data[rowStart+1:rowStart+rowSize]...)
		cur := result[start:]

		switch tag {
		case pngNone:
		case pngSub:
			for i := 1; i < columns; i++ {
				cur[i] += cur[i-1]
			}
		case pngUp:
			for i := 0; i < columns; i++ {
				cur[i] += prev[i]
			}
		default:
			return nil, &DecodeError{
				Kind:     ErrUnsupportedRowFilter,
				Filter:   FlateName,
				Offset:   rowStart,
				Msg:      fmt.Sprintf("row %d", row),
				Expected: "0, 1 or 2",
				Actual:   fmt.Sprint(tag),
			}
		}

		prev = cur
	}

	return result, nil
}
