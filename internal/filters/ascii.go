package filters

import (
	"fmt"
	"math"
)

// ASCIIHexDecode decodes ASCII hexadecimal encoded data.
// Each pair of hexadecimal digits (0-9, A-F, a-f) represents one byte.
// Whitespace is ignored and the > marker is required to end the data.
// A digit left unpaired at the marker, a non-hex character, or a missing
// marker is reported as ErrMalformedStream.
func ASCIIHexDecode(data []byte) ([]byte, error) {
	result := make([]byte, 0, len(data)/2)

	var high byte
	pending := false
	pendingAt := 0

	for i := 0; i < len(data); i++ {
		c := data[i]

		if isWhitespace(c) {
			continue
		}

		if c == '>' {
			if pending {
				return nil, malformed(ASCIIHexName, pendingAt, "unpaired hex digit %q before end marker", data[pendingAt])
			}
			return result, nil
		}

		v, ok := hexDigitValue(c)
		if !ok {
			err := malformed(ASCIIHexName, i, "invalid hex digit")
			err.Expected = "0-9, A-F or a-f"
			err.Actual = fmt.Sprintf("%q", c)
			return nil, err
		}

		if !pending {
			high = v
			pending = true
			pendingAt = i
			continue
		}

		result = append(result, high<<4|v)
		pending = false
	}

	return nil, malformed(ASCIIHexName, len(data), "missing end marker '>'")
}

// ASCII85Decode decodes ASCII base-85 (Ascii85) encoded data.
// Each group of 5 characters (! to u, values 0-84) represents 4 bytes.
// The character 'z' stands for four zero bytes between groups, an optional
// <~ prefix is skipped, and the ~> marker is required to end the data.
func ASCII85Decode(data []byte) ([]byte, error) {
	result := make([]byte, 0, len(data)/5*4+4)

	var group [5]uint32
	n := 0
	started := false

	for i := 0; i < len(data); i++ {
		c := data[i]

		if isWhitespace(c) {
			continue
		}

		// Start marker, only before any symbol has been read.
		if !started && c == '<' && i+1 < len(data) && data[i+1] == '~' {
			started = true
			i++
			continue
		}
		started = true

		if c == 'z' {
			if n != 0 {
				return nil, malformed(ASCII85Name, i, "'z' inside a group of %d symbols", n)
			}
			result = append(result, 0, 0, 0, 0)
			continue
		}

		if c == '~' {
			if i+1 >= len(data) || data[i+1] != '>' {
				return nil, malformed(ASCII85Name, i, "'~' not followed by '>'")
			}
			return finishASCII85(result, group, n, i)
		}

		if c < '!' || c > 'u' {
			err := malformed(ASCII85Name, i, "invalid ASCII85 character")
			err.Expected = "'!' through 'u'"
			err.Actual = fmt.Sprintf("%q", c)
			return nil, err
		}

		group[n] = uint32(c - '!')
		n++

		if n == 5 {
			value := ascii85Value(group)
			if value > math.MaxUint32 {
				return nil, malformed(ASCII85Name, i-4, "group value %d overflows 32 bits", value)
			}
			result = appendBigEndian(result, uint32(value), 4)
			n = 0
		}
	}

	return nil, malformed(ASCII85Name, len(data), "missing end marker '~>'")
}

// finishASCII85 flushes a final partial group of n symbols found at the end
// marker. The group is padded with 85 and only n-1 bytes are kept.
func finishASCII85(result []byte, group [5]uint32, n, offset int) ([]byte, error) {
	switch n {
	case 0:
		return result, nil
	case 1:
		return nil, malformed(ASCII85Name, offset, "final group has a single symbol")
	}

	for j := n; j < 5; j++ {
		group[j] = 85
	}

	value := ascii85Value(group)
	if value > math.MaxUint32 {
		return nil, malformed(ASCII85Name, offset, "final group value %d overflows 32 bits", value)
	}

	return appendBigEndian(result, uint32(value), n-1), nil
}

// ascii85Value computes s0·85⁴ + s1·85³ + s2·85² + s3·85 + s4 without
// wrapping, so the caller can detect values that do not fit in 32 bits.
func ascii85Value(group [5]uint32) uint64 {
	var value uint64
	for _, s := range group {
		value = value*85 + uint64(s)
	}
	return value
}

// appendBigEndian appends the first count bytes of v in big-endian order.
func appendBigEndian(dst []byte, v uint32, count int) []byte {
	for j := 0; j < count; j++ {
		dst = append(dst, byte(v>>(24-j*8)))
	}
	return dst
}

// hexDigitValue converts a hexadecimal character to its numeric value (0-15).
func hexDigitValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

// isWhitespace reports whether c is a PDF whitespace character.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}
