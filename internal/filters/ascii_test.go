package filters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireDecodeError checks that err is a *DecodeError of the given kind and
// returns it for further inspection.
func requireDecodeError(t *testing.T, err error, kind error) *DecodeError {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)

	var de *DecodeError
	require.True(t, errors.As(err, &de), "expected *DecodeError, got %T", err)
	return de
}

func TestASCIIHexDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"pairs split across lines", "61\n626\n3>", []byte("abc")},
		{"uppercase", "48656C6C6F>", []byte("Hello")},
		{"lowercase", "48656c6c6f>", []byte("Hello")},
		{"whitespace between digits", "4 8\t65\r\n6C\f6C 6F >", []byte("Hello")},
		{"NUL is whitespace", "48\x0041>", []byte("HA")},
		{"empty", ">", []byte{}},
		{"only whitespace", "  \n >", []byte{}},
		{"data after end marker ignored", "61>62", []byte("a")},
		{"full byte range", "00ff7F80>", []byte{0x00, 0xff, 0x7f, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := ASCIIHexDecode([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decoded)
		})
	}
}

func TestASCIIHexDecodeOddDigits(t *testing.T) {
	_, err := ASCIIHexDecode([]byte("48656C6C6>"))

	de := requireDecodeError(t, err, ErrMalformedStream)
	assert.Equal(t, ASCIIHexName, de.Filter)
	assert.Equal(t, 8, de.Offset)
}

func TestASCIIHexDecodeNoEOD(t *testing.T) {
	_, err := ASCIIHexDecode([]byte("48656C6C6F"))

	de := requireDecodeError(t, err, ErrMalformedStream)
	assert.Equal(t, 10, de.Offset)
}

func TestASCIIHexDecodeInvalidChar(t *testing.T) {
	_, err := ASCIIHexDecode([]byte("48G5>"))

	de := requireDecodeError(t, err, ErrMalformedStream)
	assert.Equal(t, 2, de.Offset)
	assert.Equal(t, "'G'", de.Actual)
	assert.Contains(t, err.Error(), "at offset 2")
}

const ascii85Sample = "\n     <~9jqo^BlbD-BleB1DJ+*+F(f,q/0JhKF<GL>Cj@.4Gp$d7F!,L7@<6@)/0JDEF<G%<+EV:2F!,\n" +
	"     O<DJ+*.@<*K0@<6L(Df-\\0Ec5e;DffZ(EZee.Bl.9pF\"AGXBPCsi+DGm>@3BB/F*&OCAfu2/AKY\n" +
	"     i(DIb:@FD,*)+C]U=@3BN#EcYf8ATD3s@q?d$AftVqCh[NqF<G:8+EV:.+Cf>-FD5W8ARlolDIa\n" +
	"     l(DId<j@<?3r@:F%a+D58'ATD4$Bl@l3De:,-DJs`8ARoFb/0JMK@qB4^F!,R<AKZ&-DfTqBG%G\n" +
	"     >uD.RTpAKYo'+CT/5+Cei#DII?(E,9)oF*2M7/c~>\n    "

const ascii85SampleText = "Man is distinguished, not only by his reason, but by this singular passion from " +
	"other animals, which is a lust of the mind, that by a perseverance of delight in the continued and " +
	"indefatigable generation of knowledge, exceeds the short vehemence of any carnal pleasure."

func TestASCII85DecodeSample(t *testing.T) {
	decoded, err := ASCII85Decode([]byte(ascii85Sample))
	require.NoError(t, err)
	assert.Equal(t, ascii85SampleText, string(decoded))
}

func TestASCII85Decode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"hello", "87cURDZ~>", []byte("Hello")},
		{"with whitespace", "87cU\nRD Z ~>", []byte("Hello")},
		{"start marker", "<~87cURDZ~>", []byte("Hello")},
		{"three bytes", "@:E^~>", []byte("abc")},
		{"two symbol final group", "/c~>", []byte(".")},
		{"zero shorthand", "z~>", []byte{0, 0, 0, 0}},
		{"max group", "s8W-!~>", []byte{0xff, 0xff, 0xff, 0xff}},
		{"max partial group", "s8W*~>", []byte{0xff, 0xff, 0xff}},
		{"empty", "~>", []byte{}},
		{"empty with start marker", "<~~>", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := ASCII85Decode([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decoded)
		})
	}
}

func TestASCII85DecodeZeroBetweenGroups(t *testing.T) {
	decoded, err := ASCII85Decode([]byte("87cURz@:E^~>"))
	require.NoError(t, err)
	assert.Equal(t, []byte("Hell\x00\x00\x00\x00abc"), decoded)
}

func TestASCII85DecodeMalformed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{"z inside group", "87z~>", 2},
		{"single symbol final group", "87cURD~>", 6},
		{"missing terminator", "87cURDZ", 7},
		{"tilde without gt", "87cUR~", 5},
		{"character above u", "87vUR~>", 2},
		{"control character", "87\x01UR~>", 2},
		{"high byte", "87\xffcURD~>", 2},
		{"group overflow", "s8W-\"~>", 0},
		{"all u overflow", "uuuuu~>", 0},
		{"partial group overflow", "uuuu~>", 4},
		{"start marker after data", "87cUR<~~>", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ASCII85Decode([]byte(tt.input))
			de := requireDecodeError(t, err, ErrMalformedStream)
			assert.Equal(t, ASCII85Name, de.Filter)
			assert.Equal(t, tt.offset, de.Offset)
		})
	}
}
