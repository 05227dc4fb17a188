package filters

import (
	"fmt"

	"github.com/tsawler/pdfstream/logging"
)

// Filter names as they appear in a stream's /Filter entry.
const (
	FlateName    = "FlateDecode"
	ASCIIHexName = "ASCIIHexDecode"
	ASCII85Name  = "ASCII85Decode"
)

// Kind identifies one of the supported decode filters.
type Kind int

const (
	Flate Kind = iota
	ASCIIHex
	ASCII85
)

// String returns the PDF filter name of k.
func (k Kind) String() string {
	switch k {
	case Flate:
		return FlateName
	case ASCIIHex:
		return ASCIIHexName
	case ASCII85:
		return ASCII85Name
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DecodeFunc decodes data with one filter. Filters that take no
// parameters ignore params.
type DecodeFunc func(data []byte, params Params) ([]byte, error)

var kindsByName = map[string]Kind{
	FlateName:    Flate,
	ASCIIHexName: ASCIIHex,
	ASCII85Name:  ASCII85,
}

var decoders = map[Kind]DecodeFunc{
	Flate:    FlateDecode,
	ASCIIHex: func(data []byte, _ Params) ([]byte, error) { return ASCIIHexDecode(data) },
	ASCII85:  func(data []byte, _ Params) ([]byte, error) { return ASCII85Decode(data) },
}

// ParseKind maps a filter name to its Kind. Unknown names return
// ErrUnsupportedFilter.
func ParseKind(name string) (Kind, error) {
	k, ok := kindsByName[name]
	if !ok {
		return 0, &DecodeError{Kind: ErrUnsupportedFilter, Filter: name, Offset: -1}
	}
	return k, nil
}

// Decode applies the single filter k to data.
func Decode(k Kind, data []byte, params Params) ([]byte, error) {
	fn, ok := decoders[k]
	if !ok {
		return nil, &DecodeError{Kind: ErrUnsupportedFilter, Filter: k.String(), Offset: -1}
	}
	return fn(data, params)
}

// Chain applies the named filters to data in order, feeding the output of
// each filter to the next. params is either nil or has one entry per name; a
// nil entry means the filter has no parameters. Every name is checked before
// any data is decoded, and no partial output is returned on failure.
func Chain(data []byte, names []string, params []Params) ([]byte, error) {
	if params != nil && len(params) != len(names) {
		return nil, &DecodeError{
			Kind:     ErrMalformedStream,
			Offset:   -1,
			Msg:      "decode parameters are not aligned with filters",
			Expected: fmt.Sprintf("%d entries", len(names)),
			Actual:   fmt.Sprintf("%d entries", len(params)),
		}
	}

	kinds := make([]Kind, len(names))
	for i, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}
		kinds[i] = k
	}

	log := logging.Logger()
	for i, k := range kinds {
		var p Params
		if params != nil {
			p = params[i]
		}

		out, err := Decode(k, data, p)
		if err != nil {
			log.Debug("filter failed", "index", i, "filter", k.String(), "error", err)
			return nil, fmt.Errorf("filter %d (%s): %w", i, k, err)
		}

		log.Debug("filter applied", "index", i, "filter", k.String(), "in", len(data), "out", len(out))
		data = out
	}

	return data, nil
}
