package core

import (
	"fmt"

	"github.com/tsawler/pdfstream/internal/filters"
)

// Decode decodes the stream data according to the /Filter and /DecodeParms
// entries of the stream dictionary. See DecodeStream.
func (s *Stream) Decode() ([]byte, error) {
	return DecodeStream(s.Data, s.Dict.Get("Filter"), s.Dict.Get("DecodeParms"))
}

// DecodeStream applies the filter chain described by filter and parms to
// data and returns the decoded bytes.
//
// filter is nil, a Name, or an Array of Names; the first filter listed is
// applied first. parms is nil, Null, a Dict for a single filter, or an Array
// with one Dict or Null per filter. With no filter the data is returned
// unchanged. On any error no output is returned.
func DecodeStream(data []byte, filter, parms Object) ([]byte, error) {
	names, err := filterNames(filter)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return data, nil
	}

	params, err := filterParams(parms, len(names))
	if err != nil {
		return nil, err
	}

	return filters.Chain(data, names, params)
}

// filterNames normalizes a /Filter value to a list of filter names.
func filterNames(filter Object) ([]string, error) {
	switch f := filter.(type) {
	case nil, Null:
		return nil, nil

	case Name:
		return []string{string(f)}, nil

	case Array:
		names := make([]string, len(f))
		for i, obj := range f {
			name, ok := obj.(Name)
			if !ok {
				return nil, shapeError("filter %d is not a name: %s", i, typeName(obj))
			}
			names[i] = string(name)
		}
		return names, nil

	default:
		return nil, shapeError("invalid Filter type: %s", typeName(filter))
	}
}

// filterParams normalizes a /DecodeParms value to one Params per filter.
// A nil result means no filter has parameters.
func filterParams(parms Object, count int) ([]filters.Params, error) {
	switch p := parms.(type) {
	case nil, Null:
		return nil, nil

	case Dict:
		if count != 1 {
			return nil, shapeError("a single DecodeParms dictionary needs exactly one filter, got %d", count)
		}
		return []filters.Params{dictToParams(p)}, nil

	case Array:
		if len(p) != count {
			return nil, shapeError("DecodeParms has %d entries for %d filters", len(p), count)
		}
		params := make([]filters.Params, count)
		for i, obj := range p {
			switch v := obj.(type) {
			case nil, Null:
			case Dict:
				params[i] = dictToParams(v)
			default:
				return nil, shapeError("DecodeParms entry %d is not a dictionary: %s", i, typeName(obj))
			}
		}
		return params, nil

	default:
		return nil, shapeError("invalid DecodeParms type: %s", typeName(parms))
	}
}

// dictToParams converts a Dict to filters.Params, translating PDF object
// types to Go primitive types (Int->int, Real->float64, Bool->bool, etc.).
func dictToParams(dict Dict) filters.Params {
	params := make(filters.Params, len(dict))
	for k, v := range dict {
		switch obj := v.(type) {
		case Int:
			params[k] = int64(obj)
		case Real:
			params[k] = float64(obj)
		case Bool:
			params[k] = bool(obj)
		case String:
			params[k] = string(obj)
		case Name:
			params[k] = string(obj)
		case Null:
			params[k] = nil
		default:
			params[k] = v
		}
	}
	return params
}

func shapeError(format string, args ...interface{}) error {
	return &DecodeError{Kind: ErrMalformedStream, Offset: -1, Msg: fmt.Sprintf(format, args...)}
}

func typeName(obj Object) string {
	if obj == nil {
		return "missing"
	}
	return obj.Type().String()
}
