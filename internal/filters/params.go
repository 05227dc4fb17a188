package filters

import (
	"fmt"
	"math"
)

// Params represents decode parameters from PDF stream dictionaries.
// Only Predictor and Columns are interpreted; other keys are ignored.
type Params map[string]interface{}

// Int returns the integer value stored under key. The boolean is false when
// the key is absent or nil. A value that is not a whole number is an error.
func (p Params) Int(key string) (int, bool, error) {
	if p == nil {
		return 0, false, nil
	}

	obj, ok := p[key]
	if !ok || obj == nil {
		return 0, false, nil
	}

	switch v := obj.(type) {
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	case int32:
		return int(v), true, nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, true, fmt.Errorf("parameter %s is not an integer: %v", key, v)
		}
		return int(v), true, nil
	default:
		return 0, true, fmt.Errorf("parameter %s has type %T, want a number", key, obj)
	}
}

// intParam is Int with a default for absent keys. Type errors are reported as
// MalformedStream against filter.
func (p Params) intParam(filter, key string, defaultValue int) (int, error) {
	v, ok, err := p.Int(key)
	if err != nil {
		return 0, &DecodeError{Kind: ErrMalformedStream, Filter: filter, Offset: -1, Msg: err.Error()}
	}
	if !ok {
		return defaultValue, nil
	}
	return v, nil
}
