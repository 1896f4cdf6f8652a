package trakt

import "reflect"

// ArgKind is the primitive kind a required argument must have
type ArgKind string

const (
	// ArgString requires a non-empty string
	ArgString ArgKind = "string"
	// ArgObject requires a non-nil pointer, map or struct
	ArgObject ArgKind = "object"
	// ArgPeriod requires one of the Period constants
	ArgPeriod ArgKind = "period"
)

// checkRequiredArg returns an *InvalidArgumentError when value is absent or
// not of the expected kind.
func checkRequiredArg(value any, name string, kind ArgKind) error {
	if !hasKind(value, kind) {
		return &InvalidArgumentError{Param: name, Kind: kind}
	}
	return nil
}

func hasKind(value any, kind ArgKind) bool {
	if value == nil {
		return false
	}

	switch kind {
	case ArgString:
		s, ok := value.(string)
		return ok && s != ""
	case ArgObject:
		v := reflect.ValueOf(value)
		switch v.Kind() {
		case reflect.Pointer, reflect.Map:
			return !v.IsNil()
		case reflect.Struct:
			return true
		}
		return false
	case ArgPeriod:
		p, ok := value.(Period)
		return ok && p.Valid()
	}

	return false
}
