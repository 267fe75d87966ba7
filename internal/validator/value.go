package validator

import "configlint/internal/schema"

// numericValue extracts a float64 from any numeric runtime type. Booleans
// are deliberately not numeric: a config field declared int or float must
// not accept true/false.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// isInteger reports whether the runtime value is an integer type. A float
// with an integral value (1.0) is still a float.
func isInteger(v any) bool {
	switch v.(type) {
	case int, int64, uint64:
		return true
	default:
		return false
	}
}

// typeName names a runtime value for "expected X, got Y" messages using the
// schema vocabulary rather than Go type names.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64, uint64:
		return "int"
	case float32, float64:
		return "float"
	case []any:
		return "list"
	case map[string]any:
		return "map"
	default:
		return "unknown"
	}
}

// matchesType checks a runtime value against one expected field type.
func matchesType(v any, t schema.FieldType) bool {
	switch t {
	case schema.TypeString:
		_, ok := v.(string)
		return ok
	case schema.TypeInt:
		return isInteger(v)
	case schema.TypeFloat:
		_, isFloat32 := v.(float32)
		_, isFloat64 := v.(float64)
		return isFloat32 || isFloat64
	case schema.TypeBool:
		_, ok := v.(bool)
		return ok
	case schema.TypeList:
		_, ok := v.([]any)
		return ok
	case schema.TypeMap:
		_, ok := v.(map[string]any)
		return ok
	default:
		return false
	}
}

// matchesSet checks a value against a type union; any member may match.
func matchesSet(v any, ts schema.TypeSet) bool {
	for _, t := range ts {
		if matchesType(v, t) {
			return true
		}
	}
	return false
}
