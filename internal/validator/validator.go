// Package validator checks decoded config documents against the schema
// registry. Every check appends findings to the result instead of aborting,
// so one pass reports everything wrong with a file.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"configlint/internal/schema"
)

// ValidateValue validates a decoded document of unknown shape and kind.
// A non-mapping root or an undetectable kind yields a single root-level
// error; siblings in a batch are unaffected.
func ValidateValue(v any, source string) ValidationResult {
	result := ValidationResult{Source: source}

	doc, ok := v.(map[string]any)
	if !ok {
		result.AddError("root", fmt.Sprintf("expected a mapping, got %s", typeName(v)))
		return result
	}

	kind, ok := DetectKind(doc)
	if !ok {
		result.AddError("root", "unable to detect config kind; add a 'type' field or use recognizable field names")
		return result
	}

	result.Kind = kind
	validateDoc(doc, kind, "", &result)
	return result
}

// Validate validates a mapping document against an explicit kind.
func Validate(doc map[string]any, kind schema.Kind, source string) ValidationResult {
	result := ValidationResult{Source: source, Kind: kind}
	validateDoc(doc, kind, "", &result)
	return result
}

// validateDoc is the recursive core. prefix locates doc within the root
// document ("" at the top, "archetypes[2]" one level down) and composes
// with field names and indices so every finding is addressable.
func validateDoc(doc map[string]any, kind schema.Kind, prefix string, result *ValidationResult) {
	sch, ok := schema.Lookup(kind)
	if !ok {
		result.AddError(rootPath(prefix), fmt.Sprintf("unknown config kind: %s", kind))
		return
	}

	for _, f := range sch.Required {
		path := joinPath(prefix, f.Name)
		value, present := doc[f.Name]
		if !present {
			result.AddError(path, fmt.Sprintf("required field '%s' is missing", f.Name))
			continue
		}
		checkField(value, f, sch, path, result)
	}

	for _, f := range sch.Optional {
		value, present := doc[f.Name]
		if !present || value == nil {
			continue
		}
		checkField(value, f, sch, joinPath(prefix, f.Name), result)
	}

	// Unknown fields warn, never fail. Sorted so repeated runs report them
	// in the same order.
	known := sch.DeclaredFields()
	var unknown []string
	for name := range doc {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		result.AddWarning(joinPath(prefix, name), fmt.Sprintf("unknown field '%s'", name))
	}
}

// checkField runs the type, constraint, curve, and nested-document checks
// that apply to a single present field.
func checkField(value any, f schema.Field, sch schema.Schema, path string, result *ValidationResult) {
	if !matchesSet(value, f.Type) {
		result.AddError(path, fmt.Sprintf("expected %s, got %s", f.Type, typeName(value)))
	}

	// Constraints only ever apply to numeric runtime values; a value that
	// failed the type check is not constraint-checked on top.
	if r, ok := sch.ConstraintFor(f.Name); ok {
		checkConstraints(value, r, path, result)
	}

	if strings.HasSuffix(f.Name, schema.CurveSuffix) {
		if curve, ok := value.([]any); ok {
			checkCurve(curve, path, result)
		}
	}

	if nestedKind, ok := sch.Nested[f.Name]; ok {
		checkNested(value, nestedKind, path, result)
	}
}

// checkConstraints enforces an inclusive [min, max] range. Values exactly
// at either bound pass.
func checkConstraints(value any, r schema.Range, path string, result *ValidationResult) {
	n, ok := numericValue(value)
	if !ok {
		return
	}
	if n < r.Min {
		result.AddError(path, fmt.Sprintf("value %v is below minimum %v", value, r.Min))
	}
	if n > r.Max {
		result.AddError(path, fmt.Sprintf("value %v exceeds maximum %v", value, r.Max))
	}
}

// checkCurve validates a piecewise curve: an ordered list of [x, y] pairs
// with numeric components. Findings carry indexed sub-paths (field[i][0]).
func checkCurve(curve []any, path string, result *ValidationResult) {
	for i, point := range curve {
		pointPath := fmt.Sprintf("%s[%d]", path, i)
		pair, ok := point.([]any)
		if !ok || len(pair) != 2 {
			result.AddError(pointPath, "curve point must be an [x, y] pair")
			continue
		}
		if _, ok := numericValue(pair[0]); !ok {
			result.AddError(pointPath+"[0]", fmt.Sprintf("x value must be numeric, got %s", typeName(pair[0])))
		}
		if _, ok := numericValue(pair[1]); !ok {
			result.AddError(pointPath+"[1]", fmt.Sprintf("y value must be numeric, got %s", typeName(pair[1])))
		}
	}
}

// checkNested recurses into sub-documents declared by the schema: either a
// list of mappings (era archetypes/upgrades) or a single inline mapping
// (archetype weapon_stats). Values of other shapes were already reported by
// the type check.
func checkNested(value any, kind schema.Kind, path string, result *ValidationResult) {
	switch nested := value.(type) {
	case []any:
		for i, elem := range nested {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			sub, ok := elem.(map[string]any)
			if !ok {
				result.AddError(elemPath, fmt.Sprintf("expected a mapping, got %s", typeName(elem)))
				continue
			}
			validateDoc(sub, kind, elemPath, result)
		}
	case map[string]any:
		validateDoc(nested, kind, path, result)
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func rootPath(prefix string) string {
	if prefix == "" {
		return "root"
	}
	return prefix
}
