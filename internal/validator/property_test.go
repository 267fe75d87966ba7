package validator

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"configlint/internal/schema"
)

// Property: constraint bounds are inclusive. Any in-range value passes with
// no constraint error; any out-of-range value yields exactly one.
func TestValidate_ConstraintBounds_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("in-range shots_per_burst never errors", prop.ForAll(
		func(shots int) bool {
			doc := validWeapon()
			doc["shots_per_burst"] = shots
			result := Validate(doc, schema.KindWeapon, "weapon.yaml")
			return result.Valid()
		},
		gen.IntRange(1, 100),
	))

	properties.Property("above-range shots_per_burst errors exactly once", prop.ForAll(
		func(shots int) bool {
			doc := validWeapon()
			doc["shots_per_burst"] = shots
			result := Validate(doc, schema.KindWeapon, "weapon.yaml")
			return len(result.Errors) == 1 &&
				strings.Contains(result.Errors[0].Message, "exceeds maximum")
		},
		gen.IntRange(101, 100000),
	))

	properties.Property("below-range shots_per_burst errors exactly once", prop.ForAll(
		func(shots int) bool {
			doc := validWeapon()
			doc["shots_per_burst"] = shots
			result := Validate(doc, schema.KindWeapon, "weapon.yaml")
			return len(result.Errors) == 1 &&
				strings.Contains(result.Errors[0].Message, "below minimum")
		},
		gen.IntRange(-100000, 0),
	))

	properties.TestingRun(t)
}

// Property: unknown fields produce exactly one warning each and never
// affect validity.
func TestValidate_UnknownFields_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	genFieldNames := gen.SliceOfN(4, gen.RegexMatch(`zz_[a-z]{1,8}`)).
		SuchThat(func(names []string) bool {
			seen := make(map[string]bool)
			for _, n := range names {
				if seen[n] {
					return false
				}
				seen[n] = true
			}
			return true
		})

	properties.Property("one warning per unknown field, validity unaffected", prop.ForAll(
		func(names []string) bool {
			doc := validWeapon()
			for _, n := range names {
				doc[n] = "extra"
			}
			result := Validate(doc, schema.KindWeapon, "weapon.yaml")
			return result.Valid() && len(result.Warnings) == len(names)
		},
		genFieldNames,
	))

	properties.TestingRun(t)
}

// Property: validation is a pure function of the document; repeated runs
// yield identical ordered findings.
func TestValidate_Idempotent_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Mix correct and incorrect values so both error and warning paths run.
	genValue := gen.OneGenOf(
		gen.IntRange(-10, 200),
		gen.AlphaString(),
		gen.Bool(),
	)

	properties.Property("repeated validation is stable", prop.ForAll(
		func(shots any, extra any) bool {
			doc := validWeapon()
			doc["shots_per_burst"] = shots
			doc["zz_extra"] = extra

			first := Validate(doc, schema.KindWeapon, "weapon.yaml")
			second := Validate(doc, schema.KindWeapon, "weapon.yaml")

			return reflect.DeepEqual(first.Errors, second.Errors) &&
				reflect.DeepEqual(first.Warnings, second.Warnings)
		},
		genValue,
		genValue,
	))

	properties.TestingRun(t)
}
