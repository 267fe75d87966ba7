package schema

import "strings"

// Kind identifies one of the supported config categories.
type Kind string

const (
	KindEra       Kind = "EraConfig"
	KindArchetype Kind = "UnitArchetype"
	KindWeapon    Kind = "WeaponStats"
	KindUpgrade   Kind = "UpgradeDefinition"
)

// FieldType is the expected runtime type of a config field value.
type FieldType string

const (
	TypeString FieldType = "string"
	TypeInt    FieldType = "int"
	TypeFloat  FieldType = "float"
	TypeBool   FieldType = "bool"
	TypeList   FieldType = "list"
	TypeMap    FieldType = "map"
)

// TypeSet is a union of acceptable field types. A value matches a TypeSet
// when it matches any member.
type TypeSet []FieldType

// String renders the set for "expected X, got Y" messages, e.g. "int or float".
func (ts TypeSet) String() string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = string(t)
	}
	return strings.Join(names, " or ")
}

// Field declares one schema field and its expected type(s). Fields are kept
// in slices rather than maps so validation walks them in declaration order.
type Field struct {
	Name string
	Type TypeSet
}

// Range is an inclusive numeric constraint.
type Range struct {
	Min float64
	Max float64
}

// Schema describes the shape of a single config kind: which fields must be
// present, which may be, numeric ranges, and which list fields contain
// nested sub-documents of another kind.
type Schema struct {
	Kind        Kind
	Required    []Field
	Optional    []Field
	Constraints map[string]Range
	Nested      map[string]Kind
}

// DeclaredFields returns the set of field names the schema knows about,
// including the kind discriminator.
func (s Schema) DeclaredFields() map[string]bool {
	known := make(map[string]bool, len(s.Required)+len(s.Optional)+1)
	for _, f := range s.Required {
		known[f.Name] = true
	}
	for _, f := range s.Optional {
		known[f.Name] = true
	}
	known[DiscriminatorField] = true
	return known
}

// ConstraintFor reports the numeric range declared for a field, if any.
func (s Schema) ConstraintFor(name string) (Range, bool) {
	r, ok := s.Constraints[name]
	return r, ok
}
