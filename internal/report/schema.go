package report

import (
	"fmt"
	"strings"

	"configlint/internal/schema"
)

// examples holds a minimal valid YAML document per kind, printed alongside
// the schema so authors have something to copy.
var examples = map[schema.Kind]string{
	schema.KindEra: `type: EraConfig
name: Ancient
description: Bronze age warriors
archetypes:
  - id: spearman
    base_health: 100
    base_move_speed: 5
upgrades:
  - name: Veterans
    hit_chance_multiplier: 1.2
`,
	schema.KindArchetype: `type: UnitArchetype
id: spearman
name: Spearman
base_health: 100
base_move_speed: 5.0
weapon: bronze_spear
prefab: Units/Ancient/Spearman
`,
	schema.KindWeapon: `type: WeaponStats
name: bronze_spear
shots_per_burst: 1
fire_rate: 1.0
base_hit_chance: 0.8
base_damage: 25
effective_range: 2.0
range_curve:
  - [0, 1.0]
  - [2, 1.0]
  - [3, 0.5]
`,
	schema.KindUpgrade: `type: UpgradeDefinition
name: Veterans
description: Experienced soldiers with better accuracy
hit_chance_multiplier: 1.2
damage_multiplier: 1.1
cost: 100
`,
}

// DescribeSchema renders a kind's field tables, constraint ranges, and an
// example document for the schema subcommand.
func DescribeSchema(s schema.Schema) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s Schema\n", pathStyle.Sprint(string(s.Kind)))
	sb.WriteString(strings.Repeat("=", 40) + "\n")

	sb.WriteString("\nRequired Fields:\n")
	for _, f := range s.Required {
		sb.WriteString(describeField(s, f))
	}

	if len(s.Optional) > 0 {
		sb.WriteString("\nOptional Fields:\n")
		for _, f := range s.Optional {
			sb.WriteString(describeField(s, f))
		}
	}

	if example, ok := examples[s.Kind]; ok {
		sb.WriteString("\nExample (YAML):\n")
		sb.WriteString(example)
	}

	return sb.String()
}

func describeField(s schema.Schema, f schema.Field) string {
	line := fmt.Sprintf("  - %s: %s", f.Name, f.Type)
	if r, ok := s.ConstraintFor(f.Name); ok {
		line += fmt.Sprintf(" (range: %v to %v)", r.Min, r.Max)
	}
	if nested, ok := s.Nested[f.Name]; ok {
		line += fmt.Sprintf(" (of %s)", nested)
	}
	return line + "\n"
}
