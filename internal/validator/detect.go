package validator

import "configlint/internal/schema"

// DetectKind infers which schema a document should be validated against.
//
// An explicit discriminator field wins, matched case-insensitively against
// the canonical kind names, even when the rest of the document does not
// resemble that kind. Without one, structural heuristics apply in a fixed
// priority order so overlapping shapes resolve the same way every run.
func DetectKind(doc map[string]any) (schema.Kind, bool) {
	if raw, ok := doc[schema.DiscriminatorField]; ok {
		if name, isString := raw.(string); isString {
			if kind, known := schema.KindByName(name); known {
				return kind, true
			}
		}
	}

	if hasAny(doc, "archetypes") {
		return schema.KindEra, true
	}
	if hasAny(doc, "shots_per_burst", "fire_rate") {
		return schema.KindWeapon, true
	}
	if hasAny(doc, "hit_chance_multiplier", "damage_multiplier") {
		return schema.KindUpgrade, true
	}
	if hasAny(doc, "base_health", "base_move_speed") {
		return schema.KindArchetype, true
	}

	return "", false
}

func hasAny(doc map[string]any, names ...string) bool {
	for _, name := range names {
		if _, ok := doc[name]; ok {
			return true
		}
	}
	return false
}
