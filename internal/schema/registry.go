package schema

import "strings"

// DiscriminatorField is the reserved field a document may use to name its
// own kind explicitly. It is always allowed and never warned about.
const DiscriminatorField = "type"

// CurveSuffix marks fields holding piecewise curves: ordered lists of
// two-element [x, y] numeric pairs.
const CurveSuffix = "_curve"

var (
	str      = TypeSet{TypeString}
	integer  = TypeSet{TypeInt}
	number   = TypeSet{TypeInt, TypeFloat}
	list     = TypeSet{TypeList}
	mapping  = TypeSet{TypeMap}
	registry = []Schema{
		{
			Kind: KindEra,
			Required: []Field{
				{Name: "name", Type: str},
				{Name: "archetypes", Type: list},
			},
			Optional: []Field{
				{Name: "description", Type: str},
				{Name: "visual_style", Type: str},
				{Name: "upgrades", Type: list},
			},
			Nested: map[string]Kind{
				"archetypes": KindArchetype,
				"upgrades":   KindUpgrade,
			},
		},
		{
			Kind: KindArchetype,
			Required: []Field{
				{Name: "id", Type: str},
				{Name: "base_health", Type: number},
				{Name: "base_move_speed", Type: number},
			},
			Optional: []Field{
				{Name: "name", Type: str},
				{Name: "description", Type: str},
				{Name: "weapon", Type: str},
				{Name: "weapon_stats", Type: mapping},
				{Name: "prefab", Type: str},
			},
			Constraints: map[string]Range{
				"base_health":     {Min: 0, Max: 10000},
				"base_move_speed": {Min: 0, Max: 100},
			},
			Nested: map[string]Kind{
				"weapon_stats": KindWeapon,
			},
		},
		{
			Kind: KindWeapon,
			Required: []Field{
				{Name: "name", Type: str},
				{Name: "shots_per_burst", Type: integer},
				{Name: "fire_rate", Type: number},
				{Name: "base_hit_chance", Type: number},
				{Name: "base_damage", Type: number},
			},
			Optional: []Field{
				{Name: "effective_range", Type: number},
				{Name: "range_curve", Type: list},
				{Name: "elevation_curve", Type: list},
				{Name: "description", Type: str},
			},
			Constraints: map[string]Range{
				"shots_per_burst": {Min: 1, Max: 100},
				"fire_rate":       {Min: 0.1, Max: 100},
				"base_hit_chance": {Min: 0, Max: 1},
				"base_damage":     {Min: 0, Max: 10000},
				"effective_range": {Min: 0, Max: 1000},
			},
		},
		{
			Kind: KindUpgrade,
			Required: []Field{
				{Name: "name", Type: str},
			},
			Optional: []Field{
				{Name: "description", Type: str},
				{Name: "hit_chance_multiplier", Type: number},
				{Name: "damage_multiplier", Type: number},
				{Name: "elevation_bonus", Type: number},
				{Name: "cost", Type: integer},
			},
			Constraints: map[string]Range{
				"hit_chance_multiplier": {Min: 0, Max: 10},
				"damage_multiplier":     {Min: 0, Max: 10},
				"elevation_bonus":       {Min: -1, Max: 1},
				"cost":                  {Min: 0, Max: 100000},
			},
		},
	}
	byKind = func() map[Kind]Schema {
		m := make(map[Kind]Schema, len(registry))
		for _, s := range registry {
			m[s.Kind] = s
		}
		return m
	}()
)

// Registry returns every schema in declaration order. The slice is shared;
// callers must not mutate it.
func Registry() []Schema {
	return registry
}

// Lookup returns the schema for a kind.
func Lookup(kind Kind) (Schema, bool) {
	s, ok := byKind[kind]
	return s, ok
}

// KindByName matches a kind's canonical name case-insensitively, so a
// document may declare "type: weaponstats" and still be recognized.
func KindByName(name string) (Kind, bool) {
	for _, s := range registry {
		if strings.EqualFold(string(s.Kind), name) {
			return s.Kind, true
		}
	}
	return "", false
}

// Kinds returns the canonical kind names in declaration order.
func Kinds() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = string(s.Kind)
	}
	return names
}
