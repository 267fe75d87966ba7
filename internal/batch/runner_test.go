package batch

import (
	"os"
	"path/filepath"
	"testing"

	"configlint/internal/schema"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

const validWeaponYAML = `type: WeaponStats
name: bronze_spear
shots_per_burst: 1
fire_rate: 1.0
base_hit_chance: 0.8
base_damage: 25
`

func TestRunner_WalksAndValidates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "weapons", "spear.yaml"), validWeaponYAML)
	writeFile(t, filepath.Join(dir, "upgrades", "veterans.json"), `{"name": "Veterans", "cost": 100}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a config")

	runner := NewRunner(nil)
	results, err := runner.Run(dir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Valid() {
			t.Errorf("%s: unexpected errors %v", r.Source, r.Errors)
		}
	}
	// Lexical walk order: upgrades before weapons.
	if results[0].Kind != schema.KindUpgrade || results[1].Kind != schema.KindWeapon {
		t.Errorf("unexpected kinds: %s, %s", results[0].Kind, results[1].Kind)
	}
}

func TestRunner_SkipsTestDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "spear.yaml"), validWeaponYAML)
	writeFile(t, filepath.Join(dir, "tests", "broken.yaml"), ":\n  - ][")
	writeFile(t, filepath.Join(dir, "test", "other.yaml"), validWeaponYAML)
	writeFile(t, filepath.Join(dir, ".hidden", "secret.yaml"), validWeaponYAML)

	runner := NewRunner(nil)
	results, err := runner.Run(dir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}

func TestRunner_MalformedFileDoesNotAbortBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a_broken.json"), "{not json")
	writeFile(t, filepath.Join(dir, "b_good.yaml"), validWeaponYAML)

	runner := NewRunner(nil)
	results, err := runner.Run(dir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Valid() {
		t.Error("malformed file should have failed")
	}
	if len(results[0].Errors) != 1 {
		t.Errorf("expected single root-level error, got %v", results[0].Errors)
	}
	if !results[1].Valid() {
		t.Errorf("sibling file should still validate: %v", results[1].Errors)
	}
}

func TestValidateFile_NonMappingRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.yaml")
	writeFile(t, path, "- a\n- b\n")

	result := ValidateFile(path)

	if result.Valid() {
		t.Fatal("expected invalid result")
	}
	if result.Errors[0].Path != "root" {
		t.Errorf("expected root error, got %+v", result.Errors[0])
	}
}
