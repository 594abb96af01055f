package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFile_Mapping(t *testing.T) {
	p := filepath.Join(t.TempDir(), "catalog.yaml")
	writeFile(t, p, `
steak:
  name: Steak
  headline: nice and juicy
  ingredients:
    - name: beef
      quantity: 200g
  rating: 4.0
  file: Steak.pdf
  calories: 500
stew:
  name: Stew
  headline: with pork
  ingredients:
    - name: pork
      quantity: 300g
  rating: null
  file: Stew.pdf
  calories: 350
`)

	c, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 recipes, got %d", c.Len())
	}
	steak, ok := c.Get("steak")
	if !ok {
		t.Fatalf("steak missing")
	}
	if steak.Rating == nil || *steak.Rating != 4.0 {
		t.Fatalf("unexpected rating: %v", steak.Rating)
	}
	if steak.Calories != 500 || steak.Ingredients[0].Quantity != "200g" {
		t.Fatalf("unexpected record: %+v", steak)
	}
	stew, _ := c.Get("stew")
	if stew.Rating != nil {
		t.Fatalf("expected absent rating, got %v", *stew.Rating)
	}
}

func TestLoadFile_SequenceKeyedByName(t *testing.T) {
	p := filepath.Join(t.TempDir(), "catalog.json")
	writeFile(t, p, `[
  {"name": "Steak", "headline": "nice and juicy", "rating": 4.0, "file": "Steak.pdf", "calories": 500,
   "ingredients": [{"name": "beef", "quantity": "200g"}]},
  {"name": "Stew", "headline": "with pork", "rating": 3.55, "file": "Stew.pdf", "calories": 350,
   "ingredients": [{"name": "pork", "quantity": "300g"}]}
]`)

	c, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	keys := c.Keys()
	if len(keys) != 2 || keys[0] != "Steak" || keys[1] != "Stew" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantDup bool
	}{
		{"scalar document", "just a string", false},
		{"sequence entry without name", "- headline: x\n", false},
		{"duplicate names", "- name: Stew\n- name: Stew\n", true},
		{"invalid yaml", "a: [", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := errors.Is(err, ErrDuplicateKey); got != tt.wantDup {
				t.Fatalf("errors.Is(ErrDuplicateKey) = %v, err = %v", got, err)
			}
		})
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	m, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m) != 0 {
		t.Fatalf("expected empty catalog, got %v", m)
	}
}

func TestParse_NameFallsBackToKey(t *testing.T) {
	m, err := Parse([]byte("goulash:\n  headline: slow cooked\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m["goulash"].Name != "goulash" {
		t.Fatalf("unexpected name: %q", m["goulash"].Name)
	}
}

func TestDiscover_ParsesFilesAndFrontmatter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "mains", "stew.yaml"), "name: Stew\nheadline: with pork\nrating: 3.55\ningredients:\n  - name: pork\n    quantity: 300g\n")
	writeFile(t, filepath.Join(dir, "steak.md"), "---\nname: Steak\nrating: 4\nfile: pdf/Steak.pdf\ningredients:\n  - name: beef\n---\n\n# Steak\n\nNice and juicy\n")
	writeFile(t, filepath.Join(dir, "README.md"), "# Just notes\n")
	writeFile(t, filepath.Join(dir, "Steak.pdf"), "%PDF")
	writeFile(t, filepath.Join(dir, ".git", "config.yaml"), "name: ignored\n")
	writeFile(t, filepath.Join(dir, "mains", "stew.conflict-blog.yaml"), "name: Other Stew\n")

	c, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 recipes, got %v", c.Keys())
	}

	stew, ok := c.Get("mains/stew")
	if !ok {
		t.Fatalf("stew missing: %v", c.Keys())
	}
	if stew.File != "mains/stew.pdf" {
		t.Fatalf("unexpected default file: %q", stew.File)
	}

	steak, _ := c.Get("steak")
	if steak.Headline != "Nice and juicy" {
		t.Fatalf("unexpected headline: %q", steak.Headline)
	}
	if steak.File != "pdf/Steak.pdf" {
		t.Fatalf("unexpected file: %q", steak.File)
	}
}

func TestDiscover_DuplicateStem(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "stew.yaml"), "name: Stew\n")
	writeFile(t, filepath.Join(dir, "stew.md"), "---\nname: Other Stew\n---\n")

	_, err := Discover(dir)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestDiscover_SameStemInSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "Stew.yaml"), "headline: from a\n")
	writeFile(t, filepath.Join(dir, "b", "Stew.yaml"), "headline: from b\n")

	c, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	keys := c.Keys()
	if len(keys) != 2 || keys[0] != "a/Stew" || keys[1] != "b/Stew" {
		t.Fatalf("unexpected keys: %v", keys)
	}
	a, _ := c.Get("a/Stew")
	if a.Name != "Stew" || a.Headline != "from a" || a.File != "a/Stew.pdf" {
		t.Fatalf("unexpected record: %+v", a)
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	c, err := Discover(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog")
	}
}

func TestLoad_Dispatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "recipes", "stew.yaml"), "name: Stew\n")
	writeFile(t, filepath.Join(dir, "catalog.yaml"), "- name: Steak\n")

	c, err := Load(filepath.Join(dir, "recipes"))
	if err != nil {
		t.Fatalf("Load dir: %v", err)
	}
	if _, ok := c.Get("stew"); !ok {
		t.Fatalf("expected stew from directory")
	}

	c, err = Load(filepath.Join(dir, "catalog.yaml"))
	if err != nil {
		t.Fatalf("Load file: %v", err)
	}
	if _, ok := c.Get("Steak"); !ok {
		t.Fatalf("expected Steak from file")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing path")
	}
}
