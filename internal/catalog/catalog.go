// Package catalog builds recipe catalogs from files on disk: either a single
// YAML/JSON catalog document or a directory of per-recipe YAML or markdown
// files with yaml frontmatter.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kamusis/recipes-cli/internal/importer"
	"github.com/kamusis/recipes-cli/internal/recipe"
	"gopkg.in/yaml.v3"
)

// ErrDuplicateKey is returned when two recipes resolve to the same key.
var ErrDuplicateKey = errors.New("duplicate recipe key")

// Load reads a catalog from path. Directories are scanned with Discover,
// anything else is parsed with LoadFile.
func Load(path string) (*recipe.Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Discover(path)
	}
	return LoadFile(path)
}

// LoadFile parses a catalog document. The document is either a mapping from
// key to recipe or a sequence of recipes keyed by name. JSON works too since
// it is valid YAML.
func LoadFile(path string) (*recipe.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return recipe.NewCatalog(m), nil
}

// Parse decodes a catalog document into a key -> record map.
func Parse(data []byte) (map[string]recipe.Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	out := map[string]recipe.Record{}
	if len(doc.Content) == 0 {
		return out, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		var m map[string]recipe.Record
		if err := root.Decode(&m); err != nil {
			return nil, err
		}
		for k, r := range m {
			out[k] = normalize(k, r)
		}
	case yaml.SequenceNode:
		var list []recipe.Record
		if err := root.Decode(&list); err != nil {
			return nil, err
		}
		for i, r := range list {
			if strings.TrimSpace(r.Name) == "" {
				return nil, fmt.Errorf("entry %d has no name", i)
			}
			if _, dup := out[r.Name]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, r.Name)
			}
			out[r.Name] = normalize(r.Name, r)
		}
	default:
		return nil, fmt.Errorf("expected a mapping or a sequence of recipes, got %s", kindName(root.Kind))
	}
	return out, nil
}

// Discover walks dir for *.yaml, *.yml and *.md recipe files. The key of each
// recipe is its slash-separated path relative to dir without the extension,
// so mains/stew.yaml becomes "mains/stew". Hidden directories and conflict copies left by
// an import are skipped. A missing directory yields an empty catalog.
func Discover(dir string) (*recipe.Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return recipe.NewCatalog(nil), nil
		}
		return nil, fmt.Errorf("catalog: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog: not a directory: %s", dir)
	}

	out := map[string]recipe.Record{}
	seen := map[string]string{}
	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" && ext != ".md" {
			return nil
		}
		// Conflict copies wait for the user to resolve them.
		if importer.IsConflictFile(path) {
			return nil
		}

		rec, ok, err := readRecipeFile(path, ext)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := importer.RecipeKey(rel)
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("%w: %q (%s and %s)", ErrDuplicateKey, key, prev, path)
		}
		seen[key] = path

		if rec.File == "" {
			rec.File = key + ".pdf"
		}
		stem := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		out[key] = normalize(stem, rec)
		return nil
	}

	if err := filepath.WalkDir(dir, walkFn); err != nil {
		return nil, fmt.Errorf("catalog: scan %s: %w", dir, err)
	}
	return recipe.NewCatalog(out), nil
}

// readRecipeFile decodes one recipe file. Markdown files without frontmatter
// are not recipes and report ok == false.
func readRecipeFile(path, ext string) (recipe.Record, bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return recipe.Record{}, false, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var rec recipe.Record
	if ext == ".md" {
		fm, body, ok := splitFrontmatter(string(b))
		if !ok {
			return recipe.Record{}, false, nil
		}
		if err := yaml.Unmarshal([]byte(fm), &rec); err != nil {
			return recipe.Record{}, false, fmt.Errorf("invalid frontmatter in %s: %w", path, err)
		}
		if strings.TrimSpace(rec.Headline) == "" {
			rec.Headline = inferHeadline(body)
		}
		return rec, true, nil
	}

	if err := yaml.Unmarshal(b, &rec); err != nil {
		return recipe.Record{}, false, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return rec, true, nil
}

func normalize(key string, r recipe.Record) recipe.Record {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		r.Name = key
	}
	r.Headline = strings.TrimSpace(r.Headline)
	return r
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	}
	return fmt.Sprintf("kind %d", k)
}
