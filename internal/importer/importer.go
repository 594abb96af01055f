// Package importer copies recipe files from another directory into the
// catalog directory. Identical files are skipped; a file whose content differs
// from the one already present is stored next to it as a conflict copy.
package importer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ConflictMarker is inserted before the extension of conflict copies.
const ConflictMarker = ".conflict-"

// DefaultExcludes are never imported.
var DefaultExcludes = []string{".DS_Store", "Thumbs.db", "*.tmp", "*.bak", "*~", ".git"}

// recipeExts lists the file types the importer copies: recipe definitions and
// the documents they reference.
var recipeExts = map[string]bool{
	".yaml": true,
	".yml":  true,
	".md":   true,
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ConflictPair records a conflict found during import.
type ConflictPair struct {
	Original string // file already in the catalog
	Conflict string // where the incoming version was stored
}

// Result is returned by ImportDir.
type Result struct {
	Conflicts []ConflictPair
	Imported  int // files copied, conflict copies included
	Skipped   int // identical files
	Ignored   int // excluded or unsupported files

	// Per-recipe counts; a recipe is a filename stem, so Stew.yaml and
	// Stew.pdf count once.
	RecipesImported  int
	RecipesSkipped   int
	RecipesConflicts int
}

// ImportDir copies recipe files from srcDir into dstDir. source names the
// origin and ends up in conflict file names.
func ImportDir(srcDir, dstDir, source string, excludes []string) (*Result, error) {
	result := &Result{}
	if source == "" {
		source = filepath.Base(srcDir)
	}

	imported := map[string]bool{}
	skipped := map[string]bool{}
	conflicted := map[string]bool{}

	err := filepath.WalkDir(srcDir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == srcDir {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if matchesExclude(rel, excludes) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			result.Ignored++
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !recipeExts[strings.ToLower(filepath.Ext(path))] || IsConflictFile(path) {
			result.Ignored++
			return nil
		}

		dst := filepath.Join(dstDir, rel)
		key := RecipeKey(rel)

		if _, err := os.Stat(dst); err == nil {
			same, err := sameContent(path, dst)
			if err != nil {
				return err
			}
			if same {
				result.Skipped++
				skipped[key] = true
				return nil
			}
			conflictDst := conflictPath(dst, source)
			if err := copyFile(path, conflictDst); err != nil {
				return fmt.Errorf("conflict copy %s → %s: %w", path, conflictDst, err)
			}
			result.Conflicts = append(result.Conflicts, ConflictPair{Original: dst, Conflict: conflictDst})
			result.Imported++
			conflicted[key] = true
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := copyFile(path, dst); err != nil {
			return fmt.Errorf("copy %s → %s: %w", path, dst, err)
		}
		result.Imported++
		imported[key] = true
		return nil
	})
	if err != nil {
		return result, err
	}

	result.RecipesImported = len(imported)
	result.RecipesConflicts = len(conflicted)
	for k := range skipped {
		if !imported[k] && !conflicted[k] {
			result.RecipesSkipped++
		}
	}
	return result, nil
}

// IsConflictFile reports whether path is a conflict copy written by ImportDir.
func IsConflictFile(path string) bool {
	return strings.Contains(filepath.Base(path), ConflictMarker)
}

// FindConflicts walks dir and returns the relative paths of all conflict
// copies left behind by ImportDir, in walk order.
func FindConflicts(dir string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsConflictFile(path) {
			rel, relErr := filepath.Rel(dir, path)
			if relErr != nil {
				rel = path
			}
			found = append(found, rel)
		}
		return nil
	})
	return found, err
}

// conflictPath inserts .conflict-<source> before the final extension.
//
//	Stew.yaml → Stew.conflict-grandma.yaml
func conflictPath(original, source string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(original, ext)
	return base + ConflictMarker + source + ext
}

// RecipeKey maps a path relative to the catalog directory to its recipe key:
// slash-separated, without the extension.
func RecipeKey(rel string) string {
	return strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))
}

// matchesExclude reports whether relPath matches any of the given glob patterns.
func matchesExclude(relPath string, patterns []string) bool {
	name := filepath.Base(relPath)
	for _, pattern := range patterns {
		// Match against the full relative path AND just the basename.
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, relPath); matched {
			return true
		}
	}
	return false
}

func sameContent(a, b string) (bool, error) {
	ha, err := fileHash(a)
	if err != nil {
		return false, fmt.Errorf("hash %s: %w", a, err)
	}
	hb, err := fileHash(b)
	if err != nil {
		return false, fmt.Errorf("hash %s: %w", b, err)
	}
	return ha == hb, nil
}

// fileHash returns the hex-encoded sha256 digest of the file at path.
func fileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// copyFile copies src to dst, preserving permissions.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
