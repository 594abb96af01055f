package catalog

import "strings"

// splitFrontmatter returns the yaml block between leading "---" fences and the
// remaining body. ok is false when the content carries no frontmatter.
func splitFrontmatter(content string) (fm string, body string, ok bool) {
	s := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(s, "---") {
		return "", content, false
	}

	parts := strings.SplitN(s, "---", 3)
	if len(parts) < 3 {
		return "", content, false
	}
	return strings.TrimSpace(parts[1]), strings.TrimPrefix(parts[2], "\n"), true
}

// inferHeadline returns the first non-empty, non-heading line of a markdown body.
func inferHeadline(body string) string {
	for _, ln := range strings.Split(body, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		return ln
	}
	return ""
}
