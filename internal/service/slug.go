package service

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]`)
	slugDashRuns     = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe slug from a release's title and
// version: lowercase "{title}-{version}", every character outside
// [a-z0-9-] replaced with '-', dash runs collapsed, edges trimmed.
// Deterministic but not unique; distinct releases with similar titles
// can collide.
func GenerateSlug(title, version string) string {
	combined := strings.ToLower(title + "-" + version)
	slug := slugInvalidChars.ReplaceAllString(combined, "-")
	slug = slugDashRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
