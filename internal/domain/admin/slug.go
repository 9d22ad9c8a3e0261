package admin

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)

	// ligatures NFD leaves whole
	ligatures = strings.NewReplacer("œ", "oe", "æ", "ae")
)

// foldAccents drops combining marks: "côte" -> "cote".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// MakeSlug turns a title into a file-name-safe slug.
// Example: "Côte Sauvage" -> "cote-sauvage"
func MakeSlug(title string) string {
	base := strings.ToLower(strings.TrimSpace(title))
	base = foldAccents(ligatures.Replace(base))
	base = strings.Join(strings.Fields(base), "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "artwork"
	}
	return base
}

// ImagePathFor is where an uploaded image for title is expected to live.
func ImagePathFor(title string) string {
	return "/images/artwork/" + MakeSlug(title) + ".jpg"
}
