package transform

import (
	"regexp"
	"strconv"
	"strings"
)

// placeholderRegex matches {name} and {name:WIDTH} tokens in a template.
var placeholderRegex = regexp.MustCompile(`\{(\w+)(?::(\d+))?\}`)

// Template is a parsed new-name pattern. Construct it once per run with
// ParseTemplate and reuse it for every file.
type Template struct {
	raw string
}

// ParseTemplate wraps a raw pattern string like
// "{title} - S{season:02}E{episode:02}".
func ParseTemplate(raw string) *Template {
	return &Template{raw: raw}
}

// String returns the raw pattern text.
func (t *Template) String() string {
	return t.raw
}

// UnknownNames returns the placeholder names in the template that resolve
// neither from caps nor from the built-in season/title fallbacks. The
// caller can warn about them once; Render substitutes them as empty.
func (t *Template) UnknownNames(caps Captures) []string {
	var unknown []string
	seen := make(map[string]bool)
	for _, m := range placeholderRegex.FindAllStringSubmatch(t.raw, -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := caps[name]; ok {
			continue
		}
		if name == "season" || name == "title" {
			continue
		}
		unknown = append(unknown, name)
	}
	return unknown
}

// Render substitutes every placeholder in the template and returns the new
// base name, without any extension. It is total: missing captures degrade
// to the default season, the title override, or the empty string, and a
// value that does not parse as a number ignores its width directive instead
// of failing. Literal text outside placeholders passes through unchanged.
//
// Resolution order per placeholder:
//  1. the configured title override, when the name is "title"
//  2. the captured group of the same name
//  3. the configured default season, when the name is "season"
//  4. the empty string
func (t *Template) Render(caps Captures, cfg Config) string {
	return placeholderRegex.ReplaceAllStringFunc(t.raw, func(token string) string {
		m := placeholderRegex.FindStringSubmatch(token)
		name, width := m[1], m[2]

		var value string
		switch {
		case name == "title" && cfg.TitleSet:
			value = cfg.Title
		default:
			if v, ok := caps[name]; ok {
				value = v
			} else if name == "season" {
				value = cfg.DefaultSeason
			}
		}

		if width != "" {
			value = zeroPad(value, width)
		}
		return value
	})
}

// zeroPad left-pads value with zeros to at least width digits. Values that
// are not non-negative integers are returned verbatim, and longer values
// are never truncated.
func zeroPad(value, width string) string {
	if n, err := strconv.Atoi(value); err != nil || n < 0 {
		return value
	}
	w, err := strconv.Atoi(width)
	if err != nil || len(value) >= w {
		return value
	}
	return strings.Repeat("0", w-len(value)) + value
}
