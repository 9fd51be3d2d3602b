// Package transform implements the filename transformation engine: matching
// filenames against a named-capture regex and rendering replacement names
// from a placeholder template. All functions are pure and never touch the
// filesystem.
package transform

import "regexp"

// Captures maps named capture groups to the text they matched. Groups that
// did not participate in the match are not present in the map, so absence
// and an empty captured string stay distinguishable.
type Captures map[string]string

// Config holds the per-run options the engine needs to resolve placeholders.
type Config struct {
	// DefaultSeason is substituted for {season} when the pattern did not
	// capture a season group.
	DefaultSeason string

	// Title is the show title for {title}. When TitleSet is true it wins
	// over a captured title group.
	Title    string
	TitleSet bool
}

// Match applies re to filename and extracts its named capture groups.
// The second return value is false when the regex does not match at all,
// which callers treat as a skip signal rather than an error.
func Match(re *regexp.Regexp, filename string) (Captures, bool) {
	idx := re.FindStringSubmatchIndex(filename)
	if idx == nil {
		return nil, false
	}

	caps := make(Captures)
	for i, name := range re.SubexpNames() {
		if name == "" {
			continue
		}
		// A -1 start index means the group did not participate.
		if idx[2*i] < 0 {
			continue
		}
		caps[name] = filename[idx[2*i]:idx[2*i+1]]
	}
	return caps, true
}

// NeedsConfirmation reports whether the resolved season or episode value is
// literally "0". Season resolves to the configured default when not
// captured; episode has no default, so only a captured "0" triggers.
// Renaming to season or episode zero is usually a sign of a bad pattern,
// so the caller gates the whole batch on user confirmation.
func NeedsConfirmation(caps Captures, cfg Config) bool {
	season, ok := caps["season"]
	if !ok {
		season = cfg.DefaultSeason
	}
	if season == "0" {
		return true
	}
	return caps["episode"] == "0"
}
