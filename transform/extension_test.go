package transform

import "testing"

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"simple extension", "video.mkv", "mkv"},
		{"multiple dots", "show.S01E01.mkv", "mkv"},
		{"no extension", "README", ""},
		{"dotfile", ".gitignore", ""},
		{"dotfile with extension", ".hidden.mp4", "mp4"},
		{"trailing dot", "weird.", ""},
		{"uppercase preserved", "video.MKV", "MKV"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtensionOf(tt.filename)
			if result != tt.expected {
				t.Errorf("ExtensionOf(%q) = %q, expected %q", tt.filename, result, tt.expected)
			}
		})
	}
}

func TestStripExtension(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"simple extension", "video.mkv", "video"},
		{"multiple dots", "show.S01E01.mkv", "show.S01E01"},
		{"no extension", "README", "README"},
		{"dotfile", ".gitignore", ".gitignore"},
		{"dotfile with extension", ".hidden.mp4", ".hidden"},
		{"trailing dot", "weird.", "weird."},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripExtension(tt.filename)
			if result != tt.expected {
				t.Errorf("StripExtension(%q) = %q, expected %q", tt.filename, result, tt.expected)
			}
		})
	}
}

func TestSplitRoundTrip(t *testing.T) {
	// StripExtension(f) + "." + ExtensionOf(f) == f whenever the extension
	// is non-empty; otherwise StripExtension(f) == f.
	filenames := []string{
		"video.mkv", "show.S01E01.mkv", ".hidden.mp4", "a.b", "x.MKV",
		"README", ".gitignore", "noext", "",
	}

	for _, f := range filenames {
		ext := ExtensionOf(f)
		base := StripExtension(f)
		if ext != "" {
			if base+"."+ext != f {
				t.Errorf("split of %q does not round-trip: base %q ext %q", f, base, ext)
			}
		} else if base != f {
			t.Errorf("StripExtension(%q) = %q, expected the input unchanged", f, base)
		}
	}
}
