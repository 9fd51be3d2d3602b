package transform

import "strings"

// ExtensionOf returns the extension of filename without the leading dot.
// A name with no dot, or whose only dot is the first character (a dotfile),
// has no extension and yields "".
func ExtensionOf(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx <= 0 {
		return ""
	}
	return filename[idx+1:]
}

// StripExtension returns filename with its extension removed. When
// ExtensionOf yields "", the filename is returned unchanged, so
// StripExtension(f) + "." + ExtensionOf(f) == f holds exactly when the
// extension is non-empty.
func StripExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx <= 0 || idx == len(filename)-1 {
		return filename
	}
	return filename[:idx]
}
