package renamer

// PlannedRename is one proposed renaming operation, produced by the planner
// and consumed by Execute or the dry-run printer.
type PlannedRename struct {
	OldPath string
	NewPath string

	// Warn is true when the file's season or episode resolved to "0",
	// which gates the whole batch behind a confirmation prompt.
	Warn bool
}
