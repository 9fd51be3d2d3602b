package ui

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// RenameDiff renders the transition from oldName to newName with the
// removed runs struck through and the inserted runs highlighted, so a
// dry-run plan shows exactly which parts of a name change.
func RenameDiff(oldName, newName string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldName, newName, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString(deletedStyle.Render(d.Text))
		case diffmatchpatch.DiffInsert:
			b.WriteString(insertedStyle.Render(d.Text))
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
