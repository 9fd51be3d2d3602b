package renamer

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"

	"github.com/lijunzh/renamer/ui"
)

// Execute applies the plan sequentially. In dry-run mode it prints each
// proposed rename (with the changed parts of the name highlighted) and
// leaves the filesystem untouched. A rename that fails is logged and does
// not stop the batch; Execute reports the failures once the batch is done.
func Execute(fs afero.Fs, plans []PlannedRename, dryRun bool, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	if dryRun {
		fmt.Println(ui.InfoStyle.Render(fmt.Sprintf("Dry run: %d files would be renamed", len(plans))))
		for _, plan := range plans {
			fmt.Printf("  %s %s %s\n", plan.OldPath, ui.ArrowStyle.Render("→"), ui.RenameDiff(plan.OldPath, plan.NewPath))
		}
		return nil
	}

	bar := progressbar.Default(int64(len(plans)), "renaming")
	var failed int
	for _, plan := range plans {
		if err := fs.Rename(plan.OldPath, plan.NewPath); err != nil {
			logger.Error("failed to rename file", "from", plan.OldPath, "to", plan.NewPath, "err", err)
			failed++
		} else {
			logger.Info("renamed", "from", plan.OldPath, "to", plan.NewPath)
		}
		_ = bar.Add(1)
	}

	if failed > 0 {
		fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("❌ %d of %d renames failed", failed, len(plans))))
		return fmt.Errorf("%d of %d renames failed", failed, len(plans))
	}
	fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("✅ Renamed %d files", len(plans))))
	return nil
}
