// Package cmd holds the CLI command implementations.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/lijunzh/renamer/config"
	"github.com/lijunzh/renamer/renamer"
	"github.com/lijunzh/renamer/transform"
	"github.com/lijunzh/renamer/ui"
)

type RenameCmd struct {
	Directory      string   `short:"d" help:"Directory to process." default:"."`
	CurrentPattern string   `short:"c" help:"Regex with named capture groups matching current file names, e.g. \"S(?P<season>\\d+)E(?P<episode>\\d+)\"."`
	NewPattern     string   `short:"n" help:"New file name pattern." default:"{title} - S{season:02}E{episode:02}"`
	FileTypes      []string `short:"t" help:"Comma-separated list of extensions to process, e.g. mkv,ass,srt. Empty processes everything."`
	DryRun         bool     `help:"Only print intended changes without renaming files."`
	DefaultSeason  string   `help:"Season to use when the pattern does not capture one." default:"1"`
	Title          string   `short:"T" help:"Show title for the {title} placeholder; overrides a captured title group."`
	Depth          int      `help:"Recursion depth; 1 processes only the directory itself." default:"1"`
	Yes            bool     `short:"y" help:"Skip the confirmation prompt."`
	Config         string   `help:"TOML config file. Explicit flags always win over its values." type:"existingfile"`
}

func (cmd *RenameCmd) Run() error {
	logger := log.New(os.Stderr)
	fs := afero.NewOsFs()

	fmt.Println(ui.HeaderStyle.Render("Renamer"))

	if cmd.Config != "" {
		fileCfg, err := config.Load(fs, cmd.Config)
		if err != nil {
			return err
		}
		cmd.applyConfig(fileCfg)
	}
	if cmd.CurrentPattern == "" {
		return errors.New("no current pattern: pass --current-pattern or set current_pattern in the config file")
	}

	re, err := regexp.Compile(cmd.CurrentPattern)
	if err != nil {
		return fmt.Errorf("invalid regex pattern provided for current file names: %w", err)
	}
	logger.Info("starting renamer",
		"directory", cmd.Directory,
		"pattern", cmd.CurrentPattern,
		"template", cmd.NewPattern,
		"depth", cmd.Depth,
		"dry_run", cmd.DryRun,
	)

	planner := &renamer.Planner{
		Fs:       fs,
		Pattern:  re,
		Template: transform.ParseTemplate(cmd.NewPattern),
		Config: transform.Config{
			DefaultSeason: cmd.DefaultSeason,
			Title:         cmd.Title,
			TitleSet:      cmd.Title != "",
		},
		FileTypes: cmd.FileTypes,
		Depth:     cmd.Depth,
		Logger:    logger,
	}

	plans, err := planner.Plan(cmd.Directory)
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		fmt.Println(ui.InfoStyle.Render("No files matched the pattern; nothing to do."))
		return nil
	}

	if needsGate(plans) && !cmd.Yes && !cmd.DryRun {
		logger.Warn("some files resolve to season or episode 0; this might be unintended")
		ok, err := ui.Confirm("Some files have season or episode as 0. Proceed?")
		if err != nil {
			return err
		}
		if !ok {
			logger.Warn("aborting as per user request")
			return nil
		}
	}

	return renamer.Execute(fs, plans, cmd.DryRun, logger)
}

// needsGate reports whether any planned rename requires confirmation.
func needsGate(plans []renamer.PlannedRename) bool {
	for _, plan := range plans {
		if plan.Warn {
			return true
		}
	}
	return false
}

// applyConfig fills in options the user left at their defaults with values
// from the config file. Explicit CLI flags win.
func (cmd *RenameCmd) applyConfig(cfg config.File) {
	if cmd.Directory == "." && cfg.Directory != nil {
		cmd.Directory = *cfg.Directory
	}
	if cmd.CurrentPattern == "" && cfg.CurrentPattern != nil {
		cmd.CurrentPattern = *cfg.CurrentPattern
	}
	if cmd.NewPattern == defaultNewPattern && cfg.NewPattern != nil {
		cmd.NewPattern = *cfg.NewPattern
	}
	if len(cmd.FileTypes) == 0 && len(cfg.FileTypes) > 0 {
		cmd.FileTypes = cfg.FileTypes
	}
	if !cmd.DryRun && cfg.DryRun != nil {
		cmd.DryRun = *cfg.DryRun
	}
	if cmd.DefaultSeason == "1" && cfg.DefaultSeason != nil {
		cmd.DefaultSeason = *cfg.DefaultSeason
	}
	if cmd.Title == "" && cfg.Title != nil {
		cmd.Title = *cfg.Title
	}
	if cmd.Depth == 1 && cfg.Depth != nil {
		cmd.Depth = *cfg.Depth
	}
}

const defaultNewPattern = "{title} - S{season:02}E{episode:02}"
