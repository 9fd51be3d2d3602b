// Package renamer walks a directory tree, runs each filename through the
// transformation engine, and applies the resulting rename plan.
package renamer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"

	"github.com/lijunzh/renamer/transform"
)

// Planner collects the per-run inputs needed to build a rename plan. It
// never mutates the filesystem; Execute does that.
type Planner struct {
	Fs       afero.Fs
	Pattern  *regexp.Regexp
	Template *transform.Template
	Config   transform.Config

	// FileTypes is the extension allow-list. Empty means every file is a
	// candidate. Matching is case-insensitive.
	FileTypes []string

	// Depth limits recursion: 1 processes only the directory's immediate
	// files, 2 adds one level of subdirectories, and so on.
	Depth int

	Logger *log.Logger
}

// Plan walks root up to the configured depth and returns the proposed
// renames in walk order. Files whose names do not match the pattern, or
// whose extension is not allowed, are skipped silently. Two files resolving
// to the same output name keep only the first; the rest are skipped with a
// warning.
func (p *Planner) Plan(root string) ([]PlannedRename, error) {
	logger := p.Logger
	if logger == nil {
		logger = log.Default()
	}

	var plans []PlannedRename
	claimed := make(map[string]string) // new path → old path that owns it
	warnedNames := make(map[string]bool)

	err := afero.Walk(p.Fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		depth := p.depthOf(root, path)
		if info.IsDir() {
			if depth >= p.Depth && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if depth > p.Depth {
			return nil
		}

		name := filepath.Base(path)
		if !p.shouldProcess(name) {
			return nil
		}

		caps, ok := transform.Match(p.Pattern, name)
		if !ok {
			return nil
		}

		for _, unknown := range p.Template.UnknownNames(caps) {
			if !warnedNames[unknown] {
				warnedNames[unknown] = true
				logger.Warn("template placeholder has no capture, default, or override; substituting empty string", "placeholder", unknown)
			}
		}

		newName := p.proposedName(name, caps)
		if newName == name {
			return nil
		}

		newPath := filepath.Join(filepath.Dir(path), newName)
		if owner, taken := claimed[newPath]; taken {
			logger.Warn("skipping file: its new name collides with an earlier rename", "file", path, "new", newPath, "owner", owner)
			return nil
		}
		claimed[newPath] = path

		plans = append(plans, PlannedRename{
			OldPath: path,
			NewPath: newPath,
			Warn:    transform.NeedsConfirmation(caps, p.Config),
		})
		logger.Info("planned rename", "from", path, "to", newPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	return plans, nil
}

// proposedName renders the new base name and re-attaches the original
// extension. A template that already spells out the extension does not end
// up doubling it, and the original extension's casing always wins. The
// result is NFC-normalized so composed and decomposed inputs produce the
// same output name.
func (p *Planner) proposedName(name string, caps transform.Captures) string {
	base := p.Template.Render(caps, p.Config)
	ext := transform.ExtensionOf(name)
	if ext != "" {
		if strings.EqualFold(transform.ExtensionOf(base), ext) {
			base = transform.StripExtension(base)
		}
		base = base + "." + ext
	}
	return norm.NFC.String(base)
}

// shouldProcess applies the extension allow-list.
func (p *Planner) shouldProcess(name string) bool {
	if len(p.FileTypes) == 0 {
		return true
	}
	ext := transform.ExtensionOf(name)
	if ext == "" {
		return false
	}
	for _, ft := range p.FileTypes {
		if strings.EqualFold(strings.TrimPrefix(ft, "."), ext) {
			return true
		}
	}
	return false
}

// depthOf counts path components below root; root itself is depth 0.
func (p *Planner) depthOf(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
