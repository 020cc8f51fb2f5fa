package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/trebuchet-org/xform/internal/config"
	domainconfig "github.com/trebuchet-org/xform/internal/domain/config"
	"github.com/trebuchet-org/xform/internal/usecase"
)

// SourcePattern selects the files the transform pipeline accepts
const SourcePattern = "**/*.{js,jsx,ts,tsx,mjs,cjs}"

// skippedDirs are never descended into
var skippedDirs = map[string]bool{
	"node_modules":     true,
	"dist":             true,
	".git":             true,
	config.DataDirName: true,
}

// SourceListerAdapter walks the project tree for transformable source files
type SourceListerAdapter struct {
	root string
	fsys iofs.FS
}

// NewSourceListerAdapter creates a lister rooted at the project root
func NewSourceListerAdapter(cfg *domainconfig.RuntimeConfig) *SourceListerAdapter {
	return NewSourceListerFS(cfg.ProjectRoot, os.DirFS(cfg.ProjectRoot))
}

// NewSourceListerFS creates a lister over an arbitrary file system
func NewSourceListerFS(root string, fsys iofs.FS) *SourceListerAdapter {
	return &SourceListerAdapter{root: root, fsys: fsys}
}

// ListSourceFiles returns project-relative, slash-separated paths of every
// source file below roots. A root naming a file is returned as is.
func (l *SourceListerAdapter) ListSourceFiles(ctx context.Context, roots []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, r := range roots {
		rel := config.NormalizePath(l.root, r)
		if rel == "" {
			rel = "."
		}
		if rel == ".." || strings.HasPrefix(rel, "../") || strings.HasPrefix(rel, "/") {
			return nil, fmt.Errorf("%s is outside the project root", r)
		}

		info, err := iofs.Stat(l.fsys, rel)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				return nil, fmt.Errorf("path not found: %s", r)
			}
			return nil, err
		}
		if !info.IsDir() {
			if !seen[rel] {
				seen[rel] = true
				files = append(files, rel)
			}
			continue
		}

		err = iofs.WalkDir(l.fsys, rel, func(p string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if d.IsDir() {
				if p != rel && skippedDirs[d.Name()] {
					return iofs.SkipDir
				}
				return nil
			}
			match, err := doublestar.Match(SourcePattern, p)
			if err != nil {
				return err
			}
			if match && !seen[p] {
				seen[p] = true
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", r, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// Ensure SourceListerAdapter implements SourceFileLister
var _ usecase.SourceFileLister = (*SourceListerAdapter)(nil)
