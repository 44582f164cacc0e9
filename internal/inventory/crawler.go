package inventory

import (
	"context"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"alchemia/internal/logging"
)

// skipDirs are pruned wherever they appear in the tree.
var skipDirs = map[string]struct{}{
	".git":             {},
	"node_modules":     {},
	"__pycache__":      {},
	".mypy_cache":      {},
	".ruff_cache":      {},
	".pytest_cache":    {},
	".tox":             {},
	".venv":            {},
	"venv":             {},
	".egg-info":        {},
	"dist":             {},
	"build":            {},
	".DS_Store":        {},
	".Trash":           {},
	".Spotlight-V100":  {},
	".fseventsd":       {},
}

// skipToplevel prunes SDK installs and the pipeline's own tree, but only when
// they sit directly under a source root.
var skipToplevel = map[string]struct{}{
	"google-cloud-sdk":  {},
	"alchemia-ingestvm": {},
}

var skipFiles = map[string]struct{}{
	".DS_Store":   {},
	"Thumbs.db":   {},
	"desktop.ini": {},
	".gitkeep":    {},
}

// Crawler walks source directories and produces inventory entries.
type Crawler struct {
	logger *slog.Logger
}

// NewCrawler constructs a crawler. A nil logger is replaced with a no-op.
func NewCrawler(logger *slog.Logger) *Crawler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Crawler{logger: logging.WithComponent(logger, "intake")}
}

// Crawl walks every source directory and returns one entry per regular file.
// Missing source directories are logged and skipped; unreadable files keep an
// ERROR_UNREADABLE fingerprint rather than aborting the crawl.
func (c *Crawler) Crawl(ctx context.Context, sourceDirs []string) ([]Entry, error) {
	var entries []Entry
	seen := make(map[string]struct{})

	for _, dir := range sourceDirs {
		root, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(root)
		if err != nil {
			c.logger.Warn("source directory missing, skipping", logging.String("dir", root))
			continue
		}
		if !info.IsDir() {
			c.logger.Warn("source path is not a directory, skipping", logging.String("path", root))
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if walkErr != nil {
				c.logger.Warn("cannot read path, skipping", logging.String("path", path), logging.Error(walkErr))
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path == root {
					return nil
				}
				name := d.Name()
				if _, ok := skipDirs[name]; ok {
					return fs.SkipDir
				}
				if strings.HasPrefix(name, ".") {
					return fs.SkipDir
				}
				if filepath.Dir(path) == root {
					if _, ok := skipToplevel[name]; ok {
						return fs.SkipDir
					}
				}
				return nil
			}

			if _, ok := skipFiles[d.Name()]; ok {
				return nil
			}
			if d.Type()&fs.ModeSymlink != 0 {
				return nil
			}
			if _, ok := seen[path]; ok {
				return nil
			}
			seen[path] = struct{}{}

			entry, err := fileEntry(path, root)
			if err != nil {
				c.logger.Warn("cannot stat file, skipping", logging.String("path", path), logging.Error(err))
				return nil
			}
			entries = append(entries, entry)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return entries, nil
}

func fileEntry(path, root string) (Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Entry{}, err
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return Entry{}, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return Entry{
		Path:         path,
		RelativePath: rel,
		SourceDir:    root,
		Filename:     filepath.Base(path),
		Extension:    ext,
		MIMEType:     mimeType,
		SizeBytes:    info.Size(),
		LastModified: info.ModTime().UTC(),
		SHA256:       FingerprintFile(path),
		ParentDir:    filepath.Base(filepath.Dir(path)),
		Depth:        len(strings.Split(rel, string(filepath.Separator))) - 1,
	}, nil
}
