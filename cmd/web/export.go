package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"finitefield.org/docs-landing/internal/handlers"
	"finitefield.org/docs-landing/internal/observability"
)

// exportSite writes every page for the default root and each language into
// outDir, then copies the static assets next to them. It returns the number of
// pages written.
func exportSite(ctx context.Context, s *site, outDir string) (int, error) {
	logger := observability.FromContext(ctx)
	langs := append([]string{""}, s.cfg.Languages...)

	pages := 0
	for _, lang := range langs {
		for _, sp := range sitePages {
			if err := ctx.Err(); err != nil {
				return pages, err
			}
			data, err := s.buildPage(ctx, sp, lang)
			if err != nil {
				return pages, err
			}
			file := sp.file
			if file == "" {
				file = "index.html"
			}
			dst := filepath.Join(outDir, lang, file)
			if err := s.writePage(dst, data); err != nil {
				return pages, fmt.Errorf("write %s: %w", dst, err)
			}
			logger.Debug("page exported", zap.String("path", dst))
			pages++
		}
	}

	if err := copyTree(staticDir, outDir); err != nil {
		return pages, fmt.Errorf("copy static assets: %w", err)
	}
	return pages, nil
}

func (s *site) writePage(dst string, data handlers.PageData) error {
	var buf bytes.Buffer
	if err := s.execute(&buf, data); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, buf.Bytes(), 0o644)
}

// copyTree mirrors src into dst. A missing src is not an error.
func copyTree(src, dst string) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
