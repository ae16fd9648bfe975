// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sublime-security/sublime-cli/internal/logger"
	"github.com/sublime-security/sublime-cli/models"
)

// LoadDetectionsPath loads detections from a PQL or YAML file, or from every
// *.pql, *.yml and *.yaml file below a directory. Only YAML rules are taken.
func LoadDetectionsPath(ctx context.Context, path string) ([]models.Detection, error) {
	sources, err := loadPath(ctx, path, false)
	if err != nil {
		return nil, err
	}
	detections := make([]models.Detection, 0, len(sources))
	for _, s := range sources {
		detections = append(detections, s.detection())
	}
	return detections, nil
}

// LoadQueriesPath is the query counterpart of [LoadDetectionsPath]. Only
// YAML queries are taken.
func LoadQueriesPath(ctx context.Context, path string) ([]models.Query, error) {
	sources, err := loadPath(ctx, path, true)
	if err != nil {
		return nil, err
	}
	queries := make([]models.Query, 0, len(sources))
	for _, s := range sources {
		queries = append(queries, s.query())
	}
	return queries, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yml" || ext == ".yaml"
}

func isPQL(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pql")
}

func loadPath(ctx context.Context, path string, query bool) ([]source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDetections, err)
	}

	if !info.IsDir() {
		sources, err := loadFile(path, query)
		if err != nil {
			return nil, err
		}
		if len(sources) == 0 {
			return nil, fmt.Errorf("%w in %s", ErrNoDetections, path)
		}
		return sources, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && (isPQL(p) || isYAML(p)) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDetections, err)
	}
	sort.Strings(files)

	log := logger.FromContext(ctx)
	var sources []source
	for _, f := range files {
		loaded, err := loadFile(f, query)
		if err != nil {
			if isYAML(f) {
				log.Warn().Err(err).Str("file", f).Msg("skipping YAML file")
				continue
			}
			return nil, err
		}
		sources = append(sources, loaded...)
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDetections, path)
	}
	return sources, nil
}

func loadFile(path string, query bool) ([]source, error) {
	r, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDetections, err)
	}
	defer r.Close()

	if isYAML(path) {
		rules, queries, err := parseYAML(r, path)
		if err != nil {
			return nil, err
		}
		if query {
			return queries, nil
		}
		return rules, nil
	}

	sources, err := parsePQL(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sources, nil
}
