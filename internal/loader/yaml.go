// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	yamlTypeRule  = "rule"
	yamlTypeQuery = "query"
)

// yamlEntry is a single rule or query as written in a YAML file. Fields the
// client does not send are ignored.
type yamlEntry struct {
	Type     string `yaml:"type"`
	Name     string `yaml:"name"`
	Source   string `yaml:"source"`
	Severity string `yaml:"severity"`
}

type yamlFile struct {
	Rules   []yamlEntry `yaml:"rules"`
	Queries []yamlEntry `yaml:"queries"`

	yamlEntry `yaml:",inline"`
}

// parseYAML reads a YAML document holding either rules:/queries: lists or a
// single rule or query. A single entry without a type is a query.
func parseYAML(r io.Reader, name string) (rules, queries []source, err error) {
	var doc yamlFile
	if err = yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: %s: empty YAML file", ErrLoadDetections, name)
		}
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrLoadDetections, name, err)
	}

	if len(doc.Rules) == 0 && len(doc.Queries) == 0 {
		entry := doc.yamlEntry
		if entry.Type == "" {
			entry.Type = yamlTypeQuery
		}
		switch entry.Type {
		case yamlTypeRule:
			doc.Rules = append(doc.Rules, entry)
		case yamlTypeQuery:
			doc.Queries = append(doc.Queries, entry)
		default:
			return nil, nil, fmt.Errorf("%w: invalid type %q in %s", ErrLoadDetections, entry.Type, name)
		}
	}

	if rules, err = yamlSources(doc.Rules, name); err != nil {
		return nil, nil, err
	}
	if queries, err = yamlSources(doc.Queries, name); err != nil {
		return nil, nil, err
	}
	return rules, queries, nil
}

func yamlSources(entries []yamlEntry, name string) ([]source, error) {
	sources := make([]source, 0, len(entries))
	for _, e := range entries {
		if e.Source == "" {
			return nil, fmt.Errorf("%w: missing source in '%s'", ErrLoadDetections, name)
		}
		sources = append(sources, source{Name: e.Name, Source: e.Source, Severity: e.Severity})
	}
	return sources, nil
}
