// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sublime-security/sublime-cli/models"
)

// source is a named detection or query before it is typed.
type source struct {
	Name     string
	Source   string
	Severity string
}

func (s source) detection() models.Detection {
	return models.Detection{Name: s.Name, Detection: s.Source, Severity: s.Severity}
}

func (s source) query() models.Query {
	return models.Query{Name: s.Name, Query: s.Source, Severity: s.Severity}
}

// ParseDetections reads detections in PQL file format:
//
//	# comment
//	; name of the next detection
//	first line of the detection
//	  and its continuation
//
//	; another detection
//	...
//
// A blank line ends a detection. Multi-line detections are joined with
// spaces. An input without any detection yields [ErrNoDetections].
func ParseDetections(r io.Reader) ([]models.Detection, error) {
	sources, err := parsePQL(r)
	if err != nil {
		return nil, err
	}
	detections := make([]models.Detection, 0, len(sources))
	for _, s := range sources {
		detections = append(detections, s.detection())
	}
	return detections, nil
}

// ParseQueries reads queries in the same format as [ParseDetections].
func ParseQueries(r io.Reader) ([]models.Query, error) {
	sources, err := parsePQL(r)
	if err != nil {
		return nil, err
	}
	queries := make([]models.Query, 0, len(sources))
	for _, s := range sources {
		queries = append(queries, s.query())
	}
	return queries, nil
}

func parsePQL(r io.Reader) ([]source, error) {
	var (
		sources []source
		body    strings.Builder
		name    string
	)

	flush := func() {
		if text := strings.TrimSpace(body.String()); text != "" {
			sources = append(sources, source{Name: name, Source: text})
		}
		body.Reset()
		name = ""
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "#"):
		case strings.HasPrefix(line, ";"):
			name = strings.TrimSpace(strings.Trim(line, ";"))
		case line == "":
			if body.Len() > 0 {
				flush()
			}
		default:
			body.WriteString(" " + line + " ")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDetections, err)
	}
	flush()

	if len(sources) == 0 {
		return nil, ErrNoDetections
	}
	return sources, nil
}
