package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/leetlens/internal/core/domain"
	"github.com/custodia-labs/leetlens/internal/htmltext"
	"github.com/custodia-labs/leetlens/internal/logger"
)

// Format is a catalog file encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrEmptyCatalog is returned for a file with no content.
var ErrEmptyCatalog = errors.New("catalog file is empty")

// FormatFromPath picks the format from the file extension.
// Anything other than .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a catalog. Order is preserved.
// The top level must be a list. An entry that is not an object is dropped
// and logged; within an object, a field that fails to decode keeps its
// zero value so the rest of the record is still scanned. HTML descriptions
// are reduced to plain text.
func Decode(data []byte, format Format) ([]domain.Problem, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyCatalog
	}
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatJSON:
		return decodeJSON(data)
	default:
		return nil, fmt.Errorf("%w: unknown catalog format %q", domain.ErrInvalidInput, format)
	}
}

// field binds a record key to the Problem field it fills.
type field struct {
	key string
	set func(decode func(any) error) error
}

// into decodes into a fresh value and assigns it only on success, so a
// half-decoded list never reaches the problem.
func into[T any](dst *T) func(func(any) error) error {
	return func(decode func(any) error) error {
		var v T
		if err := decode(&v); err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func problemFields(p *domain.Problem) map[string]field {
	fields := []field{
		{"title", into(&p.Title)},
		{"description", into(&p.Description)},
		{"url", into(&p.URL)},
		{"difficulty", into(&p.Difficulty)},
		{"topics", into(&p.Topics)},
		{"isPremium", into(&p.IsPremium)},
		{"is_sql", into(&p.IsSQL)},
	}
	byKey := make(map[string]field, len(fields))
	for _, f := range fields {
		byKey[f.key] = f
	}
	return byKey
}

func decodeJSON(data []byte) ([]domain.Problem, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	problems := make([]domain.Problem, 0, len(records))
	for i, raw := range records {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
			logger.Warn("Skipping catalog record %d: not an object", i)
			continue
		}

		var p domain.Problem
		fields := problemFields(&p)
		for key, value := range obj {
			f, ok := fields[key]
			if !ok {
				continue
			}
			if err := f.set(func(v any) error { return json.Unmarshal(value, v) }); err != nil {
				logger.Warn("Catalog record %d: ignoring field %q: %v", i, key, err)
			}
		}
		problems = append(problems, finish(i, p))
	}
	return problems, nil
}

func decodeYAML(data []byte) ([]domain.Problem, error) {
	var records []yaml.Node
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	problems := make([]domain.Problem, 0, len(records))
	for i := range records {
		node := &records[i]
		if node.Kind != yaml.MappingNode {
			logger.Warn("Skipping catalog record %d: not a mapping", i)
			continue
		}

		var p domain.Problem
		fields := problemFields(&p)
		// Content alternates key and value nodes.
		for j := 0; j+1 < len(node.Content); j += 2 {
			key, value := node.Content[j].Value, node.Content[j+1]
			f, ok := fields[key]
			if !ok {
				continue
			}
			if err := f.set(value.Decode); err != nil {
				logger.Warn("Catalog record %d: ignoring field %q: %v", i, key, err)
			}
		}
		problems = append(problems, finish(i, p))
	}
	return problems, nil
}

// finish strips markup from an HTML description and flags odd difficulty
// labels, which are still stored as given.
func finish(i int, p domain.Problem) domain.Problem {
	if htmltext.IsHTML(p.Description) {
		p.Description = htmltext.Text(p.Description)
	}
	if p.Difficulty != "" && !p.Difficulty.IsKnown() {
		logger.Warn("Catalog record %d (%q): unknown difficulty %q", i, p.Title, p.Difficulty)
	}
	return p
}
