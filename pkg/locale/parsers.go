package locale

import (
	"context"
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// Parser turns serialized locale data into a bundle. The expected shape is
// locale code → category key → word list.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]Definition, error)
}

// YAMLParser parses YAML locale bundles.
type YAMLParser struct{}

// Parse implements the Parser interface.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var bundle map[string]Definition
	if err := yaml.Unmarshal(content, &bundle); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return bundle, nil
}

// JSONParser parses JSON locale bundles.
type JSONParser struct{}

// Parse implements the Parser interface.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var bundle map[string]Definition
	if err := json.Unmarshal(content, &bundle); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return bundle, nil
}
