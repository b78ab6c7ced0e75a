package models

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrEmptyBatch is returned when a batch document holds no requests.
var ErrEmptyBatch = errors.New("batch contains no requests")

// batchFile is the wrapped batch layout: a top-level "requests" list.
type batchFile struct {
	Requests []MessageRequest `yaml:"requests"`
}

// DecodeBatch parses a YAML or JSON batch document. Both a bare list of
// requests and a mapping with a "requests" key are accepted.
func DecodeBatch(data []byte) ([]MessageRequest, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyBatch
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parsing batch: %w", err)
	}

	var reqs []MessageRequest
	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&reqs); err != nil {
			return nil, fmt.Errorf("decoding batch: %w", err)
		}
	case yaml.MappingNode:
		var f batchFile
		if err := root.Decode(&f); err != nil {
			return nil, fmt.Errorf("decoding batch: %w", err)
		}
		reqs = f.Requests
	default:
		return nil, fmt.Errorf("decoding batch: expected a list or a mapping with requests")
	}

	if len(reqs) == 0 {
		return nil, ErrEmptyBatch
	}

	return reqs, nil
}
