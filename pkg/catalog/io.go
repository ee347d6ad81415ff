package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/odpi/mermaidgraph/pkg/errors"
)

// Document formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is a decoded aggregate file. Kind is empty when the file is a
// bare aggregate without an envelope.
type Document struct {
	Kind      string          `json:"kind,omitempty"`
	Aggregate json.RawMessage `json:"aggregate"`
}

// FormatFromPath returns the document format implied by a file extension.
// Anything that is not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ReadDocumentFile reads a JSON or YAML aggregate document from disk.
func ReadDocumentFile(path string) (Document, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "aggregate file %s", path)
		}
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseDocument(data, FormatFromPath(path))
}

// ReadDocument reads a document of the given format from r.
func ReadDocument(r io.Reader, format string) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}
	return ParseDocument(data, format)
}

// ParseDocument parses a JSON or YAML document. A top-level object with an
// "aggregate" member is treated as an envelope; anything else is a bare
// aggregate.
func ParseDocument(data []byte, format string) (Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Document{}, errors.New(errors.ErrCodeInvalidAggregate, "empty document")
	}

	if format == FormatYAML {
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return Document{}, errors.Wrap(errors.ErrCodeInvalidAggregate, err, "parse yaml")
		}
		data = converted
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidAggregate, err, "parse json")
	}

	if raw, ok := probe["aggregate"]; ok {
		var doc Document
		if k, ok := probe["kind"]; ok {
			if err := json.Unmarshal(k, &doc.Kind); err != nil {
				return Document{}, errors.Wrap(errors.ErrCodeInvalidAggregate, err, "parse kind")
			}
		}
		doc.Aggregate = raw
		return doc, nil
	}
	return Document{Aggregate: json.RawMessage(data)}, nil
}

// Decode unmarshals a raw aggregate into T.
func Decode[T any](raw json.RawMessage) (*T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errors.New(errors.ErrCodeInvalidAggregate, "missing aggregate")
	}
	var v T
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidAggregate, err, "decode aggregate")
	}
	return &v, nil
}

// MarshalDocument encodes a document as indented JSON.
func MarshalDocument(kind string, aggregate any) ([]byte, error) {
	raw, err := json.Marshal(aggregate)
	if err != nil {
		return nil, fmt.Errorf("marshal aggregate: %w", err)
	}
	return json.MarshalIndent(Document{Kind: kind, Aggregate: raw}, "", "  ")
}
