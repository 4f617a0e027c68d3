// Package annotation reads the annotation sidecar files that describe where
// class name literals sit in a source file.
//
// A sidecar lists byte spans produced by a span collector for a markup or
// script parser. classwrap does not parse source text itself; the sidecar
// is its only source of structure. JSON sidecars are accepted too, since
// every JSON document is valid YAML.
package annotation

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SidecarSuffix is appended to a source path to find its annotations.
const SidecarSuffix = ".classnames.yaml"

// ErrNoSidecar is returned when a source file has no annotation file.
var ErrNoSidecar = errors.New("no annotation file")

// Entry is one annotated span as written in a sidecar file.
type Entry struct {
	Kind              string `yaml:"kind"                        json:"kind"`
	Start             int    `yaml:"start"                       json:"start"`
	End               int    `yaml:"end"                         json:"end"`
	Delimiter         string `yaml:"delimiter,omitempty"         json:"delimiter,omitempty"`
	Element           string `yaml:"element,omitempty"           json:"element,omitempty"`
	OnTagLine         bool   `yaml:"on_tag_line,omitempty"       json:"on_tag_line,omitempty"`
	SameLineAsName    bool   `yaml:"same_line_as_name,omitempty" json:"same_line_as_name,omitempty"`
	ObjectKey         bool   `yaml:"object_key,omitempty"        json:"object_key,omitempty"`
	TernaryOperand    bool   `yaml:"ternary_operand,omitempty"   json:"ternary_operand,omitempty"`
	BoundAttribute    bool   `yaml:"bound_attribute,omitempty"   json:"bound_attribute,omitempty"`
	PreserveDelimiter bool   `yaml:"preserve_delimiter,omitempty" json:"preserve_delimiter,omitempty"`
}

// File is the decoded content of a sidecar.
type File struct {
	// Dialect optionally pins the dialect of the source file.
	Dialect string `yaml:"dialect,omitempty" json:"dialect,omitempty"`

	// Nodes are the annotated spans, in any order.
	Nodes []Entry `yaml:"nodes" json:"nodes"`
}

// SidecarPath returns the default annotation path for a source file.
func SidecarPath(source string) string {
	return source + SidecarSuffix
}

// IsSidecar reports whether path names an annotation file.
func IsSidecar(path string) bool {
	return strings.HasSuffix(path, SidecarSuffix)
}

// Parse decodes sidecar content. A document that is a bare list is read as
// the node list.
func Parse(data []byte) (*File, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return &File{}, nil
	}

	if isList(trimmed) {
		var nodes []Entry
		if err := decodeStrict(trimmed, &nodes); err != nil {
			return nil, err
		}
		return &File{Nodes: nodes}, nil
	}

	file := &File{}
	if err := decodeStrict(trimmed, file); err != nil {
		return nil, err
	}
	return file, nil
}

func isList(data []byte) bool {
	if data[0] == '[' {
		return true
	}
	return data[0] == '-' && !bytes.HasPrefix(data, []byte("---"))
}

func decodeStrict(data []byte, out any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("parse annotations: %w", err)
	}
	return nil
}

// Load reads the annotation file at path. A missing file yields an error
// wrapping ErrNoSidecar.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNoSidecar)
		}
		return nil, fmt.Errorf("read annotations: %w", err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Marshal encodes a sidecar as YAML.
func (f *File) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(f); err != nil {
		return nil, fmt.Errorf("encode annotations: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}
