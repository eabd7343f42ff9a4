// Package schema declares models as data, so payloads can be encoded and
// decoded without a Go type per model. Schemas are TOML or YAML documents
// with the same layout.
package schema

import (
	"errors"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/anyswap/xrpl-model-codec/codec"
	"github.com/anyswap/xrpl-model-codec/common"
	"github.com/anyswap/xrpl-model-codec/log"
	"gopkg.in/yaml.v3"
)

// errors
var (
	ErrNoModels       = errors.New("schema declares no models")
	ErrUnknownModel   = errors.New("unknown model")
	ErrDuplicateModel = errors.New("duplicate model")
	ErrDuplicateField = errors.New("duplicate field")
	ErrRecursiveModel = errors.New("model contains itself")
)

// FieldDecl is one `[[model.field]]` table.
type FieldDecl struct {
	Name            string `toml:"name" yaml:"name" json:"name"`
	Type            string `toml:"type" yaml:"type" json:"type"`
	MaxStringLength int    `toml:"maxStringLength" yaml:"maxStringLength" json:"maxStringLength,omitempty"`
	MaxArrayLength  int    `toml:"maxArrayLength" yaml:"maxArrayLength" json:"maxArrayLength,omitempty"`
	Little          bool   `toml:"little" yaml:"little" json:"little,omitempty"`
	Model           string `toml:"model" yaml:"model" json:"model,omitempty"`
}

// ModelDecl is one `[[model]]` table. Field order is wire order.
type ModelDecl struct {
	Name   string       `toml:"name" yaml:"name" json:"name"`
	Fields []*FieldDecl `toml:"field" yaml:"field" json:"fields"`

	fields []codec.Field
}

// Schema is a validated set of model declarations.
type Schema struct {
	Models []*ModelDecl `toml:"model" yaml:"model" json:"models"`

	byName map[string]*ModelDecl
}

// Parse decodes and validates a TOML schema document.
func Parse(data string) (*Schema, error) {
	s := &Schema{}
	if _, err := toml.Decode(data, s); err != nil {
		return nil, fmt.Errorf("toml decode schema error: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseYAML decodes and validates a YAML schema document.
func ParseYAML(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("yaml decode schema error: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFile loads and validates a schema file, TOML unless the file
// extension is .yaml or .yml.
func LoadFile(path string) (*Schema, error) {
	s := &Schema{}
	if err := decodeFile(path, s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("schema file '%v': %w", path, err)
	}
	return s, nil
}

// LoadDir merges every schema file in dir into one schema, so models
// may reference models declared in sibling files.
func LoadDir(dir string) (*Schema, error) {
	fileInfoList, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read schema dir error: %w", err)
	}
	merged := &Schema{}
	for _, info := range fileInfoList {
		if info.IsDir() {
			continue
		}
		fileName := info.Name()
		if !isSchemaFile(fileName) {
			log.Info("ignore not schema file", "file", fileName)
			continue
		}
		part := &Schema{}
		if err := decodeFile(common.AbsolutePath(dir, fileName), part); err != nil {
			return nil, err
		}
		merged.Models = append(merged.Models, part.Models...)
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("schema dir '%v': %w", dir, err)
	}
	return merged, nil
}

func isYAML(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	return ext == ".yaml" || ext == ".yml"
}

func isSchemaFile(fileName string) bool {
	return isYAML(fileName) || strings.ToLower(filepath.Ext(fileName)) == ".toml"
}

func decodeFile(path string, s *Schema) error {
	if !common.FileExist(path) {
		return fmt.Errorf("schema file '%v' not exist", path)
	}
	if isYAML(path) {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return fmt.Errorf("yaml decode file '%v' error: %w", path, err)
		}
	} else if _, err := toml.DecodeFile(path, s); err != nil {
		return fmt.Errorf("toml decode file '%v' error: %w", path, err)
	}
	log.Debug("load schema file", "file", path, "models", len(s.Models))
	return nil
}

// Model returns the declaration of the named model.
func (s *Schema) Model(name string) (*ModelDecl, error) {
	decl, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
	return decl, nil
}

// Names lists the declared model names in sorted order.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Field converts the declaration into a codec field descriptor.
func (d *FieldDecl) Field() (codec.Field, error) {
	t, err := codec.ParseFieldType(d.Type)
	if err != nil {
		return codec.Field{}, err
	}
	return codec.Field{
		Name:            d.Name,
		Type:            t,
		MaxStringLength: d.MaxStringLength,
		MaxArrayLength:  d.MaxArrayLength,
		Little:          d.Little,
	}, nil
}

// CodecFields returns the validated codec descriptors in wire order.
func (m *ModelDecl) CodecFields() []codec.Field {
	return m.fields
}
