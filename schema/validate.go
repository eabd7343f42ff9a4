package schema

import (
	"fmt"

	"github.com/anyswap/xrpl-model-codec/codec"
	mapset "github.com/deckarep/golang-set"
)

// Validate checks every declaration and indexes the models by name.
//
// Field types must be known, varString fields need maxStringLength,
// varModelArray fields need a maxArrayLength that fits the one byte count,
// model and varModelArray fields must reference a declared model, names
// must be unique, and no model may contain itself through model fields.
// Recursion through a varModelArray is allowed since an array may be empty.
func (s *Schema) Validate() error {
	if len(s.Models) == 0 {
		return ErrNoModels
	}
	byName := make(map[string]*ModelDecl, len(s.Models))
	for _, m := range s.Models {
		if m == nil || m.Name == "" {
			return &codec.ConfigurationError{Attribute: "model name", Reason: "is required"}
		}
		if _, exist := byName[m.Name]; exist {
			return fmt.Errorf("%w: %s", ErrDuplicateModel, m.Name)
		}
		byName[m.Name] = m
	}
	for _, m := range s.Models {
		if err := m.check(byName); err != nil {
			return fmt.Errorf("model %s: %w", m.Name, err)
		}
	}
	for _, m := range s.Models {
		if err := checkRecursion(m, byName, mapset.NewThreadUnsafeSet()); err != nil {
			return err
		}
	}
	s.byName = byName
	return nil
}

func (m *ModelDecl) check(byName map[string]*ModelDecl) error {
	names := mapset.NewThreadUnsafeSet()
	fields := make([]codec.Field, 0, len(m.Fields))
	for i, d := range m.Fields {
		if d == nil || d.Name == "" {
			return &codec.ConfigurationError{Attribute: fmt.Sprintf("field %d name", i), Reason: "is required"}
		}
		if !names.Add(d.Name) {
			return fmt.Errorf("%w: %s", ErrDuplicateField, d.Name)
		}
		f, err := d.Field()
		if err != nil {
			return fmt.Errorf("field %s: %w", d.Name, err)
		}
		if err := d.checkAttributes(f, byName); err != nil {
			return err
		}
		fields = append(fields, f)
	}
	m.fields = fields
	return nil
}

func (d *FieldDecl) checkAttributes(f codec.Field, byName map[string]*ModelDecl) error {
	switch f.Type {
	case codec.TypeVarString:
		if _, err := codec.VarStringWidth(d.MaxStringLength); err != nil {
			return &codec.ConfigurationError{Field: d.Name, Attribute: "maxStringLength", Reason: "must be within 1-65536 for type varString"}
		}
	case codec.TypeVarModelArray:
		if d.MaxArrayLength <= 0 || d.MaxArrayLength > 0xff {
			return &codec.ConfigurationError{Field: d.Name, Attribute: "maxArrayLength", Reason: "must be within 1-255 for type varModelArray"}
		}
	}
	if f.Type.IsStructural() {
		if d.Model == "" {
			return &codec.ConfigurationError{Field: d.Name, Attribute: "model", Reason: "is required for type " + f.Type.String()}
		}
		if _, exist := byName[d.Model]; !exist {
			return fmt.Errorf("field %s: %w: %s", d.Name, ErrUnknownModel, d.Model)
		}
	} else if d.Model != "" {
		return &codec.ConfigurationError{Field: d.Name, Attribute: "model", Reason: "is only allowed for model and varModelArray"}
	}
	return nil
}

func checkRecursion(m *ModelDecl, byName map[string]*ModelDecl, path mapset.Set) error {
	if !path.Add(m.Name) {
		return fmt.Errorf("%w: %s", ErrRecursiveModel, m.Name)
	}
	defer path.Remove(m.Name)
	for _, d := range m.Fields {
		if d.Type != codec.TypeModel.String() {
			continue
		}
		if err := checkRecursion(byName[d.Model], byName, path); err != nil {
			return err
		}
	}
	return nil
}
