package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/anyswap/xrpl-model-codec/codec"
	"github.com/anyswap/xrpl-model-codec/xfl"
)

// errors
var (
	ErrUnknownField = errors.New("unknown field")
	ErrJSONValue    = errors.New("invalid json value")
)

// Record is a model instance described by a schema declaration. Values
// holds one entry per present field: scalars in any form the codec
// accepts, *Record for model fields and []*Record for varModelArray fields.
type Record struct {
	schema *Schema
	decl   *ModelDecl

	Values map[string]interface{}
}

var _ codec.Model = (*Record)(nil)

// NewRecord returns an empty record of the named model.
func (s *Schema) NewRecord(name string) (*Record, error) {
	decl, err := s.Model(name)
	if err != nil {
		return nil, err
	}
	return s.newRecord(decl), nil
}

func (s *Schema) newRecord(decl *ModelDecl) *Record {
	return &Record{schema: s, decl: decl, Values: make(map[string]interface{})}
}

// Factory returns a decoder constructor for the named model.
func (s *Schema) Factory(name string) (codec.Factory, error) {
	decl, err := s.Model(name)
	if err != nil {
		return nil, err
	}
	return func() codec.Model { return s.newRecord(decl) }, nil
}

// ModelName returns the name of the declaration behind r.
func (r *Record) ModelName() string {
	return r.decl.Name
}

// Bindings implements codec.Model.
func (r *Record) Bindings() []codec.Binding {
	fields := r.decl.CodecFields()
	bindings := make([]codec.Binding, len(fields))
	for i, f := range fields {
		bindings[i] = r.binding(f, r.decl.Fields[i].Model)
	}
	return bindings
}

func (r *Record) binding(f codec.Field, ref string) codec.Binding {
	name := f.Name
	b := codec.Binding{
		Field: f,
		Get: func() (interface{}, bool) {
			v, ok := r.Values[name]
			return v, ok
		},
		Set: func(v interface{}) error {
			r.Values[name] = v
			return nil
		},
	}
	switch f.Type {
	case codec.TypeModel:
		b.New = r.factory(ref)
		b.Get = func() (interface{}, bool) {
			nested, ok := r.Values[name].(*Record)
			if !ok || nested == nil {
				return nil, false
			}
			return codec.Model(nested), true
		}
		b.Set = func(v interface{}) error {
			nested, ok := v.(*Record)
			if !ok {
				return fmt.Errorf("%w: %T for model field", ErrJSONValue, v)
			}
			r.Values[name] = nested
			return nil
		}
	case codec.TypeVarModelArray:
		b.New = r.factory(ref)
		b.Get = func() (interface{}, bool) {
			v, ok := r.Values[name]
			if !ok {
				return nil, false
			}
			elems, ok := v.([]*Record)
			if !ok {
				return v, true
			}
			models := make([]codec.Model, len(elems))
			for i, e := range elems {
				if e != nil {
					models[i] = e
				}
			}
			return models, true
		}
		b.Set = func(v interface{}) error {
			models, ok := v.([]codec.Model)
			if !ok {
				return fmt.Errorf("%w: %T for varModelArray field", ErrJSONValue, v)
			}
			elems := make([]*Record, len(models))
			for i, m := range models {
				if elems[i], ok = m.(*Record); !ok {
					return fmt.Errorf("%w: %T in varModelArray field", ErrJSONValue, m)
				}
			}
			r.Values[name] = elems
			return nil
		}
	}
	return b
}

func (r *Record) factory(ref string) codec.Factory {
	decl := r.schema.byName[ref]
	return func() codec.Model { return r.schema.newRecord(decl) }
}

// FromJSON builds a record of the named model from a JSON object. Numbers
// are kept as json.Number so 64 and 224 bit integers stay exact.
func (s *Schema) FromJSON(name string, data []byte) (*Record, error) {
	decl, err := s.Model(name)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var obj map[string]interface{}
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSONValue, err)
	}
	return s.fromObject(decl, obj, "")
}

func (s *Schema) fromObject(decl *ModelDecl, obj map[string]interface{}, path string) (*Record, error) {
	r := s.newRecord(decl)
	known := make(map[string]bool, len(decl.Fields))
	for _, d := range decl.Fields {
		known[d.Name] = true
		v, ok := obj[d.Name]
		if !ok || v == nil {
			continue
		}
		fieldPath := joinPath(path, d.Name)
		switch d.Type {
		case codec.TypeModel.String():
			nestedObj, ok := v.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%w: %s must be an object", ErrJSONValue, fieldPath)
			}
			nested, err := s.fromObject(s.byName[d.Model], nestedObj, fieldPath)
			if err != nil {
				return nil, err
			}
			r.Values[d.Name] = nested
		case codec.TypeVarModelArray.String():
			list, ok := v.([]interface{})
			if !ok {
				return nil, fmt.Errorf("%w: %s must be an array", ErrJSONValue, fieldPath)
			}
			elems := make([]*Record, len(list))
			for i, item := range list {
				itemObj, ok := item.(map[string]interface{})
				if !ok {
					return nil, fmt.Errorf("%w: %s[%d] must be an object", ErrJSONValue, fieldPath, i)
				}
				elem, err := s.fromObject(s.byName[d.Model], itemObj, fmt.Sprintf("%s[%d]", fieldPath, i))
				if err != nil {
					return nil, err
				}
				elems[i] = elem
			}
			r.Values[d.Name] = elems
		default:
			switch v.(type) {
			case string, json.Number:
				r.Values[d.Name] = v
			default:
				return nil, fmt.Errorf("%w: %s must be a string or number", ErrJSONValue, fieldPath)
			}
		}
	}
	for key := range obj {
		if !known[key] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, joinPath(path, key))
		}
	}
	return r, nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// ToJSON renders the record as indented JSON. Integers and XFL values
// are written as JSON numbers.
func (r *Record) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r.object(), "", "  ")
}

func (r *Record) object() map[string]interface{} {
	obj := make(map[string]interface{}, len(r.Values))
	for name, v := range r.Values {
		obj[name] = jsonValue(v)
	}
	return obj
}

func jsonValue(v interface{}) interface{} {
	switch x := v.(type) {
	case *Record:
		if x == nil {
			return nil
		}
		return x.object()
	case []*Record:
		list := make([]interface{}, len(x))
		for i, e := range x {
			list[i] = jsonValue(e)
		}
		return list
	case *big.Int:
		return json.Number(x.String())
	case xfl.Value:
		return json.Number(x.String())
	}
	return v
}
