package codec

import (
	"math/big"
	"reflect"

	"github.com/anyswap/xrpl-model-codec/xfl"
)

// Model is a record serialized field by field in the order of its bindings.
type Model interface {
	Bindings() []Binding
}

// Factory constructs an empty model for the decoder to fill.
type Factory func() Model

// Binding ties a field descriptor to the model storage behind it.
//
// Get reports the current value and whether it is present. Set stores a
// decoded value. New constructs the nested model of a model field or the
// element of a varModelArray field.
type Binding struct {
	Field Field
	Get   func() (interface{}, bool)
	Set   func(interface{}) error
	New   Factory
}

// LittleEndian returns b with byte reversed fixed width encoding.
func (b Binding) LittleEndian() Binding {
	b.Field.Little = true
	return b
}

func assign[T any](typ FieldType, p *T, v interface{}) error {
	t, ok := v.(T)
	if !ok {
		return invalidValue(typ, v)
	}
	*p = t
	return nil
}

func scalar[T any](f Field, p *T) Binding {
	return Binding{
		Field: f,
		Get:   func() (interface{}, bool) { return *p, true },
		Set:   func(v interface{}) error { return assign(f.Type, p, v) },
	}
}

func bigScalar(f Field, p **big.Int) Binding {
	return Binding{
		Field: f,
		Get:   func() (interface{}, bool) { return *p, *p != nil },
		Set:   func(v interface{}) error { return assign(f.Type, p, v) },
	}
}

func Uint8(name string, p *uint8) Binding {
	return scalar(Field{Name: name, Type: TypeUint8}, p)
}

func Uint16(name string, p *uint16) Binding {
	return scalar(Field{Name: name, Type: TypeUint16}, p)
}

func Uint32(name string, p *uint32) Binding {
	return scalar(Field{Name: name, Type: TypeUint32}, p)
}

// Uint64 binds a 64-bit field. A nil pointer is an absent value.
func Uint64(name string, p **big.Int) Binding {
	return bigScalar(Field{Name: name, Type: TypeUint64}, p)
}

// Uint224 binds a 224-bit field. A nil pointer is an absent value.
func Uint224(name string, p **big.Int) Binding {
	return bigScalar(Field{Name: name, Type: TypeUint224}, p)
}

func Hash256(name string, p *string) Binding {
	return scalar(Field{Name: name, Type: TypeHash256}, p)
}

func PublicKey(name string, p *string) Binding {
	return scalar(Field{Name: name, Type: TypePublicKey}, p)
}

func VarString(name string, maxStringLength int, p *string) Binding {
	return scalar(Field{Name: name, Type: TypeVarString, MaxStringLength: maxStringLength}, p)
}

func XFL(name string, p *xfl.Value) Binding {
	return scalar(Field{Name: name, Type: TypeXFL}, p)
}

// XFLFloat binds an XFL field held as a float64.
func XFLFloat(name string, p *float64) Binding {
	return Binding{
		Field: Field{Name: name, Type: TypeXFL},
		Get:   func() (interface{}, bool) { return *p, true },
		Set: func(v interface{}) error {
			x, ok := v.(xfl.Value)
			if !ok {
				return invalidValue(TypeXFL, v)
			}
			*p = x.Float64()
			return nil
		},
	}
}

func Currency(name string, p *string) Binding {
	return scalar(Field{Name: name, Type: TypeCurrency}, p)
}

func XRPAddress(name string, p *string) Binding {
	return scalar(Field{Name: name, Type: TypeXRPAddress}, p)
}

// Nested binds a nested model. A nil model is an absent value.
func Nested[T Model](name string, p *T, newModel func() T) Binding {
	return Binding{
		Field: Field{Name: name, Type: TypeModel},
		Get: func() (interface{}, bool) {
			if isNil(*p) {
				return nil, false
			}
			return Model(*p), true
		},
		Set: func(v interface{}) error { return assign(TypeModel, p, v) },
		New: func() Model { return newModel() },
	}
}

// Array binds a length prefixed array of models. A nil slice encodes
// as an empty array.
func Array[T Model](name string, maxArrayLength int, p *[]T, newElem func() T) Binding {
	return Binding{
		Field: Field{Name: name, Type: TypeVarModelArray, MaxArrayLength: maxArrayLength},
		Get: func() (interface{}, bool) {
			models := make([]Model, len(*p))
			for i, m := range *p {
				if !isNil(m) {
					models[i] = m
				}
			}
			return models, true
		},
		Set: func(v interface{}) error {
			models, ok := v.([]Model)
			if !ok {
				return invalidValue(TypeVarModelArray, v)
			}
			elems := make([]T, len(models))
			for i, m := range models {
				if err := assign(TypeVarModelArray, &elems[i], m); err != nil {
					return err
				}
			}
			*p = elems
			return nil
		},
		New: func() Model { return newElem() },
	}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
