package codec

import "fmt"

// FieldType is the wire type of a model field.
type FieldType uint8

// field types, in no particular wire order
const (
	TypeUnknown FieldType = iota
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeUint224
	TypeHash256
	TypePublicKey
	TypeVarString
	TypeXFL
	TypeCurrency
	TypeXRPAddress
	TypeModel
	TypeVarModelArray
)

var fieldTypeNames = [...]string{
	TypeUnknown:       "unknown",
	TypeUint8:         "uint8",
	TypeUint16:        "uint16",
	TypeUint32:        "uint32",
	TypeUint64:        "uint64",
	TypeUint224:       "uint224",
	TypeHash256:       "hash256",
	TypePublicKey:     "publicKey",
	TypeVarString:     "varString",
	TypeXFL:           "xfl",
	TypeCurrency:      "currency",
	TypeXRPAddress:    "xrpAddress",
	TypeModel:         "model",
	TypeVarModelArray: "varModelArray",
}

// AllFieldTypes lists every known field type.
func AllFieldTypes() []FieldType {
	types := make([]FieldType, 0, len(fieldTypeNames)-1)
	for t := TypeUint8; int(t) < len(fieldTypeNames); t++ {
		types = append(types, t)
	}
	return types
}

func (t FieldType) String() string {
	if int(t) < len(fieldTypeNames) {
		return fieldTypeNames[t]
	}
	return fmt.Sprintf("FieldType(%d)", uint8(t))
}

// ParseFieldType looks up a type by its declared name, e.g. "varString".
func ParseFieldType(name string) (FieldType, error) {
	for t := TypeUint8; int(t) < len(fieldTypeNames); t++ {
		if fieldTypeNames[t] == name {
			return t, nil
		}
	}
	return TypeUnknown, &UnknownTypeError{Type: name}
}

// IsStructural reports whether t holds models rather than a scalar.
func (t FieldType) IsStructural() bool {
	return t == TypeModel || t == TypeVarModelArray
}

// UintBits returns the width of an unsigned integer type, 0 otherwise.
func (t FieldType) UintBits() uint {
	switch t {
	case TypeUint8:
		return 8
	case TypeUint16:
		return 16
	case TypeUint32:
		return 32
	case TypeUint64:
		return 64
	case TypeUint224:
		return 224
	}
	return 0
}

// FixedWidth returns the number of hex digits a fixed width scalar
// occupies. varString, model and varModelArray are not fixed.
func FixedWidth(t FieldType) (int, bool) {
	if bits := t.UintBits(); bits > 0 {
		return int(bits / 4), true
	}
	switch t {
	case TypeHash256:
		return 64, true
	case TypePublicKey:
		return 66, true
	case TypeXFL:
		return 16, true
	case TypeCurrency, TypeXRPAddress:
		return 40, true
	}
	return 0, false
}

// Field describes one field of a model. Zero MaxStringLength and
// MaxArrayLength mean the attribute is not declared.
type Field struct {
	Name            string
	Type            FieldType
	MaxStringLength int
	MaxArrayLength  int
	Little          bool
}

func (f Field) String() string {
	s := f.Name + ":" + f.Type.String()
	switch {
	case f.MaxStringLength > 0:
		s += fmt.Sprintf("(%d)", f.MaxStringLength)
	case f.MaxArrayLength > 0:
		s += fmt.Sprintf("[%d]", f.MaxArrayLength)
	}
	if f.Little {
		s += ",little"
	}
	return s
}
