package codec

import (
	"fmt"
	"strings"

	"github.com/anyswap/xrpl-model-codec/log"
)

// EncodeModel serializes m field by field in binding order and returns
// upper case hex. Nested models and model arrays recurse.
func EncodeModel(m Model) (string, error) {
	var sb strings.Builder
	if err := encodeModel(&sb, m, ""); err != nil {
		return "", err
	}
	log.Debug("encode model", "model", fmt.Sprintf("%T", m), "hexLen", sb.Len())
	return sb.String(), nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func encodeModel(sb *strings.Builder, m Model, path string) error {
	if isNil(m) {
		if path == "" {
			path = "<model>"
		}
		return &MissingFieldError{Field: path}
	}
	for _, b := range m.Bindings() {
		f := b.Field
		fieldPath := joinPath(path, f.Name)
		if b.Get == nil {
			return wrapField(fieldPath, f.Type, &ConfigurationError{Field: f.Name, Attribute: "getter", Reason: "is not bound"})
		}
		v, ok := b.Get()
		if !ok || isNil(v) {
			return wrapField(fieldPath, f.Type, &MissingFieldError{Field: fieldPath})
		}
		if log.IsTraceEnabled() {
			log.Trace("encode field", "field", fieldPath, "type", f.Type, "offset", sb.Len())
		}
		var err error
		switch f.Type {
		case TypeModel:
			nested, ok := v.(Model)
			if !ok {
				return wrapField(fieldPath, f.Type, invalidValue(f.Type, v))
			}
			err = encodeModel(sb, nested, fieldPath)
		case TypeVarModelArray:
			err = encodeArray(sb, f, v, fieldPath)
		default:
			var hex string
			hex, err = EncodeScalar(f, v)
			sb.WriteString(hex)
		}
		if err != nil {
			return wrapField(fieldPath, f.Type, err)
		}
	}
	return nil
}

func checkArrayField(f Field) error {
	if f.MaxArrayLength <= 0 {
		return &ConfigurationError{Field: f.Name, Attribute: "maxArrayLength", Reason: "is required for type varModelArray"}
	}
	if f.MaxArrayLength > 0xff {
		return &ConfigurationError{Field: f.Name, Attribute: "maxArrayLength", Reason: "must fit the 1 byte count prefix"}
	}
	return nil
}

func encodeArray(sb *strings.Builder, f Field, v interface{}, path string) error {
	if err := checkArrayField(f); err != nil {
		return err
	}
	models, ok := v.([]Model)
	if !ok {
		return invalidValue(f.Type, v)
	}
	if len(models) > f.MaxArrayLength {
		return &LengthExceededError{What: f.Name + " varModelArray", Length: len(models), Max: f.MaxArrayLength}
	}
	prefix, err := Uint8ToHex(int64(len(models)))
	if err != nil {
		return err
	}
	sb.WriteString(prefix)
	for i, m := range models {
		if err := encodeModel(sb, m, fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}
