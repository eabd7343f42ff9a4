package codec

import (
	"fmt"

	"github.com/anyswap/xrpl-model-codec/log"
)

// Segment is one decoded field as it appeared on the wire.
type Segment struct {
	Path   string
	Type   FieldType
	Offset int
	Hex    string
	Value  interface{}
}

type decoder struct {
	c     *Cursor
	visit func(Segment)
}

// DecodeModel reconstructs a model from hex. The input must be consumed
// exactly; trailing digits are an error.
func DecodeModel(hex string, newModel Factory) (Model, error) {
	c := NewCursor(hex)
	m, err := DecodeFrom(c, newModel)
	if err != nil {
		return nil, err
	}
	if c.HasMore() {
		return nil, &DecodeError{Offset: c.Offset(), Err: fmt.Errorf("%w: %d trailing hex digits", ErrMalformed, c.Remaining())}
	}
	log.Debug("decode model", "model", fmt.Sprintf("%T", m), "hexLen", len(hex))
	return m, nil
}

// DecodeInto fills a freshly constructed model from hex.
func DecodeInto(hex string, m Model) error {
	c := NewCursor(hex)
	d := &decoder{c: c}
	if err := d.decodeModel(m, ""); err != nil {
		return err
	}
	if c.HasMore() {
		return &DecodeError{Offset: c.Offset(), Err: fmt.Errorf("%w: %d trailing hex digits", ErrMalformed, c.Remaining())}
	}
	return nil
}

// DecodeFrom decodes one model at the cursor and advances it past the
// model, leaving any following data unread.
func DecodeFrom(c *Cursor, newModel Factory) (Model, error) {
	if newModel == nil {
		return nil, &ConfigurationError{Attribute: "model constructor", Reason: "is required"}
	}
	m := newModel()
	d := &decoder{c: c}
	if err := d.decodeModel(m, ""); err != nil {
		return nil, err
	}
	return m, nil
}

// Inspect decodes hex like DecodeModel and also returns every scalar
// field and array count with its path and offset.
func Inspect(hex string, newModel Factory) (Model, []Segment, error) {
	if newModel == nil {
		return nil, nil, &ConfigurationError{Attribute: "model constructor", Reason: "is required"}
	}
	var segments []Segment
	c := NewCursor(hex)
	d := &decoder{c: c, visit: func(s Segment) { segments = append(segments, s) }}
	m := newModel()
	if err := d.decodeModel(m, ""); err != nil {
		return nil, segments, err
	}
	if c.HasMore() {
		return nil, segments, &DecodeError{Offset: c.Offset(), Err: fmt.Errorf("%w: %d trailing hex digits", ErrMalformed, c.Remaining())}
	}
	return m, segments, nil
}

func (d *decoder) decodeModel(m Model, path string) error {
	if isNil(m) {
		return &InvariantViolationError{Type: TypeModel, Reason: "constructor returned nil"}
	}
	for _, b := range m.Bindings() {
		f := b.Field
		fieldPath := joinPath(path, f.Name)
		offset := d.c.Offset()
		if log.IsTraceEnabled() {
			log.Trace("decode field", "field", fieldPath, "type", f.Type, "offset", offset)
		}
		if b.Set == nil {
			return wrapField(fieldPath, f.Type, &ConfigurationError{Field: f.Name, Attribute: "setter", Reason: "is not bound"})
		}
		var (
			v   interface{}
			err error
		)
		switch f.Type {
		case TypeModel:
			v, err = d.decodeNested(b, fieldPath)
		case TypeVarModelArray:
			v, err = d.decodeArray(b, fieldPath)
		default:
			v, err = d.decodeScalar(f, fieldPath)
		}
		if err == nil {
			err = b.Set(v)
		}
		if err != nil {
			return wrapField(fieldPath, f.Type, err)
		}
	}
	return nil
}

func (d *decoder) decodeNested(b Binding, path string) (Model, error) {
	if b.New == nil {
		return nil, &ConfigurationError{Field: b.Field.Name, Attribute: "model constructor", Reason: "is required for type model"}
	}
	nested := b.New()
	if err := d.decodeModel(nested, path); err != nil {
		return nil, err
	}
	return nested, nil
}

func (d *decoder) decodeArray(b Binding, path string) ([]Model, error) {
	f := b.Field
	if err := checkArrayField(f); err != nil {
		return nil, err
	}
	if b.New == nil {
		return nil, &ConfigurationError{Field: f.Name, Attribute: "element constructor", Reason: "is required for type varModelArray"}
	}
	offset := d.c.Offset()
	prefix, err := d.c.Read(2)
	if err != nil {
		return nil, err
	}
	count, err := HexToUint8(prefix)
	if err != nil {
		return nil, err
	}
	if int(count) > f.MaxArrayLength {
		return nil, &LengthExceededError{What: f.Name + " varModelArray", Length: int(count), Max: f.MaxArrayLength}
	}
	if d.visit != nil {
		d.visit(Segment{Path: path, Type: f.Type, Offset: offset, Hex: prefix, Value: int(count)})
	}
	models := make([]Model, 0, count)
	for i := 0; i < int(count); i++ {
		elem := b.New()
		if err := d.decodeModel(elem, fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return nil, err
		}
		models = append(models, elem)
	}
	return models, nil
}

func (d *decoder) decodeScalar(f Field, path string) (interface{}, error) {
	width, err := ScalarWidth(f)
	if err != nil {
		return nil, err
	}
	offset := d.c.Offset()
	hex, err := d.c.Read(width)
	if err != nil {
		return nil, err
	}
	v, err := DecodeScalar(f, hex)
	if err != nil {
		return nil, withOffset(err, offset)
	}
	if d.visit != nil {
		d.visit(Segment{Path: path, Type: f.Type, Offset: offset, Hex: hex, Value: v})
	}
	return v, nil
}

// withOffset rebases a slot relative DecodeError onto the whole input.
func withOffset(err error, offset int) error {
	if de, ok := err.(*DecodeError); ok {
		shifted := *de
		shifted.Offset += offset
		return &shifted
	}
	return err
}
