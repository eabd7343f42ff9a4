// Utilities for formatting decoded model payloads in a terminal
package terminal

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/anyswap/xrpl-model-codec/codec"
	"github.com/anyswap/xrpl-model-codec/xfl"
	"github.com/fatih/color"
)

type Flag uint32

const (
	Indent Flag = 1 << iota
	ShowOffset
	ShowHex
)

var Default = ShowOffset | ShowHex

var (
	uintStyle    = color.New(color.FgCyan)
	hashStyle    = color.New(color.FgWhite)
	stringStyle  = color.New(color.FgGreen)
	xflStyle     = color.New(color.FgMagenta)
	currStyle    = color.New(color.FgYellow)
	accountStyle = color.New(color.FgBlue)
	arrayStyle   = color.New(color.FgRed, color.Underline)
	infoStyle    = color.New(color.FgRed)
)

func styleOf(t codec.FieldType) *color.Color {
	switch t {
	case codec.TypeUint8, codec.TypeUint16, codec.TypeUint32, codec.TypeUint64, codec.TypeUint224:
		return uintStyle
	case codec.TypeHash256, codec.TypePublicKey:
		return hashStyle
	case codec.TypeVarString:
		return stringStyle
	case codec.TypeXFL:
		return xflStyle
	case codec.TypeCurrency:
		return currStyle
	case codec.TypeXRPAddress:
		return accountStyle
	case codec.TypeVarModelArray:
		return arrayStyle
	default:
		return infoStyle
	}
}

type bundle struct {
	color  *color.Color
	format string
	values []interface{}
	flag   Flag
}

func newBundle(s codec.Segment, flag Flag) *bundle {
	var (
		format string
		values []interface{}
	)
	if flag&ShowOffset > 0 {
		format += "%6d "
		values = append(values, s.Offset)
	}
	format += "%-13s %-32s %s"
	values = append(values, s.Type, s.Path, formatValue(s))
	if flag&ShowHex > 0 {
		format += "  %s"
		values = append(values, s.Hex)
	}
	return &bundle{
		color:  styleOf(s.Type),
		format: format,
		values: values,
		flag:   flag,
	}
}

func formatValue(s codec.Segment) string {
	switch v := s.Value.(type) {
	case *big.Int:
		return v.String()
	case xfl.Value:
		return v.String()
	case string:
		if s.Type == codec.TypeVarString {
			return fmt.Sprintf("%q", v)
		}
		return v
	case int:
		if s.Type == codec.TypeVarModelArray {
			return fmt.Sprintf("[%d]", v)
		}
	}
	return fmt.Sprint(s.Value)
}

func indent(s codec.Segment, flag Flag) string {
	if flag&Indent == 0 {
		return ""
	}
	depth := strings.Count(s.Path, ".") + strings.Count(s.Path, "[")
	return strings.Repeat("  ", depth)
}

// Fprintln writes one colored line per segment.
func Fprintln(w io.Writer, segments []codec.Segment, flag Flag) error {
	for _, s := range segments {
		b := newBundle(s, flag)
		if _, err := b.color.Fprintf(w, indent(s, flag)+b.format+"\n", b.values...); err != nil {
			return err
		}
	}
	return nil
}

func Sprint(s codec.Segment, flag Flag) string {
	b := newBundle(s, flag)
	return b.color.SprintfFunc()(indent(s, flag)+b.format, b.values...)
}

// PrintError renders a failed decode, pointing at the offending field.
func PrintError(w io.Writer, err error) {
	var fe *codec.FieldError
	if errors.As(err, &fe) {
		infoStyle.Fprintf(w, "error at %s (%s): %v\n", fe.Path, fe.Type, fe.Err)
		return
	}
	infoStyle.Fprintf(w, "error: %v\n", err)
}
