package codec

import (
	"encoding/json"
	"math/big"
	"reflect"

	"github.com/anyswap/xrpl-model-codec/common"
	"github.com/anyswap/xrpl-model-codec/xfl"
)

// EncodeScalar encodes one scalar value according to f.
func EncodeScalar(f Field, v interface{}) (string, error) {
	switch f.Type {
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64, TypeUint224:
		n, ok := toBigInt(v)
		if !ok {
			return "", invalidValue(f.Type, v)
		}
		return UintToHex(f.Type.UintBits(), n, f.Little && f.Type != TypeUint8)
	case TypeHash256:
		s, ok := v.(string)
		if !ok {
			return "", invalidValue(f.Type, v)
		}
		return Hash256ToHex(s)
	case TypePublicKey:
		s, ok := v.(string)
		if !ok {
			return "", invalidValue(f.Type, v)
		}
		return PublicKeyToHex(s)
	case TypeVarString:
		s, ok := v.(string)
		if !ok {
			return "", invalidValue(f.Type, v)
		}
		return VarStringToHex(s, f.MaxStringLength)
	case TypeXFL:
		x, err := toXFL(v)
		if err != nil {
			return "", err
		}
		return XflToHex(x, f.Little), nil
	case TypeCurrency:
		s, ok := v.(string)
		if !ok {
			return "", invalidValue(f.Type, v)
		}
		return CurrencyToHex(s)
	case TypeXRPAddress:
		s, ok := v.(string)
		if !ok {
			return "", invalidValue(f.Type, v)
		}
		return XRPAddressToHex(s)
	case TypeModel:
		return "", &InvariantViolationError{Type: f.Type, Reason: "model type should be handled by the model encoder"}
	case TypeVarModelArray:
		return "", &InvariantViolationError{Type: f.Type, Reason: "varModelArray type should be handled by the model encoder"}
	default:
		return "", &UnknownTypeError{Type: f.Type.String()}
	}
}

// ScalarWidth returns the hex digits a scalar field occupies.
func ScalarWidth(f Field) (int, error) {
	if f.Type == TypeVarString {
		if f.MaxStringLength <= 0 {
			return 0, &ConfigurationError{Field: f.Name, Attribute: "maxStringLength", Reason: "is required for type varString"}
		}
		return VarStringWidth(f.MaxStringLength)
	}
	if width, ok := FixedWidth(f.Type); ok {
		return width, nil
	}
	if f.Type.IsStructural() {
		return 0, &InvariantViolationError{Type: f.Type, Reason: "has no scalar width"}
	}
	return 0, &UnknownTypeError{Type: f.Type.String()}
}

// DecodeScalar decodes one scalar slot into its canonical Go value:
// uint8, uint16, uint32, *big.Int, xfl.Value or string.
func DecodeScalar(f Field, hex string) (interface{}, error) {
	switch f.Type {
	case TypeUint8:
		return HexToUint8(hex)
	case TypeUint16:
		return HexToUint16(hex, f.Little)
	case TypeUint32:
		return HexToUint32(hex, f.Little)
	case TypeUint64:
		return HexToUint64(hex, f.Little)
	case TypeUint224:
		return HexToUint224(hex, f.Little)
	case TypeHash256:
		return HexToHash256(hex)
	case TypePublicKey:
		return HexToPublicKey(hex)
	case TypeVarString:
		return HexToVarString(hex, f.MaxStringLength)
	case TypeXFL:
		return HexToXfl(hex, f.Little)
	case TypeCurrency:
		return HexToCurrency(hex)
	case TypeXRPAddress:
		return HexToXRPAddress(hex)
	case TypeModel, TypeVarModelArray:
		return nil, &InvariantViolationError{Type: f.Type, Reason: "reached the scalar decoder"}
	default:
		return nil, &UnknownTypeError{Type: f.Type.String()}
	}
}

// toBigInt accepts any Go integer, *big.Int, big.Int, json.Number or
// a decimal or 0x hex string.
func toBigInt(v interface{}) (*big.Int, bool) {
	switch n := v.(type) {
	case *big.Int:
		return n, n != nil
	case big.Int:
		return &n, true
	case json.Number:
		return new(big.Int).SetString(string(n), 10)
	case string:
		return common.GetBigIntFromStr(n)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), true
	}
	return nil, false
}

// toXFL accepts xfl.Value, floats, integers and decimal strings.
func toXFL(v interface{}) (xfl.Value, error) {
	switch x := v.(type) {
	case xfl.Value:
		return x, nil
	case *xfl.Value:
		if x == nil {
			return xfl.Zero, invalidValue(TypeXFL, v)
		}
		return *x, nil
	case float64:
		return xfl.FromFloat(x)
	case float32:
		return xfl.FromFloat(float64(x))
	case json.Number:
		return xfl.Parse(string(x))
	case string:
		return xfl.Parse(x)
	}
	if n, ok := toBigInt(v); ok {
		return xfl.Parse(n.String())
	}
	return xfl.Zero, invalidValue(TypeXFL, v)
}
