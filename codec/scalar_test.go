package codec

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/anyswap/xrpl-model-codec/common"
	. "github.com/anyswap/xrpl-model-codec/internal/testutil"
	"github.com/anyswap/xrpl-model-codec/xfl"
	. "gopkg.in/check.v1"
)

func Test(t *testing.T) { TestingT(t) }

type ScalarSuite struct{}

var _ = Suite(&ScalarSuite{})

func bigCheck(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(s)
	}
	return n
}

func zeros(n int) string {
	return strings.Repeat("0", n)
}

func (s *ScalarSuite) TestUintEncoding(c *C) {
	TestSlice{
		{Value: ErrorCheck(Uint8ToHex(0)), Checker: IsNil, Expected: nil, Description: "uint8 0"},
		{Value: ErrorCheck(Uint8ToHex(255)), Checker: IsNil, Expected: nil, Description: "uint8 max"},
		{Value: ErrorCheck(Uint8ToHex(-1)), Checker: ErrorMatches, Expected: "integer -1 is out of range for uint8 .*", Description: "uint8 negative"},
		{Value: ErrorCheck(Uint8ToHex(256)), Checker: ErrorMatches, Expected: "integer 256 is out of range for uint8 .*", Description: "uint8 overflow"},
		{Value: ErrorCheck(Uint16ToHex(65536, false)), Checker: ErrorMatches, Expected: ".*out of range for uint16.*", Description: "uint16 overflow"},
		{Value: ErrorCheck(Uint16ToHex(-1, true)), Checker: ErrorMatches, Expected: ".*out of range for uint16.*", Description: "uint16 negative"},
		{Value: ErrorCheck(Uint32ToHex(1<<32, false)), Checker: ErrorMatches, Expected: ".*out of range for uint32.*", Description: "uint32 overflow"},
		{Value: ErrorCheck(Uint64ToHex(bigCheck("18446744073709551616"), false)), Checker: ErrorMatches, Expected: ".*out of range for uint64.*", Description: "uint64 overflow"},
		{Value: ErrorCheck(Uint64ToHex(big.NewInt(-1), false)), Checker: ErrorMatches, Expected: ".*out of range for uint64.*", Description: "uint64 negative"},
		{Value: ErrorCheck(Uint224ToHex(new(big.Int).Lsh(common.Big1, 224), true)), Checker: ErrorMatches, Expected: ".*out of range for uint224.*", Description: "uint224 overflow"},
		{Value: ErrorCheck(Uint64ToHex(nil, false)), Checker: ErrorMatches, Expected: ".*<nil>.*", Description: "uint64 nil"},
	}.Test(c)

	hex, _ := Uint8ToHex(255)
	c.Assert(hex, Equals, "FF")
	hex, _ = Uint16ToHex(5, true)
	c.Assert(hex, Equals, "0500")
	hex, _ = Uint16ToHex(10, true)
	c.Assert(hex, Equals, "0A00")
	hex, _ = Uint16ToHex(10, false)
	c.Assert(hex, Equals, "000A")
	hex, _ = Uint16ToHex(65535, true)
	c.Assert(hex, Equals, "FFFF")
	hex, _ = Uint32ToHex(5, true)
	c.Assert(hex, Equals, "05000000")
	hex, _ = Uint32ToHex(0xDEADBEEF, false)
	c.Assert(hex, Equals, "DEADBEEF")
	hex, _ = Uint64ToHex(big.NewInt(5), true)
	c.Assert(hex, Equals, "0500000000000000")
	hex, _ = Uint64ToHex(bigCheck("18446744073709551615"), false)
	c.Assert(hex, Equals, "FFFFFFFFFFFFFFFF")
	hex, _ = Uint224ToHex(big.NewInt(5), true)
	c.Assert(hex, Equals, "05"+zeros(54))
	hex, _ = Uint224ToHex(big.NewInt(5), false)
	c.Assert(hex, Equals, zeros(54)+"05")
	hex, _ = Uint224ToHex(common.BigMaxUint224, false)
	c.Assert(hex, Equals, strings.Repeat("F", 56))
}

func (s *ScalarSuite) TestUintBoundaries(c *C) {
	for _, bits := range []uint{8, 16, 32, 64, 224} {
		max := common.MaxUintN(bits)
		over := new(big.Int).Add(max, common.Big1)
		for _, little := range []bool{false, true} {
			comment := Commentf("uint%d little=%v", bits, little)
			_, err := UintToHex(bits, big.NewInt(-1), little)
			c.Assert(errors.Is(err, ErrRange), Equals, true, comment)
			_, err = UintToHex(bits, over, little)
			c.Assert(errors.Is(err, ErrRange), Equals, true, comment)

			for _, v := range []*big.Int{big.NewInt(0), big.NewInt(1), max} {
				bigEndian, err := UintToHex(bits, v, false)
				c.Assert(err, IsNil, comment)
				c.Assert(len(bigEndian), Equals, int(bits/4), comment)
				hex, err := UintToHex(bits, v, little)
				c.Assert(err, IsNil, comment)
				if little {
					c.Assert(hex, Equals, common.FlipHex(bigEndian), comment)
				} else {
					c.Assert(hex, Equals, bigEndian, comment)
				}
				back, err := HexToUint(bits, hex, little)
				c.Assert(err, IsNil, comment)
				c.Assert(back.Cmp(v), Equals, 0, comment)
			}
		}
	}

	for _, bits := range []uint{8, 16, 32} {
		_, err := nativeToHex(-1, bits, false)
		c.Assert(errors.Is(err, ErrRange), Equals, true)
		_, err = nativeToHex(int64(1)<<bits, bits, true)
		c.Assert(errors.Is(err, ErrRange), Equals, true)
	}
	_, err := Uint32ToHex(-1, false)
	c.Assert(errors.Is(err, ErrRange), Equals, true)
	_, err = Uint224ToHex(big.NewInt(-1), false)
	c.Assert(errors.Is(err, ErrRange), Equals, true)

	hex, err := Uint32ToHex(4294967295, false)
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, "FFFFFFFF")
	hex, _ = Uint16ToHex(0, true)
	c.Assert(hex, Equals, "0000")
	hex, _ = Uint64ToHex(big.NewInt(0), true)
	c.Assert(hex, Equals, "0000000000000000")

	v16, err := HexToUint16("FFFF", true)
	c.Assert(err, IsNil)
	c.Assert(v16, Equals, uint16(65535))
	v32, err := HexToUint32("FFFFFFFF", true)
	c.Assert(err, IsNil)
	c.Assert(v32, Equals, uint32(4294967295))
	v64, err := HexToUint64("FFFFFFFFFFFFFFFF", true)
	c.Assert(err, IsNil)
	c.Assert(v64.Cmp(common.BigMaxUint64), Equals, 0)
	v224, err := HexToUint224(strings.Repeat("F", 56), true)
	c.Assert(err, IsNil)
	c.Assert(v224.Cmp(common.BigMaxUint224), Equals, 0)
}

func (s *ScalarSuite) TestUintDecoding(c *C) {
	v8, err := HexToUint8("ff")
	c.Assert(err, IsNil)
	c.Assert(v8, Equals, uint8(255))

	v16, err := HexToUint16("0A00", true)
	c.Assert(err, IsNil)
	c.Assert(v16, Equals, uint16(10))

	v32, err := HexToUint32("05000000", true)
	c.Assert(err, IsNil)
	c.Assert(v32, Equals, uint32(5))

	v64, err := HexToUint64("0500000000000000", true)
	c.Assert(err, IsNil)
	c.Assert(v64.Int64(), Equals, int64(5))

	v224, err := HexToUint224(zeros(54)+"05", false)
	c.Assert(err, IsNil)
	c.Assert(v224.Int64(), Equals, int64(5))

	_, err = HexToUint16("0A0", false)
	c.Assert(errors.Is(err, ErrTruncated), Equals, true)
	_, err = HexToUint16("0A000", false)
	c.Assert(errors.Is(err, ErrLengthExceeded), Equals, true)
	_, err = HexToUint32("0A0G0000", false)
	c.Assert(errors.Is(err, ErrMalformed), Equals, true)
}

func (s *ScalarSuite) TestLengthPrefix(c *C) {
	TestSlice{
		{Value: ErrorCheck(LengthPrefixWidth(0)), Checker: ErrorMatches, Expected: "max length must be positive", Description: "zero max"},
		{Value: ErrorCheck(LengthPrefixWidth(65537)), Checker: ErrorMatches, Expected: "max length 65537 exceeds 2 bytes", Description: "too large"},
		{Value: ErrorCheck(LengthToHex(257, 256)), Checker: ErrorMatches, Expected: "length length 257 exceeds max length of 256", Description: "count over max"},
		{Value: ErrorCheck(LengthToHex(256, 256)), Checker: ErrorMatches, Expected: "length prefix length 256 exceeds max length of 255", Description: "count over prefix"},
	}.Test(c)

	width, _ := LengthPrefixWidth(256)
	c.Assert(width, Equals, 2)
	width, _ = LengthPrefixWidth(257)
	c.Assert(width, Equals, 4)
	hex, _ := LengthToHex(300, 1000)
	c.Assert(hex, Equals, "012C")
	n, err := HexToLength("012C", 1000)
	c.Assert(err, IsNil)
	c.Assert(n, Equals, 300)
}

func (s *ScalarSuite) TestVarString(c *C) {
	hex, err := VarStringToHex("hello", 10)
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, "05"+"68656C6C6F"+zeros(10))
	c.Assert(len(hex), Equals, 22)

	str, err := HexToVarString(hex, 10)
	c.Assert(err, IsNil)
	c.Assert(str, Equals, "hello")

	hex, err = VarStringToHex("", 3)
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, "00000000")

	// two byte prefix once the max passes 256
	hex, err = VarStringToHex("ab", 300)
	c.Assert(err, IsNil)
	c.Assert(hex[:4], Equals, "0002")
	c.Assert(len(hex), Equals, 604)

	// byte length, not rune count
	hex, err = VarStringToHex("é", 2)
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, "02C3A9")
	str, err = HexToVarString(hex, 2)
	c.Assert(err, IsNil)
	c.Assert(str, Equals, "é")

	_, err = VarStringToHex("\xff\xfe", 4)
	c.Assert(errors.Is(err, ErrInvalidValue), Equals, true)
	memo := "\xff"
	_, err = EncodeModel(&bindings{VarString("memo", 4, &memo)})
	c.Assert(errors.Is(err, ErrInvalidValue), Equals, true)
	c.Assert(err, ErrorMatches, "memo \\(varString\\): .*not valid UTF-8")

	_, err = VarStringToHex("abcd", 3)
	c.Assert(errors.Is(err, ErrLengthExceeded), Equals, true)
	_, err = VarStringToHex("abc", 0)
	c.Assert(errors.Is(err, ErrConfiguration), Equals, true)
	_, err = HexToVarString("05000000", 3)
	c.Assert(errors.Is(err, ErrLengthExceeded), Equals, true)
	_, err = HexToVarString("02FFFE00", 3)
	c.Assert(errors.Is(err, ErrMalformed), Equals, true)
}

func (s *ScalarSuite) TestXfl(c *C) {
	c.Assert(XflToHex(xfl.Zero, false), Equals, "0000000000000000")
	c.Assert(XflToHex(xfl.Zero, true), Equals, "0000000000000000")
	c.Assert(XflToHex(xfl.MustParse("10"), false), Equals, "54C38D7EA4C68000")
	c.Assert(XflToHex(xfl.MustParse("10"), true), Equals, "0080C6A47E8DC354")

	v, err := HexToXfl("0080C6A47E8DC354", true)
	c.Assert(err, IsNil)
	c.Assert(v.Equal(xfl.MustParse("10")), Equals, true)

	v, err = HexToXfl("0000000000000000", true)
	c.Assert(err, IsNil)
	c.Assert(v.IsZero(), Equals, true)

	_, err = HexToXfl("8000000000000001", false)
	c.Assert(errors.Is(err, xfl.ErrInvalidEncoding), Equals, true)
	var de *DecodeError
	c.Assert(errors.As(err, &de), Equals, true)
}

func (s *ScalarSuite) TestCurrency(c *C) {
	hex, err := CurrencyToHex("USD")
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, "0000000000000000000000005553440000000000")
	code, err := HexToCurrency(hex)
	c.Assert(err, IsNil)
	c.Assert(code, Equals, "USD")

	hex, err = CurrencyToHex("EU")
	c.Assert(err, IsNil)
	code, err = HexToCurrency(hex)
	c.Assert(err, IsNil)
	c.Assert(code, Equals, "EU")

	raw := "015841551a748ad2c1f76ff6ecb0cccd00000000"
	hex, err = CurrencyToHex(raw)
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, strings.ToUpper(raw))
	code, err = HexToCurrency(hex)
	c.Assert(err, IsNil)
	c.Assert(code, Equals, strings.ToUpper(raw))

	hex, err = CurrencyToHex("CARBON")
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, "434152424F4E"+zeros(28))

	_, err = CurrencyToHex(strings.Repeat("X", 21))
	c.Assert(errors.Is(err, ErrLengthExceeded), Equals, true)

	code, err = HexToCurrency(zeros(40))
	c.Assert(err, IsNil)
	c.Assert(code, Equals, "")
}

func (s *ScalarSuite) TestHashAndKey(c *C) {
	hash := strings.Repeat("ab", 32)
	hex, err := Hash256ToHex(hash)
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, strings.ToUpper(hash))
	_, err = Hash256ToHex(hash[2:])
	c.Assert(errors.Is(err, ErrTruncated), Equals, true)

	key := "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020"
	hex, err = PublicKeyToHex(key)
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, key)
	_, err = PublicKeyToHex(key + "00")
	c.Assert(errors.Is(err, ErrLengthExceeded), Equals, true)
}

func (s *ScalarSuite) TestXRPAddress(c *C) {
	hex, err := XRPAddressToHex("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, "B5F762798A53D543A014CAF8B297CFF8F2F937E8")
	addr, err := HexToXRPAddress(hex)
	c.Assert(err, IsNil)
	c.Assert(addr, Equals, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")

	_, err = XRPAddressToHex("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTi")
	c.Assert(err, NotNil)
}

func (s *ScalarSuite) TestDispatchCoversEveryType(c *C) {
	for _, t := range AllFieldTypes() {
		parsed, err := ParseFieldType(t.String())
		c.Assert(err, IsNil)
		c.Assert(parsed, Equals, t)

		f := Field{Name: "f", Type: t, MaxStringLength: 4, MaxArrayLength: 4}
		_, err = EncodeScalar(f, nil)
		c.Assert(errors.Is(err, ErrUnknownType), Equals, false, Commentf("%s", t))
		if t.IsStructural() {
			c.Assert(errors.Is(err, ErrInvariantViolation), Equals, true, Commentf("%s", t))
			_, err = ScalarWidth(f)
			c.Assert(errors.Is(err, ErrInvariantViolation), Equals, true, Commentf("%s", t))
			continue
		}
		width, err := ScalarWidth(f)
		c.Assert(err, IsNil, Commentf("%s", t))
		c.Assert(width > 0, Equals, true)
	}

	_, err := ParseFieldType("float")
	c.Assert(errors.Is(err, ErrUnknownType), Equals, true)
	_, err = EncodeScalar(Field{Name: "f", Type: FieldType(99)}, 1)
	c.Assert(errors.Is(err, ErrUnknownType), Equals, true)
	_, err = DecodeScalar(Field{Name: "f", Type: FieldType(99)}, "00")
	c.Assert(errors.Is(err, ErrUnknownType), Equals, true)
}

func (s *ScalarSuite) TestScalarValues(c *C) {
	f := Field{Name: "n", Type: TypeUint32, Little: true}
	for _, v := range []interface{}{10, uint16(10), int64(10), "10", "0x0A", big.NewInt(10)} {
		hex, err := EncodeScalar(f, v)
		c.Assert(err, IsNil, Commentf("%T", v))
		c.Assert(hex, Equals, "0A000000")
	}
	_, err := EncodeScalar(f, 1.5)
	c.Assert(errors.Is(err, ErrInvalidValue), Equals, true)

	// little has no effect on a single byte
	hex, err := EncodeScalar(Field{Name: "b", Type: TypeUint8, Little: true}, 10)
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, "0A")

	x := Field{Name: "x", Type: TypeXFL, Little: true}
	for _, v := range []interface{}{10.0, "10", 10, xfl.MustParse("1e1")} {
		hex, err := EncodeScalar(x, v)
		c.Assert(err, IsNil, Commentf("%T", v))
		c.Assert(hex, Equals, "0080C6A47E8DC354")
	}

	v, err := DecodeScalar(Field{Name: "n", Type: TypeUint64}, "000000000000000A")
	c.Assert(err, IsNil)
	c.Assert(v.(*big.Int).Int64(), Equals, int64(10))
}
