package codec

import (
	"errors"
	"math/big"
	"strings"

	"github.com/anyswap/xrpl-model-codec/xfl"
	. "gopkg.in/check.v1"
)

type ModelSuite struct{}

var _ = Suite(&ModelSuite{})

const (
	rootAddress   = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	rootAccountID = "B5F762798A53D543A014CAF8B297CFF8F2F937E8"
	tenLittle     = "0080C6A47E8DC354"
)

type amount struct {
	Value xfl.Value
}

func newAmount() *amount { return &amount{} }

func (a *amount) Bindings() []Binding {
	return []Binding{XFL("value", &a.Value).LittleEndian()}
}

type entry struct {
	Flags  uint16
	Name   string
	Amount *amount
}

func newEntry() *entry { return &entry{} }

func (e *entry) Bindings() []Binding {
	return []Binding{
		Uint16("flags", &e.Flags),
		VarString("name", 10, &e.Name),
		Nested("amount", &e.Amount, newAmount),
	}
}

type book struct {
	Owner   string
	Entries []*entry
}

func newBook() Model { return &book{} }

func (b *book) Bindings() []Binding {
	return []Binding{
		XRPAddress("owner", &b.Owner),
		Array("entries", 4, &b.Entries, newEntry),
	}
}

type wide struct {
	Seq     *big.Int
	Balance *big.Int
	Rate    float64
	Code    string
}

func (w *wide) Bindings() []Binding {
	return []Binding{
		Uint64("seq", &w.Seq).LittleEndian(),
		Uint224("balance", &w.Balance),
		XFLFloat("rate", &w.Rate),
		Currency("code", &w.Code),
	}
}

func entryCheck(flags uint16, name, value string) *entry {
	return &entry{Flags: flags, Name: name, Amount: &amount{Value: xfl.MustParse(value)}}
}

const entryHiTen = "0001" + "02" + "6869" + "0000000000000000" + tenLittle

func (s *ModelSuite) TestSingleField(c *C) {
	hex, err := EncodeModel(&amount{Value: xfl.MustParse("10")})
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, tenLittle)

	hex, err = EncodeModel(&amount{})
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, "0000000000000000")

	m, err := DecodeModel(tenLittle, func() Model { return newAmount() })
	c.Assert(err, IsNil)
	c.Assert(m.(*amount).Value.Equal(xfl.MustParse("10")), Equals, true)

	m, err = DecodeModel("0000000000000000", func() Model { return newAmount() })
	c.Assert(err, IsNil)
	c.Assert(m.(*amount).Value.IsZero(), Equals, true)
}

func (s *ModelSuite) TestNestedConcatenation(c *C) {
	hex, err := EncodeModel(entryCheck(1, "hi", "10"))
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, entryHiTen)

	var e entry
	c.Assert(DecodeInto(hex, &e), IsNil)
	c.Assert(e.Flags, Equals, uint16(1))
	c.Assert(e.Name, Equals, "hi")
	c.Assert(e.Amount.Value.Equal(xfl.MustParse("10")), Equals, true)
}

func (s *ModelSuite) TestArrayFraming(c *C) {
	hex, err := EncodeModel(&book{Owner: rootAddress})
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, rootAccountID+"00")

	b := &book{Owner: rootAddress, Entries: []*entry{entryCheck(1, "hi", "10"), entryCheck(2, "", "0")}}
	hex, err = EncodeModel(b)
	c.Assert(err, IsNil)
	second := "0002" + "00" + strings.Repeat("0", 20) + "0000000000000000"
	c.Assert(hex, Equals, rootAccountID+"02"+entryHiTen+second)

	m, err := DecodeModel(hex, newBook)
	c.Assert(err, IsNil)
	decoded := m.(*book)
	c.Assert(decoded.Owner, Equals, rootAddress)
	c.Assert(decoded.Entries, HasLen, 2)
	c.Assert(decoded.Entries[0].Name, Equals, "hi")
	c.Assert(decoded.Entries[1].Flags, Equals, uint16(2))
	c.Assert(decoded.Entries[1].Amount.Value.IsZero(), Equals, true)

	again, err := EncodeModel(decoded)
	c.Assert(err, IsNil)
	c.Assert(again, Equals, hex)

	m, err = DecodeModel(rootAccountID+"00", newBook)
	c.Assert(err, IsNil)
	c.Assert(m.(*book).Entries, HasLen, 0)
}

func (s *ModelSuite) TestArrayLimits(c *C) {
	b := &book{Owner: rootAddress}
	for i := 0; i < 5; i++ {
		b.Entries = append(b.Entries, entryCheck(uint16(i), "x", "1"))
	}
	_, err := EncodeModel(b)
	c.Assert(errors.Is(err, ErrLengthExceeded), Equals, true)

	_, err = DecodeModel(rootAccountID+"05", newBook)
	c.Assert(errors.Is(err, ErrLengthExceeded), Equals, true)

	var entries []*entry
	noMax := &bindings{Array("entries", 0, &entries, newEntry)}
	_, err = EncodeModel(noMax)
	c.Assert(errors.Is(err, ErrConfiguration), Equals, true)
	c.Assert(DecodeInto("00", noMax), NotNil)

	tooBig := &bindings{Array("entries", 256, &entries, newEntry)}
	_, err = EncodeModel(tooBig)
	c.Assert(errors.Is(err, ErrConfiguration), Equals, true)
}

// bindings is a model assembled from explicit bindings.
type bindings []Binding

func (b *bindings) Bindings() []Binding { return *b }

func (s *ModelSuite) TestMissingField(c *C) {
	_, err := EncodeModel(&entry{Flags: 1, Name: "hi"})
	c.Assert(errors.Is(err, ErrMissingField), Equals, true)
	var fe *FieldError
	c.Assert(errors.As(err, &fe), Equals, true)
	c.Assert(fe.Path, Equals, "amount")

	b := &book{Owner: rootAddress, Entries: []*entry{entryCheck(1, "a", "1"), {Name: "b"}}}
	_, err = EncodeModel(b)
	c.Assert(errors.As(err, &fe), Equals, true)
	c.Assert(fe.Path, Equals, "entries[1].amount")
	c.Assert(err, ErrorMatches, `entries\[1\]\.amount \(model\): field entries\[1\]\.amount is not set`)

	b.Entries[1] = nil
	_, err = EncodeModel(b)
	c.Assert(errors.Is(err, ErrMissingField), Equals, true)

	_, err = EncodeModel(&wide{Rate: 1, Code: "USD"})
	c.Assert(errors.As(err, &fe), Equals, true)
	c.Assert(fe.Path, Equals, "seq")
}

func (s *ModelSuite) TestFieldErrors(c *C) {
	_, err := EncodeModel(entryCheck(1, "far too long a name", "1"))
	c.Assert(errors.Is(err, ErrLengthExceeded), Equals, true)
	var fe *FieldError
	c.Assert(errors.As(err, &fe), Equals, true)
	c.Assert(fe.Path, Equals, "name")
	c.Assert(fe.Type, Equals, TypeVarString)

	var n int
	unknown := &bindings{{
		Field: Field{Name: "n", Type: FieldType(99)},
		Get:   func() (interface{}, bool) { return n, true },
		Set:   func(interface{}) error { return nil },
	}}
	_, err = EncodeModel(unknown)
	c.Assert(errors.Is(err, ErrUnknownType), Equals, true)
	c.Assert(DecodeInto("00", unknown), NotNil)

	unbound := &bindings{{Field: Field{Name: "n", Type: TypeUint8}}}
	_, err = EncodeModel(unbound)
	c.Assert(errors.Is(err, ErrConfiguration), Equals, true)
	err = DecodeInto("00", unbound)
	c.Assert(errors.Is(err, ErrConfiguration), Equals, true)

	_, err = EncodeModel(nil)
	c.Assert(errors.Is(err, ErrMissingField), Equals, true)
}

func (s *ModelSuite) TestWideScalars(c *C) {
	w := &wide{Seq: big.NewInt(5), Balance: big.NewInt(1), Rate: 10, Code: "USD"}
	hex, err := EncodeModel(w)
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, "0500000000000000"+strings.Repeat("0", 55)+"1"+"54C38D7EA4C68000"+"0000000000000000000000005553440000000000")

	var back wide
	c.Assert(DecodeInto(hex, &back), IsNil)
	c.Assert(back.Seq.Int64(), Equals, int64(5))
	c.Assert(back.Balance.Int64(), Equals, int64(1))
	c.Assert(back.Rate, Equals, 10.0)
	c.Assert(back.Code, Equals, "USD")
}

func (s *ModelSuite) TestMalformedInput(c *C) {
	factory := func() Model { return newAmount() }

	_, err := DecodeModel("0080C6", factory)
	c.Assert(errors.Is(err, ErrTruncated), Equals, true)

	_, err = DecodeModel(tenLittle+"00", factory)
	c.Assert(errors.Is(err, ErrMalformed), Equals, true)
	var de *DecodeError
	c.Assert(errors.As(err, &de), Equals, true)
	c.Assert(de.Offset, Equals, 16)

	_, err = DecodeModel("ZZ80C6A47E8DC354", factory)
	c.Assert(errors.Is(err, ErrMalformed), Equals, true)

	_, err = DecodeModel(entryHiTen[:10], func() Model { return newEntry() })
	c.Assert(errors.Is(err, ErrTruncated), Equals, true)
	var fe *FieldError
	c.Assert(errors.As(err, &fe), Equals, true)
	c.Assert(fe.Path, Equals, "name")

	_, err = DecodeModel(tenLittle, nil)
	c.Assert(errors.Is(err, ErrConfiguration), Equals, true)
}

func (s *ModelSuite) TestDecodeFromStream(c *C) {
	cur := NewCursor(tenLittle + entryHiTen)
	first, err := DecodeFrom(cur, func() Model { return newAmount() })
	c.Assert(err, IsNil)
	c.Assert(first.(*amount).Value.Equal(xfl.MustParse("10")), Equals, true)
	c.Assert(cur.Offset(), Equals, 16)

	second, err := DecodeFrom(cur, func() Model { return newEntry() })
	c.Assert(err, IsNil)
	c.Assert(second.(*entry).Name, Equals, "hi")
	c.Assert(cur.HasMore(), Equals, false)
}

func (s *ModelSuite) TestInspect(c *C) {
	hex := rootAccountID + "01" + entryHiTen
	m, segments, err := Inspect(hex, newBook)
	c.Assert(err, IsNil)
	c.Assert(m.(*book).Entries, HasLen, 1)
	c.Assert(segments, HasLen, 5)

	expected := []struct {
		path   string
		typ    FieldType
		offset int
	}{
		{"owner", TypeXRPAddress, 0},
		{"entries", TypeVarModelArray, 40},
		{"entries[0].flags", TypeUint16, 42},
		{"entries[0].name", TypeVarString, 46},
		{"entries[0].amount.value", TypeXFL, 68},
	}
	for i, want := range expected {
		c.Assert(segments[i].Path, Equals, want.path)
		c.Assert(segments[i].Type, Equals, want.typ)
		c.Assert(segments[i].Offset, Equals, want.offset)
	}
	c.Assert(segments[0].Value, Equals, rootAddress)
	c.Assert(segments[1].Value, Equals, 1)
	c.Assert(segments[3].Hex, Equals, "02"+"6869"+"0000000000000000")

	_, segments, err = Inspect(hex[:50], newBook)
	c.Assert(err, NotNil)
	c.Assert(segments, HasLen, 3)
}

type header struct {
	Kind   uint8
	Ledger uint32
	Hash   string
	Signer string
}

func (h *header) Bindings() []Binding {
	return []Binding{
		Uint8("kind", &h.Kind),
		Uint32("ledger", &h.Ledger).LittleEndian(),
		Hash256("hash", &h.Hash),
		PublicKey("signer", &h.Signer),
	}
}

func (s *ModelSuite) TestFixedWidthFields(c *C) {
	hash := strings.Repeat("ab", 32)
	signer := "0330e7fc9d56bb25d6893ba3f317ae5bcf33b3291bd63db32654a313222f7fd020"
	hex, err := EncodeModel(&header{Kind: 7, Ledger: 0x01020304, Hash: hash, Signer: signer})
	c.Assert(err, IsNil)
	c.Assert(hex, Equals, "07"+"04030201"+strings.ToUpper(hash)+strings.ToUpper(signer))

	var back header
	c.Assert(DecodeInto(strings.ToLower(hex), &back), IsNil)
	c.Assert(back.Kind, Equals, uint8(7))
	c.Assert(back.Ledger, Equals, uint32(0x01020304))
	c.Assert(back.Hash, Equals, strings.ToUpper(hash))
	c.Assert(back.Signer, Equals, strings.ToUpper(signer))

	_, err = EncodeModel(&header{Hash: hash[:62], Signer: signer})
	c.Assert(errors.Is(err, ErrTruncated), Equals, true)
}

func (s *ModelSuite) TestFieldString(c *C) {
	var e entry
	b := e.Bindings()
	c.Assert(b[0].Field.String(), Equals, "flags:uint16")
	c.Assert(b[1].Field.String(), Equals, "name:varString(10)")
	c.Assert(Uint64("n", nil).LittleEndian().Field.String(), Equals, "n:uint64,little")
	var entries []*entry
	c.Assert(Array("items", 3, &entries, newEntry).Field.String(), Equals, "items:varModelArray[3]")
}
