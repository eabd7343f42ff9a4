package xfl

import (
	"errors"

	. "gopkg.in/check.v1"
)

type WireSuite struct{}

var _ = Suite(&WireSuite{})

func (s *WireSuite) TestKnownWords(c *C) {
	c.Assert(valueCheck("10").Uint64(), Equals, uint64(0x54C38D7EA4C68000))
	c.Assert(valueCheck("-10").Uint64(), Equals, uint64(0x14C38D7EA4C68000))
	c.Assert(Zero.Uint64(), Equals, uint64(0))
}

func (s *WireSuite) TestRoundTrip(c *C) {
	for _, str := range []string{"10", "-10", "0.1", "1e-81", "9999999999999999e80", "-123.456", "42"} {
		v := valueCheck(str)
		back, err := FromUint64(v.Uint64())
		c.Assert(err, IsNil, Commentf(str))
		c.Assert(back, Equals, v, Commentf(str))
	}
	zero, err := FromUint64(0)
	c.Assert(err, IsNil)
	c.Assert(zero.IsZero(), Equals, true)
}

func (s *WireSuite) TestInvalidWords(c *C) {
	_, err := FromUint64(1 << 63)
	c.Assert(errors.Is(err, ErrInvalidEncoding), Equals, true)

	// mantissa below 1e15
	_, err = FromUint64(signBit | uint64(97)<<54 | 1)
	c.Assert(errors.Is(err, ErrInvalidEncoding), Equals, true)

	// exponent 81
	_, err = FromUint64(signBit | uint64(81+97)<<54 | minMantissa)
	c.Assert(errors.Is(err, ErrInvalidEncoding), Equals, true)
}
