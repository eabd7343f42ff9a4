package codec

// Cursor walks a hex string. Offsets count hex digits.
type Cursor struct {
	hex string
	pos int
}

// NewCursor returns a cursor at the start of hex.
func NewCursor(hex string) *Cursor {
	return &Cursor{hex: hex}
}

// Offset returns the number of hex digits consumed.
func (c *Cursor) Offset() int {
	return c.pos
}

// Remaining returns the number of hex digits left.
func (c *Cursor) Remaining() int {
	return len(c.hex) - c.pos
}

func (c *Cursor) HasMore() bool {
	return c.pos < len(c.hex)
}

// Peek returns the next n hex digits without consuming them.
func (c *Cursor) Peek(n int) (string, error) {
	if n < 0 || c.Remaining() < n {
		return "", &DecodeError{Offset: c.pos, Need: n, Have: c.Remaining(), Err: ErrTruncated}
	}
	s := c.hex[c.pos : c.pos+n]
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !('0' <= ch && ch <= '9' || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F') {
			return "", &DecodeError{Offset: c.pos + i, Err: ErrMalformed}
		}
	}
	return s, nil
}

// Read consumes the next n hex digits.
func (c *Cursor) Read(n int) (string, error) {
	s, err := c.Peek(n)
	if err != nil {
		return "", err
	}
	c.pos += n
	return s, nil
}
