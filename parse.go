package bigint

import (
	"errors"
	"fmt"
)

// ErrParse indicates input that is not a decimal integer.
var ErrParse = errors.New("invalid decimal integer")

// ParseInt parses a base-10 integer: an optional leading minus sign
// followed by at least one digit. Any other byte anywhere in the input
// fails the whole parse.
func ParseInt(s string) (*Int, error) {
	rest := s
	neg := false
	if len(rest) > 0 && rest[0] == '-' {
		neg = true
		rest = rest[1:]
	}
	if rest == "" {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}
	t := new(Int)
	var digit Int
	for i := 0; i < len(rest); i++ {
		ch := rest[i]
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("%w: %q", ErrParse, s)
		}
		t.shortMul(10)
		digit.SetInt64(int64(ch - '0'))
		t.Add(t, &digit)
	}
	t.revertSign(neg)
	return t, nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the same
// form as ParseInt. z is left unchanged on error.
func (z *Int) UnmarshalText(text []byte) error {
	v, err := ParseInt(string(text))
	if err != nil {
		return err
	}
	z.adopt(v)
	return nil
}
