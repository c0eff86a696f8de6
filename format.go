package bigint

import "bigint/internal/dynarray"

// String renders x in base 10: a minus sign for negative values, no
// leading zeros, "0" for zero. Int implements fmt.Stringer, so any
// fmt-based text sink prints the decimal form.
func (x *Int) String() string {
	var t Int
	t.Set(x)
	neg := t.makeAbsolute()

	var out dynarray.Array[byte]
	if t.IsZero() {
		out.PushBack('0')
	}
	for !t.IsZero() {
		r := t.shortDiv(10)
		out.PushBack(byte('0' + r))
	}
	if neg {
		out.PushBack('-')
	}

	// Digits were produced least significant first.
	b := out.Data()
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// MarshalText implements encoding.TextMarshaler with the String form.
func (x *Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}
