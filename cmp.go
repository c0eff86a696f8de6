package bigint

// Cmp compares x and y and returns -1, 0, or 1.
func (x *Int) Cmp(y *Int) int {
	xSign, ySign := x.signBit(), y.signBit()
	if xSign != ySign {
		if xSign {
			return -1
		}
		return 1
	}
	sign := 1
	if xSign {
		sign = -1
	}
	xn, yn := x.unsignedLen(), y.unsignedLen()
	if xn != yn {
		// More significant digits means further from zero.
		if xn > yn {
			return sign
		}
		return -sign
	}
	// Same sign and width: two's-complement order is plain digit order from
	// the top.
	for i := xn - 1; i >= 0; i-- {
		if a, b := x.get(i), y.get(i); a != b {
			if a > b {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Equal reports whether x and y are the same value. Minimality makes this a
// plain digit-sequence comparison.
func (x *Int) Equal(y *Int) bool {
	return x.buf.eq(&y.buf)
}
