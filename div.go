package bigint

import "bigint/internal/dynarray"

// shortDiv divides z in place by a single positive digit and returns the
// remainder. z must be non-negative.
func (z *Int) shortDiv(d uint32) uint32 {
	var rem uint32
	ds := z.buf.digits()
	for i := len(ds) - 1; i >= 0; i-- {
		ds[i], rem = div21(ds[i], rem, d)
	}
	z.shrink()
	return rem
}

// Div sets z to the quotient x/y and returns z. The quotient is truncated
// toward zero. Div panics if y is zero.
func (z *Int) Div(x, y *Int) *Int {
	var rem Int
	z.longDivide(x, y, &rem)
	return z
}

// Mod sets z to the remainder x%y and returns z. The remainder takes the
// sign of x and |x%y| < |y|. Mod panics if y is zero.
func (z *Int) Mod(x, y *Int) *Int {
	var q, rem Int
	q.longDivide(x, y, &rem)
	z.adopt(&rem)
	return z
}

// DivMod sets z to the quotient x/y and m to the remainder x%y, with the
// same conventions as Div and Mod, and returns (z, m). DivMod panics if y
// is zero or if z and m alias.
func (z *Int) DivMod(x, y, m *Int) (*Int, *Int) {
	if z == m {
		panic("bigint: DivMod with aliased quotient and remainder")
	}
	var rem Int
	z.longDivide(x, y, &rem)
	m.adopt(&rem)
	return z, m
}

// longDivide sets z to x/y and rem to x%y.
//
// Signs are stripped first: the quotient sign is the XOR of the operand
// signs and the remainder keeps the dividend's. A one-digit divisor uses
// short division; a divisor longer than the dividend yields quotient zero.
// Otherwise both operands are scaled so the divisor's top digit is at least
// 2^31, quotient digits are estimated high to low with div32 on the three
// leading remainder digits and corrected at most once, and the remainder is
// scaled back down at the end.
func (z *Int) longDivide(x, y *Int, rem *Int) {
	if y.IsZero() {
		panic("bigint: division by zero")
	}
	var t Int
	t.Set(x)
	xSign := t.makeAbsolute()
	sign := xSign != y.signBit()
	var right Int
	right.Set(y)
	right.revertSign(false)

	n, m := t.unsignedLen(), right.unsignedLen()
	switch {
	case m == 1:
		r := t.shortDiv(right.get(0))
		rem.SetInt64(int64(r))
	case m > n:
		rem.adopt(&t)
		t.SetInt64(0)
	default:
		t.divideCore(&right, rem, n, m)
	}
	rem.revertSign(xSign)
	t.revertSign(sign)
	z.adopt(&t)
}

// divideCore runs normalized long division of the non-negative t by the
// non-negative m-digit divisor, 2 <= m <= n. On return t is the quotient
// and rem the (still scaled-down) remainder.
func (t *Int) divideCore(divisor, rem *Int, n, m int) {
	rem.Set(t)
	var d Int
	d.Set(divisor)

	// Scale both sides so the divisor's top digit reaches 2^31; the
	// trial-digit bound depends on it.
	f := uint32(1)
	if top := d.get(m - 1); top != maxDigit {
		f, _ = div21(0, 1, top+1)
	}
	rem.shortMul(f)
	d.shortMul(f)

	dHi, dLo := d.get(m-1), d.get(m-2)
	q := dynarray.Make[uint32](n-m+1, 0)
	for k := n - m; k >= 0; k-- {
		r3Hi := rem.getStored(k + m)
		r3Med := rem.getStored(k + m - 1)
		r3Lo := rem.getStored(k + m - 2)
		qt, _ := div32(r3Lo, r3Med, r3Hi, dLo, dHi)

		var dq Int
		dq.Set(&d)
		dq.shortMul(qt)
		dq.shlDigits(k)
		if rem.Cmp(&dq) < 0 {
			// Estimate was one too high.
			qt--
			dq.Set(&d)
			dq.shortMul(qt)
			dq.shlDigits(k)
		}
		q.Set(k, qt)
		rem.Sub(rem, &dq)
	}
	rem.shortDiv(f)

	quot := Int{buf: bufferOf(q.Data())}
	quot.correctSignBit(false, 0, false)
	t.adopt(&quot)
}

// getStored reads the digit at index i, or zero past the stored sequence.
func (x *Int) getStored(i int) uint32 {
	if i >= x.length() {
		return 0
	}
	return x.get(i)
}
