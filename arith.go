package bigint

// Add sets z to x+y and returns z.
//
// Both operands are sign-extended to a common length and added with carry.
// When the operands share a sign the result must keep it, so a corrective
// digit is appended if the sign bit flipped; with mixed signs the discarded
// carry is exactly the two's-complement wrap.
func (z *Int) Add(x, y *Int) *Int {
	var t Int
	t.Set(x)
	xSign, ySign := t.signBit(), y.signBit()
	if n := y.length(); n > t.length() {
		t.resizeFill(n)
	}
	var carry uint32
	d := t.buf.digits()
	for i := range d {
		d[i], carry = addc32(d[i], y.getOrFill(i), carry)
	}
	if xSign == ySign {
		t.correctSignBit(xSign, 0, false)
	}
	t.shrink()
	z.adopt(&t)
	return z
}

// Sub sets z to x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	return z.Add(x, new(Int).Neg(y))
}

// Neg sets z to -x and returns z, using the identity -x = ^x + 1.
func (z *Int) Neg(x *Int) *Int {
	return z.Not(x).Inc()
}

// Not sets z to the bitwise complement ^x and returns z.
func (z *Int) Not(x *Int) *Int {
	return z.placeWise(new(Int), x, func(_, r uint32) uint32 { return ^r })
}

// Inc adds one to z and returns z.
func (z *Int) Inc() *Int { return z.Add(z, intOne()) }

// Dec subtracts one from z and returns z.
func (z *Int) Dec() *Int { return z.Sub(z, intOne()) }

func intOne() *Int { return &Int{buf: bufferOf([]uint32{1})} }

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.revertSign(false)
	return z
}

// shortMul multiplies z in place by a single positive digit.
func (z *Int) shortMul(m uint32) *Int {
	sign := z.makeAbsolute()
	var carry uint32
	d := z.buf.digits()
	for i := range d {
		lo, hi := mul32(d[i], m)
		var c uint32
		d[i], c = addc32(lo, carry, 0)
		carry = hi + c
	}
	z.correctSignBit(false, carry, carry != 0)
	return z.revertSign(sign)
}

// Mul sets z to x*y and returns z.
//
// Schoolbook long multiplication: for every digit of y, the product of |x|
// with that digit is shifted into place and accumulated; the sign of the
// result is the XOR of the operand signs.
func (z *Int) Mul(x, y *Int) *Int {
	var left Int
	left.Set(x)
	leftSign := left.makeAbsolute()
	sign := leftSign != y.signBit()
	var right Int
	right.Set(y)
	right.revertSign(false)

	var res Int
	for i := 0; i < right.length(); i++ {
		var part Int
		part.Set(&left)
		part.shortMul(right.get(i))
		part.shlDigits(i)
		res.Add(&res, &part)
	}
	res.revertSign(sign)
	z.adopt(&res)
	return z
}
