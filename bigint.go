package bigint

// Int is an arbitrary-precision signed integer.
//
// The value is a non-empty little-endian sequence of base-2^32 digits read
// in two's-complement form: the sign is the top bit of the last digit, and
// the sequence is always the shortest one encoding the value. Zero is the
// single digit 0, which is what the zero value of Int represents.
//
// Do not copy an Int by assignment; use Set or Clone.
type Int struct {
	buf buffer
}

// New returns a new Int set to zero.
func New() *Int { return new(Int) }

// NewInt returns a new Int set to v.
func NewInt(v int64) *Int { return new(Int).SetInt64(v) }

// SetInt64 sets z to v and returns z.
func (z *Int) SetInt64(v int64) *Int {
	z.buf.release()
	z.buf = bufferOf([]uint32{uint32(v), uint32(uint64(v) >> digitBits)})
	z.shrink()
	return z
}

// Set sets z to x, sharing x's storage copy-on-write, and returns z.
func (z *Int) Set(x *Int) *Int {
	z.buf.shareFrom(&x.buf)
	return z
}

// Clone returns a new Int equal to x.
func (x *Int) Clone() *Int { return new(Int).Set(x) }

// Int64 returns the value of x as an int64 and whether it fits.
func (x *Int) Int64() (int64, bool) {
	if x.length() > 2 {
		return 0, false
	}
	u := uint64(x.get(0)) | uint64(x.getOrFill(1))<<digitBits
	return int64(u), true
}

// Sign returns -1, 0, or 1 depending on the sign of x.
func (x *Int) Sign() int {
	if x.signBit() {
		return -1
	}
	if x.length() == 1 && x.get(0) == 0 {
		return 0
	}
	return 1
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool { return x.Sign() == 0 }

func (x *Int) length() int { return x.buf.length() }

func (x *Int) get(i int) uint32 { return x.buf.at(i) }

func signBitOf(d uint32) bool { return d>>(digitBits-1) != 0 }

func (x *Int) signBit() bool { return signBitOf(x.buf.back()) }

// fill is the implicit digit beyond the stored sequence: all ones for
// negative values, zero otherwise.
func (x *Int) fill() uint32 { return fillFor(x.signBit()) }

func fillFor(sign bool) uint32 {
	if sign {
		return maxDigit
	}
	return 0
}

// getOrFill reads digit i, sign-extending above the stored sequence.
// Negative indices read as zero.
func (x *Int) getOrFill(i int) uint32 {
	if i < 0 {
		return 0
	}
	if i >= x.length() {
		return x.fill()
	}
	return x.get(i)
}

// unsignedLen is the digit count ignoring a top digit that only carries the
// sign.
func (x *Int) unsignedLen() int {
	n := x.length()
	if n > 1 && x.buf.back() == x.fill() {
		return n - 1
	}
	return n
}

// shrink drops redundant top digits until the sequence is the shortest
// two's-complement encoding of the value.
func (z *Int) shrink() *Int {
	for z.length() > 1 && z.buf.back() == z.fill() &&
		signBitOf(z.get(z.length()-2)) == z.signBit() {
		z.buf.pop()
	}
	return z
}

// resizeFill extends z to n digits of the same value. The result may
// violate minimality; callers shrink afterwards.
func (z *Int) resizeFill(n int) {
	z.buf.resizeFill(n, z.fill())
}

// correctSignBit appends the carry digit if present, then one fill digit if
// the sign bit no longer matches the expected sign, and re-establishes
// minimality. Callers only expect a negative sign when the result cannot be
// zero, so an all-zero digit pattern here is a dropped carry (the value
// wrapped past -2^(32n)) and still takes the fill digit.
func (z *Int) correctSignBit(expected bool, carry uint32, hasCarry bool) *Int {
	if hasCarry {
		z.buf.push(carry)
	}
	if z.signBit() != expected {
		z.buf.push(fillFor(expected))
	}
	return z.shrink()
}

// revertSign flips z to the given sign; zero is unchanged.
func (z *Int) revertSign(sign bool) *Int {
	if z.signBit() != sign {
		z.Neg(z)
	}
	return z
}

// makeAbsolute makes z non-negative and reports whether it was negative.
func (z *Int) makeAbsolute() bool {
	sign := z.signBit()
	z.revertSign(false)
	return sign
}

// adopt moves the value of a dead temporary into z.
func (z *Int) adopt(t *Int) {
	z.buf.release()
	z.buf = t.buf
	t.buf = buffer{}
}
