package bigint

import "testing"

func TestAddBoundaries(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"0", "-0", "0"},
		{"4294967295", "1", "4294967296"},
		{"-4294967296", "1", "-4294967295"},
		{"2147483647", "1", "2147483648"},
		{"-2147483648", "-1", "-2147483649"},
		{"18446744073709551615", "1", "18446744073709551616"},
		{"18446744073709551616", "-1", "18446744073709551615"},
		{"-18446744073709551616", "18446744073709551616", "0"},
		{"9223372036854775807", "9223372036854775807", "18446744073709551614"},
		{"-2147483648", "-2147483648", "-4294967296"},
		{"-9223372036854775808", "-9223372036854775808", "-18446744073709551616"},
	}
	for _, c := range cases {
		got := new(Int).Add(MustParse(c.a), MustParse(c.b))
		checkMinimal(t, got)
		if got.String() != c.want {
			t.Fatalf("%s + %s = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestSubIsAddOfNegation(t *testing.T) {
	vals := parsedValues(t)
	for _, a := range vals {
		for _, b := range vals {
			direct := new(Int).Sub(a, b)
			viaNeg := new(Int).Add(a, new(Int).Neg(b))
			if !direct.Equal(viaNeg) {
				t.Fatalf("Sub and Add-of-negation disagree on %s - %s", a, b)
			}
		}
	}
}

func TestMulScenarios(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"-2", "3", "-6"},
		{"2", "-3", "-6"},
		{"-2", "-3", "6"},
		{"0", "123456789012345678901234567890", "0"},
		{"18446744073709551616", "18446744073709551616", "340282366920938463463374607431768211456"},
		{"4294967295", "4294967295", "18446744065119617025"},
		{"4294967296", "4294967296", "18446744073709551616"},
	}
	for _, c := range cases {
		got := new(Int).Mul(MustParse(c.a), MustParse(c.b))
		checkMinimal(t, got)
		if got.String() != c.want {
			t.Fatalf("%s * %s = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestOperandAliasing(t *testing.T) {
	x := MustParse("123456789012345678901234567890")

	sq := x.Clone()
	sq.Mul(sq, sq)
	if sq.String() != "15241578753238836750495351562536198787501905199875019052100" {
		t.Fatalf("squaring in place = %s", sq)
	}

	d := x.Clone()
	d.Add(d, d)
	if d.String() != "246913578024691357802469135780" {
		t.Fatalf("doubling in place = %s", d)
	}

	z := x.Clone()
	z.Sub(z, z)
	if !z.IsZero() {
		t.Fatalf("x - x in place = %s", z)
	}

	q := x.Clone()
	q.Div(q, q)
	if q.String() != "1" {
		t.Fatalf("x / x in place = %s", q)
	}
}

func TestNegationIdentity(t *testing.T) {
	vals := parsedValues(t)
	for _, a := range vals {
		// -x == ^x + 1.
		viaNot := new(Int).Not(a)
		viaNot.Inc()
		neg := new(Int).Neg(a)
		if !neg.Equal(viaNot) {
			t.Fatalf("two's-complement negation identity broke on %s", a)
		}
		if back := new(Int).Neg(neg); !back.Equal(a) {
			t.Fatalf("double negation of %s gave %s", a, back)
		}
	}
}
