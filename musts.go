package bigint

// MustParse is like ParseInt but panics on malformed input. It simplifies
// initialization of package-level variables and tests with literal values.
func MustParse(s string) *Int {
	v, err := ParseInt(s)
	if err != nil {
		panic(err)
	}
	return v
}
