package cvec

// Ones returns a length-n vector with every element set to 1+0i.
func Ones(n int) []complex128 {
	v := make([]complex128, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

// Zeros returns a length-n zero vector.
func Zeros(n int) []complex128 {
	return make([]complex128, n)
}

// Clone returns a copy of v, or nil if v is nil.
func Clone(v []complex128) []complex128 {
	if v == nil {
		return nil
	}
	out := make([]complex128, len(v))
	copy(out, v)
	return out
}

// MulReal writes a[i]*s[i] into dst, scaling each complex element by a real
// factor. dst may alias a.
func MulReal(dst, a []complex128, s []float64) {
	for i := range dst {
		dst[i] = a[i] * complex(s[i], 0)
	}
}
