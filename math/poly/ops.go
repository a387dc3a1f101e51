package poly

import "github.com/go-fhe/glwecore/math/num"

// WrappingAddAssign computes out = a + b, coefficient-wise mod 2^W.
func WrappingAddAssign[T num.TorusInt](a, b, out Poly[T]) {
	n := checkSameDegree(a, b, out)
	for i := 0; i < n; i++ {
		out.Coeffs[i] = a.Coeffs[i] + b.Coeffs[i]
	}
}

// WrappingSubAssign computes out = a - b, coefficient-wise mod 2^W.
func WrappingSubAssign[T num.TorusInt](a, b, out Poly[T]) {
	n := checkSameDegree(a, b, out)
	for i := 0; i < n; i++ {
		out.Coeffs[i] = a.Coeffs[i] - b.Coeffs[i]
	}
}

// AddAssign computes out += a, coefficient-wise mod 2^W.
func AddAssign[T num.TorusInt](a, out Poly[T]) {
	n := checkSameDegree(a, out)
	for i := 0; i < n; i++ {
		out.Coeffs[i] += a.Coeffs[i]
	}
}

// SubAssign computes out -= a, coefficient-wise mod 2^W.
func SubAssign[T num.TorusInt](a, out Poly[T]) {
	n := checkSameDegree(a, out)
	for i := 0; i < n; i++ {
		out.Coeffs[i] -= a.Coeffs[i]
	}
}

// mulNegacyclicAddAssign computes out += a*b in Z_{2^W}[X]/(X^N+1) using
// schoolbook convolution with negacyclic (X^N = -1) reduction.
func mulNegacyclicAddAssign[T num.TorusInt](a, b, out Poly[T]) {
	n := len(out.Coeffs)
	for i := 0; i < n; i++ {
		ai := a.Coeffs[i]
		if ai == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			k := i + j
			if k < n {
				out.Coeffs[k] += ai * b.Coeffs[j]
			} else {
				out.Coeffs[k-n] -= ai * b.Coeffs[j]
			}
		}
	}
}

// mulNegacyclicSubAssign computes out -= a*b in Z_{2^W}[X]/(X^N+1).
func mulNegacyclicSubAssign[T num.TorusInt](a, b, out Poly[T]) {
	n := len(out.Coeffs)
	for i := 0; i < n; i++ {
		ai := a.Coeffs[i]
		if ai == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			k := i + j
			if k < n {
				out.Coeffs[k] -= ai * b.Coeffs[j]
			} else {
				out.Coeffs[k-n] += ai * b.Coeffs[j]
			}
		}
	}
}

// WrappingAddMultisumAssign computes out += <a, b> = sum_i a[i]*b[i], the
// polynomial inner product used by GLWE encryption/decryption: out is the
// accumulator (typically the GLWE body) and a, b are equal-length
// polynomial lists (typically the mask and the secret key).
func WrappingAddMultisumAssign[T num.TorusInt](a, b List[T], out Poly[T]) {
	if a.Len() != b.Len() {
		panic("poly: mask/key length mismatch in WrappingAddMultisumAssign")
	}
	for i := range a.Polys {
		checkSameDegree(a.Polys[i], b.Polys[i], out)
		mulNegacyclicAddAssign(a.Polys[i], b.Polys[i], out)
	}
}

// WrappingSubMultisumAssign computes out -= <a, b>, the complement used by
// GLWE decryption (P = B - <A, S>).
func WrappingSubMultisumAssign[T num.TorusInt](a, b List[T], out Poly[T]) {
	if a.Len() != b.Len() {
		panic("poly: mask/key length mismatch in WrappingSubMultisumAssign")
	}
	for i := range a.Polys {
		checkSameDegree(a.Polys[i], b.Polys[i], out)
		mulNegacyclicSubAssign(a.Polys[i], b.Polys[i], out)
	}
}

func checkSameDegree[T num.TorusInt](ps ...Poly[T]) int {
	n := ps[0].Degree()
	for _, p := range ps[1:] {
		if p.Degree() != n {
			panic("poly: degree mismatch")
		}
	}
	return n
}
