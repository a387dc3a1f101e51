package poly

import "github.com/go-fhe/glwecore/math/num"

// List is k polynomials of degree N, held as a slice of separately
// allocated polynomials. Used for the k-polynomial mask of a GLWE
// ciphertext and for the GLWE secret key's k polynomials.
type List[T num.TorusInt] struct {
	Polys []Poly[T]
}

// NewList allocates a List of count polynomials of degree n.
func NewList[T num.TorusInt](count, n int) List[T] {
	l := List[T]{Polys: make([]Poly[T], count)}
	for i := range l.Polys {
		l.Polys[i] = New[T](n)
	}
	return l
}

// Len returns k, the number of polynomials in the list.
func (l List[T]) Len() int {
	return len(l.Polys)
}

// Degree returns N, the degree shared by all polynomials in the list.
func (l List[T]) Degree() int {
	if len(l.Polys) == 0 {
		return 0
	}
	return l.Polys[0].Degree()
}

// Clear zeroes every polynomial in the list.
func (l List[T]) Clear() {
	for _, p := range l.Polys {
		p.Clear()
	}
}
