// Package arith implements flooring integer division for big integers.
package arith

import "math/big"

// FloorDivMod returns q = floor(a/b) and r = a - q*b, so that r is zero or has
// the sign of b. It panics if b is zero. The results are newly allocated.
func FloorDivMod(a, b *big.Int) (q, r *big.Int) {
	q, r = new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		q.Sub(q, big.NewInt(1))
		r.Add(r, b)
	}
	return q, r
}

// FloorDiv returns floor(a/b) as a new value. It panics if b is zero.
func FloorDiv(a, b *big.Int) *big.Int {
	q, _ := FloorDivMod(a, b)
	return q
}

// FloorMod returns a - b*floor(a/b) as a new value. It panics if b is zero.
func FloorMod(a, b *big.Int) *big.Int {
	_, r := FloorDivMod(a, b)
	return r
}
