// Package Primes answers primality questions for picking table capacities.
package Primes

import "golang.org/x/exp/constraints"

// Primality is the result of IsPrime.
type Primality int8

const (
	Undefined Primality = iota - 1 //n<2, primality isn't defined.
	Composite
	Prime
)

func (p Primality) String() string {
	switch p {
	case Prime:
		return "prime"
	case Composite:
		return "composite"
	}
	return "undefined"
}

// IsPrime tests n by trial division up to floor(sqrt(n)). Multiples of 2 and 3 are rejected
// first, then only divisors of the form 6k±1 are tried. It never allocates.
func IsPrime[T constraints.Integer](n T) Primality {
	if n < 2 {
		return Undefined
	}
	if n < 4 {
		return Prime
	}
	if n%2 == 0 || n%3 == 0 {
		return Composite
	}
	for i := T(5); i <= n/i; i += 6 { //i<=n/i instead of i*i<=n so it can't overflow.
		if n%i == 0 || n%(i+2) == 0 {
			return Composite
		}
	}
	return Prime
}

// NextPrime returns the smallest prime that is >= max(n, 2).
func NextPrime[T constraints.Integer](n T) T {
	if n <= 2 {
		return 2
	}
	for IsPrime(n) != Prime {
		n++
	}
	return n
}
