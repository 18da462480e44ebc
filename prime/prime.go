// Package prime finds table sizes suitable for double hashing.
package prime

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by TwinPrime when the search range holds no twin
// prime pair.
var ErrNotFound = errors.New("no twin primes found")

// IsPrime reports whether n is prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// TwinPrime returns p+2 for the first p in [min, max] such that p and p+2 are
// both prime. The result m is a valid capacity for a double hashing table
// since m and m-2 are prime.
func TwinPrime(min, max int) (int, error) {
	for p := min; p <= max; p++ {
		if IsPrime(p) && IsPrime(p+2) {
			return p + 2, nil
		}
	}
	return 0, fmt.Errorf("range [%d, %d]: %w", min, max, ErrNotFound)
}
