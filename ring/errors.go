package ring

import "errors"

var (
	// ErrNotPrime signals a prime-field modulus that is not prime.
	ErrNotPrime = errors.New("ring: modulus is not prime")
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
