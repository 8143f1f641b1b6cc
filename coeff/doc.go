/*
Package coeff implements finitely-supported coefficient mappings over
abstract index sets.

A Map assigns a ring element to every index of a (possibly infinite) index
set, with all but finitely many coefficients equal to zero. Maps are the
representation a basis gives to module elements, and their supports are the
finite sets the covering and cardinality arguments of the parent package
aggregate over.
*/
package coeff

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
