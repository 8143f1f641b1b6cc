package ring

// Integers is the ring ℤ with carrier int64.
//
// It is deliberately not a Field: modules over ℤ exercise the parts of the
// library that must not assume division by nonzero scalars.
type Integers struct{}

// Zero returns 0.
func (Integers) Zero() int64 { return 0 }

// One returns 1.
func (Integers) One() int64 { return 1 }

// Add returns a + b.
func (Integers) Add(a, b int64) int64 { return a + b }

// Neg returns -a.
func (Integers) Neg(a int64) int64 { return -a }

// Mul returns a * b.
func (Integers) Mul(a, b int64) int64 { return a * b }

// Eq compares values.
func (Integers) Eq(a, b int64) bool { return a == b }
