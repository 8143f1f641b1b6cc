package ring

// Ring describes a commutative ring of scalars of carrier type R.
//
// Implementations are small stateless values; all operations are pure and
// never mutate their arguments. Equality must be decidable and exact; the
// provided carriers use exact arithmetic throughout.
type Ring[R any] interface {
	Zero() R
	One() R
	Add(a, b R) R
	Neg(a R) R
	Mul(a, b R) R
	Eq(a, b R) bool
}

// Field is a ring in which every nonzero element has a multiplicative
// inverse. Inv on the zero element is a caller error and will panic.
type Field[R any] interface {
	Ring[R]
	Inv(a R) R
}

// Module describes a module carrier M under the scalar action of a ring R.
//
// MAdd and Scale are pure; Nil returns the additive identity of the module.
type Module[R, M any] interface {
	Nil() M
	MAdd(a, b M) M
	Scale(r R, m M) M
	MEq(a, b M) bool
}

// Sub returns a - b in r.
func Sub[R any](r Ring[R], a, b R) R {
	return r.Add(a, r.Neg(b))
}

// IsZero reports whether a is the additive identity of r.
func IsZero[R any](r Ring[R], a R) bool {
	return r.Eq(a, r.Zero())
}

// Nontrivial reports whether r distinguishes the additive from the
// multiplicative identity. Degenerate rings (0 = 1) collapse every module
// to a point and invalidate independence arguments.
func Nontrivial[R any](r Ring[R]) bool {
	return !r.Eq(r.Zero(), r.One())
}
