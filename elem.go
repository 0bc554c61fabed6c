package sparse

// Elem is the element-type contract spec calls Eq0: the capabilities the
// matrix needs from whatever scalar it stores. Go has no operator
// overloading, so +, -, * and the ring's 0/1 are expressed as methods
// instead — the self-referential type parameter is what lets Matrix[T]
// itself satisfy Elem[Matrix[T]] (see (Matrix[T]).Add etc. in matrix.go),
// which is how matrix-of-matrix composes through the same multiplication
// kernel unchanged.
type Elem[T any] interface {
	// Add returns the receiver plus other.
	Add(other T) T

	// Sub returns the receiver minus other.
	Sub(other T) T

	// Mul returns the receiver times other.
	Mul(other T) T

	// One returns the multiplicative identity of the receiver's type.
	One() T

	// IsZero reports whether the receiver is the additive identity. It
	// may conservatively return false for a value that is in fact zero
	// (at the cost of a missed thinning opportunity) but must never
	// return true for a value that behaves non-zero under Add.
	IsZero() bool
}

// Float64 is a float64 wrapped to satisfy Elem. It is the element type
// used by every example and default constructor in this package.
type Float64 float64

func (a Float64) Add(b Float64) Float64 { return a + b }
func (a Float64) Sub(b Float64) Float64 { return a - b }
func (a Float64) Mul(b Float64) Float64 { return a * b }
func (a Float64) One() Float64          { return 1 }
func (a Float64) IsZero() bool          { return a == 0 }

// Int64 is an int64 wrapped to satisfy Elem.
type Int64 int64

func (a Int64) Add(b Int64) Int64 { return a + b }
func (a Int64) Sub(b Int64) Int64 { return a - b }
func (a Int64) Mul(b Int64) Int64 { return a * b }
func (a Int64) One() Int64        { return 1 }
func (a Int64) IsZero() bool      { return a == 0 }

// Complex128 is a complex128 wrapped to satisfy Elem. IsZero tests both
// the real and imaginary components, per spec's complex-number rule
// isZero(x+iy) = isZero(x) ∧ isZero(y) — which for Go's built-in == on
// complex128 is exactly what comparing against the literal 0 already
// does.
type Complex128 complex128

func (a Complex128) Add(b Complex128) Complex128 { return a + b }
func (a Complex128) Sub(b Complex128) Complex128 { return a - b }
func (a Complex128) Mul(b Complex128) Complex128 { return a * b }
func (a Complex128) One() Complex128              { return 1 }
func (a Complex128) IsZero() bool                 { return a == 0 }
