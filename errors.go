package sparse

import "errors"

// Domain errors returned by constructors. Precondition violations that
// indicate programmer error (an out-of-range SplitAt index, a
// wrong-length vector passed to MulVec, MustIdentity on an oversized
// width) panic instead, following the teacher's own
// ErrRowAccess/ErrColAccess/ErrShape discipline. Add, Sub and Mul do not
// check shapes: a Matrix carries no shape to check.
var (
	// ErrDimensionOverflow is returned by Identity when the requested
	// width cannot be represented by the coordinate type.
	ErrDimensionOverflow = errors.New("sparse: requested dimension overflows coordinate range")

	// ErrNonZeroScalar is returned by FromInt for any n != 0: there is
	// no canonical non-zero matrix for a bare integer once shape isn't
	// fixed by the type, so the ring's fromInteger must fail loudly
	// rather than guess a shape.
	ErrNonZeroScalar = errors.New("sparse: no canonical non-zero matrix for an unshaped integer")
)
