package tree

// Either holds exactly one of two alternative representations of the same
// syntactic content, for example a list of array sizes or an array
// initializer.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

func (e Either[L, R]) IsLeft() bool  { return !e.isRight }
func (e Either[L, R]) IsRight() bool { return e.isRight }

// GetLeft returns the left value and whether it is the populated branch.
func (e Either[L, R]) GetLeft() (L, bool) {
	return e.left, !e.isRight
}

// GetRight returns the right value and whether it is the populated branch.
func (e Either[L, R]) GetRight() (R, bool) {
	return e.right, e.isRight
}

// SetLeft switches e to the left branch.
func (e *Either[L, R]) SetLeft(l L) {
	var zero R
	e.left, e.right, e.isRight = l, zero, false
}

// SetRight switches e to the right branch.
func (e *Either[L, R]) SetRight(r R) {
	var zero L
	e.left, e.right, e.isRight = zero, r, true
}

// Match calls exactly one of the two functions.
func Match[L, R, T any](e Either[L, R], left func(L) T, right func(R) T) T {
	if e.isRight {
		return right(e.right)
	}
	return left(e.left)
}

// Initializer is the value of a variable declarator or an array element.
type Initializer = Either[Expression, *ArrayInitializer]

func ExprInit(e Expression) Initializer {
	return Left[Expression, *ArrayInitializer](e)
}

func ArrayInit(a *ArrayInitializer) Initializer {
	return Right[Expression](a)
}

func initializerCode(init Initializer) string {
	return Match(init, Expression.Code, (*ArrayInitializer).Code)
}

func cloneInitializer(init Initializer) Initializer {
	if a, ok := init.GetRight(); ok {
		return ArrayInit(cloneOf(a))
	}
	return ExprInit(cloneOf(init.left))
}
