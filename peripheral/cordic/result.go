package cordic

import "omibyte.io/cordic/fixed"

// Result holds the decoded results of an operation. The setters apply the
// post scaling of the function, the getters can be called any number of times.
type Result[T Word] struct {
	desc      *Descriptor
	primary   fixed.Q[T]
	secondary fixed.Q[T]
	n         int
}

func (r *Result[T]) Function() Function {
	return r.desc.Function
}

func (r *Result[T]) SetResult(q fixed.Q[T]) {
	r.primary = q.WithSoftScale(q.SoftScale() * r.desc.Post[0])
	r.n = 1
}

func (r *Result[T]) SetSecondaryResult(q fixed.Q[T]) {
	r.secondary = q.WithSoftScale(q.SoftScale() * r.desc.Post[1])
	r.n = 2
}

func (r *Result[T]) Result() fixed.Q[T] {
	return r.primary
}

// SecondaryResult returns the second result. ok is false if the function
// produced a single result.
func (r *Result[T]) SecondaryResult() (q fixed.Q[T], ok bool) {
	return r.secondary, r.n == 2
}

func (r *Result[T]) Float() float64 {
	return r.primary.Float()
}

func (r *Result[T]) SecondaryFloat() float64 {
	return r.secondary.Float()
}

// Len is the number of results set.
func (r *Result[T]) Len() int {
	return r.n
}
