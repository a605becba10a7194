// Package result carries expected business outcomes without overloading the
// error channel: a Result is either a success value or a failure from a closed
// set of business errors. Infrastructure failures stay on the ordinary error
// return and never become a Result.
package result

// Unit is the success value of operations with nothing to return.
type Unit struct{}

type Result[T any] struct {
	value T
	err   error
	ok    bool
}

func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

func Failure[T any](err error) Result[T] {
	if err == nil {
		panic("result: Failure requires a non-nil error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsSuccess() bool { return r.ok }
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the success value; the zero value on failure.
func (r Result[T]) Value() T { return r.value }

// Err returns the failure error; nil on success.
func (r Result[T]) Err() error { return r.err }

// Map transforms the success value, passing failures through unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.IsFailure() {
		return Failure[U](r.err)
	}
	return Success(fn(r.value))
}

// FlatMap chains a fallible transformation, passing failures through unchanged.
func FlatMap[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.IsFailure() {
		return Failure[U](r.err)
	}
	return fn(r.value)
}
