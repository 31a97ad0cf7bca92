package outcome

// Map applies f to the value of a success. A failure is passed through and f
// is never invoked.
func Map[T, U any](o Outcome[T], f func(T) U) Outcome[U] {
	if !o.isSuccess {
		return Outcome[U]{message: o.message, cause: o.cause}
	}
	return Success(f(o.value))
}

// Bind chains an operation that can itself fail.
func Bind[T, U any](o Outcome[T], f func(T) Outcome[U]) Outcome[U] {
	if !o.isSuccess {
		return Outcome[U]{message: o.message, cause: o.cause}
	}
	return f(o.value)
}

// Ensure turns a success into Failure(message) when predicate rejects its value.
func Ensure[T any](o Outcome[T], predicate func(T) bool, message string) Outcome[T] {
	if !o.isSuccess {
		return o
	}
	if !predicate(o.value) {
		return Failure[T](message)
	}
	return o
}
