package combine

// Result holds either a value or one or more errors. The zero Result is a success
// holding the zero value of T.
type Result[T any] struct {
	value T
	errs  []error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail builds a failed Result. Joined errors and Errors lists are flattened; nil
// errors are dropped. Fail with no non-nil error still reports a failure so a
// caller can never turn Fail into a success by accident.
func Fail[T any](errs ...error) Result[T] {
	flat := flatten(errs...)
	if len(flat) == 0 {
		flat = []error{errEmptyFailure}
	}
	return Result[T]{errs: flat}
}

// Of adapts the (value, error) pair returned by constructors.
//
// Example:
//
//	r := combine.Of(kernel.NewZipCode(raw, "zipCode"))
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(value)
}

// Get returns the value, or the zero value and an Errors list.
func (r Result[T]) Get() (T, error) {
	if len(r.errs) > 0 {
		var zero T
		return zero, Errors(cloneErrors(r.errs))
	}
	return r.value, nil
}

func (r Result[T]) IsOk() bool {
	return len(r.errs) == 0
}

// Errs returns a copy of the failure list, empty on success.
func (r Result[T]) Errs() []error {
	return cloneErrors(r.errs)
}

func (r Result[T]) failures() []error {
	return r.errs
}

// Then chains a dependent step; f runs only when r is a success.
func Then[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.IsOk() {
		return Result[U]{errs: r.errs}
	}
	return f(r.value)
}

// Map transforms a successful value.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.IsOk() {
		return Result[U]{errs: r.errs}
	}
	return Ok(f(r.value))
}

// Sequence turns a slice of Results into a Result of a slice. Every failure of every
// element is kept, de-duplicated, in element order.
func Sequence[T any](results []Result[T]) Result[[]T] {
	var errs []error
	values := make([]T, 0, len(results))
	for _, r := range results {
		errs = merge(errs, r.errs)
		values = append(values, r.value)
	}
	if len(errs) > 0 {
		return Result[[]T]{errs: errs}
	}
	return Ok(values)
}

// Traverse maps every item through f and sequences the results.
func Traverse[T, U any](items []T, f func(T) Result[U]) Result[[]U] {
	results := make([]Result[U], 0, len(items))
	for _, item := range items {
		results = append(results, f(item))
	}
	return Sequence(results)
}
