// Package option provides Option, an explicit maybe-present value.
package option

// Option is either Some(value) or None. The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the value, or fallback when absent.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Map applies f to a present value.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

// Values keeps the present values, in argument order.
func Values[T any](opts ...Option[T]) []T {
	out := make([]T, 0, len(opts))
	for _, o := range opts {
		if o.ok {
			out = append(out, o.value)
		}
	}
	return out
}

// Pair holds two values that were both present.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip is Some only when both a and b are present.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if !a.ok || !b.ok {
		return None[Pair[A, B]]()
	}
	return Some(Pair[A, B]{First: a.value, Second: b.value})
}
