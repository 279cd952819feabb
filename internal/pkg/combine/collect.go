package combine

// The values returned by CollectN and FirstN are meaningful only when the error is nil.

type failer interface {
	failures() []error
}

// collect folds merge over every input, producing the de-duplicated failure list.
func collect(results ...failer) error {
	var errs []error
	for _, r := range results {
		errs = merge(errs, r.failures())
	}
	if len(errs) == 0 {
		return nil
	}
	return Errors(errs)
}

// first collapses an accumulated failure list to its earliest entry.
func first(err error) error {
	if err == nil {
		return nil
	}
	return FirstOf(err)
}

// Collect2 returns all 2 values, or an Errors list holding every distinct failure.
func Collect2[A, B any](a Result[A], b Result[B]) (A, B, error) {
	return a.value, b.value, collect(a, b)
}

// First2 behaves like Collect2 but reports only the first failure.
func First2[A, B any](a Result[A], b Result[B]) (A, B, error) {
	return a.value, b.value, first(collect(a, b))
}

// Collect3 returns all 3 values, or an Errors list holding every distinct failure.
func Collect3[A, B, C any](a Result[A], b Result[B], c Result[C]) (A, B, C, error) {
	return a.value, b.value, c.value, collect(a, b, c)
}

// First3 behaves like Collect3 but reports only the first failure.
func First3[A, B, C any](a Result[A], b Result[B], c Result[C]) (A, B, C, error) {
	return a.value, b.value, c.value, first(collect(a, b, c))
}

// Collect4 returns all 4 values, or an Errors list holding every distinct failure.
func Collect4[A, B, C, D any](a Result[A], b Result[B], c Result[C], d Result[D]) (A, B, C, D, error) {
	return a.value, b.value, c.value, d.value, collect(a, b, c, d)
}

// First4 behaves like Collect4 but reports only the first failure.
func First4[A, B, C, D any](a Result[A], b Result[B], c Result[C], d Result[D]) (A, B, C, D, error) {
	return a.value, b.value, c.value, d.value, first(collect(a, b, c, d))
}

// Collect5 returns all 5 values, or an Errors list holding every distinct failure.
func Collect5[A, B, C, D, E any](a Result[A], b Result[B], c Result[C], d Result[D], e Result[E]) (A, B, C, D, E, error) {
	return a.value, b.value, c.value, d.value, e.value, collect(a, b, c, d, e)
}

// First5 behaves like Collect5 but reports only the first failure.
func First5[A, B, C, D, E any](a Result[A], b Result[B], c Result[C], d Result[D], e Result[E]) (A, B, C, D, E, error) {
	return a.value, b.value, c.value, d.value, e.value, first(collect(a, b, c, d, e))
}

// Collect6 returns all 6 values, or an Errors list holding every distinct failure.
func Collect6[A, B, C, D, E, F any](a Result[A], b Result[B], c Result[C], d Result[D], e Result[E], f Result[F]) (A, B, C, D, E, F, error) {
	return a.value, b.value, c.value, d.value, e.value, f.value, collect(a, b, c, d, e, f)
}

// First6 behaves like Collect6 but reports only the first failure.
func First6[A, B, C, D, E, F any](a Result[A], b Result[B], c Result[C], d Result[D], e Result[E], f Result[F]) (A, B, C, D, E, F, error) {
	return a.value, b.value, c.value, d.value, e.value, f.value, first(collect(a, b, c, d, e, f))
}

// Collect7 returns all 7 values, or an Errors list holding every distinct failure.
func Collect7[A, B, C, D, E, F, G any](a Result[A], b Result[B], c Result[C], d Result[D], e Result[E], f Result[F], g Result[G]) (A, B, C, D, E, F, G, error) {
	return a.value, b.value, c.value, d.value, e.value, f.value, g.value, collect(a, b, c, d, e, f, g)
}

// First7 behaves like Collect7 but reports only the first failure.
func First7[A, B, C, D, E, F, G any](a Result[A], b Result[B], c Result[C], d Result[D], e Result[E], f Result[F], g Result[G]) (A, B, C, D, E, F, G, error) {
	return a.value, b.value, c.value, d.value, e.value, f.value, g.value, first(collect(a, b, c, d, e, f, g))
}

// Collect8 returns all 8 values, or an Errors list holding every distinct failure.
func Collect8[A, B, C, D, E, F, G, H any](a Result[A], b Result[B], c Result[C], d Result[D], e Result[E], f Result[F], g Result[G], h Result[H]) (A, B, C, D, E, F, G, H, error) {
	return a.value, b.value, c.value, d.value, e.value, f.value, g.value, h.value, collect(a, b, c, d, e, f, g, h)
}

// First8 behaves like Collect8 but reports only the first failure.
func First8[A, B, C, D, E, F, G, H any](a Result[A], b Result[B], c Result[C], d Result[D], e Result[E], f Result[F], g Result[G], h Result[H]) (A, B, C, D, E, F, G, H, error) {
	return a.value, b.value, c.value, d.value, e.value, f.value, g.value, h.value, first(collect(a, b, c, d, e, f, g, h))
}

// Collect9 returns all 9 values, or an Errors list holding every distinct failure.
func Collect9[A, B, C, D, E, F, G, H, I any](a Result[A], b Result[B], c Result[C], d Result[D], e Result[E], f Result[F], g Result[G], h Result[H], i Result[I]) (A, B, C, D, E, F, G, H, I, error) {
	return a.value, b.value, c.value, d.value, e.value, f.value, g.value, h.value, i.value, collect(a, b, c, d, e, f, g, h, i)
}

// First9 behaves like Collect9 but reports only the first failure.
func First9[A, B, C, D, E, F, G, H, I any](a Result[A], b Result[B], c Result[C], d Result[D], e Result[E], f Result[F], g Result[G], h Result[H], i Result[I]) (A, B, C, D, E, F, G, H, I, error) {
	return a.value, b.value, c.value, d.value, e.value, f.value, g.value, h.value, i.value, first(collect(a, b, c, d, e, f, g, h, i))
}
