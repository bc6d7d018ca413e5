package rop

// Combine is the batch-validation combinator. It succeeds with every value,
// in input order, only when every input succeeded. Otherwise it fails with
// the errors of every failed input concatenated in input order. Successes
// of all inputs are kept in both cases.
func Combine[T any](results ...Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	var successes []Success
	var errs []Error

	for _, r := range results {
		successes = append(successes, r.successes...)
		if r.IsFailure() {
			errs = append(errs, r.errors...)
			continue
		}
		values = append(values, r.value)
	}

	if len(errs) > 0 {
		return Result[[]T]{successes: successes, errors: errs}
	}
	return Result[[]T]{value: values, successes: successes}
}

// Merge unions the successes and errors of every outcome into one result.
// It fails when any input failed. Inputs may hold different value types.
func Merge(outcomes ...Outcome) Result[Unit] {
	var successes []Success
	var errs []Error

	for _, o := range outcomes {
		if IsNil(o) {
			continue
		}
		successes = append(successes, o.Successes()...)
		errs = append(errs, o.Errors()...)
	}

	return Result[Unit]{successes: successes, errors: errs}
}
