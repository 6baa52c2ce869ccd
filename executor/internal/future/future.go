// Package future provides a cooperative, poll-based future abstraction used to let field
// resolvers suspend without requiring goroutines or channels for the common case. It is modeled
// after Rust's Future trait: a future is polled until it reports readiness, and combinators build
// larger futures out of smaller ones without ever blocking a goroutine.
package future

// Result holds either a value or an error.
type Result[T any] struct {
	Value T
	Error error
}

// IsOk returns true if the result is not an error.
func (r Result[T]) IsOk() bool {
	return r.Error == nil
}

// IsErr returns true if the result is an error.
func (r Result[T]) IsErr() bool {
	return !r.IsOk()
}

// Future represents a result that will be available at some point in the future.
type Future[T any] struct {
	result Result[T]
	poll   func() (Result[T], bool)
}

// New constructs a new future from a poll function. When the future's value is ready, poll should
// return the value and true. Otherwise, poll should return a zero value and false.
func New[T any](poll func() (Result[T], bool)) Future[T] {
	return Future[T]{
		poll: poll,
	}
}

// IsReady returns true if the future's value is ready.
func (f Future[T]) IsReady() bool {
	return f.poll == nil
}

// Result returns the future's result if it is ready.
func (f Future[T]) Result() Result[T] {
	return f.result
}

// Poll invokes the poller for the future, allowing it to transition to the ready state.
func (f *Future[T]) Poll() {
	if f.poll != nil {
		var ok bool
		if f.result, ok = f.poll(); ok {
			f.poll = nil
		}
	}
}

// Ok returns a new future that is immediately ready with the given value.
func Ok[T any](v T) Future[T] {
	return Future[T]{
		result: Result[T]{Value: v},
	}
}

// Err returns a new future that is immediately ready with the given error.
func Err[T any](err error) Future[T] {
	return Future[T]{
		result: Result[T]{Error: err},
	}
}

// Map converts a future's result using a conversion function that keeps the same value type.
func Map[T any](f Future[T], fn func(Result[T]) Result[T]) Future[T] {
	if f.IsReady() {
		f.result = fn(f.result)
		return f
	}
	fpoll := f.poll
	f.poll = func() (Result[T], bool) {
		if r, ok := fpoll(); ok {
			return fn(r), true
		}
		return Result[T]{}, false
	}
	return f
}

// MapOk converts a future's value to a different type using a conversion function. The conversion
// function is only invoked if the future resolves successfully; errors pass through unchanged.
func MapOk[T, U any](f Future[T], fn func(T) U) Future[U] {
	if f.IsReady() {
		r := f.result
		if r.IsOk() {
			return Ok(fn(r.Value))
		}
		return Err[U](r.Error)
	}
	fpoll := f.poll
	return New(func() (Result[U], bool) {
		r, ok := fpoll()
		if !ok {
			return Result[U]{}, false
		}
		if r.IsErr() {
			return Result[U]{Error: r.Error}, true
		}
		return Result[U]{Value: fn(r.Value)}, true
	})
}

// Then invokes fn when the future is resolved and returns a future that resolves when fn's return
// value is resolved.
func Then[T, U any](f Future[T], fn func(Result[T]) Future[U]) Future[U] {
	if f.IsReady() {
		return fn(f.result)
	}
	fpoll := f.poll
	var then Future[U]
	var hasThen bool
	return New(func() (Result[U], bool) {
		if !hasThen {
			if r, ok := fpoll(); ok {
				then = fn(r)
				hasThen = true
			}
		}
		if hasThen {
			then.Poll()
			return then.result, then.IsReady()
		}
		return Result[U]{}, false
	})
}

// Join combines the values from multiple futures into a single future that resolves to a slice of
// their values. If any future errors, the returned future immediately resolves to an error.
func Join[T any](fs ...Future[T]) Future[[]T] {
	results := make([]T, len(fs))

	ready := true
	for i, f := range fs {
		if f.IsReady() {
			if f.result.IsErr() {
				return Err[[]T](f.result.Error)
			}
			results[i] = f.result.Value
		} else {
			ready = false
		}
	}

	if ready {
		return Ok(results)
	}

	return New(func() (Result[[]T], bool) {
		ready := true
		for i := range fs {
			fs[i].Poll()
			if fs[i].IsReady() {
				if fs[i].result.IsErr() {
					return Result[[]T]{Error: fs[i].result.Error}, true
				}
				results[i] = fs[i].result.Value
			} else {
				ready = false
			}
		}
		if ready {
			return Result[[]T]{Value: results}, true
		}
		return Result[[]T]{}, false
	})
}

// After returns a future that resolves once all of the given futures have resolved. If any future
// errors, the returned future immediately resolves to that error. Unlike Join, the resolved value
// carries no data, which avoids allocating a result slice when callers don't need the values.
func After[T any](fs ...Future[T]) Future[struct{}] {
	ready := true
	for _, f := range fs {
		if f.IsReady() {
			if f.result.IsErr() {
				return Err[struct{}](f.result.Error)
			}
		} else {
			ready = false
		}
	}

	if ready {
		return Ok(struct{}{})
	}

	return New(func() (Result[struct{}], bool) {
		ready := true
		for i := range fs {
			fs[i].Poll()
			if fs[i].IsReady() {
				if fs[i].result.IsErr() {
					return Result[struct{}]{Error: fs[i].result.Error}, true
				}
			} else {
				ready = false
			}
		}
		if ready {
			return Result[struct{}]{}, true
		}
		return Result[struct{}]{}, false
	})
}
