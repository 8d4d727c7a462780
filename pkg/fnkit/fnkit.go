// Package fnkit helps with default argument substitution at call sites.
//
// A function argument that may be left out is expressed with Optional[T].
// The FNone family wraps a function, so its first argument becomes optional,
// and a missing value is replaced with a default before the call:
//
//	greet := fnkit.FNone(func(name string) string { return "hello " + name }, "world")
//	greet(fnkit.None[string]())  // "hello world"
//	greet(fnkit.Some("gopher")) // "hello gopher"
package fnkit

// Optional holds either a value or nothing.
// The zero value of Optional is nothing.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr turns a pointer into an Optional.
// A nil pointer is nothing, otherwise the referenced value is used.
func FromPtr[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

func (o Optional[T]) IsSome() bool { return o.ok }

// Or returns the held value, or the default value when Optional is empty.
func (o Optional[T]) Or(defaultValue T) T {
	if o.ok {
		return o.value
	}
	return defaultValue
}

// FNone wraps fn, so its argument becomes optional.
// When the argument is missing, defaultValue is passed to fn instead.
func FNone[T, R any](fn func(T) R, defaultValue T) func(Optional[T]) R {
	return func(arg Optional[T]) R {
		return fn(arg.Or(defaultValue))
	}
}

// FNone2 is FNone for two argument functions.
// Only the first argument is substituted, the second one is passed through as is.
func FNone2[T, A, R any](fn func(T, A) R, defaultValue T) func(Optional[T], A) R {
	return func(arg Optional[T], a A) R {
		return fn(arg.Or(defaultValue), a)
	}
}

// FNoneN is FNone for variadic functions.
// Only the first argument is substituted, the rest is passed through as is.
func FNoneN[T, A, R any](fn func(T, ...A) R, defaultValue T) func(Optional[T], ...A) R {
	return func(arg Optional[T], rest ...A) R {
		return fn(arg.Or(defaultValue), rest...)
	}
}
