// Package iterkit provides predicate search, counting, flattening and partitioning over iter.Seq.
//
// # Summary
//
// An iter.Seq decouples the origin of the data from the consumer who uses that data.
// Its length is not known until it is fully iterated, thus it can range from zero to infinity.
// Functions that only need a prefix of the sequence (First, Contains, SelectMany)
// stop pulling values as soon as they have their answer,
// so they are safe to use with infinite sequences.
// Functions that need every value (Count, Partition, Last, Reverse) require a finite sequence.
//
// A nil iter.Seq is treated as an empty sequence by every function of the package.
//
// # Resources
//
// https://pkg.go.dev/iter
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterkit

import (
	"iter"
	"slices"
)

// Slice turns a slice into an iter.Seq.
func Slice[T any](slice []T) iter.Seq[T] {
	return slices.Values(slice)
}

// Empty iterator is used to represent nil result with Null object pattern
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

func orEmpty[T any](i iter.Seq[T]) iter.Seq[T] {
	if i == nil {
		return Empty[T]()
	}
	return i
}

// Collect will collect all values of an iterator into a slice.
// A nil iterator is collected into a nil slice.
func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// IntRange returns an iterator that will range between the specified `begin` and the `end` int, inclusive.
func IntRange(begin, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if end < begin {
			return
		}
		// n == end is checked before n++, so end == math.MaxInt does not overflow.
		for n := begin; ; n++ {
			if !yield(n) || n == end {
				return
			}
		}
	}
}

// Reverse will reverse the iteration direction.
//
// # WARNING
//
// It does not work with infinite iterators,
// as it requires to collect all values before it can reverse the elements.
func Reverse[T any](i iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var vs []T = Collect(i)
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(vs[i]) {
				return
			}
		}
	}
}

func Filter[T any](i iter.Seq[T], filter func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range orEmpty(i) {
			if filter(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
func Map[To any, From any](i iter.Seq[From], transform func(From) To) iter.Seq[To] {
	return func(yield func(To) bool) {
		for v := range orEmpty(i) {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// First returns the first value of the iterator that satisfies the predicate.
// Values after the first match are not pulled from the iterator.
func First[T any](i iter.Seq[T], predicate func(T) bool) (T, bool) {
	for v := range orEmpty(i) {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// FirstOr is like First, but returns the default value when no value satisfies the predicate.
func FirstOr[T any](i iter.Seq[T], predicate func(T) bool, defaultValue T) T {
	if v, ok := First(i, predicate); ok {
		return v
	}
	return defaultValue
}

// Last returns the last value of the iterator that satisfies the predicate.
// It is First over the reversed iterator, therefore the iterator must be finite.
func Last[T any](i iter.Seq[T], predicate func(T) bool) (T, bool) {
	return First(Reverse(i), predicate)
}

// LastOr is like Last, but returns the default value when no value satisfies the predicate.
func LastOr[T any](i iter.Seq[T], predicate func(T) bool, defaultValue T) T {
	return FirstOr(Reverse(i), predicate, defaultValue)
}

// Contains reports whether at least one value satisfies the predicate.
func Contains[T any](i iter.Seq[T], predicate func(T) bool) bool {
	_, ok := First(i, predicate)
	return ok
}

// Count will iterate over the whole iterator and count the values that satisfy the predicate.
func Count[T any](i iter.Seq[T], predicate func(T) bool) int {
	var total int
	for v := range orEmpty(i) {
		if predicate(v) {
			total++
		}
	}
	return total
}

// CountAll will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func CountAll[T any](i iter.Seq[T]) int {
	return Count(i, func(T) bool { return true })
}

// Partition splits the values of the iterator in a single pass.
// The first slice holds the values that satisfy the predicate,
// the second holds the rest.
// Both keep the original relative order.
func Partition[T any](i iter.Seq[T], predicate func(T) bool) (matching, rest []T) {
	for v := range orEmpty(i) {
		if predicate(v) {
			matching = append(matching, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matching, rest
}

// SelectMany maps each value into a sub sequence and flattens them into a single iterator.
// The transform function can return either an iter.Seq or a slice.
// The output type cannot be inferred from the transform, so it has to be passed explicitly:
//
//	iterkit.SelectMany[string](words, strings.Fields)
//
// The transform is only called for a value when the iteration reaches it,
// so breaking out early leaves the remaining values untouched.
func SelectMany[To, From any, FN selectManyFunc[To, From]](i iter.Seq[From], transform FN) iter.Seq[To] {
	var fn = toSeqFunc[To, From](transform)
	return func(yield func(To) bool) {
		for v := range orEmpty(i) {
			for sub := range fn(v) {
				if !yield(sub) {
					return
				}
			}
		}
	}
}

type selectManyFunc[To, From any] interface {
	func(From) iter.Seq[To] | func(From) []To
}

func toSeqFunc[To, From any, FN selectManyFunc[To, From]](transform FN) func(From) iter.Seq[To] {
	switch fn := any(transform).(type) {
	case func(From) iter.Seq[To]:
		return func(v From) iter.Seq[To] {
			if sub := fn(v); sub != nil {
				return sub
			}
			return Empty[To]()
		}
	case func(From) []To:
		return func(v From) iter.Seq[To] {
			return slices.Values(fn(v))
		}
	default:
		panic("unexpected")
	}
}
