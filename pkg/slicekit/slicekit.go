// Package slicekit provides predicate search, partitioning and chunking over slices.
//
// The search functions are thin wrappers around iterkit, applied to the values of the slice.
// None of the functions mutate the input slice.
package slicekit

import (
	"iter"
	"slices"

	"go.llib.dev/pearls/pkg/errorkit"
	"go.llib.dev/pearls/pkg/iterkit"
	"go.llib.dev/pearls/pkg/must"
	"go.llib.dev/pearls/port/option"
)

// ErrInvalidArgument is returned when an argument is out of its valid range,
// such as a chunk size that is not a positive integer.
const ErrInvalidArgument errorkit.Error = "ErrInvalidArgument"

// First returns the first element of the slice that satisfies the predicate.
func First[T any](s []T, predicate func(T) bool) (T, bool) {
	return iterkit.First(slices.Values(s), predicate)
}

// FirstOr is like First, but returns the default value when no element satisfies the predicate.
func FirstOr[T any](s []T, predicate func(T) bool, defaultValue T) T {
	return iterkit.FirstOr(slices.Values(s), predicate, defaultValue)
}

// Last returns the last element of the slice that satisfies the predicate.
// The slice is walked backwards, so the predicate is only evaluated up to the match.
func Last[T any](s []T, predicate func(T) bool) (T, bool) {
	return iterkit.First(backward(s), predicate)
}

// LastOr is like Last, but returns the default value when no element satisfies the predicate.
func LastOr[T any](s []T, predicate func(T) bool, defaultValue T) T {
	return iterkit.FirstOr(backward(s), predicate, defaultValue)
}

func backward[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range slices.Backward(s) {
			if !yield(v) {
				return
			}
		}
	}
}

// Partition splits the slice into the elements that satisfy the predicate and the rest.
// The input slice is left untouched.
func Partition[T any](s []T, predicate func(T) bool) (matching, rest []T) {
	return iterkit.Partition(slices.Values(s), predicate)
}

// Chunks returns an iterator over consecutive chunks of the slice.
// Every chunk has exactly size elements, except the last one, which holds the remainder.
// An empty slice yields no chunks.
//
// By default each chunk is a copy, so altering a chunk won't affect the input slice.
// Use ChunkShared to get sub slices of the input instead.
func Chunks[T any](s []T, size int, opts ...ChunkOption) (iter.Seq[[]T], error) {
	if size <= 0 {
		return nil, ErrInvalidArgument.F("chunk size must be a positive integer: %d", size)
	}
	c := option.Use[ChunkConfig](opts)
	return func(yield func([]T) bool) {
		for offset := 0; offset < len(s); offset += size {
			end := min(offset+size, len(s))
			chunk := s[offset:end:end]
			if !c.Shared {
				chunk = slices.Clone(chunk)
			}
			if !yield(chunk) {
				return
			}
		}
	}, nil
}

// MustChunks is like Chunks, but panics on an invalid chunk size.
func MustChunks[T any](s []T, size int, opts ...ChunkOption) iter.Seq[[]T] {
	return must.Must(Chunks(s, size, opts...))
}

// ChunkConfig is the configuration of Chunks.
// A ChunkConfig value is itself a ChunkOption that replaces the whole configuration.
type ChunkConfig struct {
	// Shared makes Chunks yield sub slices of the input instead of copies.
	Shared bool
}

func (c ChunkConfig) Configure(t *ChunkConfig) { *t = c }

// ChunkOption configures Chunks.
type ChunkOption option.Option[ChunkConfig]

// ChunkShared makes Chunks yield sub slices that share the backing array of the input slice.
// The sub slices have their capacity clipped, so appending to a chunk won't overwrite the next one.
func ChunkShared() ChunkOption {
	return option.Func[ChunkConfig](func(c *ChunkConfig) {
		c.Shared = true
	})
}
