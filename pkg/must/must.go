// Package must is a syntax sugar package to make the use of `Must` functions.
//
// The error returning helpers of the kits fail only on programming errors,
// such as a non-positive chunk size.
// When the arguments are known to be valid, must turns the error return into a panic:
//
//	chunks := must.Must(slicekit.Chunks(vs, 3))
package must

// Must is a syntax sugar to express things like must.Must(slicekit.Chunks(vs, 3))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
