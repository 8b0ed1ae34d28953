// Package matrix provides the generic 2-D matrix used by the ffnet trainer.
package matrix

// Number is a constraint for supported matrix element types.
//
// Every member converts to and from float64 with a plain Go conversion, which
// is all the floating point helpers (Sigmoid, MSEDiff, column scaling) need.
// Exact operations such as Dot and Transpose stay in the native type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// isFloat reports whether T is a floating point kind.
func isFloat[T Number]() bool {
	var probe T = 1
	probe /= 2
	return probe != 0
}
