package matrix

import (
	"fmt"
	"strings"
)

// String renders the matrix for debugging, one row per line:
//
//	|  0.66666667	1.00000000	|
//	|  0.33333333	0.55555556	|
//
// Floating point elements use eight decimal places.
func (m *Matrix[T]) String() string {
	verb := "%v"
	if isFloat[T]() {
		verb = "%.8f"
	}

	var sb strings.Builder
	for i, row := range m.data {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("|  ")
		for j, v := range row {
			if j > 0 {
				sb.WriteByte('\t')
			}
			fmt.Fprintf(&sb, verb, v)
		}
		sb.WriteString("\t|")
	}
	return sb.String()
}
