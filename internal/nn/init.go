package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/ffnet/internal/matrix"
	"gonum.org/v1/gonum/stat/distuv"
)

// Init selects the distribution every weight is drawn from.
type Init string

// Supported weight distributions. One network always uses a single one.
const (
	// InitUniform draws weights from U[0, 1).
	InitUniform Init = "uniform"
	// InitNormal draws weights from the standard normal N(0, 1).
	InitNormal Init = "normal"
)

// sampler returns a distribution bound to src.
func (i Init) sampler(src rand.Source) (distuv.Rander, error) {
	switch i {
	case InitUniform:
		return distuv.Uniform{Min: 0, Max: 1, Src: src}, nil
	case InitNormal:
		return distuv.Normal{Mu: 0, Sigma: 1, Src: src}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidInit, string(i))
	}
}

// randomWeights creates a rows x cols matrix with independently sampled
// entries, filled row by row.
func randomWeights(rows, cols int, dist distuv.Rander) (*matrix.Matrix[float64], error) {
	data := make([][]float64, rows)
	for i := range data {
		row := make([]float64, cols)
		for j := range row {
			row[j] = dist.Rand()
		}
		data[i] = row
	}
	return matrix.FromRows(data)
}
