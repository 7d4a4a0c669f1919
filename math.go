package wbplot

import (
	"math"
	"strconv"
)

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// clean removes floating point noise like 0.30000000000000004 from
// values computed as multiples of a step.
func clean(x float64) float64 {
	y, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', 12, 64), 64)
	if err != nil {
		return x
	}
	if y == 0 {
		return 0
	}
	return y
}
