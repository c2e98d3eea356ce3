package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para 2 casas decimais usando math.Round
// (metade para longe do zero), a convenção monetária de toda a API
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
