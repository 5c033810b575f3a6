package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percentage calcula a porcentagem de part sobre total, arredondada em duas casas
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(part / total * 100)
}
