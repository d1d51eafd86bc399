package service

import "math"

// Precision is the shared rounding precision, in decimal places, for all
// derived nutritional values.
const Precision = 2

var roundShift = math.Pow(10, Precision)

func rnd(v float64) float64 {
	return math.Round(v*roundShift) / roundShift
}

func calories(proteinG, carbG, fatG float64) float64 {
	return proteinG*4 + carbG*4 + fatG*9
}
