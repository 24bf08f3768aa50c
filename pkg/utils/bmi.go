package utils

import "math"

// CalculateBMI expects height in centimeters and weight in kilograms and rounds to
// two decimals. It returns nil when either input is missing or height is not positive.
func CalculateBMI(heightCm, weightKg *float64) *float64 {
	if heightCm == nil || weightKg == nil || *heightCm <= 0 {
		return nil
	}
	h := *heightCm / 100.0
	bmi := math.Round(*weightKg/(h*h)*100) / 100
	return &bmi
}
