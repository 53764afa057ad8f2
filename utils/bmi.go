package utils

import "github.com/zeyadesperado/GymMaster/models"

// CalculateBMI expects height in centimeters and weight in kilograms.
// A missing or zero input leaves the BMI undefined (nil).
func CalculateBMI(heightCm, weightKg *float64) *float64 {
	if heightCm == nil || weightKg == nil || *heightCm == 0 || *weightKg == 0 {
		return nil
	}

	h := *heightCm / 100.0 // to meters
	bmi := *weightKg / (h * h)
	return &bmi
}

// ClassifyBMI applies the thresholds in order. Values in [24.9, 25) are
// Overweight.
func ClassifyBMI(bmi float64) models.BMIClass {
	switch {
	case bmi < 18.5:
		return models.BMIUnderweight
	case bmi < 24.9:
		return models.BMINormal
	case bmi < 29.9:
		return models.BMIOverweight
	default:
		return models.BMIObesity
	}
}
