// Package tools holds the calculator utilities: 1RM estimation,
// barbell plate loading, and daily energy expenditure.
package tools

import (
	"fmt"
	"math"
)

// OneRM is an Epley one-rep-max estimate with common training loads.
type OneRM struct {
	Max         float64 `json:"max"`
	Hypertrophy float64 `json:"hypertrophy"` // 75%
	Strength    float64 `json:"strength"`    // 90%
	Power       float64 `json:"power"`       // 50%
}

// EstimateOneRM applies the Epley formula: weight × (1 + reps/30).
// Results round to whole kilograms.
func EstimateOneRM(kg float64, reps int) (OneRM, error) {
	if kg <= 0 || reps <= 0 {
		return OneRM{}, fmt.Errorf("weight and reps must be positive")
	}
	max := math.Round(kg * (1 + float64(reps)/30))
	return OneRM{
		Max:         max,
		Hypertrophy: math.Round(max * 0.75),
		Strength:    math.Round(max * 0.90),
		Power:       math.Round(max * 0.50),
	}, nil
}

// PlateCount is one plate denomination with how many to load per side.
type PlateCount struct {
	Weight float64 `json:"weight"`
	Count  int     `json:"count"`
}

// plate denominations available per side, heaviest first.
var plateWeights = []float64{25, 20, 15, 10, 5, 2.5, 1.25}

// PlatesPerSide greedily decomposes (target − bar)/2 into standard
// plates. Remainders smaller than the lightest plate stay unloaded.
func PlatesPerSide(targetKg, barKg float64) ([]PlateCount, error) {
	if targetKg <= 0 || barKg <= 0 {
		return nil, fmt.Errorf("weights must be positive")
	}
	if targetKg < barKg {
		return nil, fmt.Errorf("target %.2fkg is lighter than the bar %.2fkg", targetKg, barKg)
	}

	remaining := (targetKg - barKg) / 2
	var result []PlateCount
	for _, p := range plateWeights {
		count := int(math.Floor(remaining / p))
		if count > 0 {
			result = append(result, PlateCount{Weight: p, Count: count})
			remaining -= float64(count) * p
			// round away float drift before the next denomination
			remaining = math.Round(remaining*100) / 100
		}
	}
	return result, nil
}

// TDEE is the Mifflin-St Jeor basal rate scaled by activity, with the
// usual ±300 kcal bulk/cut targets.
type TDEE struct {
	BMR         float64 `json:"bmr"`
	Maintenance float64 `json:"maintenance"`
	Bulk        float64 `json:"bulk"`
	Cut         float64 `json:"cut"`
}

// EstimateTDEE computes daily energy expenditure. gender is "male" or
// "female"; activity is the standard multiplier (1.2–1.725).
func EstimateTDEE(gender string, weightKg, heightCm float64, age int, activity float64) (TDEE, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return TDEE{}, fmt.Errorf("weight, height and age must be positive")
	}
	if activity <= 0 {
		activity = 1.2
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case "female":
		bmr -= 161
	default:
		bmr += 5
	}

	maintenance := math.Round(bmr * activity)
	return TDEE{
		BMR:         math.Round(bmr),
		Maintenance: maintenance,
		Bulk:        maintenance + 300,
		Cut:         maintenance - 300,
	}, nil
}
