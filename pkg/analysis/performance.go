package analysis

import (
	"math"

	"github.com/apexaero/aerosim-service-go/pkg/model"
)

// Reference car calibration for the performance estimator. The figures are
// empirical, tuned against recent season data, and intentionally not
// derived from the force model.
const (
	baselineCd          = 0.70
	baselineCl          = 3.5
	baselineTopSpeed    = 350.0 // km/h at baseline Cd
	baselineCornerSpeed = 180.0 // km/h
	targetLDRatio       = 4.5
)

// EstimatePerformance derives the full calibrated metric set from an aero
// setup and a track. Deterministic; formulas and clamp bands encode the
// calibration.
//
//nolint:funlen // one metric per block reads better than helpers
func EstimatePerformance(
	setup model.AeroSetup, trackInfo *model.TrackInfo,
) model.PerformanceMetrics {
	params := setup.CarParameters()
	cd := params.DragCoefficient
	totalCl := params.ClFront + params.ClRear

	// top speed: every 0.01 Cd is worth about 2 km/h, each 0.1 Cl of
	// extra downforce costs about 3 km/h of drag
	topSpeed := baselineTopSpeed + (baselineCd-cd)*200 + (totalCl-baselineCl)*-3.0
	switch {
	case cd < 0.68: // very low drag trim
		topSpeed = clamp(topSpeed, 355.0, 370.0)
	case cd > 0.73: // high drag trim
		topSpeed = clamp(topSpeed, 300.0, 340.0)
	default:
		topSpeed = clamp(topSpeed, 330.0, 360.0)
	}

	// corner speed scales sublinearly with downforce
	downforceFactor := totalCl / baselineCl
	avgCornerSpeed := baselineCornerSpeed * math.Pow(downforceFactor, 0.4)
	avgCornerSpeed = clamp(avgCornerSpeed, 120.0, 220.0)
	dragPenalty := math.Pow(cd/baselineCd, 0.1)
	avgCornerSpeed *= 1.05 - dragPenalty*0.05

	ldRatio := 0.0
	if cd > 0 {
		ldRatio = totalCl / cd
	}

	accel0To100 := math.Max(2.0,
		2.6+(cd-baselineCd)*8+(totalCl-baselineCl)*-0.15)
	accel0To200 := accel0To100*2.8 + (cd-baselineCd)*15

	downforceBenefit := (totalCl - baselineCl) * -12
	braking100 := math.Max(45, 65+downforceBenefit)
	braking200 := math.Max(140, 180+downforceBenefit*2.5)

	balance := 50.0
	if totalCl > 0 {
		balance = params.ClFront / totalCl * 100
	}

	ldEfficiency := math.Min(1.0, ldRatio/targetLDRatio)
	balanceDeviation := math.Abs(balance-40) / 40
	balanceEfficiency := math.Max(0, 1-balanceDeviation)
	aeroEfficiency := ldEfficiency*0.6 + balanceEfficiency*0.4

	speedScore := math.Min(1.0, topSpeed/360)
	accelScore := math.Max(0, 1-(accel0To100-2.0)/2.0)
	straightPerformance := speedScore*0.6 + accelScore*0.4

	cornerSpeedScore := math.Min(1.0, avgCornerSpeed/220)
	brakingScore := math.Max(0, 1-(braking100-45)/30)
	cornerPerformance := cornerSpeedScore*0.7 + brakingScore*0.3

	downforceStress := math.Abs(totalCl-baselineCl) / baselineCl
	tireStress := math.Min(1.0, 0.3+downforceStress*0.7)

	fuelEfficiency := 1.0
	if cd > 0 {
		fuelEfficiency = math.Min(1.2, baselineCd/cd)
	}

	// penalize setups mismatched with the track character
	switch trackInfo.DownforceLevel {
	case model.DownforceHigh:
		if totalCl < 3.8 {
			cornerPerformance *= 0.85 // underwinged for track
		}
	case model.DownforceLow:
		if totalCl > 3.2 {
			straightPerformance *= 0.85 // overwinged for track
		}
	}

	return model.PerformanceMetrics{
		TopSpeed:            topSpeed,
		AvgCornerSpeed:      avgCornerSpeed,
		LDRatio:             ldRatio,
		Acceleration0To100:  accel0To100,
		Acceleration0To200:  accel0To200,
		BrakingDist100To0:   braking100,
		BrakingDist200To0:   braking200,
		OverallBalance:      balance,
		AeroEfficiency:      aeroEfficiency,
		StraightPerformance: straightPerformance,
		CornerPerformance:   cornerPerformance,
		TireStressFactor:    tireStress,
		FuelEfficiency:      fuelEfficiency,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
