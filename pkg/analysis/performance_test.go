//nolint:funlen // ok for tests
package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apexaero/aerosim-service-go/pkg/model"
)

func mediumTrack() *model.TrackInfo {
	return &model.TrackInfo{
		Key:            "Bahrain",
		Name:           "Bahrain International Circuit",
		CircuitLength:  5.412,
		CornerCount:    15,
		DownforceLevel: model.DownforceMedium,
	}
}

func TestEstimatePerformance_Defaults(t *testing.T) {
	got := EstimatePerformance(model.AeroSetup{}, mediumTrack())

	assert.GreaterOrEqual(t, got.TopSpeed, 330.0)
	assert.LessOrEqual(t, got.TopSpeed, 360.0)
	assert.GreaterOrEqual(t, got.AvgCornerSpeed, 120.0)
	assert.LessOrEqual(t, got.AvgCornerSpeed, 220.0*1.05)
	assert.InDelta(t, 3.5/0.70, got.LDRatio, 1e-9)
	assert.GreaterOrEqual(t, got.Acceleration0To100, 2.0)
	assert.Greater(t, got.Acceleration0To200, got.Acceleration0To100)
	assert.GreaterOrEqual(t, got.BrakingDist100To0, 45.0)
	assert.GreaterOrEqual(t, got.BrakingDist200To0, 140.0)
	// ClFront 1.5 of 3.5 total
	assert.InDelta(t, 1.5/3.5*100, got.OverallBalance, 1e-6)
	assert.GreaterOrEqual(t, got.AeroEfficiency, 0.0)
	assert.LessOrEqual(t, got.AeroEfficiency, 1.0)
	assert.GreaterOrEqual(t, got.TireStressFactor, 0.3)
	assert.LessOrEqual(t, got.TireStressFactor, 1.0)
	assert.InDelta(t, 1.0, got.FuelEfficiency, 1e-9)
}

func TestEstimatePerformance_ClampBands(t *testing.T) {
	tests := []struct {
		name string
		cd   float64
		lo   float64
		hi   float64
	}{
		{"very low drag trim", 0.65, 355, 370},
		{"standard trim", 0.70, 330, 360},
		{"high drag trim", 0.78, 300, 340},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimatePerformance(
				model.AeroSetup{DragCoefficient: &tt.cd}, mediumTrack())
			assert.GreaterOrEqual(t, got.TopSpeed, tt.lo)
			assert.LessOrEqual(t, got.TopSpeed, tt.hi)
		})
	}
}

func TestEstimatePerformance_DragAndDownforceTrends(t *testing.T) {
	lowCd := 0.66
	highCd := 0.76
	slick := EstimatePerformance(
		model.AeroSetup{DragCoefficient: &lowCd}, mediumTrack())
	draggy := EstimatePerformance(
		model.AeroSetup{DragCoefficient: &highCd}, mediumTrack())

	assert.Greater(t, slick.TopSpeed, draggy.TopSpeed)
	assert.Greater(t, slick.FuelEfficiency, draggy.FuelEfficiency)
	assert.Less(t, slick.Acceleration0To100, draggy.Acceleration0To100)

	clF := 2.0
	clR := 2.5
	winged := EstimatePerformance(
		model.AeroSetup{ClFront: &clF, ClRear: &clR}, mediumTrack())
	base := EstimatePerformance(model.AeroSetup{}, mediumTrack())

	assert.Greater(t, winged.AvgCornerSpeed, base.AvgCornerSpeed)
	assert.Less(t, winged.BrakingDist100To0, base.BrakingDist100To0)
	assert.Greater(t, winged.TireStressFactor, base.TireStressFactor)
}

func TestEstimatePerformance_TrackMismatchPenalty(t *testing.T) {
	low := mediumTrack()
	low.DownforceLevel = model.DownforceLow
	high := mediumTrack()
	high.DownforceLevel = model.DownforceHigh

	clF := 2.0
	clR := 2.5
	overwinged := model.AeroSetup{ClFront: &clF, ClRear: &clR}

	onLow := EstimatePerformance(overwinged, low)
	onMedium := EstimatePerformance(overwinged, mediumTrack())
	assert.Less(t, onLow.StraightPerformance, onMedium.StraightPerformance,
		"too much wing hurts on a low downforce track")

	underwinged := model.AeroSetup{} // total Cl 3.5 < 3.8
	onHigh := EstimatePerformance(underwinged, high)
	baseline := EstimatePerformance(underwinged, mediumTrack())
	assert.Less(t, onHigh.CornerPerformance, baseline.CornerPerformance,
		"too little wing hurts on a high downforce track")
}
