package aero

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apexaero/aerosim-service-go/pkg/model"
)

func TestPhysics_OptimizeForTrack(t *testing.T) {
	p := NewPhysics()

	tests := []struct {
		name   string
		level  model.DownforceLevel
		wantCd float64
	}{
		{"low downforce preset", model.DownforceLow, 0.68},
		{"medium downforce preset", model.DownforceMedium, 0.70},
		{"high downforce preset", model.DownforceHigh, 0.75},
		{"unknown level falls back to medium", model.DownforceLevel("x"), 0.70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.OptimizeForTrack(&model.TrackInfo{DownforceLevel: tt.level})
			assert.InDelta(t, tt.wantCd, got.DragCoefficient, 1e-9)
			assert.NoError(t, got.CarParameters().Validate())
		})
	}

	t.Run("high downforce carries more wing than low", func(t *testing.T) {
		low := p.OptimizeForTrack(&model.TrackInfo{DownforceLevel: model.DownforceLow})
		high := p.OptimizeForTrack(&model.TrackInfo{DownforceLevel: model.DownforceHigh})
		assert.Greater(t, high.ClFront+high.ClRear, low.ClFront+low.ClRear)
		assert.Less(t, high.RideHeightFront, low.RideHeightFront)
	})
}
