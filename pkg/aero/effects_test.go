package aero

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPhysics_DRSEffect(t *testing.T) {
	p := NewPhysics()
	state := sampleState(80)

	t.Run("closed flap is a no-op", func(t *testing.T) {
		if diff := cmp.Diff(DRSDelta{}, p.DRSEffect(state, false)); diff != "" {
			t.Errorf("closed DRS must have zero deltas: %s", diff)
		}
	})

	t.Run("open flap reduces drag and rear downforce", func(t *testing.T) {
		got := p.DRSEffect(state, true)
		assert.InDelta(t, 0.10*state.DragCoefficient, got.DragReduction, 1e-9)
		assert.InDelta(t, 0.15*state.ClRear, got.DownforceLoss, 1e-9)
		assert.Positive(t, got.SpeedGain)
	})

	t.Run("no gain when standing still", func(t *testing.T) {
		got := p.DRSEffect(sampleState(0), true)
		assert.Zero(t, got.SpeedGain)
	})
}

func TestPhysics_VortexGeneration(t *testing.T) {
	p := NewPhysics()

	got := p.VortexGeneration(sampleState(80))
	assert.Positive(t, got.Y250)
	assert.Positive(t, got.Bargeboard)
	assert.Positive(t, got.Diffuser)
	assert.Positive(t, got.RearWing)
	assert.InDelta(t,
		got.Y250+got.Bargeboard+got.Diffuser+got.RearWing, got.Total, 1e-9)
}

func TestPhysics_PorpoisingRisk(t *testing.T) {
	p := NewPhysics()
	tests := []struct {
		name            string
		rideHeightFront float64
		velocity        float64
		wantLevel       RiskLevel
	}{
		{"safe ride height at speed", 12, 90, RiskLow},
		{"low floor at low speed", 2, 30, RiskLow},
		{"low floor at high speed", 1, 95, RiskHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := sampleState(tt.velocity)
			state.RideHeightFront = tt.rideHeightFront
			got := p.PorpoisingRisk(state)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.GreaterOrEqual(t, got.Score, 0.0)
			assert.LessOrEqual(t, got.Score, 1.0)
		})
	}

	t.Run("recommendation follows the score", func(t *testing.T) {
		state := sampleState(95)
		state.RideHeightFront = 1
		got := p.PorpoisingRisk(state)
		assert.Equal(t, "Increase ride height", got.Recommendation)

		state.RideHeightFront = 12
		got = p.PorpoisingRisk(state)
		assert.Equal(t, "Configuration acceptable", got.Recommendation)
	})
}
