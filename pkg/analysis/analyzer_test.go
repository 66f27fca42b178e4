//nolint:funlen // ok for tests
package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexaero/aerosim-service-go/pkg/model"
	"github.com/apexaero/aerosim-service-go/pkg/track"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	registry, err := track.NewRegistry()
	require.NoError(t, err)
	return NewAnalyzer(registry)
}

func TestAnalyzer_AnalyzeCircuit(t *testing.T) {
	a := newTestAnalyzer(t)

	got, err := a.AnalyzeCircuit("monza", model.AeroSetup{})
	require.NoError(t, err)

	assert.Equal(t, "Autodromo Nazionale di Monza", got.TrackName)
	assert.Equal(t, model.DownforceLow, got.DownforceRequirement)
	assert.NotEmpty(t, got.QualifyingLapTime)
	assert.NotEmpty(t, got.RaceLapTime)
	assert.Positive(t, got.TopSpeedEstimate)
	assert.Positive(t, got.AvgCornerSpeed)
	assert.NotEmpty(t, got.CriticalCorners)

	// the low downforce preset for Monza
	assert.InDelta(t, 0.68, got.OptimalConfig.DragCoefficient, 1e-9)
	assert.InDelta(t, 15, got.OptimalConfig.FrontWingAngle, 1e-9)
}

func TestAnalyzer_AnalyzeCircuit_UnknownTrack(t *testing.T) {
	a := newTestAnalyzer(t)

	_, err := a.AnalyzeCircuit("Atlantis", model.AeroSetup{})
	assert.ErrorIs(t, err, track.ErrTrackNotFound)
}

func TestAnalyzer_AnalyzeCircuit_OptimalSetupGains(t *testing.T) {
	a := newTestAnalyzer(t)

	// draggy and underwinged at the same time, slow everywhere
	cd := 0.80
	clFront := 0.8
	clRear := 1.0
	got, err := a.AnalyzeCircuit("monza",
		model.AeroSetup{DragCoefficient: &cd, ClFront: &clFront, ClRear: &clRear})
	require.NoError(t, err)

	assert.Positive(t, got.TimeGainQuali,
		"optimal setup must beat a draggy underwinged one")
	assert.Positive(t, got.TimeGainRace)
	assert.Equal(t, "Too high - reduce drag",
		got.SetupRecommendations.DragAnalysis.Status)
	assert.Equal(t, "Add downforce",
		got.SetupRecommendations.DownforceAnalysis.Status)
}

func TestAnalyzer_AnalyzeCircuit_CriticalCornersByLevel(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		name           string
		track          string
		wantCornerType string
	}{
		{"low downforce track leads with straights", "monza", "Long Straights"},
		{"high downforce track leads with hairpins", "Monaco", "Slow-Speed Hairpins"},
		{"medium downforce track leads with mixed corners", "Bahrain", "Mixed-Speed Corners"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.AnalyzeCircuit(tt.track, model.AeroSetup{})
			require.NoError(t, err)
			require.NotEmpty(t, got.CriticalCorners)
			assert.Equal(t, tt.wantCornerType, got.CriticalCorners[0].CornerType)
		})
	}
}

func TestAnalyzer_CompareWithBaseline(t *testing.T) {
	a := newTestAnalyzer(t)

	t.Run("available reference", func(t *testing.T) {
		got, err := a.CompareWithBaseline("Italy", "1:20.327")
		require.NoError(t, err)
		assert.True(t, got.Available)
		assert.Equal(t, "1:19.327", got.Baseline2024)
		assert.InDelta(t, 1.0, got.DeltaSeconds, 1e-6)
		assert.Positive(t, got.PercentageDiff)
	})

	t.Run("faster than reference", func(t *testing.T) {
		got, err := a.CompareWithBaseline("Italy", "1:18.327")
		require.NoError(t, err)
		assert.Negative(t, got.DeltaSeconds)
	})

	t.Run("unknown track", func(t *testing.T) {
		_, err := a.CompareWithBaseline("Atlantis", "1:20.000")
		assert.ErrorIs(t, err, track.ErrTrackNotFound)
	})
}

func TestAnalyzer_EstimateTopSpeed(t *testing.T) {
	a := newTestAnalyzer(t)

	base := a.estimateTopSpeed(model.DefaultCarParameters())
	assert.Greater(t, base, 250.0)
	assert.Less(t, base, 400.0)

	slick := model.DefaultCarParameters()
	slick.DragCoefficient = 0.65
	assert.Greater(t, a.estimateTopSpeed(slick), base)
}

func TestAnalyzer_EstimateCornerSpeed(t *testing.T) {
	a := newTestAnalyzer(t)

	base := a.estimateCornerSpeed(model.DefaultCarParameters())
	assert.Positive(t, base)

	winged := model.DefaultCarParameters()
	winged.ClFront = 2.0
	winged.ClRear = 2.5
	assert.Greater(t, a.estimateCornerSpeed(winged), base)
}
