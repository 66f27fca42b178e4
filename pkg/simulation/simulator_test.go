//nolint:funlen // ok for tests
package simulation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexaero/aerosim-service-go/pkg/model"
)

func monza() *model.TrackInfo {
	return &model.TrackInfo{
		Key:             "Italy",
		Name:            "Monza",
		CircuitLength:   5.793,
		CornerCount:     11,
		DownforceLevel:  model.DownforceLow,
		LongestStraight: 1150,
	}
}

func TestSimulator_SimulateLap(t *testing.T) {
	sim := NewSimulator()
	params := model.DefaultCarParameters()

	got := sim.SimulateLap(params, monza(), false)

	// plausibility window for a 5.8km lap with the default car
	assert.Greater(t, got.LapTimeSeconds, 60.0)
	assert.Less(t, got.LapTimeSeconds, 120.0)
	assert.Positive(t, got.StraightTime)
	assert.Positive(t, got.CornerTime)
	assert.InDelta(t,
		got.StraightTime+got.CornerTime, got.LapTimeSeconds, 1e-9)
	assert.Regexp(t, regexp.MustCompile(`^\d+:\d{2}\.\d{3}$`), got.LapTime)
}

func TestSimulator_SimulateLap_RaceMode(t *testing.T) {
	sim := NewSimulator()
	params := model.DefaultCarParameters()

	quali := sim.SimulateLap(params, monza(), false)
	race := sim.SimulateLap(params, monza(), true)

	assert.Greater(t, race.LapTimeSeconds, quali.LapTimeSeconds,
		"race penalties must cost time")
	assert.InDelta(t, quali.LapTimeSeconds*1.007*1.003,
		race.LapTimeSeconds, 1e-6)
}

func TestSimulator_SimulateLap_Deterministic(t *testing.T) {
	sim := NewSimulator()
	params := model.DefaultCarParameters()

	first := sim.SimulateLap(params, monza(), false)
	second := sim.SimulateLap(params, monza(), false)

	assert.Equal(t, first, second)
}

func TestSimulator_SimulateLap_DragSensitivity(t *testing.T) {
	sim := NewSimulator()

	slick := model.DefaultCarParameters()
	slick.DragCoefficient = 0.65
	draggy := model.DefaultCarParameters()
	draggy.DragCoefficient = 0.80

	fast := sim.SimulateLap(slick, monza(), false)
	slow := sim.SimulateLap(draggy, monza(), false)

	assert.Less(t, fast.StraightTime, slow.StraightTime,
		"more drag must never be faster on the straights")
}

func TestSimulator_PredictOptimalLaptime(t *testing.T) {
	sim := NewSimulator()
	params := model.DefaultCarParameters()

	quali, race := sim.PredictOptimalLaptime(params, monza())

	qs, err := ParseLapTime(quali)
	require.NoError(t, err)
	rs, err := ParseLapTime(race)
	require.NoError(t, err)
	assert.Greater(t, rs, qs)
}

func TestFormatLapTime(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"typical lap", 83.456, "1:23.456"},
		{"sub minute", 59.999, "0:59.999"},
		{"exact minute", 60.0, "1:00.000"},
		{"long lap", 125.25, "2:05.250"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLapTime(tt.seconds))
		})
	}
}

func TestParseLapTime(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    float64
		wantErr bool
	}{
		{"typical lap", "1:23.456", 83.456, false},
		{"zero minutes", "0:59.999", 59.999, false},
		{"missing separator", "83.456", 0, true},
		{"garbage minutes", "x:23.456", 0, true},
		{"garbage seconds", "1:yy", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLapTime(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, seconds := range []float64{59.999, 60.0, 83.456, 119.001} {
		got, err := ParseLapTime(FormatLapTime(seconds))
		assert.NoError(t, err)
		assert.InDelta(t, seconds, got, 0.001)
	}
}
