// Package simulation synthesizes lap times from car parameters and a
// track descriptor using a two phase model: straight-line integration and
// per-corner analytical arc times.
package simulation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/apexaero/aerosim-service-go/pkg/aero"
	"github.com/apexaero/aerosim-service-go/pkg/model"
)

// Integration and calibration constants. The race mode factors and the
// corner radius cycle are calibrated defaults, not derived values.
const (
	timeStep        = 0.1  // s, forward Euler step
	initialVelocity = 50.0 // m/s at straight entry
	maxVelocity     = 100.0 // m/s (~360 km/h) practical ceiling
	minVelocity     = 0.1  // m/s floor for the engine force term
	straightCutoff  = 60.0 // s safety valve against runaway integration

	straightFactor = 1.5 // straight distance estimate vs longest straight

	raceTireDegFactor    = 1.007 // flat tire degradation penalty
	raceFuelWeightFactor = 1.003 // flat fuel weight penalty
)

type Simulator struct {
	phys *aero.Physics
}

type Option func(*Simulator)

func WithPhysics(p *aero.Physics) Option {
	return func(s *Simulator) { s.phys = p }
}

func NewSimulator(opts ...Option) *Simulator {
	ret := &Simulator{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.phys == nil {
		ret.phys = aero.NewPhysics()
	}
	return ret
}

// SimulateLap runs one lap. Race mode applies the flat tire and fuel
// penalties on top of the qualifying-equivalent time. Each call is
// self-contained; no state survives between calls.
func (s *Simulator) SimulateLap(
	params model.CarParameters, track *model.TrackInfo, raceMode bool,
) model.SimulationResult {
	circuitLength := track.CircuitLength * 1000 // m

	straightDistance := track.LongestStraight * straightFactor
	cornerDistance := circuitLength - straightDistance

	// average radius from total corner arc length, assuming quarter
	// circle corners
	avgCornerRadius := cornerDistance / (float64(track.CornerCount) * math.Pi / 2)

	straightTime := s.simulateStraight(params, straightDistance)
	cornerTime := s.simulateCorners(params, track.CornerCount, avgCornerRadius)

	total := straightTime + cornerTime
	if raceMode {
		total *= raceTireDegFactor
		total *= raceFuelWeightFactor
	}

	return model.SimulationResult{
		LapTime:        FormatLapTime(total),
		LapTimeSeconds: total,
		StraightTime:   straightTime,
		CornerTime:     cornerTime,
	}
}

// PredictOptimalLaptime returns the formatted qualifying and race lap
// times for the given setup.
func (s *Simulator) PredictOptimalLaptime(
	params model.CarParameters, track *model.TrackInfo,
) (quali, race string) {
	quali = s.SimulateLap(params, track, false).LapTime
	race = s.SimulateLap(params, track, true).LapTime
	return quali, race
}

// simulateStraight integrates engine force minus drag over the straight
// distance. The 60s cutoff guards against non-convergence for pathological
// setups (e.g. near-zero drag with capped velocity).
func (s *Simulator) simulateStraight(params model.CarParameters, distance float64) float64 {
	velocity := initialVelocity
	position := 0.0
	elapsed := 0.0

	for position < distance && elapsed < straightCutoff {
		state := aero.StateForCar(params, velocity)
		drag := s.phys.DragForce(state)
		engineForce := params.Power / math.Max(velocity, minVelocity)
		acceleration := (engineForce - drag) / params.Mass

		velocity += acceleration * timeStep
		velocity = math.Min(velocity, maxVelocity)
		position += velocity * timeStep
		elapsed += timeStep
	}
	return elapsed
}

// simulateCorners sums analytical corner times. The radius factor cycle
// (tight/medium/open by corner index) keeps corners from being identical
// while staying deterministic.
func (s *Simulator) simulateCorners(
	params model.CarParameters, cornerCount int, avgRadius float64,
) float64 {
	total := 0.0

	for i := range cornerCount {
		radiusFactor := 0.7 + 0.6*float64(i%3)/2
		cornerRadius := avgRadius * radiusFactor

		// first guess from mechanical grip only
		vEstimate := math.Sqrt(params.TireFriction * model.Gravity * cornerRadius)

		state := aero.StateForCar(params, vEstimate)
		_, _, downforce := s.phys.Downforce(state)

		// downforce augments the normal force and with it the
		// achievable lateral acceleration
		normalForce := params.Mass*model.Gravity + downforce
		maxLatAccel := params.TireFriction * normalForce / params.Mass
		vMax := math.Sqrt(maxLatAccel * cornerRadius)

		arcLength := math.Pi / 2 * cornerRadius
		cornerTime := arcLength / vMax

		vEntry := math.Min(70, vEstimate*1.3)
		brakeDecel := params.BrakeForce / params.Mass
		brakeTime := 0.0
		if vEntry > vMax {
			brakeTime = (vEntry - vMax) / brakeDecel
		}
		accelTime := math.Abs(vEstimate * 0.3 / 10)

		total += cornerTime + math.Abs(brakeTime) + accelTime
	}
	return total
}

// FormatLapTime renders seconds as "M:SS.mmm".
func FormatLapTime(seconds float64) string {
	minutes := int(seconds / 60)
	rest := seconds - float64(minutes)*60
	return fmt.Sprintf("%d:%06.3f", minutes, rest)
}

// ParseLapTime converts "M:SS.mmm" back to seconds.
func ParseLapTime(lapTime string) (float64, error) {
	parts := strings.SplitN(lapTime, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid lap time format: %q", lapTime)
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid lap time format: %q", lapTime)
	}
	seconds, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid lap time format: %q", lapTime)
	}
	return float64(minutes)*60 + seconds, nil
}
