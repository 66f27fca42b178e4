// Package analysis compares aerodynamic setups against track specific
// optima and derives setup guidance.
package analysis

import (
	"math"

	"github.com/apexaero/aerosim-service-go/pkg/aero"
	"github.com/apexaero/aerosim-service-go/pkg/model"
	"github.com/apexaero/aerosim-service-go/pkg/simulation"
	"github.com/apexaero/aerosim-service-go/pkg/track"
)

const (
	topSpeedIterations = 10   // fixed iteration count keeps the solver deterministic
	topSpeedGuess      = 90.0 // m/s (~324 km/h) starting point

	nominalCornerRadius = 50.0 // m, medium corner reference
	cornerSpeedGuess    = 40.0 // m/s for the downforce evaluation point

	fallbackLapSeconds = 90.0 // used when a formatted lap time fails to parse
)

type Analyzer struct {
	registry *track.Registry
	sim      *simulation.Simulator
	phys     *aero.Physics
}

type Option func(*Analyzer)

func WithSimulator(sim *simulation.Simulator) Option {
	return func(a *Analyzer) { a.sim = sim }
}

func WithPhysics(phys *aero.Physics) Option {
	return func(a *Analyzer) { a.phys = phys }
}

func NewAnalyzer(registry *track.Registry, opts ...Option) *Analyzer {
	ret := &Analyzer{registry: registry}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.phys == nil {
		ret.phys = aero.NewPhysics()
	}
	if ret.sim == nil {
		ret.sim = simulation.NewSimulator(simulation.WithPhysics(ret.phys))
	}
	return ret
}

// AnalyzeCircuit simulates the caller's setup and the track-optimal one
// and reports the deltas plus qualitative guidance. Unknown track names
// yield track.ErrTrackNotFound.
func (a *Analyzer) AnalyzeCircuit(
	trackName string, current model.AeroSetup,
) (*model.CircuitAnalysis, error) {
	trackInfo, err := a.registry.Get(trackName)
	if err != nil {
		return nil, err
	}

	currentParams := current.CarParameters()
	currentQuali, currentRace := a.sim.PredictOptimalLaptime(currentParams, trackInfo)

	optimalSetup := a.phys.OptimizeForTrack(trackInfo)
	optimalParams := optimalSetup.CarParameters()
	optimalParams.Mass = currentParams.Mass
	optimalParams.Power = currentParams.Power
	optimalQuali, optimalRace := a.sim.PredictOptimalLaptime(optimalParams, trackInfo)

	return &model.CircuitAnalysis{
		TrackName:            trackInfo.Name,
		QualifyingLapTime:    optimalQuali,
		RaceLapTime:          optimalRace,
		OptimalConfig:        optimalSetup,
		TimeGainQuali:        parseOrFallback(currentQuali) - parseOrFallback(optimalQuali),
		TimeGainRace:         parseOrFallback(currentRace) - parseOrFallback(optimalRace),
		DownforceRequirement: trackInfo.DownforceLevel,
		TopSpeedEstimate:     a.estimateTopSpeed(optimalParams),
		AvgCornerSpeed:       a.estimateCornerSpeed(optimalParams),
		SetupRecommendations: setupRecommendations(trackInfo, currentParams, optimalParams),
		CriticalCorners:      criticalCorners(trackInfo, optimalParams),
	}, nil
}

// CompareWithBaseline relates a predicted lap time to the track's 2024
// reference. Missing historical data is not an error; the comparison is
// reported as unavailable.
func (a *Analyzer) CompareWithBaseline(
	trackName, predictedTime string,
) (*model.BaselineComparison, error) {
	trackInfo, err := a.registry.Get(trackName)
	if err != nil {
		return nil, err
	}
	if trackInfo.FastestQuali2024 == "" {
		return &model.BaselineComparison{Available: false}, nil
	}

	baseline := parseOrFallback(trackInfo.FastestQuali2024)
	predicted := parseOrFallback(predictedTime)
	delta := predicted - baseline

	return &model.BaselineComparison{
		Available:      true,
		Baseline2024:   trackInfo.FastestQuali2024,
		Predicted:      predictedTime,
		DeltaSeconds:   delta,
		PercentageDiff: delta / baseline * 100,
	}, nil
}

// estimateTopSpeed solves power = drag(v) by averaging drag-limited and
// current velocity for a fixed number of iterations. Returns km/h.
func (a *Analyzer) estimateTopSpeed(params model.CarParameters) float64 {
	v := topSpeedGuess
	for range topSpeedIterations {
		drag := 0.5 * model.AirDensity * v * v *
			params.DragCoefficient * params.FrontalArea
		vNew := params.Power / drag
		v = (v + vNew) / 2
	}
	return v * 3.6
}

// estimateCornerSpeed applies the simulator's lateral grip formula at a
// nominal medium corner radius. Returns km/h.
func (a *Analyzer) estimateCornerSpeed(params model.CarParameters) float64 {
	downforce := 0.5 * model.AirDensity * cornerSpeedGuess * cornerSpeedGuess *
		(params.ClFront + params.ClRear) * params.FrontalArea
	normalForce := params.Mass*model.Gravity + downforce
	maxLatAccel := params.TireFriction * normalForce / params.Mass
	return math.Sqrt(maxLatAccel*nominalCornerRadius) * 3.6
}

func parseOrFallback(lapTime string) float64 {
	seconds, err := simulation.ParseLapTime(lapTime)
	if err != nil {
		return fallbackLapSeconds
	}
	return seconds
}
