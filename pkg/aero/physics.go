// Package aero implements the closed-form aerodynamic force model.
// All methods are pure functions of their inputs; a Physics instance only
// carries the ambient constants and is safe for concurrent use.
package aero

import (
	"math"

	"github.com/apexaero/aerosim-service-go/pkg/model"
)

// AeroState is the instantaneous aerodynamic state of the car at one
// evaluation point. It is recomputed per call and never persisted.
type AeroState struct {
	Velocity        float64 // m/s
	DragCoefficient float64
	ClFront         float64
	ClRear          float64
	FrontalArea     float64 // m²
	RideHeightFront float64 // mm
	RideHeightRear  float64 // mm
	WingAngleFront  float64 // degrees
	WingAngleRear   float64 // degrees
	YawAngle        float64 // degrees
	GroundEffect    bool
}

// StateForCar builds the aero state of a car at the given speed with
// ground effect active and no yaw.
func StateForCar(params model.CarParameters, velocity float64) AeroState {
	return AeroState{
		Velocity:        velocity,
		DragCoefficient: params.DragCoefficient,
		ClFront:         params.ClFront,
		ClRear:          params.ClRear,
		FrontalArea:     params.FrontalArea,
		RideHeightFront: params.RideHeightFront,
		RideHeightRear:  params.RideHeightRear,
		WingAngleFront:  params.FrontWingAngle,
		WingAngleRear:   params.RearWingAngle,
		GroundEffect:    true,
	}
}

// Calibration constants. These encode the model's tuning;
// do not rederive them.
const (
	yawDragFactor = 0.02 // extra effective Cd per degree of yaw

	optimalRideHeight = 12.0 // mm, peak of the ground effect window
	lowRideHeight     = 5.0  // mm, below this the underfloor airflow stalls
	groundDecayLength = 50.0 // mm, e-folding length above the optimal window

	optimalWingAngle = 25.0 // degrees
	stallWingAngle   = 40.0 // degrees, hard stall threshold
	stallEfficiency  = 0.3  // fixed post-stall efficiency

	dynamicViscosityAir = 1.81e-5 // Pa·s at 15°C
	defaultCarLength    = 5.0     // m, characteristic length for Reynolds
)

type Physics struct {
	airDensity float64
	g          float64
}

type Option func(*Physics)

// WithAirDensity overrides the sea level default, e.g. for high altitude
// circuits.
func WithAirDensity(rho float64) Option {
	return func(p *Physics) { p.airDensity = rho }
}

func NewPhysics(opts ...Option) *Physics {
	ret := &Physics{airDensity: model.AirDensity, g: model.Gravity}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// DragForce computes F_d = 0.5 * ρ * v² * Cd * A in Newtons.
// Yaw increases the effective drag coefficient.
func (p *Physics) DragForce(state AeroState) float64 {
	cdAdjusted := state.DragCoefficient * (1 + yawDragFactor*math.Abs(state.YawAngle))
	return 0.5 * p.airDensity * state.Velocity * state.Velocity *
		cdAdjusted * state.FrontalArea
}

// Downforce computes front, rear and total downforce in Newtons using the
// lift equation with ground effect and wing efficiency multipliers applied
// to the nominal lift coefficients.
func (p *Physics) Downforce(state AeroState) (front, rear, total float64) {
	clFrontEff := state.ClFront *
		p.groundEffectFactor(state.RideHeightFront) *
		p.wingEfficiency(state.WingAngleFront)
	clRearEff := state.ClRear *
		p.groundEffectFactor(state.RideHeightRear) *
		p.wingEfficiency(state.WingAngleRear)

	dynamicPressure := 0.5 * p.airDensity * state.Velocity * state.Velocity *
		state.FrontalArea

	front = dynamicPressure * clFrontEff
	rear = dynamicPressure * clRearEff
	return front, rear, front + rear
}

// groundEffectFactor is the downforce multiplier for a given ride height.
// Below 5mm the underfloor airflow stalls, 5-12mm is the optimal window,
// above it the effect decays exponentially toward 1.0. Continuous and
// non-negative over the whole range.
func (p *Physics) groundEffectFactor(rideHeightMM float64) float64 {
	switch {
	case rideHeightMM < lowRideHeight:
		return 0.8 + 0.04*rideHeightMM
	case rideHeightMM <= optimalRideHeight:
		return 1.0 + 0.3*(optimalRideHeight-rideHeightMM)/optimalRideHeight
	default:
		decay := math.Exp(-(rideHeightMM - optimalRideHeight) / groundDecayLength)
		return 1.0 + 0.3*decay
	}
}

// wingEfficiency ramps linearly with angle of attack and drops to a fixed
// penalty at the stall threshold. The cliff at 40° is deliberate; the wing
// stalls, it does not degrade gracefully.
func (p *Physics) wingEfficiency(angleDegrees float64) float64 {
	if angleDegrees < stallWingAngle {
		return math.Min(0.5+(angleDegrees/optimalWingAngle)*0.5, 1.0)
	}
	return stallEfficiency
}

// LiftToDragRatio returns total downforce over drag, 0 when drag is 0.
func (p *Physics) LiftToDragRatio(state AeroState) float64 {
	_, _, total := p.Downforce(state)
	drag := p.DragForce(state)
	if drag > 0 {
		return total / drag
	}
	return 0.0
}

// AerodynamicBalance returns the front downforce share in percent.
// Neutral 50.0 when there is no downforce at all.
func (p *Physics) AerodynamicBalance(state AeroState) float64 {
	front, _, total := p.Downforce(state)
	if total > 0 {
		return front / total * 100
	}
	return 50.0
}

// ReynoldsNumber computes Re = ρ * v * L / μ. A characteristicLength of 0
// uses the full car length.
func (p *Physics) ReynoldsNumber(state AeroState, characteristicLength float64) float64 {
	if characteristicLength == 0 {
		characteristicLength = defaultCarLength
	}
	return p.airDensity * state.Velocity * characteristicLength / dynamicViscosityAir
}
