package aero

import (
	"math"

	"github.com/apexaero/aerosim-service-go/pkg/model"
)

// Vortices is a descriptive breakdown of the estimated vortex strengths.
// These values are indicators only and are not fed back into the force
// calculations.
type Vortices struct {
	Y250       float64 `json:"y250Vortex"`
	Bargeboard float64 `json:"bargeboardVortices"`
	Diffuser   float64 `json:"diffuserVortices"`
	RearWing   float64 `json:"rearWingVortices"`
	Total      float64 `json:"totalVorticity"`
}

// VortexGeneration estimates relative vortex strengths from velocity and
// wing angle sine terms.
func (p *Physics) VortexGeneration(state AeroState) Vortices {
	frontWingVorticity := state.Velocity *
		math.Sin(state.WingAngleFront*math.Pi/180) * 10

	ret := Vortices{
		Y250:       frontWingVorticity * 0.7,
		Bargeboard: state.Velocity * 8,
		Diffuser:   state.Velocity * state.ClRear * 5,
		RearWing:   state.Velocity * math.Sin(state.WingAngleRear*math.Pi/180) * 8,
	}
	ret.Total = ret.Y250 + ret.Bargeboard + ret.Diffuser + ret.RearWing
	return ret
}

// DRSDelta describes the effect of opening the rear wing flap.
type DRSDelta struct {
	DragReduction float64 `json:"dragReduction"` // delta on Cd
	DownforceLoss float64 `json:"downforceLoss"` // delta on rear Cl
	SpeedGain     float64 `json:"speedGain"`     // km/h
}

// DRS delta factors on the rear wing.
const (
	drsDragReduction      = 0.10
	drsDownforceReduction = 0.15
)

// DRSEffect returns all-zero deltas when closed. When open, drag drops by
// 10% of the current Cd and the rear lift coefficient by 15%; the speed
// gain follows the square root relationship between force ratio and
// velocity ratio at constant power.
func (p *Physics) DRSEffect(state AeroState, drsOpen bool) DRSDelta {
	if !drsOpen {
		return DRSDelta{}
	}
	dragNormal := p.DragForce(state)
	dragDRS := dragNormal * (1 - drsDragReduction)

	speedGainKmh := 0.0
	if dragNormal > 0 {
		speedGainKmh = state.Velocity * 3.6 * (1 - math.Sqrt(dragDRS/dragNormal))
	}

	return DRSDelta{
		DragReduction: drsDragReduction * state.DragCoefficient,
		DownforceLoss: drsDownforceReduction * state.ClRear,
		SpeedGain:     math.Abs(speedGainKmh),
	}
}

// RiskLevel buckets the porpoising risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// PorpoisingRisk combines a ride height factor with the downforce-to-weight
// ratio into a composite risk assessment.
type PorpoisingRisk struct {
	Level            RiskLevel `json:"riskLevel"`
	Score            float64   `json:"riskScore"`
	RideHeightFactor float64   `json:"rideHeightFactor"`
	DownforceFactor  float64   `json:"downforceFactor"`
	Recommendation   string    `json:"recommendation"`
}

// minSafeRideHeight is the threshold below which ground effect oscillation
// becomes likely.
const minSafeRideHeight = 8.0 // mm

func (p *Physics) PorpoisingRisk(state AeroState) PorpoisingRisk {
	_, _, downforce := p.Downforce(state)

	rideHeightRisk := math.Max(0,
		(minSafeRideHeight-state.RideHeightFront)/minSafeRideHeight)
	downforceRisk := math.Min(1.0, downforce/(model.DefaultCarMass*p.g*4))

	combined := rideHeightRisk * downforceRisk

	level := RiskLow
	switch {
	case combined > 0.7:
		level = RiskHigh
	case combined > 0.4:
		level = RiskMedium
	}

	recommendation := "Configuration acceptable"
	if combined > 0.6 {
		recommendation = "Increase ride height"
	}

	return PorpoisingRisk{
		Level:            level,
		Score:            combined,
		RideHeightFactor: rideHeightRisk,
		DownforceFactor:  downforceRisk,
		Recommendation:   recommendation,
	}
}
