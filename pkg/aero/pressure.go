package aero

import (
	"iter"
	"math"
)

const atmosphericPressure = 101325.0 // Pa

// PressurePoint is one sample of the estimated pressure distribution
// along the normalized car length axis.
type PressurePoint struct {
	Position            float64 `json:"position"` // 0 (nose) .. 1 (rear)
	PressureCoefficient float64 `json:"pressureCoefficient"`
	Pressure            float64 `json:"pressure"` // Pa
}

// PressureDistribution yields nPoints samples of a simplified pressure
// coefficient curve: stagnation at the nose, suction under the floor
// (amplified when ground effect is active) and recovery toward the rear
// wing. The returned sequence is finite and restartable.
func (p *Physics) PressureDistribution(state AeroState, nPoints int) iter.Seq[PressurePoint] {
	return func(yield func(PressurePoint) bool) {
		if nPoints <= 0 {
			return
		}
		qInf := 0.5 * p.airDensity * state.Velocity * state.Velocity
		for i := range nPoints {
			pos := 0.0
			if nPoints > 1 {
				pos = float64(i) / float64(nPoints-1)
			}
			cp := p.pressureCoefficient(state, pos)
			if !yield(PressurePoint{
				Position:            pos,
				PressureCoefficient: cp,
				Pressure:            atmosphericPressure + cp*qInf,
			}) {
				return
			}
		}
	}
}

// PressurePoints materializes the distribution into a slice.
func (p *Physics) PressurePoints(state AeroState, nPoints int) []PressurePoint {
	ret := make([]PressurePoint, 0, nPoints)
	for pt := range p.PressureDistribution(state, nPoints) {
		ret = append(ret, pt)
	}
	return ret
}

func (p *Physics) pressureCoefficient(state AeroState, pos float64) float64 {
	var cp float64
	switch {
	case pos < 0.1: // front wing / nose: stagnation to suction
		cp = 0.8 - 8*pos
	case pos < 0.3: // underbody entrance
		cp = -0.3 - 1.5*(pos-0.1)
	case pos < 0.7: // floor / diffuser
		cp = -0.6 - 0.8*math.Sin(math.Pi*(pos-0.3)/0.4)
	default: // rear wing / diffuser exit: pressure recovery
		cp = -1.0 + 2.5*(pos-0.7)
	}
	if state.GroundEffect && pos >= 0.3 && pos <= 0.7 {
		cp *= 1 + 0.3*p.groundEffectFactor(state.RideHeightRear)
	}
	return cp
}
