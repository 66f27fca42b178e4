package model

import (
	"errors"
	"fmt"
)

// Physical constants shared across the simulation core.
const (
	AirDensity = 1.225 // kg/m³ at sea level, 15°C
	Gravity    = 9.81  // m/s²
)

// Baseline car values. Absent setup fields default to these.
const (
	DefaultCarMass      = 798.0    // kg, minimum including driver
	DefaultEnginePower  = 745000.0 // W (~1000 HP)
	DefaultFrontalArea  = 1.4      // m²
	DefaultDragCoeff    = 0.70
	DefaultClFront      = 1.5
	DefaultClRear       = 2.0
	DefaultTireFriction = 2.0     // dry tires
	DefaultBrakeForce   = 25000.0 // N
	DefaultFrontWing    = 22.0    // degrees
	DefaultRearWing     = 26.0    // degrees
	DefaultRideFront    = 12.0    // mm
	DefaultRideRear     = 14.0    // mm
)

var ErrInvalidConfig = errors.New("invalid configuration")

// CarParameters describes a fixed physical/aerodynamic build for one
// simulation run. Construct via DefaultCarParameters and override fields,
// or via AeroSetup.CarParameters; treat as immutable afterwards.
type CarParameters struct {
	Mass            float64 `json:"mass"`
	Power           float64 `json:"power"`
	FrontalArea     float64 `json:"frontalArea"`
	DragCoefficient float64 `json:"dragCoefficient"`
	ClFront         float64 `json:"clFront"`
	ClRear          float64 `json:"clRear"`
	TireFriction    float64 `json:"tireFriction"`
	BrakeForce      float64 `json:"brakeForce"`
	FrontWingAngle  float64 `json:"frontWingAngle"`
	RearWingAngle   float64 `json:"rearWingAngle"`
	RideHeightFront float64 `json:"rideHeightFront"`
	RideHeightRear  float64 `json:"rideHeightRear"`
}

func DefaultCarParameters() CarParameters {
	return CarParameters{
		Mass:            DefaultCarMass,
		Power:           DefaultEnginePower,
		FrontalArea:     DefaultFrontalArea,
		DragCoefficient: DefaultDragCoeff,
		ClFront:         DefaultClFront,
		ClRear:          DefaultClRear,
		TireFriction:    DefaultTireFriction,
		BrakeForce:      DefaultBrakeForce,
		FrontWingAngle:  DefaultFrontWing,
		RearWingAngle:   DefaultRearWing,
		RideHeightFront: DefaultRideFront,
		RideHeightRear:  DefaultRideRear,
	}
}

func (c CarParameters) Validate() error {
	check := func(name string, v float64) error {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v",
				ErrInvalidConfig, name, v)
		}
		return nil
	}
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"mass", c.Mass},
		{"power", c.Power},
		{"frontalArea", c.FrontalArea},
		{"dragCoefficient", c.DragCoefficient},
		{"clFront", c.ClFront},
		{"clRear", c.ClRear},
		{"tireFriction", c.TireFriction},
		{"brakeForce", c.BrakeForce},
	} {
		if err := check(f.name, f.val); err != nil {
			return err
		}
	}
	if c.RideHeightFront < 0 || c.RideHeightRear < 0 {
		return fmt.Errorf("%w: ride heights must be non-negative", ErrInvalidConfig)
	}
	return nil
}

// AeroSetup is the caller facing aerodynamic configuration. All fields are
// optional; nil means "use the documented default". Typical ranges:
// DragCoefficient 0.65-0.80, ClFront 1.0-2.0, ClRear 1.5-2.5,
// FrontWingAngle 15-35°, RearWingAngle 18-40°, RideHeightFront 5-20mm,
// RideHeightRear 8-25mm.
type AeroSetup struct {
	DragCoefficient *float64 `json:"dragCoefficient,omitempty"`
	ClFront         *float64 `json:"clFront,omitempty"`
	ClRear          *float64 `json:"clRear,omitempty"`
	FrontWingAngle  *float64 `json:"frontWingAngle,omitempty"`
	RearWingAngle   *float64 `json:"rearWingAngle,omitempty"`
	RideHeightFront *float64 `json:"rideHeightFront,omitempty"`
	RideHeightRear  *float64 `json:"rideHeightRear,omitempty"`
}

// CarParameters expands the setup into full car parameters, applying the
// baseline default for every absent field.
func (s AeroSetup) CarParameters() CarParameters {
	ret := DefaultCarParameters()
	pick := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	pick(&ret.DragCoefficient, s.DragCoefficient)
	pick(&ret.ClFront, s.ClFront)
	pick(&ret.ClRear, s.ClRear)
	pick(&ret.FrontWingAngle, s.FrontWingAngle)
	pick(&ret.RearWingAngle, s.RearWingAngle)
	pick(&ret.RideHeightFront, s.RideHeightFront)
	pick(&ret.RideHeightRear, s.RideHeightRear)
	return ret
}

// FixedSetup is a fully resolved aero setup, used for the track presets.
type FixedSetup struct {
	DragCoefficient float64 `json:"dragCoefficient" yaml:"dragCoefficient"`
	ClFront         float64 `json:"clFront"         yaml:"clFront"`
	ClRear          float64 `json:"clRear"          yaml:"clRear"`
	FrontWingAngle  float64 `json:"frontWingAngle"  yaml:"frontWingAngle"`
	RearWingAngle   float64 `json:"rearWingAngle"   yaml:"rearWingAngle"`
	RideHeightFront float64 `json:"rideHeightFront" yaml:"rideHeightFront"`
	RideHeightRear  float64 `json:"rideHeightRear"  yaml:"rideHeightRear"`
}

// CarParameters expands the fixed setup onto the baseline car.
func (s FixedSetup) CarParameters() CarParameters {
	ret := DefaultCarParameters()
	ret.DragCoefficient = s.DragCoefficient
	ret.ClFront = s.ClFront
	ret.ClRear = s.ClRear
	ret.FrontWingAngle = s.FrontWingAngle
	ret.RearWingAngle = s.RearWingAngle
	ret.RideHeightFront = s.RideHeightFront
	ret.RideHeightRear = s.RideHeightRear
	return ret
}
