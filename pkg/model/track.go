package model

import "fmt"

// DownforceLevel classifies the aero demand of a circuit.
type DownforceLevel string

const (
	DownforceLow    DownforceLevel = "low"    // high-speed circuits (Monza, Spa)
	DownforceMedium DownforceLevel = "medium" // balanced circuits (most tracks)
	DownforceHigh   DownforceLevel = "high"   // slow, twisty circuits (Monaco, Hungary)
)

func (d DownforceLevel) Valid() bool {
	switch d {
	case DownforceLow, DownforceMedium, DownforceHigh:
		return true
	}
	return false
}

// TrackInfo is the read-only descriptor for one circuit. Instances are
// loaded once at startup from the registry data and never mutated.
type TrackInfo struct {
	Key            string         `json:"key"            yaml:"key"`
	Name           string         `json:"name"           yaml:"name"`
	CircuitLength  float64        `json:"circuitLength"  yaml:"circuitLength"` // km
	CornerCount    int            `json:"cornerCount"    yaml:"cornerCount"`
	DownforceLevel DownforceLevel `json:"downforceLevel" yaml:"downforceLevel"`
	AverageSpeed   float64        `json:"averageSpeed"   yaml:"averageSpeed"`    // km/h historical
	LongestStraight float64       `json:"longestStraight" yaml:"longestStraight"` // m
	ElevationChange float64       `json:"elevationChange" yaml:"elevationChange"` // m

	// optimal aerodynamic setup based on historical data
	OptimalFrontWingAngle  float64 `json:"optimalFrontWingAngle"  yaml:"optimalFrontWingAngle"`
	OptimalRearWingAngle   float64 `json:"optimalRearWingAngle"   yaml:"optimalRearWingAngle"`
	OptimalRideHeightFront float64 `json:"optimalRideHeightFront" yaml:"optimalRideHeightFront"`
	OptimalRideHeightRear  float64 `json:"optimalRideHeightRear"  yaml:"optimalRideHeightRear"`

	DrsZones     int     `json:"drsZones"     yaml:"drsZones"`
	SurfaceGrip  float64 `json:"surfaceGrip"  yaml:"surfaceGrip"` // 0.0-1.0
	BumpySurface bool    `json:"bumpySurface" yaml:"bumpySurface"`

	// 2024 season reference lap times ("M:SS.mmm"), empty when unknown
	FastestQuali2024 string `json:"fastestQuali2024,omitempty" yaml:"fastestQuali2024,omitempty"`
	FastestRace2024  string `json:"fastestRace2024,omitempty"  yaml:"fastestRace2024,omitempty"`
}

func (t *TrackInfo) Validate() error {
	if t.Key == "" || t.Name == "" {
		return fmt.Errorf("%w: track key and name are required", ErrInvalidConfig)
	}
	if t.CircuitLength <= 0 {
		return fmt.Errorf("%w: track %s: circuit length must be positive",
			ErrInvalidConfig, t.Key)
	}
	if t.CornerCount < 1 {
		return fmt.Errorf("%w: track %s: corner count must be at least 1",
			ErrInvalidConfig, t.Key)
	}
	if !t.DownforceLevel.Valid() {
		return fmt.Errorf("%w: track %s: unknown downforce level %q",
			ErrInvalidConfig, t.Key, t.DownforceLevel)
	}
	return nil
}
