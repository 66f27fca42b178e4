package aero

import "github.com/apexaero/aerosim-service-go/pkg/model"

// Canned setups keyed by the track's downforce classification.
// OptimizeForTrack is a lookup, not an optimizer: no search or fitting
// happens here, the three presets encode historical setup knowledge.
var trackPresets = map[model.DownforceLevel]model.FixedSetup{
	model.DownforceLow: { // high-speed tracks (Monza, Spa)
		DragCoefficient: 0.68,
		ClFront:         1.2,
		ClRear:          1.6,
		FrontWingAngle:  15,
		RearWingAngle:   18,
		RideHeightFront: 15,
		RideHeightRear:  18,
	},
	model.DownforceHigh: { // slow tracks (Monaco, Hungary)
		DragCoefficient: 0.75,
		ClFront:         1.8,
		ClRear:          2.4,
		FrontWingAngle:  30,
		RearWingAngle:   35,
		RideHeightFront: 8,
		RideHeightRear:  10,
	},
	model.DownforceMedium: { // most tracks
		DragCoefficient: 0.70,
		ClFront:         1.5,
		ClRear:          2.0,
		FrontWingAngle:  22,
		RearWingAngle:   26,
		RideHeightFront: 12,
		RideHeightRear:  14,
	},
}

// OptimizeForTrack returns the preset setup for the track's downforce
// class. Unknown classifications fall back to the medium preset.
func (p *Physics) OptimizeForTrack(track *model.TrackInfo) model.FixedSetup {
	if preset, ok := trackPresets[track.DownforceLevel]; ok {
		return preset
	}
	return trackPresets[model.DownforceMedium]
}
