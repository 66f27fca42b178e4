package analysis

import (
	"fmt"

	"github.com/apexaero/aerosim-service-go/pkg/model"
)

// setupRecommendations relates the current setup to the track optimum.
// Impact figures use the rough rules of thumb that 0.01 Cd costs about
// 2 km/h top speed and 0.1 Cl about 0.5 km/h corner speed.
func setupRecommendations(
	trackInfo *model.TrackInfo, current, optimal model.CarParameters,
) model.SetupRecommendations {
	currentCl := current.ClFront + current.ClRear
	optimalCl := optimal.ClFront + optimal.ClRear
	cdDiff := current.DragCoefficient - optimal.DragCoefficient
	clDiff := currentCl - optimalCl

	dragStatus := "Optimal"
	if abs := absF(cdDiff); abs >= 0.01 {
		if cdDiff > 0 {
			dragStatus = "Too high - reduce drag"
		} else {
			dragStatus = "Too low - acceptable"
		}
	}

	downforceStatus := "Optimal"
	if absF(clDiff) >= 0.2 {
		if clDiff < 0 {
			downforceStatus = "Add downforce"
		} else {
			downforceStatus = "Remove downforce"
		}
	}

	return model.SetupRecommendations{
		WingAngles: model.WingGuidance{
			FrontOptimal:     optimal.FrontWingAngle,
			RearOptimal:      optimal.RearWingAngle,
			FrontCurrent:     current.FrontWingAngle,
			RearCurrent:      current.RearWingAngle,
			AdjustmentNeeded: absF(cdDiff) > 0.02 || absF(clDiff) > 0.2,
		},
		RideHeights: model.HeightGuidance{
			FrontOptimal: optimal.RideHeightFront,
			RearOptimal:  optimal.RideHeightRear,
			Note:         "Lower = more downforce but risk of porpoising",
		},
		DragAnalysis: model.DeltaAnalysis{
			Current: current.DragCoefficient,
			Optimal: optimal.DragCoefficient,
			Status:  dragStatus,
			Impact:  fmt.Sprintf("%.1f km/h top speed difference", absF(cdDiff)*20),
		},
		DownforceAnalysis: model.DeltaAnalysis{
			Current: currentCl,
			Optimal: optimalCl,
			Status:  downforceStatus,
			Impact:  fmt.Sprintf("%.1f km/h corner speed difference", absF(clDiff)*5),
		},
		DownforceLevel: trackInfo.DownforceLevel,
		Priority:       setupPriority(trackInfo),
		KeyFocus:       keyFocus(trackInfo),
	}
}

func setupPriority(trackInfo *model.TrackInfo) string {
	switch trackInfo.DownforceLevel {
	case model.DownforceHigh:
		return "MAXIMIZE DOWNFORCE - Corner speed critical"
	case model.DownforceLow:
		return "MINIMIZE DRAG - Top speed paramount"
	default:
		return "BALANCED SETUP - Optimize L/D ratio"
	}
}

func keyFocus(trackInfo *model.TrackInfo) string {
	switch {
	case trackInfo.CornerCount > 18:
		return fmt.Sprintf("High corner density (%d corners) - mechanical grip crucial",
			trackInfo.CornerCount)
	case trackInfo.CircuitLength > 6.0:
		return "Long circuit - tire management important"
	default:
		return "Standard circuit - balanced approach"
	}
}

// criticalCorners identifies the corner types that decide lap time for
// the track's downforce class.
//
//nolint:funlen // table of guidance entries
func criticalCorners(
	trackInfo *model.TrackInfo, optimal model.CarParameters,
) []model.CriticalCorner {
	optimalCl := optimal.ClFront + optimal.ClRear
	ret := make([]model.CriticalCorner, 0, 4)

	switch trackInfo.DownforceLevel {
	case model.DownforceHigh:
		ret = append(ret,
			model.CriticalCorner{
				CornerType:     "Slow-Speed Hairpins",
				Importance:     "CRITICAL",
				SpeedRange:     "80-120 km/h",
				Downforce:      "Maximum",
				Recommendation: fmt.Sprintf("Front: %.0f°, Rear: %.0f°", optimal.FrontWingAngle, optimal.RearWingAngle),
				PhysicsNote:    "Mechanical grip + high aero downforce essential",
				LaptimeImpact:  "0.3-0.5s per corner",
			},
			model.CriticalCorner{
				CornerType:     "Medium-Speed Technical Sections",
				Importance:     "HIGH",
				SpeedRange:     "140-180 km/h",
				Downforce:      "High",
				Recommendation: fmt.Sprintf("Balance: %.1f total CL", optimalCl),
				PhysicsNote:    "Aero balance critical - 38-42% front bias",
				LaptimeImpact:  "0.2-0.3s per corner",
			})
	case model.DownforceLow:
		ret = append(ret,
			model.CriticalCorner{
				CornerType:     "Long Straights",
				Importance:     "CRITICAL",
				SpeedRange:     "320-370 km/h",
				Downforce:      "Minimum",
				Recommendation: fmt.Sprintf("Target Cd: %.2f (minimize drag)", optimal.DragCoefficient),
				PhysicsNote:    "Every 0.01 Cd = ~2 km/h top speed",
				LaptimeImpact:  "0.1s per straight section",
			},
			model.CriticalCorner{
				CornerType:     "High-Speed Corners",
				Importance:     "HIGH",
				SpeedRange:     "200-250 km/h",
				Downforce:      "Moderate",
				Recommendation: "Compromise setup - stability + speed",
				PhysicsNote:    "Minimum downforce for stability only",
				LaptimeImpact:  "0.15-0.25s per corner",
			})
	default:
		ret = append(ret,
			model.CriticalCorner{
				CornerType:     "Mixed-Speed Corners",
				Importance:     "HIGH",
				SpeedRange:     "120-200 km/h",
				Downforce:      "Balanced",
				Recommendation: fmt.Sprintf("Cd: %.2f, CL: %.1f", optimal.DragCoefficient, optimalCl),
				PhysicsNote:    "Optimize L/D ratio (target ~4.5)",
				LaptimeImpact:  "0.2-0.3s per corner",
			},
			model.CriticalCorner{
				CornerType:     "Traction Zones (Corner Exit)",
				Importance:     "MEDIUM",
				SpeedRange:     "100-160 km/h",
				Downforce:      "Rear-biased",
				Recommendation: fmt.Sprintf("Rear wing: %.0f° (maximize rear DF)", optimal.RearWingAngle),
				PhysicsNote:    "Rear downforce prevents wheelspin",
				LaptimeImpact:  "0.1-0.2s per exit",
			})
	}

	if trackInfo.CornerCount > 18 {
		ret = append(ret, model.CriticalCorner{
			CornerType:     fmt.Sprintf("Corner Density (%d total)", trackInfo.CornerCount),
			Importance:     "TRACK CHARACTER",
			SpeedRange:     "Varies",
			Downforce:      "High",
			Recommendation: "Prioritize corner speed over straight-line",
			PhysicsNote:    "More time spent cornering = downforce more valuable",
			LaptimeImpact:  fmt.Sprintf("~%.1fs total if optimized", float64(trackInfo.CornerCount)*0.02),
		})
	}
	if trackInfo.CircuitLength > 6.0 {
		ret = append(ret, model.CriticalCorner{
			CornerType:     "Long Circuit Strategy",
			Importance:     "TRACK CHARACTER",
			SpeedRange:     fmt.Sprintf("%.1f km total", trackInfo.CircuitLength),
			Downforce:      "Balanced",
			Recommendation: "Fuel-saving setup, tire preservation",
			PhysicsNote:    "Longer lap = more tire degradation",
			LaptimeImpact:  "Race pace > quali pace importance",
		})
	}
	return ret
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
