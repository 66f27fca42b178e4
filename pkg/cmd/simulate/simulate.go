package simulate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apexaero/aerosim-service-go/log"
	"github.com/apexaero/aerosim-service-go/pkg/analysis"
	"github.com/apexaero/aerosim-service-go/pkg/config"
	"github.com/apexaero/aerosim-service-go/pkg/model"
	"github.com/apexaero/aerosim-service-go/pkg/simulation"
	"github.com/apexaero/aerosim-service-go/pkg/track"
)

var (
	dragCoefficient float64
	clFront         float64
	clRear          float64
	frontWingAngle  float64
	rearWingAngle   float64
	rideHeightFront float64
	rideHeightRear  float64
	raceMode        bool
	analyze         bool
)

// NewSimulateCmd runs a one-shot lap simulation or circuit analysis for
// the given track and prints the result.
func NewSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate <track>",
		Short: "simulates a lap on the given track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(args[0])
		},
	}
	cmd.Flags().Float64Var(&dragCoefficient, "drag-coefficient",
		model.DefaultDragCoeff, "drag coefficient")
	cmd.Flags().Float64Var(&clFront, "cl-front",
		model.DefaultClFront, "front lift coefficient")
	cmd.Flags().Float64Var(&clRear, "cl-rear",
		model.DefaultClRear, "rear lift coefficient")
	cmd.Flags().Float64Var(&frontWingAngle, "front-wing-angle",
		model.DefaultFrontWing, "front wing angle (degrees)")
	cmd.Flags().Float64Var(&rearWingAngle, "rear-wing-angle",
		model.DefaultRearWing, "rear wing angle (degrees)")
	cmd.Flags().Float64Var(&rideHeightFront, "ride-height-front",
		model.DefaultRideFront, "front ride height (mm)")
	cmd.Flags().Float64Var(&rideHeightRear, "ride-height-rear",
		model.DefaultRideRear, "rear ride height (mm)")
	cmd.Flags().BoolVar(&raceMode, "race", false,
		"simulate race pace instead of qualifying")
	cmd.Flags().BoolVar(&analyze, "analyze", false,
		"run the full circuit analysis against the track optimum")
	return cmd
}

func runSimulation(trackName string) error {
	logger := log.DevLogger(os.Stderr, log.InfoLevel)
	log.ResetDefault(logger)

	registryOpts := []track.RegistryOption{}
	if config.TrackFile != "" {
		registryOpts = append(registryOpts, track.WithTrackFile(config.TrackFile))
	}
	registry, err := track.NewRegistry(registryOpts...)
	if err != nil {
		return err
	}

	setup := model.AeroSetup{
		DragCoefficient: &dragCoefficient,
		ClFront:         &clFront,
		ClRear:          &clRear,
		FrontWingAngle:  &frontWingAngle,
		RearWingAngle:   &rearWingAngle,
		RideHeightFront: &rideHeightFront,
		RideHeightRear:  &rideHeightRear,
	}
	params := setup.CarParameters()
	if err := params.Validate(); err != nil {
		return err
	}

	if analyze {
		return printAnalysis(registry, trackName, setup)
	}

	trackInfo, err := registry.Get(trackName)
	if err != nil {
		return err
	}
	sim := simulation.NewSimulator()
	result := sim.SimulateLap(params, trackInfo, raceMode)

	mode := "qualifying"
	if raceMode {
		mode = "race"
	}
	fmt.Printf("%s (%s)\n", trackInfo.Name, mode)
	fmt.Printf("  lap time:  %s\n", result.LapTime)
	fmt.Printf("  straights: %.3fs\n", result.StraightTime)
	fmt.Printf("  corners:   %.3fs\n", result.CornerTime)
	return nil
}

func printAnalysis(
	registry *track.Registry, trackName string, setup model.AeroSetup,
) error {
	analyzer := analysis.NewAnalyzer(registry)
	result, err := analyzer.AnalyzeCircuit(trackName, setup)
	if err != nil {
		return err
	}
	fmt.Printf("%s (downforce: %s)\n", result.TrackName, result.DownforceRequirement)
	fmt.Printf("  optimal quali:  %s\n", result.QualifyingLapTime)
	fmt.Printf("  optimal race:   %s\n", result.RaceLapTime)
	fmt.Printf("  gain (quali):   %+.3fs\n", result.TimeGainQuali)
	fmt.Printf("  gain (race):    %+.3fs\n", result.TimeGainRace)
	fmt.Printf("  top speed:      %.1f km/h\n", result.TopSpeedEstimate)
	fmt.Printf("  corner speed:   %.1f km/h\n", result.AvgCornerSpeed)
	fmt.Printf("  priority:       %s\n", result.SetupRecommendations.Priority)
	return nil
}
