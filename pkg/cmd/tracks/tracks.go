package tracks

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apexaero/aerosim-service-go/pkg/config"
	"github.com/apexaero/aerosim-service-go/pkg/track"
)

func NewTracksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "lists the known circuits",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTracks()
		},
	}
}

func listTracks() error {
	registryOpts := []track.RegistryOption{}
	if config.TrackFile != "" {
		registryOpts = append(registryOpts, track.WithTrackFile(config.TrackFile))
	}
	registry, err := track.NewRegistry(registryOpts...)
	if err != nil {
		return err
	}
	for _, t := range registry.All() {
		fmt.Printf("%-15s %-45s %5.3f km  %2d corners  %s downforce\n",
			t.Key, t.Name, t.CircuitLength, t.CornerCount, t.DownforceLevel)
	}
	return nil
}
