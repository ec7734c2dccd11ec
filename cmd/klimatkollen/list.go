package main

import (
	"github.com/spf13/cobra"

	"github.com/klimatkollen/klimatkollen/internal/pkg/emission"
	"github.com/klimatkollen/klimatkollen/internal/pkg/viewmodel"
)

// newListCmd prints what the map would show without starting the server
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List municipalities with their average emission change",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := emission.NewServiceFromEnv()
			if err != nil {
				return err
			}
			municipalities, err := service.GetMunicipalities(cmd.Context())
			if err != nil {
				return err
			}

			for _, level := range viewmodel.EmissionLevels(municipalities) {
				cmd.Printf("%-24s %+6.1f%%  %s\n", level.Name, level.Emissions, viewmodel.BandFor(level.Emissions).Label)
			}
			cmd.Printf("Total: %d\n", len(municipalities))
			return nil
		},
	}
}
