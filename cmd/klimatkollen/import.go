package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klimatkollen/klimatkollen/app/repository"
	"github.com/klimatkollen/klimatkollen/internal/pkg/database"
	"github.com/klimatkollen/klimatkollen/internal/pkg/emission"
)

// newImportCmd copies the emission service data into the local database,
// so the server can run with EMISSION_SOURCE=database.
func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Import municipalities from the emission API into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := emission.ConfigFromEnv()
			cfg.Source = emission.SourceAPI
			source, err := emission.NewSource(cfg)
			if err != nil {
				return err
			}
			municipalities, err := emission.NewService(source).GetMunicipalities(cmd.Context())
			if err != nil {
				return err
			}

			database.SetupDatabase()
			repository.InitializeFactory(database.GetDB())
			repo := repository.GetGlobalFactory().GetMunicipalityRepository()
			for i := range municipalities {
				if err := repo.Upsert(cmd.Context(), &municipalities[i]); err != nil {
					return fmt.Errorf("failed to store %s: %w", municipalities[i].Name, err)
				}
			}

			total, err := repo.Count(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("Imported %d municipalities, %d in database\n", len(municipalities), total)
			return nil
		},
	}
}
