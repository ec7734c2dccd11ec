package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/klimatkollen/klimatkollen/internal/pkg/env"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "klimatkollen",
		Short: "Serve the municipal emission map",
		Long: `Klimatkollen renders a map of how emissions in every Swedish
municipality changed since the Paris agreement.`,
		// main reports the error once, without the usage text
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	rootCmd.AddCommand(newServeCmd(), newListCmd(), newImportCmd(), newCacheCmd())
	return rootCmd
}

func main() {
	cobra.OnInitialize(env.SetupEnvFile)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
