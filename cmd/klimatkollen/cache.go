package main

import (
	"github.com/spf13/cobra"

	"github.com/klimatkollen/klimatkollen/internal/pkg/cache"
	"github.com/klimatkollen/klimatkollen/internal/pkg/emission"
)

func newCacheCmd() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the municipality cache",
	}

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Drop the cached municipality collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cache.Delete(cmd.Context(), emission.CacheKey); err != nil {
				return err
			}
			cmd.Println("Municipality cache purged")
			return nil
		},
	})

	return cacheCmd
}
