package cmd

import (
	"fmt"
	"os"

	"github.com/ms-henglu/valkit/internal/log"
	"github.com/ms-henglu/valkit/internal/source"
	"github.com/spf13/cobra"
)

func NewCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Removes downloaded documents from the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cacheDir, err := source.CacheDir()
			if err != nil {
				return err
			}

			log.Section("Removing cached documents...")
			entries, err := os.ReadDir(cacheDir)
			if os.IsNotExist(err) {
				log.Hint("Cache is empty, nothing to remove.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to read cache directory: %w", err)
			}

			for _, entry := range entries {
				log.Item(entry.Name())
			}
			if err := os.RemoveAll(cacheDir); err != nil {
				return fmt.Errorf("failed to remove cache directory: %w", err)
			}

			log.Success("Clean complete!")
			return nil
		},
	}

	return cmd
}
