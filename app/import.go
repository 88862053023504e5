package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/GameItem-Admin/GameItem-Admin/internal/daemon"
	"github.com/GameItem-Admin/GameItem-Admin/internal/upload"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import FILE...",
	Short: "Import item files the same way the upload endpoint does",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		c, err := daemon.Open(&cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		staged := make([]upload.File, 0, len(args))
		defer func() { c.Pipeline.Discard(staged) }()

		for _, name := range args {
			data, readErr := os.ReadFile(name)
			if readErr != nil {
				return readErr
			}

			f, stageErr := c.Pipeline.Stage(filepath.Base(name), data)
			if stageErr != nil {
				return stageErr
			}

			staged = append(staged, f)
		}

		report, err := c.Pipeline.Process(cmd.Context(), staged)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		if encErr := enc.Encode(report); encErr != nil {
			return encErr
		}

		if err != nil {
			return fmt.Errorf("import stopped: %w", err)
		}

		return nil
	},
}
