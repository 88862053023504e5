package app

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/GameItem-Admin/GameItem-Admin/internal/daemon"
	controller "github.com/GameItem-Admin/GameItem-Admin/internal/db/controller/item"
	"github.com/GameItem-Admin/GameItem-Admin/internal/item"
)

var exportOutput string

func init() { //nolint: gochecknoinits
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every stored item as a JSON array",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		c, err := daemon.Open(&cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		rows, err := controller.GetAll(c.DB.WithContext(cmd.Context()))
		if err != nil {
			return err
		}

		items, err := item.ToWireAll(rows)
		if err != nil {
			return err
		}

		var out io.Writer = cmd.OutOrStdout()

		if exportOutput != "" {
			f, createErr := os.Create(exportOutput)
			if createErr != nil {
				return createErr
			}
			defer f.Close()

			out = f
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(items)
	},
}
