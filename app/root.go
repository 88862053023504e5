// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/GameItem-Admin/GameItem-Admin/internal/config"
	"github.com/GameItem-Admin/GameItem-Admin/internal/logger"
)

const (
	envPrefix    = "GAMEITEM_ADMIN"
	keyConfigDir = "config_path"
)

var rootCmd = &cobra.Command{
	Use:   "gameitem-admin",
	Short: "GameItem-Admin manages the item catalogue of the game",
	Long: `GameItem-Admin is a small web service to upload game items from JSON files
and to download the stored catalogue as JSON.`,
	Args:         cobra.OnlyValidArgs,
	SilenceUsage: true,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "directory holding main.toml")

	// --config wins over GAMEITEM_ADMIN_CONFIG_PATH
	viper.SetEnvPrefix(envPrefix)
	_ = viper.BindEnv(keyConfigDir)
	_ = viper.BindPFlag(keyConfigDir, rootCmd.PersistentFlags().Lookup("config"))
	viper.SetDefault(keyConfigDir, config.DefaultPath)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and sets up the global logger.
func loadConfig() (config.Config, error) {
	cfg, err := config.ReadConfig(viper.GetString(keyConfigDir))
	if err != nil {
		return cfg, err
	}

	if err = logger.Init(cfg.Log); err != nil {
		return cfg, err
	}

	return cfg, nil
}
