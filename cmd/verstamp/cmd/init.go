package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verstamp/verstamp/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap the verstamp configuration",
	Long: `Create the verstamp configuration file with a generated API key.

Example:
  verstamp init
  verstamp init --config ./verstamp.yaml --data-dir ./data`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(configPath) {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", configPath)
			}
		}

		dataDir, _ := cmd.Flags().GetString("data-dir")
		cfg, err := config.BootstrapConfig(configPath, dataDir)
		if err != nil {
			return err
		}

		cmd.Printf("Wrote configuration to %s\n", configPath)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("config", "", "Path to the configuration file")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
}
