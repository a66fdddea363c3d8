package cmd

import (
	"github.com/spf13/cobra"

	"github.com/verstamp/verstamp/pkg/api"
	"github.com/verstamp/verstamp/pkg/config"
	"github.com/verstamp/verstamp/pkg/registry"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the verstamp REST API server over the local stamp registry.

Flags override values from the configuration file; run 'verstamp init' first
to generate a configuration with an API key.

Examples:
  verstamp serve
  verstamp serve --api-key=mysecretkey --port=8080 --data-dir=./data`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		cfg := config.DefaultConfig()
		if config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		if port, _ := cmd.Flags().GetInt("port"); cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		if bind, _ := cmd.Flags().GetString("bind"); cmd.Flags().Changed("bind") {
			cfg.Bind = bind
		}
		if apiKey, _ := cmd.Flags().GetString("api-key"); cmd.Flags().Changed("api-key") {
			cfg.Security.APIKey = apiKey
		}
		if dataDir, _ := cmd.Flags().GetString("data-dir"); cmd.Flags().Changed("data-dir") {
			cfg.DataDir = dataDir
		}

		if cfg.Security.APIKey == "" || cfg.Security.APIKey == "auto" {
			cmd.Println("Error: no API key configured (run 'verstamp init' or pass --api-key)")
			return nil
		}

		reg, err := registry.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		defer reg.Close()

		serverConfig := api.ServerConfig{
			Port:   cfg.Port,
			Bind:   cfg.Bind,
			APIKey: cfg.Security.APIKey,
		}
		return api.StartServer(reg, serverConfig)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key for authentication")
	serveCmd.Flags().String("config", "", "Path to the configuration file")
}
