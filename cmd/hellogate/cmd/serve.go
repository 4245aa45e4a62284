package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ideamans/hellogate/cmd/hellogate/cmd/server"
	"github.com/ideamans/hellogate/pkg/config"
	"github.com/ideamans/hellogate/pkg/shared/logging"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the hellogate server.

The server will:
- Resolve configuration (flags > config file > environment > defaults)
- Apply the Host header allow-list to every request
- Protect the index pages with HTTP Basic Authentication over HTTPS
- Handle graceful shutdown on SIGTERM/SIGINT`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Peek at the config file for logging settings before anything else runs
	var appConfig config.Config
	if cfgFile != "" {
		if data, err := os.ReadFile(cfgFile); err == nil {
			if err := yaml.Unmarshal(data, &appConfig); err != nil {
				return fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	level := logging.ParseLevel(appConfig.Logging.Level)
	var fileRotationConfig *logging.FileRotationConfig
	if appConfig.Logging.File != nil && appConfig.Logging.File.Path != "" {
		fileRotationConfig = &logging.FileRotationConfig{
			Path:       appConfig.Logging.File.Path,
			MaxSizeMB:  appConfig.Logging.File.MaxSizeMB,
			MaxBackups: appConfig.Logging.File.MaxBackups,
			MaxAge:     appConfig.Logging.File.MaxAge,
			Compress:   appConfig.Logging.File.Compress,
		}
	}

	logger, err := logging.NewLoggerWithFile("main", level, appConfig.Logging.Color, fileRotationConfig)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cfg := server.Config{
		ConfigPath: cfgFile,
		Host:       host,
		Port:       port,
		HostSet:    cmd.Flags().Changed("host"),
		PortSet:    cmd.Flags().Changed("port"),
		Logger:     logger,
		Version:    version,
	}

	return server.Run(context.Background(), cfg)
}
