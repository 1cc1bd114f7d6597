package cmd

import (
	"github.com/spf13/cobra"

	"github.com/appmodel/apphost/internal/config"
	"github.com/appmodel/apphost/internal/output"
)

var (
	// Global flags
	configFlag     string
	registryFlag   string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (set during PersistentPreRunE)
	appConfig *config.Config
)

// NewRootCmd creates the root command for the apphost CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "apphost",
		Short:         "Distributed application model builder",
		Long:          `apphost models a distributed application as a graph of resources and publishes a deterministic deployment manifest or a run-mode launch plan.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: APPHOST_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&registryFlag, "registry", "", "Default image registry (env: APPHOST_REGISTRY)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewPublishCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		// Commands that don't need config should still work.
		output.Debug("config load error", "error", err)
		loaded = config.DefaultConfig()
	}
	appConfig = loaded

	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if appConfig.Log.Timestamps != nil {
		logCfg.Timestamps = appConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}
