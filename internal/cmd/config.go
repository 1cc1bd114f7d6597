package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/appmodel/apphost/internal/config"
	"github.com/appmodel/apphost/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage apphost configuration",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigVetCmd())
	return cmd
}

// newConfigInitCmd creates the config init command.
func newConfigInitCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Long:  `Write a config file with default values to ~/.apphost/config.yaml (or the --config path).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(forceFlag)
		},
	}

	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")
	return cmd
}

// runConfigInit executes the config init command.
func runConfigInit(force bool) error {
	dest := configFlag
	if dest == "" {
		var err error
		dest, err = config.GetConfigFile()
		if err != nil {
			return fmt.Errorf("determining config path: %w", err)
		}
	}
	dest, err := config.ExpandPath(dest)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if _, err := os.Stat(dest); err == nil && !force {
		return NewExitError(fmt.Errorf("config file %s already exists (use --force to overwrite)", dest), ExitGeneralError)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	output.Println(output.FormatCheckmark("wrote " + dest))
	return nil
}

// newConfigVetCmd creates the config vet command.
func newConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the config file against its schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigVet()
		},
	}
}

// runConfigVet executes the config vet command.
func runConfigVet() error {
	cfg, err := config.NewLoader().Load(configFlag)
	if err != nil {
		return WrapValidation(err, "loading config")
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}
	if err := validator.Validate(cfg); err != nil {
		return WrapValidation(err, "validating config")
	}

	output.Println(output.FormatCheckmark("config is valid"))
	return nil
}
