package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/appmodel/apphost/internal/appfile"
	"github.com/appmodel/apphost/internal/config"
	"github.com/appmodel/apphost/internal/eval"
	"github.com/appmodel/apphost/internal/manifest"
	"github.com/appmodel/apphost/internal/output"
)

// NewPublishCmd creates the publish command.
func NewPublishCmd() *cobra.Command {
	var (
		publisherFlag  string
		outputPathFlag string
		formatFlag     string
	)

	cmd := &cobra.Command{
		Use:   "publish [path]",
		Short: "Publish the deployment manifest",
		Long: `Publish the application model as a deterministic deployment manifest.

Endpoints and parameters are rendered as symbolic {identifier.path}
placeholders; no live allocation happens in publish mode.

Arguments:
  path    Path to the app file or its directory (default: current directory)

Examples:
  # Publish the app in the current directory
  apphost publish --publisher manifest

  # Publish to a specific path
  apphost publish ./my-app --publisher manifest --output-path ./out/manifest.json

  # Publish as YAML
  apphost publish -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd.Context(), args, publisherFlag, outputPathFlag, formatFlag)
		},
	}

	cmd.Flags().StringVar(&publisherFlag, "publisher", "manifest",
		"Publisher to use (only \"manifest\" is supported)")
	cmd.Flags().StringVar(&outputPathFlag, "output-path", "",
		"Manifest output path (default from config, else ./apphost-manifest.json)")
	cmd.Flags().StringVarP(&formatFlag, "output", "o", "json",
		"Output format: json, yaml")
	return cmd
}

// runPublish executes the publish command.
func runPublish(ctx context.Context, args []string, publisher, outputPath, format string) error {
	if publisher != "manifest" {
		return NewExitError(fmt.Errorf("unknown publisher %q (supported: manifest)", publisher), ExitGeneralError)
	}

	outputFormat, valid := output.ParseFormat(format)
	if !valid {
		return NewExitError(fmt.Errorf("invalid output format %q (valid: json, yaml)", format), ExitGeneralError)
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	graph, err := appfile.Load(path)
	if err != nil {
		return err
	}

	resolved := config.ResolveAll(config.ResolveOptions{
		RegistryFlag:     registryFlag,
		ManifestPathFlag: outputPath,
		Config:           GetConfig(),
	})

	ec := eval.NewExecutionContext(graph, eval.ModePublish)
	ser := manifest.NewSerializer(ec, manifest.WithRegistry(resolved.Registry.Value))

	var data []byte
	if outputFormat == output.FormatYAML {
		data, err = ser.DocumentYAML(ctx)
	} else {
		data, err = ser.Document(ctx)
	}
	if err != nil {
		return err
	}

	dest := resolved.ManifestPath.Value
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	output.Debug("manifest published",
		"path", dest,
		"resources", len(graph.Resources()),
		"format", outputFormat.String(),
	)
	output.Println(output.FormatCheckmark(fmt.Sprintf("published %s to %s",
		output.FormatCount(len(graph.Resources()), "resource"), dest)))
	return nil
}
