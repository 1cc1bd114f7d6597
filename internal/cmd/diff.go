package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appmodel/apphost/internal/manifest"
	"github.com/appmodel/apphost/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	var noColorFlag bool

	cmd := &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Compare two published manifests",
		Long: `Compare two published manifest files (JSON or YAML) and print a
structural diff.

Examples:
  # Compare the previous manifest against a fresh publish
  apphost diff ./apphost-manifest.json ./out/apphost-manifest.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1], !noColorFlag)
		},
	}

	cmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colorized diff output")
	return cmd
}

// runDiff executes the diff command.
func runDiff(fromPath, toPath string, useColor bool) error {
	if useColor && !output.IsTTY() {
		useColor = false
	}

	result, err := manifest.Diff(fromPath, toPath, useColor)
	if err != nil {
		return err
	}

	if !result.HasChanges {
		output.Println(output.FormatCheckmark(fmt.Sprintf("no changes between %s and %s", fromPath, toPath)))
		return nil
	}

	output.Println(result.Report)
	return nil
}
