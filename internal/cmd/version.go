package cmd

import (
	"github.com/spf13/cobra"

	"github.com/appmodel/apphost/internal/output"
	"github.com/appmodel/apphost/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.Println(version.Get().String())
			return nil
		},
	}
}
