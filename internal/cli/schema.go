package cli

import (
	"github.com/spf13/cobra"

	"github.com/casualjim/chatparts/pkg/content"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of normalized content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), content.Schema())
		},
	}
}
