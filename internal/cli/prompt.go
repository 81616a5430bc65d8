package cli

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/casualjim/chatparts/pkg/chat"
)

const promptLongDesc string = `Canonicalize an input request read from a file or stdin.

The input is a JSON object with "prompt" and "password" fields and the
optional "id", "uuid" and "timestamp" fields. Generic prompts such as ">"
are replaced with the configured default prompt.

Example:
  echo '{"prompt":">","password":"true"}' | chatparts prompt`

const promptShortDesc string = "Canonicalize an input request"

type promptCommander struct {
	app *app
}

func newPromptCmd(a *app) *cobra.Command {
	cmder := &promptCommander{app: a}

	return &cobra.Command{
		Use:   "prompt [file]",
		Short: promptShortDesc,
		Long:  promptLongDesc,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, args)
		},
	}
}

func (c *promptCommander) run(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var req chat.InputRequestData
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("could not decode input request: %w", err)
	}

	return writeJSON(cmd.OutOrStdout(), c.app.utils.NewInputPrompt(req))
}
