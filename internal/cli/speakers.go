package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const speakersLongDesc string = `Print the speaker selection prompt for the given agents.

Agents are numbered from 1 in the order given.

Examples:
  chatparts speakers planner coder reviewer
  chatparts speakers --render planner coder`

const speakersShortDesc string = "Print a speaker selection prompt"

type speakersCommander struct {
	app *app

	render   bool
	wordWrap int
}

func newSpeakersCmd(a *app) *cobra.Command {
	cmder := &speakersCommander{app: a}

	cmd := &cobra.Command{
		Use:   "speakers [agents...]",
		Short: speakersShortDesc,
		Long:  speakersLongDesc,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&cmder.render, "render", "r", false, "Render the markdown for the terminal")
	cmd.Flags().IntVar(&cmder.wordWrap, "word-wrap", 80, "Wrap rendered output at this width")

	return cmd
}

func (c *speakersCommander) run(cmd *cobra.Command, agents []string) error {
	md := c.app.utils.SpeakerSelectionMarkdown(agents)
	if !c.render {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(c.wordWrap),
	)
	if err != nil {
		return fmt.Errorf("could not create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("could not render markdown: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
