package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/casualjim/chatparts/pkg/content"
	"github.com/casualjim/chatparts/pkg/slogx"
)

const normalizeLongDesc string = `Normalize message content read from a file or stdin.

The input is JSON: a string, a tagged text or image object, or a list
mixing them. With --text the input is taken as one plain string instead.

Examples:
  echo '["hi", {"type":"text","text":"there"}]' | chatparts normalize
  echo '<img 4f2a.png>' | chatparts normalize --text --image-url https://cdn.example.com/4f2a.png
  chatparts normalize --replace --image-url https://cdn.example.com/new.png message.json`

const normalizeShortDesc string = "Normalize message content"

type normalizeCommander struct {
	app *app

	imageURL string
	text     bool
	replace  bool
	summary  bool
	dump     bool
}

func newNormalizeCmd(a *app) *cobra.Command {
	cmder := &normalizeCommander{app: a}

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: normalizeShortDesc,
		Long:  normalizeLongDesc,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, args)
		},
	}

	cmd.Flags().StringVarP(&cmder.imageURL, "image-url", "i", "", "Image URL to substitute into placeholders and tagged images")
	cmd.Flags().BoolVarP(&cmder.text, "text", "t", false, "Treat the input as plain text instead of JSON")
	cmd.Flags().BoolVar(&cmder.replace, "replace", false, "Only repoint images at --image-url")
	cmd.Flags().BoolVar(&cmder.summary, "summary", false, "Print one line per part instead of JSON")
	cmd.Flags().BoolVar(&cmder.dump, "dump", false, "Print the Go values of the parts")
	cmd.MarkFlagsMutuallyExclusive("summary", "dump")

	return cmd
}

func (c *normalizeCommander) run(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var raw any = string(data)
	if !c.text {
		raw, err = content.Parse(data)
		if err != nil {
			return err
		}
	}

	c.app.logger.Debug("normalizing content",
		slog.String("kind", content.Classify(raw).String()),
		slog.Bool("replace", c.replace),
		slogx.Preview("input", string(data), 80),
	)

	var parts content.Parts
	if c.replace {
		parts = content.ReplaceImageURLs(raw, c.imageURL)
	} else {
		parts = c.app.normalizer.Normalize(raw, c.imageURL)
	}

	out := cmd.OutOrStdout()
	switch {
	case c.summary:
		printSummary(out, parts)
		return nil
	case c.dump:
		printer := pp.New()
		printer.SetColoringEnabled(!color.NoColor)
		_, err := printer.Fprintln(out, parts)
		return err
	default:
		return writeJSON(out, parts)
	}
}

func printSummary(w io.Writer, parts content.Parts) {
	for idx, part := range parts {
		switch p := part.(type) {
		case content.TextPart:
			fmt.Fprintf(w, "%d %s %q\n", idx, color.CyanString(content.TypeText), p.Text)
		case content.ImagePart:
			fmt.Fprintf(w, "%d %s %s (%s)\n", idx, color.MagentaString(content.TypeImageURL), p.ImageURL.URL, p.ImageURL.Alt)
		default:
			fmt.Fprintf(w, "%d %s %T\n", idx, color.YellowString("raw"), rawValue(part))
		}
	}
	fmt.Fprintf(w, "%s\n", color.New(color.Bold).Sprintf("%d parts", len(parts)))
}

func rawValue(part content.ContentPart) any {
	if raw, ok := part.(content.RawPart); ok {
		return raw.Value
	}
	return part
}
