package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/casualjim/chatparts/pkg/chat"
)

const messageLongDesc string = `Turn a backend message into a display-ready message.

The input is a JSON object with optional "id", "uuid" and "timestamp"
fields and a "content" field. Missing ids and timestamps are generated.
An "image_url" field, or --image-url, is substituted into the content.

Example:
  echo '{"uuid":"u-1","content":"<img a.png>","image_url":"https://cdn.example.com/a.png"}' | chatparts message`

const messageShortDesc string = "Build a display-ready message"

type messageCommander struct {
	app *app

	imageURL string
}

func newMessageCmd(a *app) *cobra.Command {
	cmder := &messageCommander{app: a}

	cmd := &cobra.Command{
		Use:   "message [file]",
		Short: messageShortDesc,
		Long:  messageLongDesc,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, args)
		},
	}

	cmd.Flags().StringVarP(&cmder.imageURL, "image-url", "i", "", "Image URL, overrides the message's image_url field")

	return cmd
}

func (c *messageCommander) run(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if !gjson.ValidBytes(data) {
		return errors.New("message is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return errors.New("message must be a JSON object")
	}

	base := chat.BaseMessageData{
		ID:        doc.Get("id").String(),
		UUID:      doc.Get("uuid").String(),
		Timestamp: doc.Get("timestamp").String(),
	}
	imageURL := c.imageURL
	if imageURL == "" {
		imageURL = doc.Get("image_url").String()
	}

	msg := c.app.utils.NewMessage(base, doc.Get("content").Value(), imageURL)
	return writeJSON(cmd.OutOrStdout(), msg)
}
