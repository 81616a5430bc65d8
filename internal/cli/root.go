// Package cli implements the chatparts command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/casualjim/chatparts/pkg/chat"
	"github.com/casualjim/chatparts/pkg/config"
	"github.com/casualjim/chatparts/pkg/content"
	"github.com/casualjim/chatparts/pkg/slogx"
)

const rootLongDesc string = `Normalize chat message content into canonical text and image parts.

Backends send message content as bare strings, single tagged objects or
mixed lists. chatparts turns any of them into an ordered list of
{"type":"text"} and {"type":"image_url"} parts, optionally substituting
an image URL into a lone <img TOKEN> placeholder.

Settings are read from --config (YAML) and CHATPARTS_* environment
variables; a .env file in the working directory is loaded first.`

// app carries what every subcommand needs once the root command has
// loaded the configuration.
type app struct {
	configPath string
	debug      bool

	cfg        config.Config
	utils      *chat.Utils
	normalizer *content.Normalizer
	logger     *slog.Logger
}

// NewRootCmd builds the chatparts command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "chatparts",
		Short:         "Normalize chat message content",
		Long:          rootLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		newNormalizeCmd(a),
		newMessageCmd(a),
		newPromptCmd(a),
		newSpeakersCmd(a),
		newSchemaCmd(),
	)
	return cmd
}

func (a *app) init(logOut io.Writer) error {
	a.logger = newLogger(logOut, a.debug)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	a.cfg = cfg

	a.normalizer, err = content.NewNormalizer(
		content.WithLogger(a.logger),
		content.WithDefaultAlt(cfg.DefaultImageAlt),
	)
	if err != nil {
		return fmt.Errorf("could not create normalizer: %w", err)
	}

	a.utils, err = chat.New(cfg, chat.WithNormalizer(a.normalizer))
	if err != nil {
		return fmt.Errorf("could not create chat utils: %w", err)
	}

	a.logger.Debug("configuration loaded",
		slog.String("config", a.configPath),
		slog.Int("generic_prompts", len(cfg.GenericPrompts)),
	)
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		slog.Error("chatparts failed", slogx.Error(err))
		os.Exit(1)
	}
}
