// Package chat holds the helpers a chat client applies to incoming backend
// messages: id and timestamp defaulting, prompt canonicalization, password
// prompt detection and the speaker selection message.
package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/casualjim/chatparts/pkg/config"
	"github.com/casualjim/chatparts/pkg/content"
	"github.com/casualjim/chatparts/pkg/uuidx"
	"github.com/fogfish/opts"
	"github.com/go-openapi/strfmt"
)

// BaseMessageData carries the identity fields every backend message may have.
type BaseMessageData struct {
	ID        string `json:"id,omitempty"`
	UUID      string `json:"uuid,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// InputRequestData is a backend request for user input.
// Password is whatever the backend sent: usually a bool or a string.
type InputRequestData struct {
	BaseMessageData
	Prompt   string `json:"prompt"`
	Password any    `json:"password,omitempty"`
}

// IsPasswordPrompt reports whether the input request asks for a secret.
// Only the boolean true and the string "true" (in any case) count.
func IsPasswordPrompt(data InputRequestData) bool {
	switch p := data.Password.(type) {
	case bool:
		return p
	case string:
		return strings.EqualFold(p, "true")
	default:
		return false
	}
}

// Option configures Utils.
type Option = opts.Option[Utils]

var (
	// WithClock replaces the wall clock used for missing timestamps.
	WithClock = opts.ForName[Utils, func() time.Time]("now")
	// WithIDSource replaces the generator used for missing message ids.
	WithIDSource = opts.ForName[Utils, uuidx.Source]("newID")
	// WithNormalizer sets the content normalizer used by NewMessage.
	WithNormalizer = opts.ForName[Utils, *content.Normalizer]("normalizer")
)

// Utils applies the configured helper literals. It is safe for concurrent
// use as long as the injected clock and id source are.
type Utils struct {
	cfg        config.Config
	now        func() time.Time
	newID      uuidx.Source
	normalizer *content.Normalizer
}

// New creates Utils for cfg.
func New(cfg config.Config, options ...Option) (*Utils, error) {
	u := &Utils{
		cfg:   cfg,
		now:   time.Now,
		newID: uuidx.NewString,
	}
	if err := opts.Apply(u, options); err != nil {
		return nil, err
	}
	if u.normalizer == nil {
		n, err := content.NewNormalizer(content.WithDefaultAlt(cfg.DefaultImageAlt))
		if err != nil {
			return nil, err
		}
		u.normalizer = n
	}
	return u, nil
}

// NormalizePrompt replaces a generic prompt with the configured default one.
func (u *Utils) NormalizePrompt(prompt string) string {
	if u.cfg.IsGenericPrompt(prompt) {
		return u.cfg.DefaultPrompt
	}
	return prompt
}

// GenerateMessageID returns the first non-empty of data.ID and data.UUID, or
// a freshly generated id.
func (u *Utils) GenerateMessageID(data BaseMessageData) string {
	if data.ID != "" {
		return data.ID
	}
	if data.UUID != "" {
		return data.UUID
	}
	return u.newID()
}

// GenerateTimestamp returns data.Timestamp, or the current time in UTC as an
// ISO-8601 string with millisecond precision.
func (u *Utils) GenerateTimestamp(data BaseMessageData) string {
	if data.Timestamp != "" {
		return data.Timestamp
	}
	return strfmt.DateTime(u.now().UTC()).String()
}

// SpeakerSelectionMarkdown renders the message asking the user to pick the
// next speaker. Agents are numbered from 1 in the given order.
func (u *Utils) SpeakerSelectionMarkdown(agents []string) string {
	items := make([]string, len(agents))
	for i, agent := range agents {
		items[i] = fmt.Sprintf("- [%d] %s", i+1, agent)
	}

	sel := u.cfg.SpeakerSelection
	return strings.Join([]string{
		sel.Header,
		"",
		sel.Prompt,
		"",
		strings.Join(items, "\n"),
		"",
		sel.Note,
	}, "\n")
}
