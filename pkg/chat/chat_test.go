package chat

import (
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casualjim/chatparts/pkg/config"
	"github.com/casualjim/chatparts/pkg/content"
	"github.com/casualjim/chatparts/pkg/uuidx"
)

var fixedNow = time.Date(2024, 5, 17, 9, 30, 15, 123000000, time.FixedZone("CEST", 2*60*60))

func testUtils(t *testing.T, options ...Option) *Utils {
	t.Helper()
	defaults := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDSource(uuidx.Sequence("id")),
	}
	u, err := New(config.Default(), append(defaults, options...)...)
	require.NoError(t, err)
	return u
}

func TestIsPasswordPrompt(t *testing.T) {
	tests := []struct {
		name     string
		password any
		want     bool
	}{
		{name: "absent", password: nil, want: false},
		{name: "bool true", password: true, want: true},
		{name: "bool false", password: false, want: false},
		{name: "string true", password: "true", want: true},
		{name: "string TRUE", password: "TRUE", want: true},
		{name: "string True", password: "True", want: true},
		{name: "string yes", password: "yes", want: false},
		{name: "string false", password: "false", want: false},
		{name: "empty string", password: "", want: false},
		{name: "number", password: 1.0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPasswordPrompt(InputRequestData{Password: tt.password}))
		})
	}
}

func TestIsPasswordPrompt_FromJSON(t *testing.T) {
	var data InputRequestData
	require.NoError(t, json.Unmarshal([]byte(`{"id":"r1","prompt":"Password:","password":"TRUE"}`), &data))
	assert.Equal(t, "r1", data.ID)
	assert.True(t, IsPasswordPrompt(data))

	data = InputRequestData{}
	require.NoError(t, json.Unmarshal([]byte(`{"prompt":">"}`), &data))
	assert.False(t, IsPasswordPrompt(data))
}

func TestNormalizePrompt(t *testing.T) {
	u := testUtils(t)
	cfg := config.Default()

	assert.Equal(t, cfg.DefaultPrompt, u.NormalizePrompt(">"))
	assert.Equal(t, cfg.DefaultPrompt, u.NormalizePrompt("> "))
	assert.Equal(t, "What is your name?", u.NormalizePrompt("What is your name?"))
	assert.Equal(t, ">>", u.NormalizePrompt(">>"))
}

func TestNormalizePrompt_CustomConfig(t *testing.T) {
	cfg := config.Default()
	cfg.GenericPrompts = []string{"?"}
	cfg.DefaultPrompt = "Your turn:"

	u, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Your turn:", u.NormalizePrompt("?"))
	assert.Equal(t, ">", u.NormalizePrompt(">"))
}

func TestGenerateMessageID(t *testing.T) {
	u := testUtils(t)

	assert.Equal(t, "i1", u.GenerateMessageID(BaseMessageData{ID: "i1", UUID: "u1"}))
	assert.Equal(t, "u1", u.GenerateMessageID(BaseMessageData{UUID: "u1"}))
	assert.Equal(t, "id-1", u.GenerateMessageID(BaseMessageData{}))
	assert.Equal(t, "id-2", u.GenerateMessageID(BaseMessageData{}))
}

func TestGenerateMessageID_DefaultSource(t *testing.T) {
	u, err := New(config.Default())
	require.NoError(t, err)

	first := u.GenerateMessageID(BaseMessageData{})
	second := u.GenerateMessageID(BaseMessageData{})
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)

	_, err = uuid.Parse(first)
	assert.NoError(t, err)
}

func TestGenerateTimestamp(t *testing.T) {
	u := testUtils(t)

	assert.Equal(t, "2024-01-01T00:00:00Z", u.GenerateTimestamp(BaseMessageData{Timestamp: "2024-01-01T00:00:00Z"}))
	assert.Equal(t, "2024-05-17T07:30:15.123Z", u.GenerateTimestamp(BaseMessageData{}))
}

func TestSpeakerSelectionMarkdown(t *testing.T) {
	cfg := config.Default()
	cfg.SpeakerSelection = config.SpeakerSelection{
		Header: "HEADER",
		Prompt: "PROMPT",
		Note:   "NOTE",
	}
	u, err := New(cfg)
	require.NoError(t, err)

	got := u.SpeakerSelectionMarkdown([]string{"A", "B"})
	assert.Equal(t, "HEADER\n\nPROMPT\n\n- [1] A\n- [2] B\n\nNOTE", got)
	assert.False(t, strings.HasSuffix(got, "\n"))

	assert.Equal(t, "HEADER\n\nPROMPT\n\n\n\nNOTE", u.SpeakerSelectionMarkdown(nil))
}

func TestSpeakerSelectionMarkdown_DefaultLiterals(t *testing.T) {
	u := testUtils(t)
	lines := strings.Split(u.SpeakerSelectionMarkdown([]string{"planner", "coder", "critic"}), "\n")

	sel := config.Default().SpeakerSelection
	require.Len(t, lines, 9)
	assert.Equal(t, sel.Header, lines[0])
	assert.Equal(t, sel.Prompt, lines[2])
	assert.Equal(t, []string{"- [1] planner", "- [2] coder", "- [3] critic"}, lines[4:7])
	assert.Equal(t, sel.Note, lines[8])
}

func TestNewMessage(t *testing.T) {
	u := testUtils(t)

	msg := u.NewMessage(BaseMessageData{UUID: "u-7"}, []any{
		"look:",
		map[string]any{"type": "image_url", "image_url": map[string]any{"url": "a.png"}},
	}, "")

	assert.Equal(t, "u-7", msg.ID)
	assert.Equal(t, "2024-05-17T07:30:15.123Z", msg.Timestamp)
	assert.Equal(t, content.Parts{content.Text("look:"), content.Image("a.png")}, msg.Content)

	out, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "u-7",
		"timestamp": "2024-05-17T07:30:15.123Z",
		"content": [
			{"type": "text", "text": "look:"},
			{"type": "image_url", "image_url": {"url": "a.png", "alt": "Image"}}
		]
	}`, string(out))
}

func TestNewMessage_Placeholder(t *testing.T) {
	u := testUtils(t)

	msg := u.NewMessage(BaseMessageData{}, "<img 1a2b.png/>", "https://files.example/1a2b.png")
	assert.Equal(t, "id-1", msg.ID)
	require.Len(t, msg.Content, 1)
	assert.Equal(t, content.Image(`<img src="https://files.example/1a2b.png" />`), msg.Content[0])
}

func TestNewMessage_ConfiguredAlt(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultImageAlt = "Bild"
	u, err := New(cfg)
	require.NoError(t, err)

	msg := u.NewMessage(BaseMessageData{ID: "x"}, map[string]any{
		"type":      "image_url",
		"image_url": map[string]any{"url": "a.png"},
	}, "")
	assert.Equal(t, content.Parts{content.ImagePart{ImageURL: content.ImageURL{URL: "a.png", Alt: "Bild"}}}, msg.Content)
}

func TestNewInputPrompt(t *testing.T) {
	u := testUtils(t)

	got := u.NewInputPrompt(InputRequestData{Prompt: ">", Password: "True"})
	assert.Equal(t, InputPrompt{
		ID:        "id-1",
		Timestamp: "2024-05-17T07:30:15.123Z",
		Prompt:    config.Default().DefaultPrompt,
		Password:  true,
	}, got)
}
