package chat

import "github.com/casualjim/chatparts/pkg/content"

// Message is a backend message ready for display: identified, timestamped and
// with canonical content.
type Message struct {
	ID        string        `json:"id"`
	Timestamp string        `json:"timestamp"`
	Content   content.Parts `json:"content"`
}

// NewMessage fills in the id and timestamp of data and normalizes raw.
// imageURL, when not empty, is substituted into a lone image placeholder or
// replaces the URL of tagged images.
func (u *Utils) NewMessage(data BaseMessageData, raw any, imageURL string) Message {
	return Message{
		ID:        u.GenerateMessageID(data),
		Timestamp: u.GenerateTimestamp(data),
		Content:   u.normalizer.Normalize(raw, imageURL),
	}
}

// InputPrompt is an input request ready for display.
type InputPrompt struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Prompt    string `json:"prompt"`
	Password  bool   `json:"password"`
}

// NewInputPrompt canonicalizes an input request.
func (u *Utils) NewInputPrompt(data InputRequestData) InputPrompt {
	return InputPrompt{
		ID:        u.GenerateMessageID(data.BaseMessageData),
		Timestamp: u.GenerateTimestamp(data.BaseMessageData),
		Prompt:    u.NormalizePrompt(data.Prompt),
		Password:  IsPasswordPrompt(data),
	}
}
