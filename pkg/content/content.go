package content

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	// TypeText is the discriminator value of a text part.
	TypeText = "text"
	// TypeImageURL is the discriminator value of an image part.
	TypeImageURL = "image_url"

	// DefaultImageAlt is the alt text given to images that arrive without one.
	DefaultImageAlt = "Image"
)

var jsonNull = []byte(`null`)

// ContentPart is a single canonical unit of message content.
// The canonical implementations are TextPart and ImagePart. RawPart carries
// values the normalizer does not understand and is never produced for
// collection elements.
type ContentPart interface {
	contentPart()
	// PartType returns the value of the part's "type" discriminator.
	PartType() string
}

// Text creates a new TextPart with the given text.
func Text(text string) TextPart {
	return TextPart{Text: text}
}

// TextPart represents a text-only content part.
type TextPart struct {
	Text string   `json:"text"`
	_    struct{} // require keyed usage
}

func (TextPart) contentPart() {}

// PartType implements ContentPart.
func (TextPart) PartType() string { return TypeText }

var tpJSON = []byte(`{"type":"text"}`)

// MarshalJSON serializes the text with a "type":"text" field.
func (t TextPart) MarshalJSON() ([]byte, error) {
	return sjson.SetBytes(tpJSON, "text", t.Text)
}

// UnmarshalJSON validates and extracts the required 'text' field.
func (t *TextPart) UnmarshalJSON(input []byte) error {
	if !gjson.ValidBytes(input) {
		return fmt.Errorf("invalid json: %s", input)
	}
	text := gjson.GetBytes(input, "text")
	if !text.Exists() {
		return errors.New("missing required field 'text'")
	}
	t.Text = text.String()
	return nil
}

// ImageURL is the payload of an image part.
type ImageURL struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Image creates a new ImagePart with the given URL and the default alt text.
func Image(url string) ImagePart {
	return ImagePart{ImageURL: ImageURL{URL: url, Alt: DefaultImageAlt}}
}

// ImagePart represents an image reference. Alt is always populated on
// parts produced by this package.
type ImagePart struct {
	ImageURL ImageURL `json:"image_url"`
	_        struct{} // require keyed usage
}

func (ImagePart) contentPart() {}

// PartType implements ContentPart.
func (ImagePart) PartType() string { return TypeImageURL }

var ipJSON = []byte(`{"type":"image_url"}`)

// MarshalJSON serializes the image reference with a "type":"image_url" field.
func (i ImagePart) MarshalJSON() ([]byte, error) {
	out, err := sjson.SetBytes(ipJSON, "image_url.url", i.ImageURL.URL)
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(out, "image_url.alt", i.ImageURL.Alt)
}

// UnmarshalJSON validates and extracts the required 'image_url.url' field.
// A missing or empty alt is replaced with DefaultImageAlt.
func (i *ImagePart) UnmarshalJSON(input []byte) error {
	if !gjson.ValidBytes(input) {
		return fmt.Errorf("invalid json: %s", input)
	}
	img := gjson.GetBytes(input, "image_url")
	if !img.IsObject() {
		return errors.New("missing required object 'image_url'")
	}
	uri := img.Get("url")
	if !uri.Exists() {
		return errors.New("missing required field 'image_url.url'")
	}
	i.ImageURL.URL = uri.String()
	i.ImageURL.Alt = img.Get("alt").String()
	if i.ImageURL.Alt == "" {
		i.ImageURL.Alt = DefaultImageAlt
	}
	return nil
}

// RawPart wraps a value that matched none of the known content shapes.
// It serializes back to exactly the value it holds.
type RawPart struct {
	Value any
	_     struct{} // require keyed usage
}

func (RawPart) contentPart() {}

// PartType returns the "type" field of the wrapped object, if it has one.
func (r RawPart) PartType() string {
	if obj, ok := r.Value.(map[string]any); ok {
		if tpe, ok := obj["type"].(string); ok {
			return tpe
		}
	}
	return ""
}

// MarshalJSON serializes the wrapped value unchanged.
func (r RawPart) MarshalJSON() ([]byte, error) {
	if r.Value == nil {
		return jsonNull, nil
	}
	return json.Marshal(r.Value)
}

// Parts is an ordered sequence of content parts.
type Parts []ContentPart

// MarshalJSON always produces a JSON array; a nil sequence becomes [].
func (p Parts) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte(`[]`), nil
	}
	return json.Marshal([]ContentPart(p))
}

// UnmarshalJSON decodes any wire shape (string, object or array) and
// normalizes it, so decoded Parts are always in canonical form.
func (p *Parts) UnmarshalJSON(input []byte) error {
	raw, err := Parse(input)
	if err != nil {
		return err
	}
	*p = Normalize(raw, "")
	return nil
}

// Texts returns the text of every TextPart in order.
func (p Parts) Texts() []string {
	var texts []string
	for _, part := range p {
		if tp, ok := part.(TextPart); ok {
			texts = append(texts, tp.Text)
		}
	}
	return texts
}

// Images returns every ImagePart in order.
func (p Parts) Images() []ImagePart {
	var images []ImagePart
	for _, part := range p {
		if ip, ok := part.(ImagePart); ok {
			images = append(images, ip)
		}
	}
	return images
}

// Parse decodes wire JSON into the dynamic shapes the classifier understands:
// string, []any, map[string]any, float64, bool or nil.
func Parse(input []byte) (any, error) {
	if !gjson.ValidBytes(input) {
		return nil, fmt.Errorf("invalid json: %s", input)
	}
	return gjson.ParseBytes(input).Value(), nil
}
