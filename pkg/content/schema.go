package content

import (
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Schema returns the JSON schema of a normalized content sequence: an array
// whose items are either a text part or an image part.
func Schema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "Parts",
		Description: "Canonical chat message content.",
		Type:        "array",
		Items: &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{TextPartSchema(), ImagePartSchema()},
		},
	}
}

// TextPartSchema returns the JSON schema of a TextPart.
func TextPartSchema() *jsonschema.Schema {
	props := orderedmap.New[string, *jsonschema.Schema]()
	props.Set("type", &jsonschema.Schema{Type: "string", Const: TypeText})
	props.Set("text", &jsonschema.Schema{Type: "string"})
	return &jsonschema.Schema{
		Title:                "TextPart",
		Type:                 "object",
		Properties:           props,
		Required:             []string{"type", "text"},
		AdditionalProperties: jsonschema.FalseSchema,
	}
}

// ImagePartSchema returns the JSON schema of an ImagePart.
func ImagePartSchema() *jsonschema.Schema {
	payload := orderedmap.New[string, *jsonschema.Schema]()
	payload.Set("url", &jsonschema.Schema{Type: "string", Description: "Image URL or rewritten placeholder markup."})
	payload.Set("alt", &jsonschema.Schema{Type: "string", Default: DefaultImageAlt})

	props := orderedmap.New[string, *jsonschema.Schema]()
	props.Set("type", &jsonschema.Schema{Type: "string", Const: TypeImageURL})
	props.Set("image_url", &jsonschema.Schema{
		Type:                 "object",
		Properties:           payload,
		Required:             []string{"url", "alt"},
		AdditionalProperties: jsonschema.FalseSchema,
	})
	return &jsonschema.Schema{
		Title:                "ImagePart",
		Type:                 "object",
		Properties:           props,
		Required:             []string{"type", "image_url"},
		AdditionalProperties: jsonschema.FalseSchema,
	}
}
