// Package content normalizes loosely typed chat message content into an
// ordered sequence of canonical content parts.
//
// Backends hand over message content in several shapes: a bare string, a
// single tagged object ({"type":"text",...} or {"type":"image_url",...}) or a
// list mixing both. The rest of a chat client should only ever deal with one
// form, Parts, whose elements are TextPart or ImagePart values.
//
// Key concepts:
//   - Classify: reports the Kind of any value (string, collection, tagged
//     text, tagged image or unrecognized) without panicking.
//   - Normalize: reduces any value to Parts. Already canonical input comes
//     back unchanged. Unknown top-level values are kept as a RawPart,
//     unknown collection elements are dropped.
//   - Image placeholders: text may carry an <img TOKEN> tag without a src
//     attribute, meaning "the image goes here". When an image URL is supplied
//     and the text holds exactly one such tag, the text becomes an image part.
//   - ReplaceImageURLs: repoints every image in a value at a new URL.
//
// Example usage:
//
//	parts := content.Normalize([]any{
//	    "Check out this image:",
//	    map[string]any{"type": "image_url", "image_url": map[string]any{"url": "https://example.com/cat.png"}},
//	}, "")
//	// parts[0] == content.Text("Check out this image:")
//	// parts[1] == content.Image("https://example.com/cat.png")
//
//	parts = content.Normalize("<img 4f2a.png/>", "https://example.com/4f2a.png")
//	// parts[0].(content.ImagePart).ImageURL.URL == `<img src="https://example.com/4f2a.png" />`
//
// Nothing in this package returns an error for unexpected content; content
// comes from a protocol that is not fully under the caller's control.
package content
