package content

// ReplaceImageURLs points every image in content at imageURL.
//
// Text (plain strings and tagged text objects) that holds exactly one image
// placeholder becomes an image part; other text is kept as text. Image parts
// keep their alt text and get imageURL as their URL. Inside a collection,
// values that are not tagged objects are dropped while tagged objects of an
// unknown type are kept as RawPart. Any other top-level value is returned
// unchanged as a single RawPart.
func ReplaceImageURLs(content any, imageURL string) Parts {
	s := inspect(content)
	switch s.kind {
	case KindCollection:
		result := make(Parts, 0, len(s.items))
		for _, item := range s.items {
			if part, ok := replaceInItem(item, imageURL); ok {
				result = append(result, part)
			}
		}
		return result
	case KindString, KindTaggedText, KindTaggedImage:
		return Parts{replaceInShape(s, imageURL)}
	default:
		return Parts{RawPart{Value: content}}
	}
}

func replaceInItem(item any, imageURL string) (ContentPart, bool) {
	if raw, ok := item.(RawPart); ok {
		item = raw.Value
	}
	s := inspect(item)
	switch s.kind {
	case KindString, KindTaggedText, KindTaggedImage:
		return replaceInShape(s, imageURL), true
	}
	field, ok := fieldsOf(item)
	if !ok {
		return nil, false
	}
	if _, tagged := field("type"); !tagged {
		return nil, false
	}
	return RawPart{Value: item}, true
}

func replaceInShape(s shape, imageURL string) ContentPart {
	if s.kind == KindTaggedImage {
		url := s.url
		if imageURL != "" {
			url = imageURL
		}
		alt := s.alt
		if alt == "" {
			alt = DefaultImageAlt
		}
		return ImagePart{ImageURL: ImageURL{URL: url, Alt: alt}}
	}
	if img, ok := ExtractImagePlaceholder(s.text, imageURL); ok {
		return img
	}
	return Text(s.text)
}
