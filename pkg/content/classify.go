package content

import (
	"reflect"

	"github.com/tidwall/gjson"
)

// Kind is the shape of a raw content value.
type Kind uint8

const (
	// KindUnrecognized covers every value that is not one of the other kinds:
	// nil, numbers, booleans, objects without a usable "type" and tagged
	// objects that lack their required fields.
	KindUnrecognized Kind = iota
	// KindString is a plain text value.
	KindString
	// KindCollection is an ordered list of content values.
	KindCollection
	// KindTaggedText is an object with "type":"text" and a string "text".
	KindTaggedText
	// KindTaggedImage is an object with "type":"image_url" and an
	// "image_url" object carrying a non-empty "url".
	KindTaggedImage
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindCollection:
		return "collection"
	case KindTaggedText:
		return "tagged-text"
	case KindTaggedImage:
		return "tagged-image"
	default:
		return "unrecognized"
	}
}

// Classify reports the shape of v. It never panics.
func Classify(v any) Kind {
	return inspect(v).kind
}

// shape is a classified value together with the fields the normalizer needs.
type shape struct {
	kind  Kind
	text  string // KindString, KindTaggedText
	url   string // KindTaggedImage
	alt   string // KindTaggedImage, may be empty
	items []any  // KindCollection
}

var unrecognized = shape{kind: KindUnrecognized}

func inspect(v any) shape {
	switch x := v.(type) {
	case nil:
		return unrecognized
	case string:
		return shape{kind: KindString, text: x}
	case TextPart:
		return shape{kind: KindTaggedText, text: x.Text}
	case ImagePart:
		return imageShape(x.ImageURL.URL, x.ImageURL.Alt)
	case RawPart:
		return unrecognized
	case Parts:
		return partsShape(x)
	case []ContentPart:
		return partsShape(x)
	case []any:
		return shape{kind: KindCollection, items: x}
	case gjson.Result:
		if !x.Exists() {
			return unrecognized
		}
		return inspect(x.Value())
	}

	if field, ok := fieldsOf(v); ok {
		return objectShape(field)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return unrecognized
		}
		return inspect(rv.Elem().Interface())
	case reflect.String:
		return shape{kind: KindString, text: rv.String()}
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return unrecognized
		}
		fallthrough
	case reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return shape{kind: KindCollection, items: items}
	default:
		return unrecognized
	}
}

func partsShape(parts []ContentPart) shape {
	items := make([]any, len(parts))
	for i, part := range parts {
		items[i] = part
	}
	return shape{kind: KindCollection, items: items}
}

func imageShape(url, alt string) shape {
	if url == "" {
		return unrecognized
	}
	return shape{kind: KindTaggedImage, url: url, alt: alt}
}

// accessor looks up a field of an object-like value.
type accessor func(key string) (any, bool)

// fieldsOf returns an accessor when v is an object: a map[string]any or any
// other map keyed by a string type.
func fieldsOf(v any) (accessor, bool) {
	if obj, ok := v.(map[string]any); ok {
		return func(key string) (any, bool) {
			val, ok := obj[key]
			return val, ok
		}, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	keyType := rv.Type().Key()
	return func(key string) (any, bool) {
		val := rv.MapIndex(reflect.ValueOf(key).Convert(keyType))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	}, true
}

// objectShape classifies a tagged object.
func objectShape(field accessor) shape {
	tpe, ok := field("type")
	if !ok {
		return unrecognized
	}
	switch stringOf(tpe) {
	case TypeText:
		raw, _ := field("text")
		text, ok := raw.(string)
		if !ok {
			return unrecognized
		}
		return shape{kind: KindTaggedText, text: text}
	case TypeImageURL:
		raw, _ := field("image_url")
		return imagePayloadShape(raw)
	default:
		return unrecognized
	}
}

// imagePayloadShape reads url and alt out of the nested image_url object.
func imagePayloadShape(raw any) shape {
	switch x := raw.(type) {
	case ImageURL:
		return imageShape(x.URL, x.Alt)
	case *ImageURL:
		if x == nil {
			return unrecognized
		}
		return imageShape(x.URL, x.Alt)
	}

	field, ok := fieldsOf(raw)
	if !ok {
		return unrecognized
	}
	url, _ := field("url")
	alt, _ := field("alt")
	return imageShape(stringOf(url), stringOf(alt))
}

// stringOf returns v when it is a string, "" otherwise.
func stringOf(v any) string {
	s, _ := v.(string)
	return s
}
