package content

import (
	"log/slog"

	"github.com/casualjim/chatparts/pkg/slogx"
	"github.com/fogfish/opts"
)

// Option configures a Normalizer.
type Option = opts.Option[Normalizer]

var (
	// WithLogger sets the logger used to report dropped and passed-through values.
	WithLogger = opts.ForName[Normalizer, *slog.Logger]("logger")
	// WithDefaultAlt sets the alt text for images that arrive without one.
	WithDefaultAlt = opts.ForName[Normalizer, string]("defaultAlt")
)

// Normalizer reduces raw message content to canonical Parts.
// A Normalizer is immutable and safe for concurrent use.
type Normalizer struct {
	logger     *slog.Logger
	defaultAlt string
}

// NewNormalizer creates a Normalizer with the given options.
func NewNormalizer(options ...Option) (*Normalizer, error) {
	n := &Normalizer{
		defaultAlt: DefaultImageAlt,
	}
	if err := opts.Apply(n, options); err != nil {
		return nil, err
	}
	if n.logger == nil {
		n.logger = slog.Default()
	}
	if n.defaultAlt == "" {
		n.defaultAlt = DefaultImageAlt
	}
	n.logger = n.logger.With(slogx.LoggerName("content.normalizer"))
	return n, nil
}

var defaultNormalizer = &Normalizer{defaultAlt: DefaultImageAlt}

// Normalize reduces content to canonical parts using the default settings.
// See (*Normalizer).Normalize.
func Normalize(content any, imageURL string) Parts {
	return defaultNormalizer.Normalize(content, imageURL)
}

// Normalize reduces content to an ordered sequence of canonical parts.
//
// An empty imageURL means no override. The rules, in order:
//   - a string becomes a single text part, unless imageURL is set and the
//     string holds exactly one image placeholder, in which case it becomes a
//     single image part pointing at the rewritten placeholder markup;
//   - a collection is normalized element by element; unrecognized elements
//     and elements that normalize to nothing are dropped and nested
//     collections are flattened in place;
//   - a tagged text object is handled like its text;
//   - a tagged image object becomes a single image part, with its URL
//     replaced by imageURL when set and a default alt when it has none;
//   - anything else is returned unchanged as a single RawPart; a RawPart is
//     returned as is.
//
// Normalizing an already canonical sequence returns an equal sequence.
func (n *Normalizer) Normalize(content any, imageURL string) Parts {
	if raw, ok := content.(RawPart); ok {
		return Parts{raw}
	}
	s := inspect(content)
	if s.kind == KindUnrecognized {
		n.log().Debug("passing through unrecognized content", slogx.Type("value", content))
		return Parts{RawPart{Value: content}}
	}
	return n.normalizeShape(s, imageURL)
}

func (n *Normalizer) normalizeShape(s shape, imageURL string) Parts {
	switch s.kind {
	case KindString, KindTaggedText:
		return Parts{n.textPart(s.text, imageURL)}
	case KindTaggedImage:
		url := s.url
		if imageURL != "" {
			url = imageURL
		}
		return Parts{n.imagePart(url, s.alt)}
	case KindCollection:
		return n.normalizeCollection(s.items, imageURL)
	default:
		return nil
	}
}

func (n *Normalizer) normalizeCollection(items []any, imageURL string) Parts {
	result := make(Parts, 0, len(items))
	for idx, item := range items {
		s := inspect(item)
		if s.kind == KindUnrecognized {
			n.log().Debug("dropping unrecognized collection element",
				slog.Int("index", idx),
				slogx.Type("value", item),
			)
			continue
		}
		result = append(result, n.normalizeShape(s, imageURL)...)
	}
	return result
}

func (n *Normalizer) textPart(text, imageURL string) ContentPart {
	if imageURL == "" {
		return Text(text)
	}
	markup, ok := rewritePlaceholder(text, imageURL)
	if !ok {
		return Text(text)
	}
	return n.imagePart(markup, "")
}

func (n *Normalizer) imagePart(url, alt string) ImagePart {
	if alt == "" {
		alt = n.defaultAlt
	}
	return ImagePart{ImageURL: ImageURL{URL: url, Alt: alt}}
}

func (n *Normalizer) log() *slog.Logger {
	if n.logger == nil {
		return slog.Default()
	}
	return n.logger
}

