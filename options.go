package kml

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

const defaultMaxDepth = 1000

// Option configures a Decoder or an Encoder. Options that only apply to
// one side are ignored by the other.
type Option func(*options) error

type options struct {
	lenient    bool
	strict     bool
	maxDepth   int
	version    Version
	extensions registry
	prefixes   map[string]string
	indent     *int
	log        logrus.FieldLogger
}

func newOptions(opts []Option) (*options, error) {
	o := &options{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.log = l
	}
	return o, nil
}

// Lenient relaxes reading: namespaces are ignored when matching elements,
// a root element in an unknown namespace is read as KML 2.2, elements not
// licensed by the document's version are skipped instead of rejected, and
// the XML tokenizer runs in non-strict mode.
func Lenient() Option {
	return func(o *options) error {
		o.lenient = true
		return nil
	}
}

// DisallowUnknownElements makes the decoder fail on elements that match
// no known content and that no extension claims. By default they are
// dropped.
func DisallowUnknownElements() Option {
	return func(o *options) error {
		o.strict = true
		return nil
	}
}

// MaxDepth sets the maximum element nesting the decoder follows. This
// prevents stack exhaustion on hostile input.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return errors.New("kml: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// TargetVersion makes the encoder write v regardless of the version
// recorded in the document.
func TargetVersion(v Version) Option {
	return func(o *options) error {
		if !v.Known() {
			return &UnknownNamespaceError{Namespace: string(v)}
		}
		o.version = v
		return nil
	}
}

// WithExtensions appends extension plugins to the registry. Plugins are
// consulted in registration order and the first that accepts an element
// or value handles it. Each plugin must implement ExtensionReader,
// ExtensionWriter or both.
func WithExtensions(exts ...Extension) Option {
	return func(o *options) error {
		for _, ext := range exts {
			if err := o.extensions.add(ext); err != nil {
				return err
			}
		}
		return nil
	}
}

// Prefix binds a preferred prefix to a namespace for writing. When
// reading, a root declaration of the same binding is not copied into
// KML.ExtensionPrefixes.
func Prefix(namespace, prefix string) Option {
	return func(o *options) error {
		if namespace == "" {
			return errors.New("kml: prefix binding needs a namespace")
		}
		if o.prefixes == nil {
			o.prefixes = make(map[string]string)
		}
		o.prefixes[namespace] = prefix
		return nil
	}
}

// Indent makes the encoder put each element on its own line, indented by
// the given number of spaces per level. Text content is left as is.
func Indent(spaces int) Option {
	return func(o *options) error {
		if spaces < 0 {
			return errors.New("kml: indent must not be negative")
		}
		o.indent = &spaces
		return nil
	}
}

// WithLogger sets the logger used for debug output. By default nothing is
// logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) error {
		if l == nil {
			return errors.New("kml: nil logger")
		}
		o.log = l
		return nil
	}
}
