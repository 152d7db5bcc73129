package gridhtml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Options configures the table transform.
type Options struct {
	// NoHeader drops the thead and tbody wrappers so header rows become plain
	// rows under table. It has no effect when the table has footer rows.
	NoHeader bool `yaml:"noHeader"`

	// Logger receives debug diagnostics. Nil discards them.
	Logger *slog.Logger `yaml:"-"`
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// ParseOptions decodes YAML options. JSON objects are accepted as YAML flow
// mappings. An empty document yields the defaults.
func ParseOptions(data []byte) (Options, error) {
	return LoadOptions(bytes.NewReader(data))
}

// LoadOptions decodes YAML options from r. Unknown keys are rejected.
func LoadOptions(r io.Reader) (Options, error) {
	var opts Options
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return Options{}, nil
		}
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return opts, nil
}
