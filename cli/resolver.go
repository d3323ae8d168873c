package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/arprof/pkg"
)

// resolveYAML is a [kong.ConfigurationLoader] that reads flag values from a
// YAML mapping.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolveYAML, "/path/to/config.yaml")
//
// Keys are flag names. Hyphens may be written as underscores, and nested
// mappings are flattened with hyphens, so all of the following set
// --log-level:
//
//	log-level: debug
//	log_level: debug
//	log:
//	  level: debug
//
// Command-line flags override config file values.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}

	var doc map[string]any

	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, pkg.ErrConfigParse.Wrap(err)
	}

	cfg := config{}
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] for flattened configuration maps.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Not found returns nil to let Kong use defaults.
	return c[flag.Name], nil
}

// flatten copies doc into c with keys normalized to flag names.
func (c config) flatten(prefix string, doc map[string]any) {
	for key, value := range doc {
		name := strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			name = prefix + "-" + name
		}

		switch v := value.(type) {
		case map[string]any:
			c.flatten(name, v)

		case bool, string, nil, []any:
			c[name] = v

		default:
			// Kong parses numbers from their string form.
			c[name] = fmt.Sprint(v)
		}
	}
}
