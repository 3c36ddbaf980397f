package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/enumgen/errors"
)

// writeFormatted marshals v as json, yaml or toml
func writeFormatted(w io.Writer, format, title string, v interface{}) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal to JSON")
		}
		fmt.Fprintln(w, string(data))

	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "failed to marshal to YAML")
		}
		fmt.Fprintf(w, "# %s\n%s", title, string(data))

	case "toml":
		data, err := toml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "failed to marshal to TOML")
		}
		fmt.Fprintf(w, "# %s\n%s", title, string(data))

	default:
		return errors.WithHint(
			errors.Newf("unsupported format: %s", format),
			"supported formats: "+strings.Join(formats, ", "))
	}
	return nil
}

var formats = []string{"toml", "json", "yaml"}

// relativePath shortens path for display when it lies under root
func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
