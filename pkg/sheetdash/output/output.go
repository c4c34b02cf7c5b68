// Package output serializes sheetdash results as JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DashboardFileName is the file name used when exporting the whole canvas.
const DashboardFileName = "dashboard.png"

// ExportFileName is the file name used when exporting a single item.
func ExportFileName(id models.ItemID) string {
	return fmt.Sprintf("visualization-%s.png", id)
}

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid format: %s (must be json or yaml)", s)
}

// Marshal encodes v in format. Pretty indents JSON; YAML is always indented.
func Marshal(v interface{}, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatJSON, "":
		if pretty {
			return json.MarshalIndent(v, "", "  ")
		}
		return json.Marshal(v)
	}
	return nil, fmt.Errorf("invalid format: %s", format)
}

// Encode writes v to w in format, followed by a newline for JSON.
func Encode(w io.Writer, v interface{}, format Format, pretty bool) error {
	data, err := Marshal(v, format, pretty)
	if err != nil {
		return err
	}
	if format != FormatYAML {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}
