// Package export writes the trip to files and reads it back.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/trip"
)

// Format is a trip file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// FormatFor picks the format from explicit, falling back to the extension of
// path.
func FormatFor(path, explicit string) (Format, error) {
	f := strings.ToLower(strings.TrimSpace(explicit))
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch f {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unknown format %q, want json, yaml or xlsx", f)
}

// Export writes the trip to Path. The xlsx format holds the expense ledger.
type Export struct {
	Path   string
	Format string

	Store *app.Store
	Out   io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not export, no trip store")
	}
	format, err := FormatFor(n.Path, n.Format)
	if err != nil {
		return err
	}

	d := n.Store.Snapshot()
	switch format {
	case FormatXLSX:
		err = WriteLedger(n.Path, d)
	default:
		var b []byte
		b, err = Encode(d, format)
		if err == nil {
			err = os.WriteFile(n.Path, b, 0o644)
		}
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", n.Path, err)
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "wrote %s (%s)\n", n.Path, format)
	return nil
}

// Import replaces the trip with the contents of Path.
type Import struct {
	Path   string
	Format string

	Store *app.Store
	Out   io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not import, no trip store")
	}
	format, err := FormatFor(n.Path, n.Format)
	if err != nil {
		return err
	}
	if format == FormatXLSX {
		return errors.New("xlsx holds only the expense ledger and can not be imported")
	}
	b, err := os.ReadFile(n.Path)
	if err != nil {
		return err
	}
	d, err := Decode(b, format)
	if err != nil {
		return fmt.Errorf("import %s: %w", n.Path, err)
	}
	if err := n.Store.Replace(d); err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if err := n.Store.LastPersist(); err != nil {
		_, _ = color.New(color.FgYellow).Fprintf(out, "imported %s (unsaved: %v)\n", n.Path, err)
		return nil
	}
	_, _ = fmt.Fprintf(out, "imported %s\n", n.Path)
	return nil
}

// Encode renders d as JSON or YAML.
func Encode(d *trip.Data, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(d, "", "  ")
	case FormatYAML:
		return yaml.Marshal(d)
	}
	return nil, fmt.Errorf("can not encode trip as %s", format)
}

// Decode parses a JSON or YAML trip.
func Decode(b []byte, format Format) (*trip.Data, error) {
	d := &trip.Data{}
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(b, d)
	case FormatYAML:
		err = yaml.Unmarshal(b, d)
	default:
		err = fmt.Errorf("can not decode trip from %s", format)
	}
	if err != nil {
		return nil, err
	}
	d.Normalize()
	return d, nil
}
