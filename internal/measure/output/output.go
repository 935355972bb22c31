// Package output renders conversions as text, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/galleon/foundation/core/error"
	"github.com/msto63/galleon/internal/measure/service"
	"github.com/msto63/galleon/pkg/core/config"
)

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", mdwerror.Newf("unknown output format: %s", s).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("output.parse_format").
			WithDetail("format", s)
	}
}

// Writer renders conversions
type Writer struct {
	format Format
	fields []string
	echo   bool
}

// Options configure a Writer
type Options struct {
	Format Format
	// Fields limits the displays written; empty means all
	Fields []string
	// Echo prefixes text output with "Input: <input>"
	Echo bool
}

// NewWriter creates a writer
func NewWriter(opts Options) *Writer {
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = []string{config.FieldMeters, config.FieldMillimeters, config.FieldImperial}
	}

	return &Writer{
		format: format,
		fields: fields,
		echo:   opts.Echo,
	}
}

// Format returns the writer's format
func (w *Writer) Format() Format {
	return w.format
}

// record is the serialized form of a conversion
type record struct {
	ID          string   `json:"id" yaml:"id"`
	Input       string   `json:"input" yaml:"input"`
	Valid       bool     `json:"valid" yaml:"valid"`
	Meters      string   `json:"meters,omitempty" yaml:"meters,omitempty"`
	Millimeters string   `json:"millimeters,omitempty" yaml:"millimeters,omitempty"`
	Imperial    *string  `json:"imperial,omitempty" yaml:"imperial,omitempty"`
	Errors      []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Dropped     []string `json:"dropped,omitempty" yaml:"dropped,omitempty"`
}

func (w *Writer) toRecord(conv *service.Conversion) record {
	rec := record{
		ID:      conv.ID,
		Input:   conv.Input,
		Valid:   conv.Valid(),
		Errors:  conv.Errors,
		Dropped: conv.Dropped,
	}
	if !rec.Valid {
		return rec
	}

	for _, f := range w.fields {
		switch f {
		case config.FieldMeters:
			rec.Meters = conv.Meters
		case config.FieldMillimeters:
			rec.Millimeters = conv.Millimeters
		case config.FieldImperial:
			// Empty imperial is a real value for zero lengths
			imperial := conv.Imperial
			rec.Imperial = &imperial
		}
	}
	return rec
}

// Write renders conv to out
func (w *Writer) Write(out io.Writer, conv *service.Conversion) error {
	var err error
	switch w.format {
	case FormatJSON:
		err = json.NewEncoder(out).Encode(w.toRecord(conv))
	case FormatYAML:
		err = w.writeYAML(out, conv)
	default:
		err = w.writeText(out, conv)
	}

	if err != nil {
		return mdwerror.Wrap(err, "failed to write conversion").
			WithCode(mdwerror.CodeOutputFailed).
			WithOperation("output.write").
			WithDetail("format", string(w.format)).
			WithRequestID(conv.ID)
	}
	return nil
}

func (w *Writer) writeYAML(out io.Writer, conv *service.Conversion) error {
	data, err := yaml.Marshal(w.toRecord(conv))
	if err != nil {
		return err
	}
	// Separate documents when several conversions share a stream
	if _, err := io.WriteString(out, "---\n"); err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func (w *Writer) writeText(out io.Writer, conv *service.Conversion) error {
	var b strings.Builder

	if w.echo {
		fmt.Fprintf(&b, "Input: %s\n", conv.Input)
	}

	if !conv.Valid() {
		for _, e := range conv.Errors {
			b.WriteString(e)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		_, err := io.WriteString(out, b.String())
		return err
	}

	for _, f := range w.fields {
		switch f {
		case config.FieldMeters:
			fmt.Fprintf(&b, "Meters: %s\n", conv.Meters)
		case config.FieldMillimeters:
			fmt.Fprintf(&b, "Millimeters: %s\n", conv.Millimeters)
		case config.FieldImperial:
			fmt.Fprintf(&b, "Imperial: %s\n", conv.Imperial)
		}
	}

	_, err := io.WriteString(out, b.String())
	return err
}
