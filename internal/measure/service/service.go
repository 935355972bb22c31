package service

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/galleon/foundation/core/error"
	mdwlog "github.com/msto63/galleon/foundation/core/log"
	"github.com/msto63/galleon/pkg/core/logging"
	"github.com/msto63/galleon/pkg/length"
)

// maxLineSize bounds a single input line in ConvertLines
const maxLineSize = 1024 * 1024

// Conversion is the outcome of converting one measurement
type Conversion struct {
	ID      string
	Input   string
	Tokens  []string
	Values  []length.Value
	Errors  []string
	Dropped []string

	// Filled only for valid conversions
	BaseUnits   float64
	Meters      string
	Millimeters string
	Imperial    string
}

// Valid reports whether the conversion had no errors
func (c *Conversion) Valid() bool {
	return len(c.Errors) == 0
}

// Err returns the parse errors as a structured error, or nil
func (c *Conversion) Err() error {
	return length.ParseResult{Values: c.Values, Errors: c.Errors, Dropped: c.Dropped}.Err()
}

// Config holds service configuration
type Config struct {
	Logger *mdwlog.Logger
}

// Service converts free-form length input
type Service struct {
	logger *mdwlog.Logger
}

// NewService creates a new conversion service
func NewService(cfg Config) (*Service, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewSimpleLogger("converter")
	}

	return &Service{
		logger: logger,
	}, nil
}

// Convert tokenizes, parses and renders a single measurement
func (s *Service) Convert(ctx context.Context, input string) (*Conversion, error) {
	if err := ctx.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "conversion canceled").
			WithCode(mdwerror.CodeCanceled).
			WithOperation("service.convert")
	}

	id := uuid.New().String()
	logger := s.logger.WithRequestID(id)
	timer := logger.StartTimer("convert")

	tokens := length.Tokenize(input)
	logger.Debug("Tokenized input", mdwlog.String("input", input), mdwlog.Strings("tokens", tokens))

	result := length.ParseTokens(tokens)

	conv := &Conversion{
		ID:      id,
		Input:   input,
		Tokens:  tokens,
		Values:  result.Values,
		Errors:  result.Errors,
		Dropped: result.Dropped,
	}

	if len(result.Dropped) > 0 {
		logger.Debug("Dropped unparseable input", mdwlog.Strings("dropped", result.Dropped))
	}

	if err := result.Err(); err != nil {
		logger.LogError(mdwerror.Wrap(err, "input rejected").
			WithOperation("service.convert").
			WithRequestID(id))
		timer.WithField("valid", false).Stop()
		return conv, nil
	}

	conv.BaseUnits = length.ToBaseUnits(result.Values)
	conv.Meters = length.DisplayMeters(result.Values)
	conv.Millimeters = length.DisplayMillimeters(result.Values)
	conv.Imperial = length.DisplayImperial(result.Values)

	timer.WithField("valid", true).Stop()
	return conv, nil
}

// ConvertLines converts every non-blank line of r and passes the result
// to fn. It stops at the first error from fn, on read failure or when ctx
// is canceled.
func (s *Service) ConvertLines(ctx context.Context, r io.Reader, fn func(*Conversion) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	timer := s.logger.StartTimer("convert_lines")

	lines := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		conv, err := s.Convert(ctx, line)
		if err != nil {
			timer.WithField("lines", lines).StopWithError(err)
			return err
		}
		lines++

		if err := fn(conv); err != nil {
			timer.WithField("lines", lines).StopWithError(err)
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		wrapped := mdwerror.Wrap(err, "failed to read input").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("service.convert_lines").
			WithDetail("lines", lines)
		timer.WithField("lines", lines).StopWithError(wrapped)
		return wrapped
	}

	timer.WithField("lines", lines).Stop()
	return nil
}
