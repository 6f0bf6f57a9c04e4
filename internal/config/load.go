package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseError reports an override file that could not be read or decoded.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse error: %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a decoded override whose values are out of range.
type ValidationError struct {
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return e.Err }

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadOverride reads a YAML visual config. Fields missing from the file keep
// the dark palette's values, so a file may only tweak a few colors.
func LoadOverride(path string) (*VisualConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return ParseOverride(path, data)
}

// ParseOverride decodes and validates an override from raw YAML.
func ParseOverride(path string, data []byte) (*VisualConfig, error) {
	cfg := Dark()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Line: extractLine(err), Err: err}
	}
	if cfg.Size == 0 {
		cfg.Size = DefaultViewport
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges on a visual config.
func Validate(cfg *VisualConfig) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return &ValidationError{Err: err}
	}
	fields := make([]string, 0, len(ves))
	for _, fe := range ves {
		fields = append(fields, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return &ValidationError{Fields: fields, Err: err}
}

func extractLine(err error) int {
	m := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(m[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
