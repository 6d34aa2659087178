package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tagkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tagkit/internal/ports"
	tagkiterrors "github.com/alexisbeaulieu97/tagkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", tagkiterrors.NewFormatError(path, ext)
	}
}

// ParseDocument loads a document from disk, validates it, and returns the resulting model.
func ParseDocument(path string) (*Document, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tagkiterrors.NewParseError(path, 0, err)
	}

	return DecodeDocument(data, format, path)
}

// DecodeDocument decodes and validates data. source names the input in errors.
// Unknown keys are rejected in both formats.
func DecodeDocument(data []byte, format Format, source string) (*Document, error) {
	var doc Document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, tagkiterrors.NewParseError(source, extractLine(err), err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, tagkiterrors.NewParseError(source, tomlLine(err), err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}
			sort.Strings(keys)
			return nil, tagkiterrors.NewParseError(source, 0, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")))
		}
	default:
		return nil, tagkiterrors.NewFormatError(source, string(format))
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return perr.Position.Line
	}
	return 0
}

// Loader parses documents and reports lint findings through a logger.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(logger ports.Logger) *Loader {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Loader{logger: logger.With("component", "document_loader")}
}

// Load parses path and logs a warning per lint finding.
func (l *Loader) Load(ctx context.Context, path string) (*Document, error) {
	doc, err := ParseDocument(path)
	if err != nil {
		l.logger.Error(ctx, "document rejected", "path", path, "error", err)
		return nil, err
	}

	for _, warning := range Lint(doc) {
		l.logger.Warn(ctx, warning.Message, "path", path, "field", warning.Field)
	}
	l.logger.Debug(ctx, "document loaded", "path", path, "tags", len(doc.Tags), "overrides", len(doc.Palette.Overrides))
	return doc, nil
}
