package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("tags.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "tags.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: tags.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("tags.toml", 0, fmt.Errorf("bad"))
	require.Equal(t, "parse error: tags.toml: bad", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("tags[1].max_width", "must not be negative", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "tags[1].max_width", validationErr.Field)
	require.Contains(t, err.Error(), "must not be negative")

	bare := NewValidationError("", "document is empty", nil)
	require.Equal(t, "validation error: document is empty", bare.Error())
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	require.Equal(t, `unsupported document format ".json": tags.json`, NewFormatError("tags.json", ".json").Error())
	require.Contains(t, NewFormatError("tags", "").Error(), "no extension")
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var formatErr *FormatError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, formatErr.Error())
}
