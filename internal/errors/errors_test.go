package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	// Verify all expected error codes exist
	codes := []string{
		ErrConfig,
		ErrAPI,
		ErrParse,
		ErrExec,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .tlens.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "api error",
			code:       ErrAPI,
			message:    "Cannot reach the TrustLens API",
			suggestion: "Check api_base in your config or use --mock",
		},
		{
			name:       "parse error",
			code:       ErrParse,
			message:    "Malformed response from /data-sources",
			suggestion: "Verify the backend version matches this client",
		},
		{
			name:       "exec error",
			code:       ErrExec,
			message:    "Unknown shell: tcsh",
			suggestion: "Supported shells: bash, zsh, fish, powershell",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
	}{
		{
			name: "basic error formatting",
			err:  New(ErrConfig, "Invalid configuration", "Check .tlens.yaml syntax"),
			expectedParts: []string{
				"✗",
				"Invalid configuration",
				"Check .tlens.yaml syntax",
			},
		},
		{
			name: "wrapped cause appears in output",
			err:  WrapWithCode(errors.New("connection refused"), ErrAPI, "Fetch failed", "Is the backend up?"),
			expectedParts: []string{
				"Fetch failed",
				"connection refused",
				"Is the backend up?",
			},
		},
		{
			name: "no suggestion",
			err:  Wrap(errors.New("EOF"), "Stream ended early"),
			expectedParts: []string{
				"Stream ended early",
				"EOF",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.err.Error()
			for _, part := range tt.expectedParts {
				assert.True(t, strings.Contains(out, part),
					"expected %q in output:\n%s", part, out)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, "wrapper")

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestIsCode(t *testing.T) {
	apiErr := New(ErrAPI, "boom", "")

	assert.True(t, IsCode(apiErr, ErrAPI))
	assert.False(t, IsCode(apiErr, ErrConfig))
	assert.False(t, IsCode(nil, ErrAPI))
	assert.False(t, IsCode(errors.New("plain"), ErrAPI))

	// Wrapped structured errors are still matched via errors.As
	wrapped := WrapWithCode(apiErr, ErrParse, "outer", "")
	assert.True(t, IsCode(wrapped, ErrParse))
}
