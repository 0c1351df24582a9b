package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrConfig, "Config file not found", "Run 'fleetdeck init' to create one")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Equal(t, "Config file not found", err.Message)
	assert.Contains(t, err.Error(), "✗ Config file not found")
	assert.Contains(t, err.Error(), "Run 'fleetdeck init' to create one")
}

func TestWrap(t *testing.T) {
	cause := errors.New("exec: \"wt\": executable file not found in $PATH")
	err := Wrap(cause, "Couldn't launch the terminal")

	assert.Equal(t, ErrExec, err.Code)
	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "Couldn't launch the terminal")
	assert.Contains(t, err.Error(), "executable file not found")
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapWithCode(cause, ErrSSH, "SSH handshake failed", "Check the host is up")

	assert.Equal(t, ErrSSH, err.Code)
	assert.Equal(t, "SSH handshake failed", err.Message)
	assert.Equal(t, "Check the host is up", err.Suggestion)
	assert.True(t, errors.Is(err, cause))
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		want bool
	}{
		{
			name: "matching code",
			err:  New(ErrTerm, "Unsupported OS", ""),
			code: ErrTerm,
			want: true,
		},
		{
			name: "non-matching code",
			err:  New(ErrTerm, "Unsupported OS", ""),
			code: ErrSSH,
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
			code: ErrTerm,
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			code: ErrTerm,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCode(tt.err, tt.code))
		})
	}
}

func TestIsCode_WrappedError(t *testing.T) {
	inner := New(ErrReport, "Diagnostic run failed", "")
	outer := WrapWithCode(inner, ErrExec, "Check aborted", "")

	// errors.As finds the outermost structured error first
	assert.True(t, IsCode(outer, ErrExec))
}

func TestError_NoSuggestion(t *testing.T) {
	err := New(ErrPing, "Host unreachable", "")
	assert.NotContains(t, err.Error(), "\n\n  \n")
}
