package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("CFG_001", KindConfiguration, "Version must not be empty"),
			expected: "[CFG_001] Version must not be empty",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("GATE_001", KindUnavailable, "Redis is not running at 127.0.0.1:6380", fmt.Errorf("connection refused")),
			expected: "[GATE_001] Redis is not running at 127.0.0.1:6380: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("GATE_003", KindUnavailable, "wrapped", inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("CFG_001", KindConfiguration, "test")
	assert.Nil(t, appErr.Unwrap())
}

func TestIsKind(t *testing.T) {
	wrapped := fmt.Errorf("setup: %w", ErrInvalidPort(70000))

	assert.True(t, IsKind(wrapped, KindConfiguration))
	assert.False(t, IsKind(wrapped, KindUnavailable))
	assert.False(t, IsKind(errors.New("plain"), KindConfiguration))
	assert.False(t, IsKind(nil, KindResource))
}

func TestConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code string
	}{
		{"BlankVersion", ErrBlankVersion(), "CFG_001"},
		{"InvalidVersion", ErrInvalidVersion("x.y", errors.New("bad")), "CFG_002"},
		{"InvalidPort", ErrInvalidPort(0), "CFG_003"},
		{"InvalidTimeout", ErrInvalidTimeout("connect"), "CFG_004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, KindConfiguration, tt.err.Kind)
		})
	}
}

func TestUnavailableErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code string
	}{
		{"NotRunning", ErrNotRunning("localhost:6379", errors.New("refused")), "GATE_001"},
		{"VersionTooOld", ErrVersionTooOld("6.0.0", "5.0.3"), "GATE_002"},
		{"InfoQuery", ErrInfoQuery("localhost:6379", errors.New("timeout")), "GATE_003"},
		{"VersionUnknown", ErrVersionUnknown("localhost:6379", nil), "GATE_004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, KindUnavailable, tt.err.Kind)
		})
	}
}

func TestVersionTooOld_NamesBothVersions(t *testing.T) {
	err := ErrVersionTooOld("6.0.0", "5.0.3")
	assert.Contains(t, err.Message, "6.0.0")
	assert.Contains(t, err.Message, "5.0.3")
}

func TestResourceErrors(t *testing.T) {
	inner := fmt.Errorf("use of closed network connection")
	relErr := ErrRelease("redis client", inner)
	assert.Equal(t, "RES_001", relErr.Code)
	assert.Equal(t, KindResource, relErr.Kind)
	assert.True(t, errors.Is(relErr, inner))

	closedErr := ErrResourcesClosed()
	assert.Equal(t, "RES_002", closedErr.Code)
}
