package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an AppError by how the gate reacts to it.
type Kind string

const (
	// KindConfiguration is malformed caller input. Surfaced immediately.
	KindConfiguration Kind = "configuration"
	// KindUnavailable is an unmet precondition. Downgraded to a skip.
	KindUnavailable Kind = "unavailable"
	// KindResource is a failure to release a connection or client. Logged only.
	KindResource Kind = "resource"
)

// AppError is a structured error carrying a stable code and a kind.
type AppError struct {
	Code    string `json:"error_code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"` // Underlying cause, kept for diagnostics
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, kind Kind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an underlying error with an AppError.
func Wrap(code string, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// IsKind reports whether err (or anything it wraps) is an AppError of kind k.
func IsKind(err error, k Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == k
	}
	return false
}

// ---- Configuration (CFG) ----

func ErrBlankVersion() *AppError {
	return New("CFG_001", KindConfiguration, "Version must not be empty")
}

func ErrInvalidVersion(version string, err error) *AppError {
	return Wrap("CFG_002", KindConfiguration, fmt.Sprintf("Invalid version %q", version), err)
}

func ErrInvalidPort(port int) *AppError {
	return New("CFG_003", KindConfiguration, fmt.Sprintf("Port %d out of range 1-65535", port))
}

func ErrInvalidTimeout(name string) *AppError {
	return New("CFG_004", KindConfiguration, fmt.Sprintf("%s timeout must be positive", name))
}

// ---- Unavailable precondition (GATE) ----

func ErrNotRunning(addr string, err error) *AppError {
	return Wrap("GATE_001", KindUnavailable, fmt.Sprintf("Redis is not running at %s", addr), err)
}

func ErrVersionTooOld(required, running string) *AppError {
	return New("GATE_002", KindUnavailable,
		fmt.Sprintf("This test requires Redis version %s but you run version %s", required, running))
}

func ErrInfoQuery(addr string, err error) *AppError {
	return Wrap("GATE_003", KindUnavailable, fmt.Sprintf("Could not query server info at %s", addr), err)
}

func ErrVersionUnknown(addr string, err error) *AppError {
	return Wrap("GATE_004", KindUnavailable, fmt.Sprintf("Could not determine Redis version at %s", addr), err)
}

// ---- Resources (RES) ----

func ErrRelease(what string, err error) *AppError {
	return Wrap("RES_001", KindResource, fmt.Sprintf("Failed to release %s", what), err)
}

func ErrResourcesClosed() *AppError {
	return New("RES_002", KindResource, "Client resources already shut down")
}
