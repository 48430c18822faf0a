package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"redis-gate/pkg/apperror"
	"redis-gate/pkg/redisgate"

	"github.com/google/uuid"
)

// Envelope is the machine-readable form of one probe result.
type Envelope struct {
	RunID     string `json:"run_id"`
	Addr      string `json:"addr"`
	Outcome   string `json:"outcome"`
	ErrorCode string `json:"error_code,omitempty"`
	Message   string `json:"message,omitempty"`
	Cause     string `json:"cause,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewEnvelope builds the envelope for result. Skips carrying an
// *apperror.AppError expose its code; other causes get SYS_000.
func NewEnvelope(addr string, result redisgate.ProbeResult) Envelope {
	env := Envelope{
		RunID:     uuid.New().String(),
		Addr:      addr,
		Outcome:   result.Outcome.String(),
		Message:   result.Reason,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if result.Passed() || result.Cause == nil {
		return env
	}

	var appErr *apperror.AppError
	if errors.As(result.Cause, &appErr) {
		env.ErrorCode = appErr.Code
		if appErr.Err != nil {
			env.Cause = appErr.Err.Error()
		}
		return env
	}
	env.ErrorCode = "SYS_000"
	env.Cause = result.Cause.Error()
	return env
}

// JSON writes result as a single JSON line.
func JSON(w io.Writer, addr string, result redisgate.ProbeResult) error {
	return json.NewEncoder(w).Encode(NewEnvelope(addr, result))
}

// Text writes result as one human-readable line.
func Text(w io.Writer, addr string, result redisgate.ProbeResult) error {
	if result.Passed() {
		_, err := fmt.Fprintf(w, "redis ready at %s\n", addr)
		return err
	}
	_, err := fmt.Fprintf(w, "redis not ready: %s\n", result.Reason)
	return err
}
