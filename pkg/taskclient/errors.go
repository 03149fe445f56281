package taskclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Op names the operation that failed.
type Op string

const (
	OpFetch  Op = "FetchFailed"
	OpCreate Op = "CreateFailed"
	OpUpdate Op = "UpdateFailed"
	OpDelete Op = "DeleteFailed"
)

var (
	// ErrTransport means no usable response came back from the server.
	ErrTransport = errors.New("transport error")
	// ErrUnexpectedStatus means the server answered with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// Error is the single failure type returned by Client methods.
type Error struct {
	Op         Op
	TaskID     string
	StatusCode int
	// Message is the server's error message, when it sent one.
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := string(e.Op)
	if e.TaskID != "" {
		msg += " (task " + e.TaskID + ")"
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
		if e.Message != "" {
			msg += ": " + e.Message
		}
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports whether the server said the task does not exist.
func (e *Error) NotFound() bool { return e.StatusCode == http.StatusNotFound }

// BadRequest reports whether the server rejected the input.
func (e *Error) BadRequest() bool { return e.StatusCode == http.StatusBadRequest }

// OpOf returns the failed operation carried by err, if any.
func OpOf(err error) (Op, bool) {
	var opErr *Error
	if errors.As(err, &opErr) {
		return opErr.Op, true
	}
	return "", false
}

type statusError struct {
	code    int
	message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.code, e.message)
}

// apiErrorBody mirrors the server's {"error":{"code","message"}} payload.
type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newStatusError(code int, body []byte) *statusError {
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return &statusError{code: code, message: parsed.Error.Message}
	}
	return &statusError{code: code, message: http.StatusText(code)}
}
