package output

import "io"

// Error kinds surfaced in the JSON error shape. The first two are
// expected environment preconditions: they go to stdout with a zero
// exit so orchestrating tooling can treat "feature unavailable" as "no
// data" rather than a crash. The rest are fatal and go to stderr with a
// failing exit.
const (
	KindNotITerm      = "not_iterm2"
	KindNoAutomation  = "no_automation"
	KindNoSession     = "session_not_found"
	KindNoWindow      = "window_not_found"
	KindWorkerFailed  = "worker_create_failed"
	KindWeatherFailed = "weather_failed"
)

// CLIError is the structured error object emitted instead of a status
// record when the pipeline cannot run.
type CLIError struct {
	Kind    string `json:"error"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *CLIError) Error() string { return e.Message }

// WriteError emits the error shape as one JSON line to w.
func WriteError(w io.Writer, kind, message string) error {
	return WriteJSON(w, &CLIError{Kind: kind, Message: message}, false)
}
