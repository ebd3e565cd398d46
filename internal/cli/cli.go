package cli

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// validLogFormat reports whether the -log-format value is supported.
func validLogFormat(format string) bool {
	return format == "text" || format == "json"
}

// validLogLevel reports whether the -log-level value is supported.
func validLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
