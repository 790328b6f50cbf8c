package picker

import "fmt"

// ConfigError reports an invalid picker configuration. It is returned
// from New before any terminal takeover; once a session is running the
// cursor and selection operations are total and cannot fail.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "picker: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
