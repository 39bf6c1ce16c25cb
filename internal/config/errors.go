package config

import "fmt"

// ConfigError reports invalid user input: flags, arguments or config file values.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
