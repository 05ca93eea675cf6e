package entity

// ConfigError reports a bad or missing spawn descriptor. It aborts only the
// spawn that raised it.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Reason
}
