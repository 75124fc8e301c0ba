package payment

import (
	"errors"
	"strings"
)

const defaultRejection = "Failed to generate payment link"

var (
	ErrNotConfigured = errors.New("payment: merchant credentials are not configured")
	ErrRejected      = errors.New("payment: gateway rejected the request")
	ErrNetwork       = errors.New("payment: gateway unreachable")
)

// ConfigError lists the merchant settings that are missing.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	if len(e.Missing) == 0 {
		return ErrNotConfigured.Error()
	}
	return ErrNotConfigured.Error() + ": " + strings.Join(e.Missing, ", ")
}

func (e *ConfigError) Is(target error) bool { return target == ErrNotConfigured }

// RejectionError is a gateway answer with a non-zero response code.
type RejectionError struct {
	Code    string
	Message string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return defaultRejection
	}
	return e.Message
}

func (e *RejectionError) Is(target error) bool { return target == ErrRejected }
