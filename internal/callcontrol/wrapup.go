package callcontrol

import (
	"errors"
	"fmt"
	"strings"
)

// Wrap-up validation errors.
var (
	ErrNoWrapUpReason      = errors.New("a wrap-up reason is required")
	ErrUnknownWrapUpReason = errors.New("unknown wrap-up reason")
)

// WrapUpReason is a disposition code offered at wrap-up.
type WrapUpReason struct {
	ID        string `json:"id"                  yaml:"id"`
	Name      string `json:"name"                yaml:"name"`
	IsDefault bool   `json:"isDefault,omitempty" yaml:"default,omitempty"`
}

// DefaultWrapUpReason returns the reason flagged as default, if any.
func DefaultWrapUpReason(reasons []WrapUpReason) (WrapUpReason, bool) {
	for _, r := range reasons {
		if r.IsDefault {
			return r, true
		}
	}
	return WrapUpReason{}, false
}

// ValidateWrapUp resolves id against reasons.
func ValidateWrapUp(id string, reasons []WrapUpReason) (WrapUpReason, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return WrapUpReason{}, ErrNoWrapUpReason
	}
	for _, r := range reasons {
		if r.ID == id {
			return r, nil
		}
	}
	return WrapUpReason{}, fmt.Errorf("%w: %q", ErrUnknownWrapUpReason, id)
}
