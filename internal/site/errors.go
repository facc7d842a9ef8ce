package site

import (
	"fmt"
	"strings"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// Reason classifies why a field failed validation.
type Reason string

const (
	ReasonMissingField      Reason = "missing required field"
	ReasonMalformedURL      Reason = "malformed URL"
	ReasonConflictingFields Reason = "conflicting fields"
	ReasonMalformedBase     Reason = "malformed base path"
	ReasonNestedGroup       Reason = "nested group"
	ReasonUnsupportedValue  Reason = "unsupported value"
	ReasonOutOfRange        Reason = "value out of range"
)

// ValidationError reports the first authored field Build rejected. Path uses
// the authored structure, e.g. "sidebar[1].items[0].link".
type ValidationError struct {
	Path   string
	Reason Reason
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("site config: %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("site config: %s: %s: %s", e.Path, e.Reason, e.Detail)
}

// Unwrap exposes the classified form so CLI and HTTP adapters can map
// validation failures without knowing this package.
func (e *ValidationError) Unwrap() error {
	msg := string(e.Reason)
	if e.Detail != "" {
		msg = e.Detail
	}
	return ferrors.ValidationError(msg).
		WithContext("path", e.Path).
		WithContext("reason", string(e.Reason)).
		Build()
}

func invalid(path string, reason Reason, format string, args ...any) *ValidationError {
	return &ValidationError{Path: path, Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

func indexPath(prefix string, i int) string {
	return fmt.Sprintf("%s[%d]", prefix, i)
}

func fieldPath(parts ...string) string {
	return strings.Join(parts, ".")
}
