package draft

import "errors"

// ErrorKind discriminates the three failure classes of the draft core so the
// HTTP layer can map them to distinct status codes without string matching.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindUnauthorized
	KindValidation
)

// Error is the tagged error type returned by all draft operations.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFoundError reports a missing draft, revision or comment.
func NotFoundError(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// UnauthorizedError reports a gate refusal. The message deliberately contains
// the word "authorized" because some callers still pattern-match on it.
func UnauthorizedError(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }

// ValidationError reports malformed client input.
func ValidationError(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

func IsNotFound(err error) bool     { return isKind(err, KindNotFound) }
func IsUnauthorized(err error) bool { return isKind(err, KindUnauthorized) }
func IsValidation(err error) bool   { return isKind(err, KindValidation) }

func isKind(err error, k ErrorKind) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind == k
	}
	return false
}
