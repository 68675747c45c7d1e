// Package common defines shared constants, helpers and the error taxonomy
// used by the server and the client. Callers classify failures with KindOf
// or match them with errors.Is against the sentinel values below.
package common

import "errors"

// Kind enumerates every failure class the service can report.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindDuplicateEmail
	KindInvalidCredentials
	KindMalformedToken
	KindExpiredToken
	KindUserNotFound
	KindAuth
)

var kindNames = map[Kind]string{
	KindInternal:           "internal",
	KindValidation:         "validation",
	KindDuplicateEmail:     "duplicate_email",
	KindInvalidCredentials: "invalid_credentials",
	KindMalformedToken:     "malformed_token",
	KindExpiredToken:       "expired_token",
	KindUserNotFound:       "user_not_found",
	KindAuth:               "auth",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Error is a classified failure. Msg is safe to show to the caller,
// Err is the underlying cause and is only meant for logs.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match for any *Error of the same kind, so that
// errors.Is(err, ErrValidation) holds for every validation failure.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Classified errors.
	ErrInternal           = &Error{Kind: KindInternal, Msg: "internal error"}
	ErrValidation         = &Error{Kind: KindValidation, Msg: "validation error"}
	ErrDuplicateEmail     = &Error{Kind: KindDuplicateEmail, Msg: "User with this email already exists"}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Msg: "Invalid email or password"}
	ErrMalformedToken     = &Error{Kind: KindMalformedToken, Msg: "Invalid token"}
	ErrTokenExpired       = &Error{Kind: KindExpiredToken, Msg: "Token expired. Please login again."}
	ErrUserNotFound       = &Error{Kind: KindUserNotFound, Msg: "User not found"}
	ErrAuth               = &Error{Kind: KindAuth, Msg: "Error authenticating token"}
)

// Validation builds a validation failure with a caller-facing message.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// Internal wraps cause as an internal failure.
func Internal(cause error) error {
	return &Error{Kind: KindInternal, Msg: ErrInternal.Msg, Err: cause}
}

// Wrap attaches cause to a copy of the sentinel e.
func Wrap(e *Error, cause error) error {
	return &Error{Kind: e.Kind, Msg: e.Msg, Err: cause}
}

// KindOf classifies err. Anything that is not an *Error is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the caller-facing message of a classified error, or
// fallback when err carries none.
func MessageOf(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal && e.Msg != "" {
		return e.Msg
	}
	return fallback
}
