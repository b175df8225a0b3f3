package xerrors

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindFormat
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindFormat:
		return "format"
	case KindNotFound:
		return "not found"
	default:
		return "internal"
	}
}

type Error struct {
	Kind       Kind
	Message    string
	Cause      error
	Validation *ValidationInfo
}

type ValidationInfo struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Validation != nil && len(e.Validation.Fields) > 0 {
		msg += ": " + e.Validation.String()
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// String lists the fields in key order so messages are stable.
func (v *ValidationInfo) String() string {
	keys := slices.Sorted(maps.Keys(v.Fields))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " " + v.Fields[k]
	}
	return strings.Join(parts, "; ")
}

func Internal(opts ...Option) *Error      { return newErr(KindInternal, opts) }
func InvalidFormat(opts ...Option) *Error { return newErr(KindFormat, opts) }
func NotFound(opts ...Option) *Error      { return newErr(KindNotFound, opts) }

func Validation(fields map[string]string, opts ...Option) *Error {
	e := newErr(KindValidation, opts)
	e.Validation = &ValidationInfo{Fields: fields}
	return e
}

func newErr(kind Kind, opts []Option) *Error {
	e := &Error{Kind: kind, Message: kind.String() + " error"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithCause(err error) Option    { return func(e *Error) { e.Cause = err } }

func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Is reports whether err wraps an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e := As(err)
	return e != nil && e.Kind == kind
}
