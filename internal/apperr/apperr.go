// Package apperr classifies request failures so that the HTTP layer can map
// them to a status code in one place.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindConfig
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindConfig:
		return "config_error"
	case KindUpstream:
		return "upstream_error"
	default:
		return "internal_error"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func BadRequest(msg string, cause error) *Error {
	return &Error{Kind: KindBadRequest, Message: msg, Err: cause}
}

func Config(msg string) *Error {
	return &Error{Kind: KindConfig, Message: msg}
}

func Upstream(msg string, cause error) *Error {
	return &Error{Kind: KindUpstream, Message: msg, Err: cause}
}

func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: cause}
}

// KindOf returns KindInternal for errors that were never classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func StatusFor(k Kind) int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindConfig, KindUpstream, KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func Status(err error) int {
	return StatusFor(KindOf(err))
}
