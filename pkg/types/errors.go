// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrorKind is a coarse classification of query and fetch failures.
type ErrorKind string

const (
	KindMalformedQuery    ErrorKind = "malformed_query"
	KindProviderStatus    ErrorKind = "provider_status"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindEntryExtraction   ErrorKind = "entry_extraction"
	KindTransport         ErrorKind = "transport"
)

// Sentinel errors, one per kind. errors.Is(err, ErrProviderStatus) holds for
// any *Error of that kind.
var (
	ErrMalformedQuery    = errors.New("malformed query")
	ErrProviderStatus    = errors.New("provider status")
	ErrMalformedResponse = errors.New("malformed response")
	ErrEntryExtraction   = errors.New("entry extraction failure")
	ErrTransport         = errors.New("transport failure")
)

var kindSentinels = map[ErrorKind]error{
	KindMalformedQuery:    ErrMalformedQuery,
	KindProviderStatus:    ErrProviderStatus,
	KindMalformedResponse: ErrMalformedResponse,
	KindEntryExtraction:   ErrEntryExtraction,
	KindTransport:         ErrTransport,
}

// Error carries operation context and a kind.
type Error struct {
	Op   string
	Kind ErrorKind

	// StatusCode is set for KindProviderStatus.
	StatusCode int

	// Index is the zero-based entry position for KindEntryExtraction.
	Index int

	Err error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	switch e.Kind {
	case KindProviderStatus:
		base += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	case KindEntryExtraction:
		base += fmt.Sprintf(" (entry %d)", e.Index)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// IsKind classifies err without the caller knowing which package produced it.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// StatusCode returns the HTTP status of a provider-status failure, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindProviderStatus {
		return e.StatusCode
	}
	return 0
}
