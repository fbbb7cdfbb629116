// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package analysis

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// Kind is the category of an analysis failure.
type Kind string

const (
	// KindMissingInput is a request missing the API key or video bytes.
	KindMissingInput Kind = "missing_input"
	// KindValidation is a client-side input failure, resolved without any
	// network call.
	KindValidation Kind = "validation"
	// KindInvalidCredential is a rejected API key.
	KindInvalidCredential Kind = "invalid_credential"
	// KindContentBlocked is a video rejected by the provider's safety filters.
	KindContentBlocked Kind = "content_blocked"
	// KindQuotaExceeded is provider quota or resource exhaustion.
	KindQuotaExceeded Kind = "quota_exceeded"
	// KindUnknown is any other provider failure, surfaced with its raw message.
	KindUnknown Kind = "unknown"
	// KindUnexpected is a failure that did not carry any message.
	KindUnexpected Kind = "unexpected"
)

// Error is a classified analysis failure with a user-facing message. It is
// the only error shape that crosses the HTTP boundary.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MissingInput reports a required request field absent before any network
// activity.
func MissingInput(message string) *Error {
	return &Error{
		Kind:    KindMissingInput,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// Validation reports a client-side input failure.
func Validation(message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// Unexpected reports a failure that carried no usable message.
func Unexpected(err error) *Error {
	return &Error{
		Kind:    KindUnexpected,
		Status:  http.StatusInternalServerError,
		Message: "An unexpected error occurred.",
		Err:     err,
	}
}

// Classify maps a raw provider or transport failure to exactly one Error.
// The provider does not expose a structured error enum, only free text, so
// the rules are ordered string matches. The order is a contract: credential
// signals win over safety signals, which win over quota signals.
func Classify(ctx context.Context, err error) *Error {
	if err == nil {
		return Unexpected(nil)
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API_KEY_INVALID") || strings.Contains(msg, "API key"):
		return &Error{
			Kind:    KindInvalidCredential,
			Status:  http.StatusUnauthorized,
			Message: "Invalid API key. Check your Google Gemini key.",
			Err:     err,
		}
	case strings.Contains(msg, "SAFETY"):
		return &Error{
			Kind:    KindContentBlocked,
			Status:  http.StatusBadRequest,
			Message: "The video was blocked by the safety filters.",
			Err:     err,
		}
	case strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return &Error{
			Kind:    KindQuotaExceeded,
			Status:  http.StatusTooManyRequests,
			Message: "API quota exceeded. Try again later.",
			Err:     err,
		}
	default:
		// Keep the raw wording visible in logs so new provider phrasings can
		// be promoted to explicit rules.
		slog.WarnContext(ctx, "analysis: unclassified provider error", "error", msg)
		return &Error{
			Kind:    KindUnknown,
			Status:  http.StatusInternalServerError,
			Message: msg,
			Err:     err,
		}
	}
}
