// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrAPI matches every failed API response.
	ErrAPI = errors.New("api error")
	// ErrInvalidRequest matches 400 and 404 responses.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrRateLimit matches 429 responses.
	ErrRateLimit = errors.New("rate limit exceeded")
	// ErrTransport wraps failures that happened before a response arrived.
	ErrTransport = errors.New("transport error")
	// ErrWebSocket wraps failures of the real-time stream.
	ErrWebSocket = errors.New("websocket error")
)

// ErrorKind classifies a failed response.
type ErrorKind string

const (
	KindAPI            ErrorKind = "APIError"
	KindInvalidRequest ErrorKind = "InvalidRequestError"
	KindRateLimit      ErrorKind = "RateLimitError"
)

// APIError is returned for every response with status >= 400.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "<empty message>"
	}
	if e.RequestID != "" {
		return fmt.Sprintf("Request %s: %s", e.RequestID, msg)
	}
	return msg
}

// Is makes every APIError match ErrAPI, and the kind-specific sentinel.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAPI:
		return true
	case ErrInvalidRequest:
		return e.Kind == KindInvalidRequest
	case ErrRateLimit:
		return e.Kind == KindRateLimit
	}
	return false
}

// StreamError is the error frame sent by the real-time endpoint.
type StreamError struct {
	Message string
}

func (e *StreamError) Error() string {
	return e.Message
}

func (e *StreamError) Unwrap() error {
	return ErrWebSocket
}
