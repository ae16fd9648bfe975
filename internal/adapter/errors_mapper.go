// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const headerRequestID = "X-Request-Id"

type errorBody struct {
	Error *struct {
		Message *string `json:"message"`
	} `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() < http.StatusBadRequest {
		return nil
	}

	apiErr := &APIError{
		Kind:       KindAPI,
		StatusCode: resp.StatusCode(),
		RequestID:  resp.Header().Get(headerRequestID),
	}

	raw := resp.Body()
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == nil || body.Error.Message == nil {
		apiErr.Message = fmt.Sprintf("Invalid response from API: %q (HTTP response code was %d)",
			strings.TrimSpace(string(raw)), resp.StatusCode())
		return apiErr
	}

	apiErr.Message = *body.Error.Message
	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusNotFound:
		apiErr.Kind = KindInvalidRequest
	case http.StatusTooManyRequests:
		apiErr.Kind = KindRateLimit
	}

	return apiErr
}
