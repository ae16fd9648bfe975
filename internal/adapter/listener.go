// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sublime-security/sublime-cli/internal/config"
	"github.com/sublime-security/sublime-cli/internal/logger"
	"github.com/sublime-security/sublime-cli/models"
)

const (
	listenPath = "/" + APIVersion + "/org/listen/ws"
	// handshakeMessage is sent right after connecting; the server replies
	// with a confirmation frame.
	handshakeMessage = "test"
)

type wsEventListener struct {
	baseURL string
	apiKey  string
	dialer  *websocket.Dialer
	// insecure permits ws:// endpoints.
	insecure bool

	logger *logger.Logger
}

// NewWebsocketListener constructs a gorilla/websocket implementation of
// [EventListener]. Certificates are verified unless apiCfg targets a local
// environment.
func NewWebsocketListener(apiCfg config.API, apiKey string, logger *logger.Logger) EventListener {
	dialer := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: apiCfg.RequestTimeout,
	}
	if apiCfg.IsLocal() {
		dialer.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // local development only
	}

	return &wsEventListener{
		baseURL:  strings.TrimRight(apiCfg.BaseWebsocket, "/"),
		apiKey:   apiKey,
		dialer:   dialer,
		insecure: apiCfg.IsLocal(),
		logger:   logger,
	}
}

func (l *wsEventListener) endpoint(eventName string) string {
	q := url.Values{}
	q.Set("api_key", l.apiKey)
	q.Set("event_name", eventName)
	return l.baseURL + listenPath + "?" + q.Encode()
}

// checkScheme refuses plaintext endpoints outside local development: the
// API key travels in the query string.
func (l *wsEventListener) checkScheme() error {
	u, err := url.Parse(l.baseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWebSocket, err)
	}
	if u.Scheme == "wss" || (u.Scheme == "ws" && l.insecure) {
		return nil
	}
	return fmt.Errorf("%w: %q requires wss unless ENV=%s", ErrWebSocket, l.baseURL, config.EnvironmentLocal)
}

// Listen implements [EventListener].
func (l *wsEventListener) Listen(ctx context.Context, eventName string, handle func(models.Event) error) error {
	l.logger.Debug().Str("event_name", eventName).Str("url", l.baseURL+listenPath).Msg("connecting to event stream")

	if err := l.checkScheme(); err != nil {
		return err
	}

	conn, resp, err := l.dialer.DialContext(ctx, l.endpoint(eventName), nil)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		if resp != nil {
			return fmt.Errorf("%w: server rejected connection with HTTP %d", ErrWebSocket, resp.StatusCode)
		}
		return fmt.Errorf("%w: Failed to establish connection: %w", ErrWebSocket, err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		deadline := time.Now().Add(time.Second)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		_ = conn.Close()
	})
	defer stop()

	if err = conn.WriteMessage(websocket.TextMessage, []byte(handshakeMessage)); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrWebSocket, err)
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("%w: %w", ErrWebSocket, err)
		}

		event := ParseEvent(data)
		if err = streamFailure(event); err != nil {
			return err
		}

		if err = handle(event); err != nil {
			return err
		}
	}
}

// ParseEvent decodes a single stream frame. JSON objects populate
// Event.Document; anything else is kept verbatim.
func ParseEvent(data []byte) models.Event {
	event := models.Event{Raw: string(data)}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err == nil && doc != nil {
		event.Document = doc
	}
	return event
}

func streamFailure(event models.Event) error {
	if event.Document == nil {
		return nil
	}
	success, ok := event.Document.Bool("success")
	if !ok || success {
		return nil
	}

	msg := event.Document.String("error")
	if msg == "" {
		if raw, err := json.Marshal(event.Document["error"]); err == nil {
			msg = string(raw)
		}
	}
	return &StreamError{Message: msg}
}
