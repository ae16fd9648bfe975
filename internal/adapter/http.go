// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sublime-security/sublime-cli/internal/config"
	"github.com/sublime-security/sublime-cli/internal/logger"
	"github.com/sublime-security/sublime-cli/internal/utils"
	"github.com/sublime-security/sublime-cli/models"
)

// APIVersion is the path segment prepended to every endpoint.
const APIVersion = "v1"

const (
	epMessageAnalyze           = "/message/analyze"
	epMessageAnalyzeMulti      = "/message/analyze/multi"
	epMessageEnrich            = "/message/enrich"
	epMessageCreate            = "/message/create"
	epModelAnalyze             = "/model/analyze"
	epModelAnalyzeMulti        = "/model/analyze/multi"
	epModelQuery               = "/model/query"
	epModelQueryMulti          = "/model/query/multi"
	epCommunityDetections      = "/community/detections"
	epCommunityDetectionByID   = "/community/detections/{id}"
	epCommunityDetectionByName = "/community/detections/name/{name}"
	epSubscribeDetectionByID   = "/community/detections/{id}/subscribe"
	epUnsubscribeDetectionByID = "/community/detections/{id}/unsubscribe"
	epOrgDetections            = "/org/detections"
	epOrgDetectionByID         = "/org/detections/{id}"
	epOrgDetectionByName       = "/org/detections/name/{name}"
	epShareOrgDetectionByID    = "/org/detections/{id}/share"
	epUnshareOrgDetectionByID  = "/org/detections/{id}/unshare"
	epAdminActionReview        = "/actions/admin/review/{id}"
	epAdminActionReviewAll     = "/actions/admin/review/multi/all"
	epAdminActionDelete        = "/actions/admin/delete/{id}"
	epMe                       = "/org/sublime-users/me"
	epOrg                      = "/org"
	epUsers                    = "/org/users"
	epUserLicense              = "/org/users/email/{email}/license"
	epFlaggedMessages          = "/org/flagged-messages"
	epFlaggedMessageDetail     = "/org/flagged-messages/{id}/detail"
	epSendMockTutorialOne      = "/org/sublime-users/mock-tutorial-one"
	epBacktestDetections       = "/org/detections/backtest/multi"
	epJobStatus                = "/jobs/{id}/status"
	epJobOutput                = "/jobs/{id}/output"
	epFeedback                 = "/feedback"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	apiKey    string
	userAgent string
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// Every request is sent to <apiCfg.BaseURL>/v1 with the Key, User-Agent and
// X-Request-Id headers set. A request id stored in the context with
// [utils.WithRequestID] is reused; otherwise a fresh one is generated.
func NewHTTPServerAdapter(apiCfg config.API, apiKey string, buildInfo models.AppBuildInfo, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(apiCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL+"/"+APIVersion, apiCfg.RequestTimeout)

	return &httpServerAdapter{
		client:    client,
		apiKey:    apiKey,
		userAgent: buildInfo.UserAgent(),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type apiRequest struct {
	method     string
	endpoint   string
	pathParams map[string]string
	query      url.Values
	body       any
}

func (h *httpServerAdapter) send(ctx context.Context, r apiRequest) (models.Document, error) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Key", h.apiKey).
		SetHeader("User-Agent", h.userAgent).
		SetHeader(headerRequestID, requestID).
		SetHeader("Accept", "application/json")

	if r.pathParams != nil {
		req.SetPathParams(r.pathParams)
	}
	if r.query != nil {
		req.SetQueryParamsFromValues(r.query)
	}
	if r.body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(r.body)
	}

	h.logger.Debug().
		Str("method", r.method).
		Str("endpoint", r.endpoint).
		Str("request_id", requestID).
		Msg("sending API request")

	resp, err := req.Execute(r.method, r.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, r.method, r.endpoint, err)
	}

	h.logger.Debug().
		Int("status", resp.StatusCode()).
		Str("request_id", requestID).
		Dur("elapsed", resp.Time()).
		Msg("received API response")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeBody(resp), nil
}

// decodeBody turns a successful response into a document. JSON objects are
// returned as-is, other JSON values under "data", and plain text under
// "message". Numbers keep their textual form.
func decodeBody(resp *resty.Response) models.Document {
	raw := bytes.TrimSpace(resp.Body())
	if resp.StatusCode() == http.StatusNoContent || len(raw) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return models.Document{"message": string(raw)}
	}

	if doc, ok := v.(map[string]any); ok {
		return models.Document(doc)
	}
	return models.Document{"data": v}
}

func (h *httpServerAdapter) post(ctx context.Context, endpoint string, body any) (models.Document, error) {
	return h.send(ctx, apiRequest{method: http.MethodPost, endpoint: endpoint, body: body})
}

func (h *httpServerAdapter) byID(method, endpoint, id string) apiRequest {
	return apiRequest{method: method, endpoint: endpoint, pathParams: map[string]string{"id": id}}
}

// EnrichMessage implements [ServerAdapter]. POST /message/enrich.
func (h *httpServerAdapter) EnrichMessage(ctx context.Context, req models.MessageRequest) (models.Document, error) {
	return h.post(ctx, epMessageEnrich, req)
}

// CreateMessageDataModel implements [ServerAdapter]. POST /message/create.
// The route type is not part of this endpoint.
func (h *httpServerAdapter) CreateMessageDataModel(ctx context.Context, req models.MessageRequest) (models.Document, error) {
	req.RouteType = ""
	return h.post(ctx, epMessageCreate, req)
}

// AnalyzeMessage implements [ServerAdapter]. POST /message/analyze.
func (h *httpServerAdapter) AnalyzeMessage(ctx context.Context, req models.AnalyzeMessageRequest) (models.Document, error) {
	return h.post(ctx, epMessageAnalyze, req)
}

// AnalyzeMessageMulti implements [ServerAdapter]. POST /message/analyze/multi.
func (h *httpServerAdapter) AnalyzeMessageMulti(ctx context.Context, req models.AnalyzeMessageRequest) (models.Document, error) {
	return h.post(ctx, epMessageAnalyzeMulti, req)
}

// AnalyzeModel implements [ServerAdapter]. POST /model/analyze.
func (h *httpServerAdapter) AnalyzeModel(ctx context.Context, req models.AnalyzeModelRequest) (models.Document, error) {
	return h.post(ctx, epModelAnalyze, req)
}

// AnalyzeModelMulti implements [ServerAdapter]. POST /model/analyze/multi.
func (h *httpServerAdapter) AnalyzeModelMulti(ctx context.Context, req models.AnalyzeModelRequest) (models.Document, error) {
	return h.post(ctx, epModelAnalyzeMulti, req)
}

// QueryModel implements [ServerAdapter]. POST /model/query.
func (h *httpServerAdapter) QueryModel(ctx context.Context, req models.QueryModelRequest) (models.Document, error) {
	return h.post(ctx, epModelQuery, req)
}

// QueryModelMulti implements [ServerAdapter]. POST /model/query/multi.
func (h *httpServerAdapter) QueryModelMulti(ctx context.Context, req models.QueryModelRequest) (models.Document, error) {
	return h.post(ctx, epModelQueryMulti, req)
}

// CreateOrgDetection implements [ServerAdapter]. POST /org/detections.
func (h *httpServerAdapter) CreateOrgDetection(ctx context.Context, req models.CreateDetectionRequest) (models.Document, error) {
	return h.post(ctx, epOrgDetections, req)
}

// UpdateOrgDetection implements [ServerAdapter]. PATCH /org/detections/{id}.
func (h *httpServerAdapter) UpdateOrgDetection(ctx context.Context, id string, req models.UpdateDetectionRequest) (models.Document, error) {
	r := h.byID(http.MethodPatch, epOrgDetectionByID, id)
	r.body = req
	return h.send(ctx, r)
}

// UpdateOrgDetectionByName implements [ServerAdapter].
// PATCH /org/detections/name/{name}.
func (h *httpServerAdapter) UpdateOrgDetectionByName(ctx context.Context, name string, req models.UpdateDetectionRequest) (models.Document, error) {
	req.Name = nil
	return h.send(ctx, apiRequest{
		method:     http.MethodPatch,
		endpoint:   epOrgDetectionByName,
		pathParams: map[string]string{"name": name},
		body:       req,
	})
}

func detectionQuery(filter models.DetectionFilter) url.Values {
	q := url.Values{}
	if filter.Active != nil {
		q.Set("active", strconv.FormatBool(*filter.Active))
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.CreatedByOrgID != "" {
		q.Set("created_by_org_id", filter.CreatedByOrgID)
	}
	if filter.CreatedBySublimeUserID != "" {
		q.Set("created_by_sublime_user_id", filter.CreatedBySublimeUserID)
	}
	return q
}

// GetOrgDetections implements [ServerAdapter]. GET /org/detections.
func (h *httpServerAdapter) GetOrgDetections(ctx context.Context, filter models.DetectionFilter) (models.Document, error) {
	return h.send(ctx, apiRequest{method: http.MethodGet, endpoint: epOrgDetections, query: detectionQuery(filter)})
}

// GetOrgDetection implements [ServerAdapter]. GET /org/detections/{id}.
func (h *httpServerAdapter) GetOrgDetection(ctx context.Context, id string) (models.Document, error) {
	return h.send(ctx, h.byID(http.MethodGet, epOrgDetectionByID, id))
}

// GetOrgDetectionByName implements [ServerAdapter].
// GET /org/detections/name/{name}.
func (h *httpServerAdapter) GetOrgDetectionByName(ctx context.Context, name string) (models.Document, error) {
	return h.send(ctx, apiRequest{
		method:     http.MethodGet,
		endpoint:   epOrgDetectionByName,
		pathParams: map[string]string{"name": name},
	})
}

// ShareOrgDetection implements [ServerAdapter]. POST /org/detections/{id}/share.
func (h *httpServerAdapter) ShareOrgDetection(ctx context.Context, id string, req models.ShareRequest) (models.Document, error) {
	r := h.byID(http.MethodPost, epShareOrgDetectionByID, id)
	r.body = req
	return h.send(ctx, r)
}

// UnshareOrgDetection implements [ServerAdapter].
// POST /org/detections/{id}/unshare.
func (h *httpServerAdapter) UnshareOrgDetection(ctx context.Context, id string) (models.Document, error) {
	return h.send(ctx, h.byID(http.MethodPost, epUnshareOrgDetectionByID, id))
}

// GetCommunityDetections implements [ServerAdapter]. GET /community/detections.
// The active filter does not apply to community detections.
func (h *httpServerAdapter) GetCommunityDetections(ctx context.Context, filter models.DetectionFilter) (models.Document, error) {
	filter.Active = nil
	return h.send(ctx, apiRequest{method: http.MethodGet, endpoint: epCommunityDetections, query: detectionQuery(filter)})
}

// GetCommunityDetection implements [ServerAdapter].
// GET /community/detections/{id}.
func (h *httpServerAdapter) GetCommunityDetection(ctx context.Context, id string) (models.Document, error) {
	return h.send(ctx, h.byID(http.MethodGet, epCommunityDetectionByID, id))
}

// GetCommunityDetectionByName implements [ServerAdapter].
// GET /community/detections/name/{name}.
func (h *httpServerAdapter) GetCommunityDetectionByName(ctx context.Context, name string) (models.Document, error) {
	return h.send(ctx, apiRequest{
		method:     http.MethodGet,
		endpoint:   epCommunityDetectionByName,
		pathParams: map[string]string{"name": name},
	})
}

// SubscribeCommunityDetection implements [ServerAdapter].
// POST /community/detections/{id}/subscribe.
func (h *httpServerAdapter) SubscribeCommunityDetection(ctx context.Context, id string, req models.SubscribeRequest) (models.Document, error) {
	r := h.byID(http.MethodPost, epSubscribeDetectionByID, id)
	r.body = req
	return h.send(ctx, r)
}

// UnsubscribeCommunityDetection implements [ServerAdapter].
// POST /community/detections/{id}/unsubscribe.
func (h *httpServerAdapter) UnsubscribeCommunityDetection(ctx context.Context, id string) (models.Document, error) {
	return h.send(ctx, h.byID(http.MethodPost, epUnsubscribeDetectionByID, id))
}

// GetFlaggedMessages implements [ServerAdapter]. GET /org/flagged-messages.
// Results are always exclusive of the window bounds.
func (h *httpServerAdapter) GetFlaggedMessages(ctx context.Context, filter models.FlaggedMessagesFilter) (models.Document, error) {
	q := url.Values{}
	q.Set("result", strconv.FormatBool(filter.Result))
	q.Set("inclusive", "false")
	if filter.After != nil {
		q.Set("start_time", filter.After.ISO())
	}
	if filter.Before != nil {
		q.Set("end_time", filter.Before.ISO())
	}
	if filter.Reviewed != nil {
		q.Set("reviewed", strconv.FormatBool(*filter.Reviewed))
	}
	if filter.Safe != nil {
		q.Set("safe", strconv.FormatBool(*filter.Safe))
	}

	return h.send(ctx, apiRequest{method: http.MethodGet, endpoint: epFlaggedMessages, query: q})
}

// GetFlaggedMessageDetail implements [ServerAdapter].
// GET /org/flagged-messages/{id}/detail.
func (h *httpServerAdapter) GetFlaggedMessageDetail(ctx context.Context, id string) (models.Document, error) {
	return h.send(ctx, h.byID(http.MethodGet, epFlaggedMessageDetail, id))
}

// ReviewMessage implements [ServerAdapter]. POST /actions/admin/review/{id}.
func (h *httpServerAdapter) ReviewMessage(ctx context.Context, id string, req models.ReviewRequest) (models.Document, error) {
	r := h.byID(http.MethodPost, epAdminActionReview, id)
	r.body = req
	return h.send(ctx, r)
}

// ReviewAllMessages implements [ServerAdapter].
// POST /actions/admin/review/multi/all.
func (h *httpServerAdapter) ReviewAllMessages(ctx context.Context, req models.ReviewAllRequest) (models.Document, error) {
	req.Inclusive = false
	return h.post(ctx, epAdminActionReviewAll, req)
}

// DeleteMessage implements [ServerAdapter]. DELETE /actions/admin/delete/{id}.
func (h *httpServerAdapter) DeleteMessage(ctx context.Context, id string, permanent bool) (models.Document, error) {
	r := h.byID(http.MethodDelete, epAdminActionDelete, id)
	if permanent {
		r.query = url.Values{"permanent": {"true"}}
	}
	return h.send(ctx, r)
}

// GetMe implements [ServerAdapter]. GET /org/sublime-users/me.
func (h *httpServerAdapter) GetMe(ctx context.Context) (models.Document, error) {
	return h.send(ctx, apiRequest{method: http.MethodGet, endpoint: epMe})
}

// GetOrg implements [ServerAdapter]. GET /org.
func (h *httpServerAdapter) GetOrg(ctx context.Context) (models.Document, error) {
	return h.send(ctx, apiRequest{method: http.MethodGet, endpoint: epOrg})
}

// GetUsers implements [ServerAdapter]. GET /org/users.
func (h *httpServerAdapter) GetUsers(ctx context.Context, licenseActive *bool) (models.Document, error) {
	r := apiRequest{method: http.MethodGet, endpoint: epUsers}
	if licenseActive != nil {
		r.query = url.Values{"license_active": {strconv.FormatBool(*licenseActive)}}
	}
	return h.send(ctx, r)
}

// UpdateUserLicense implements [ServerAdapter].
// PATCH /org/users/email/{email}/license.
func (h *httpServerAdapter) UpdateUserLicense(ctx context.Context, email string, req models.LicenseRequest) (models.Document, error) {
	return h.send(ctx, apiRequest{
		method:     http.MethodPatch,
		endpoint:   epUserLicense,
		pathParams: map[string]string{"email": email},
		body:       req,
	})
}

// BacktestDetections implements [ServerAdapter].
// POST /org/detections/backtest/multi.
func (h *httpServerAdapter) BacktestDetections(ctx context.Context, req models.BacktestRequest) (models.Document, error) {
	req.Inclusive = false
	return h.post(ctx, epBacktestDetections, req)
}

// GetJobStatus implements [ServerAdapter]. GET /jobs/{id}/status.
func (h *httpServerAdapter) GetJobStatus(ctx context.Context, id string) (models.Document, error) {
	return h.send(ctx, h.byID(http.MethodGet, epJobStatus, id))
}

// GetJobOutput implements [ServerAdapter]. GET /jobs/{id}/output.
func (h *httpServerAdapter) GetJobOutput(ctx context.Context, id string) (models.Document, error) {
	return h.send(ctx, h.byID(http.MethodGet, epJobOutput, id))
}

// SendMockTutorialOne implements [ServerAdapter].
// POST /org/sublime-users/mock-tutorial-one.
func (h *httpServerAdapter) SendMockTutorialOne(ctx context.Context) (models.Document, error) {
	return h.send(ctx, apiRequest{method: http.MethodPost, endpoint: epSendMockTutorialOne})
}

// SendFeedback implements [ServerAdapter]. POST /feedback.
func (h *httpServerAdapter) SendFeedback(ctx context.Context, req models.FeedbackRequest) (models.Document, error) {
	return h.post(ctx, epFeedback, req)
}
