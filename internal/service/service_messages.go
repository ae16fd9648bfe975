// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/sublime-security/sublime-cli/internal/adapter"
	"github.com/sublime-security/sublime-cli/internal/loader"
	"github.com/sublime-security/sublime-cli/internal/logger"
	"github.com/sublime-security/sublime-cli/models"
)

type messageService struct {
	adapter    adapter.ServerAdapter
	permission PermissionService
}

// NewMessageService returns a MessageService. Every upload is preceded by
// permission.Request.
func NewMessageService(serverAdapter adapter.ServerAdapter, permission PermissionService) MessageService {
	return &messageService{adapter: serverAdapter, permission: permission}
}

func (s *messageService) Enrich(ctx context.Context, params MessageParams) (models.Document, error) {
	req, err := s.messageRequest(ctx, CommandEnrich, params)
	if err != nil {
		return nil, err
	}
	return s.adapter.EnrichMessage(ctx, req)
}

func (s *messageService) Generate(ctx context.Context, params MessageParams) (models.Document, error) {
	req, err := s.messageRequest(ctx, CommandGenerate, params)
	if err != nil {
		return nil, err
	}
	return s.adapter.CreateMessageDataModel(ctx, req)
}

func (s *messageService) messageRequest(ctx context.Context, command string, params MessageParams) (models.MessageRequest, error) {
	routeType, err := models.ParseRouteType(params.RouteType)
	if err != nil {
		return models.MessageRequest{}, err
	}

	raw, err := loadRawMessage(params.InputPath)
	if err != nil {
		return models.MessageRequest{}, err
	}

	if err = s.permission.Request(ctx, command); err != nil {
		return models.MessageRequest{}, err
	}

	return models.MessageRequest{
		Message:             raw,
		MailboxEmailAddress: optional(params.Mailbox),
		RouteType:           routeType,
	}, nil
}

func (s *messageService) Analyze(ctx context.Context, params AnalyzeParams) (models.Document, error) {
	detections, err := loadDetections(ctx, params.DetectionsPath, params.RawDetection, "")
	if err != nil {
		return nil, err
	}
	multi := params.DetectionsPath != ""

	routeType, err := models.ParseRouteType(params.RouteType)
	if err != nil {
		return nil, err
	}

	responseType := ""
	if params.Verbose {
		responseType = models.ResponseTypeFull
	}

	kind := loader.DetectInputKind(params.InputPath)
	if kind == loader.KindMBOX {
		return s.analyzeMailbox(ctx, params, detections, routeType, responseType)
	}

	var result models.Document
	if kind == loader.KindMDM {
		mdm, err := loader.LoadMessageDataModel(params.InputPath)
		if err != nil {
			return nil, err
		}
		if err = s.permission.Request(ctx, CommandAnalyze); err != nil {
			return nil, err
		}

		req := models.AnalyzeModelRequest{MessageDataModel: mdm, ResponseType: responseType}
		if multi {
			req.Detections = detections
			result, err = s.adapter.AnalyzeModelMulti(ctx, req)
		} else {
			req.Detection = &detections[0]
			result, err = s.adapter.AnalyzeModel(ctx, req)
		}
		if err != nil {
			return nil, err
		}
		return sortResults(result), nil
	}

	raw, err := loadRawMessage(params.InputPath)
	if err != nil {
		return nil, err
	}
	if err = s.permission.Request(ctx, CommandAnalyze); err != nil {
		return nil, err
	}

	req := models.AnalyzeMessageRequest{
		Message:             raw,
		MailboxEmailAddress: optional(params.Mailbox),
		RouteType:           routeType,
		ResponseType:        responseType,
	}
	if multi {
		req.Detections = detections
		result, err = s.adapter.AnalyzeMessageMulti(ctx, req)
	} else {
		req.Detection = &detections[0]
		result, err = s.adapter.AnalyzeMessage(ctx, req)
	}
	if err != nil {
		return nil, err
	}
	return sortResults(result), nil
}

// analyzeMailbox runs detections against every message of a mailbox and
// tags each result with the message key. Messages keep file order.
func (s *messageService) analyzeMailbox(
	ctx context.Context,
	params AnalyzeParams,
	detections []models.Detection,
	routeType models.RouteType,
	responseType string,
) (models.Document, error) {
	messages, err := loader.LoadMBOX(ctx, params.InputPath)
	if err != nil {
		return nil, err
	}
	if err = s.permission.Request(ctx, CommandAnalyze); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	results := make([]models.Document, 0, len(messages))
	for _, m := range messages {
		log.Debug().Str("message", m.Key).Int("detections", len(detections)).Msg("analyzing mailbox message")

		resp, err := s.adapter.AnalyzeMessageMulti(ctx, models.AnalyzeMessageRequest{
			Message:             m.Message,
			Detections:          detections,
			MailboxEmailAddress: optional(params.Mailbox),
			RouteType:           routeType,
			ResponseType:        responseType,
		})
		if err != nil {
			return nil, fmt.Errorf("error analyzing message %q: %w", m.Key, err)
		}

		messageResults := listOf(resp, models.FieldResults)
		models.SortDocumentsBy(messageResults, "name")
		for _, r := range messageResults {
			r[models.FieldMessageKey] = m.Key
			results = append(results, r)
		}
	}

	return wrapList(models.FieldResults, results...), nil
}

func (s *messageService) Query(ctx context.Context, params QueryParams) (models.Document, error) {
	if params.QueriesPath == "" && params.RawQuery == "" {
		return nil, ErrMissingQueryInput
	}

	mdm, err := loader.LoadMessageDataModel(params.InputPath)
	if err != nil {
		return nil, err
	}

	req := models.QueryModelRequest{MessageDataModel: mdm}
	if params.Verbose {
		req.ResponseType = models.ResponseTypeFull
	}

	if params.QueriesPath == "" {
		req.Query = &models.Query{Query: params.RawQuery}
		return s.adapter.QueryModel(ctx, req)
	}

	queries, err := loader.LoadQueriesPath(ctx, params.QueriesPath)
	if err != nil {
		return nil, err
	}
	req.Queries = queries
	return s.adapter.QueryModelMulti(ctx, req)
}

// loadRawMessage returns the base64 content of an EML or MSG file.
func loadRawMessage(path string) (string, error) {
	switch loader.DetectInputKind(path) {
	case loader.KindEML:
		return loader.LoadEML(path)
	case loader.KindMSG:
		return loader.LoadMSG(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
	}
}

// loadDetections reads detections from path, or wraps a raw detection.
func loadDetections(ctx context.Context, path, raw, name string) ([]models.Detection, error) {
	switch {
	case path != "":
		return loader.LoadDetectionsPath(ctx, path)
	case raw != "":
		return []models.Detection{{Name: name, Detection: raw}}, nil
	default:
		return nil, ErrMissingDetectionInput
	}
}

// sortResults orders a multi response by detection name. Single results
// are returned unchanged.
func sortResults(doc models.Document) models.Document {
	if doc == nil || !doc.Has(models.FieldResults) {
		return doc
	}
	results := doc.Documents(models.FieldResults)
	models.SortDocumentsBy(results, "name")
	doc[models.FieldResults] = results
	return doc
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
