// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/sublime-security/sublime-cli/internal/adapter"
	"github.com/sublime-security/sublime-cli/internal/app"
	"github.com/sublime-security/sublime-cli/internal/loader"
	"github.com/sublime-security/sublime-cli/models"
)

type detectionService struct {
	adapter   adapter.ServerAdapter
	confirmer Confirmer
}

// NewDetectionService returns a DetectionService. confirmer is asked
// before bulk subscriptions and before unsharing a detection that has
// subscribers.
func NewDetectionService(serverAdapter adapter.ServerAdapter, confirmer Confirmer) DetectionService {
	return &detectionService{adapter: serverAdapter, confirmer: confirmer}
}

func (s *detectionService) Create(ctx context.Context, params CreateDetectionsParams) (models.Document, error) {
	detections, err := loadDetections(ctx, params.DetectionsPath, params.RawDetection, params.Name)
	if err != nil {
		return nil, err
	}

	for _, d := range detections {
		if d.Name == "" {
			return nil, ErrDetectionNameRequired
		}
	}

	responseType := ""
	if params.Verbose {
		responseType = models.ResponseTypeFull
	}

	var out outcome
	for _, d := range detections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := s.adapter.CreateOrgDetection(ctx, models.CreateDetectionRequest{
			Name:         d.Name,
			Detection:    d.Detection,
			Active:       params.Active,
			ResponseType: responseType,
		})
		out.add(d.Name, doc, err)
	}

	return out.document("name"), nil
}

func (s *detectionService) Update(ctx context.Context, params UpdateDetectionsParams) (models.Document, error) {
	if params.DetectionsPath != "" {
		if params.ID != "" || params.Name != "" {
			return nil, ErrAmbiguousDetectionTarget
		}

		detections, err := loader.LoadDetectionsPath(ctx, params.DetectionsPath)
		if err != nil {
			return nil, err
		}

		var out outcome
		for _, d := range detections {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			source := d.Detection
			doc, err := s.adapter.UpdateOrgDetectionByName(ctx, d.Name, models.UpdateDetectionRequest{
				Detection: &source,
				Active:    params.Active,
			})
			out.add(d.Name, doc, err)
		}
		return out.document("original_name"), nil
	}

	req := models.UpdateDetectionRequest{Active: params.Active}
	if params.RawDetection != "" {
		req.Detection = &params.RawDetection
	}

	var (
		doc models.Document
		err error
	)
	switch {
	case params.ID != "":
		if params.Name != "" {
			req.Name = &params.Name
		}
		doc, err = s.adapter.UpdateOrgDetection(ctx, params.ID, req)
	case params.Name != "":
		doc, err = s.adapter.UpdateOrgDetectionByName(ctx, params.Name, req)
	default:
		return nil, ErrDetectionTargetRequired
	}
	if err != nil {
		return nil, err
	}

	var out outcome
	out.add(params.Name, doc, nil)
	return out.document("original_name"), nil
}

func (s *detectionService) Get(ctx context.Context, params GetDetectionsParams) (models.Document, error) {
	var (
		doc models.Document
		err error
	)

	switch {
	case params.ID != "":
		if params.Community {
			doc, err = s.adapter.GetCommunityDetection(ctx, params.ID)
		} else {
			doc, err = s.adapter.GetOrgDetection(ctx, params.ID)
		}
		if err != nil {
			return nil, err
		}
		return wrapList(models.FieldDetections, doc), nil

	case params.Name != "":
		if params.Community {
			doc, err = s.adapter.GetCommunityDetectionByName(ctx, params.Name)
		} else {
			doc, err = s.adapter.GetOrgDetectionByName(ctx, params.Name)
		}
		if err != nil {
			return nil, err
		}
		return wrapList(models.FieldDetections, doc), nil
	}

	filter := models.DetectionFilter{Active: params.Active, Search: params.Search}
	if params.Community {
		doc, err = s.adapter.GetCommunityDetections(ctx, filter)
	} else {
		doc, err = s.adapter.GetOrgDetections(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	detections := listOf(doc, models.FieldDetections)
	models.SortDocumentsBy(detections, "name")
	if doc == nil {
		doc = models.Document{}
	}
	delete(doc, "data")
	doc[models.FieldDetections] = detections
	if detections == nil {
		doc[models.FieldDetections] = []models.Document{}
	}
	return doc, nil
}

func (s *detectionService) Subscribe(ctx context.Context, params SubscribeParams) (models.Document, error) {
	var out outcome

	if params.ID != "" {
		doc, err := s.subscribeOne(ctx, params.ID, params)
		if err != nil {
			return nil, err
		}
		out.add(params.ID, doc, nil)
		return out.document("name"), nil
	}

	if params.CreatedByOrg == "" && params.CreatedByUser == "" {
		return nil, ErrMissingSubscribeTarget
	}

	listed, err := s.adapter.GetCommunityDetections(ctx, models.DetectionFilter{
		CreatedByOrgID:         params.CreatedByOrg,
		CreatedBySublimeUserID: params.CreatedByUser,
	})
	if err != nil {
		return nil, err
	}

	detections := listOf(listed, models.FieldDetections)
	if len(detections) == 0 {
		return nil, ErrNoMatchingDetections
	}

	verb, preposition := "subscribe", "to"
	if params.Unsubscribe {
		verb, preposition = "unsubscribe", "from"
	}
	if err = confirm(ctx, s.confirmer, fmt.Sprintf(app.MsgConfirmSubscribe, verb, preposition, len(detections))); err != nil {
		return nil, err
	}

	for _, d := range detections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := s.subscribeOne(ctx, d.String("id"), params)
		out.add(d.String("name"), doc, err)
	}
	return out.document("name"), nil
}

func (s *detectionService) subscribeOne(ctx context.Context, id string, params SubscribeParams) (models.Document, error) {
	if params.Unsubscribe {
		return s.adapter.UnsubscribeCommunityDetection(ctx, id)
	}
	return s.adapter.SubscribeCommunityDetection(ctx, id, models.SubscribeRequest{Active: params.Active})
}

func (s *detectionService) Share(ctx context.Context, params ShareParams) (models.Document, error) {
	if params.ID == "" {
		return nil, ErrDetectionIDRequired
	}

	if !params.Unshare {
		doc, err := s.adapter.ShareOrgDetection(ctx, params.ID, models.ShareRequest{
			ShareSublimeUser: params.ShareName,
			ShareOrg:         params.ShareOrg,
		})
		if err != nil {
			return nil, err
		}
		return wrapList(models.FieldResults, doc), nil
	}

	stats, err := s.adapter.GetOrgDetection(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	switch count := stats.Int("subscriber_count"); {
	case count > 1:
		err = confirm(ctx, s.confirmer, fmt.Sprintf(app.MsgConfirmUnshareMany, count))
	case count == 1:
		err = confirm(ctx, s.confirmer, app.MsgConfirmUnshareOne)
	}
	if err != nil {
		return nil, err
	}

	doc, err := s.adapter.UnshareOrgDetection(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	return wrapList(models.FieldResults, doc), nil
}
