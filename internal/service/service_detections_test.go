// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sublime-security/sublime-cli/internal/adapter"
	"github.com/sublime-security/sublime-cli/internal/mock"
	"github.com/sublime-security/sublime-cli/models"
)

func newTestDetectionSvc(t *testing.T, ctrl *gomock.Controller) (*detectionService, *mock.MockServerAdapter, *fakeConfirmer) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	confirmer := &fakeConfirmer{answer: true}
	svc := NewDetectionService(mockAdapter, confirmer).(*detectionService)
	return svc, mockAdapter, confirmer
}

func boolPtr(v bool) *bool { return &v }

// ── Create ───────────────────────────────────────────────────────────────────

func TestDetectionService_Create_RequiresNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestDetectionSvc(t, ctrl)

	path := writeFile(t, t.TempDir(), "rules.pql", ";named\ntype.inbound\n\ntype.outbound\n")
	_, err := svc.Create(context.Background(), CreateDetectionsParams{DetectionsPath: path})
	assert.ErrorIs(t, err, ErrDetectionNameRequired)
}

func TestDetectionService_Create_CollectsOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDetectionSvc(t, ctrl)
	ctx := context.Background()

	path := writeFile(t, t.TempDir(), "rules.pql", ";zeta\ntype.inbound\n\n;alpha\ntype.outbound\n\n;broken\n(\n")

	mockAdapter.EXPECT().CreateOrgDetection(ctx, gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, req models.CreateDetectionRequest) (models.Document, error) {
			assert.True(t, req.Active)
			if req.Name == "broken" {
				return nil, &adapter.APIError{Kind: adapter.KindInvalidRequest, StatusCode: 400, Message: "syntax error"}
			}
			return models.Document{"name": req.Name}, nil
		},
	)

	got, err := svc.Create(ctx, CreateDetectionsParams{DetectionsPath: path, Active: true})
	require.NoError(t, err)

	success := got.Documents("success")
	require.Len(t, success, 2)
	assert.Equal(t, "alpha", success[0].String("name"))
	assert.Equal(t, "zeta", success[1].String("name"))

	fail := got.Documents("fail")
	require.Len(t, fail, 1)
	assert.Equal(t, "broken", fail[0].String("name"))
	assert.Equal(t, "syntax error", fail[0].String("error"))
	assert.Equal(t, 400, fail[0].Int("status_code"))
}

func TestDetectionService_Create_RawNamed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDetectionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().CreateOrgDetection(ctx, models.CreateDetectionRequest{
		Name:         "raw",
		Detection:    "type.inbound",
		ResponseType: models.ResponseTypeFull,
	}).Return(models.Document{"name": "raw"}, nil)

	got, err := svc.Create(ctx, CreateDetectionsParams{RawDetection: "type.inbound", Name: "raw", Verbose: true})
	require.NoError(t, err)
	assert.Len(t, got.Documents("success"), 1)
	assert.Empty(t, got.Documents("fail"))
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestDetectionService_Update_Targets(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestDetectionSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Update(ctx, UpdateDetectionsParams{DetectionsPath: "rules.pql", ID: "1"})
	assert.ErrorIs(t, err, ErrAmbiguousDetectionTarget)

	_, err = svc.Update(ctx, UpdateDetectionsParams{RawDetection: "type.inbound"})
	assert.ErrorIs(t, err, ErrDetectionTargetRequired)
}

func TestDetectionService_Update_ByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDetectionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().UpdateOrgDetection(ctx, "det-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, req models.UpdateDetectionRequest) (models.Document, error) {
			require.NotNil(t, req.Name)
			assert.Equal(t, "renamed", *req.Name)
			assert.Nil(t, req.Detection)
			require.NotNil(t, req.Active)
			assert.False(t, *req.Active)
			return models.Document{"original_name": "old", "name": "renamed"}, nil
		},
	)

	got, err := svc.Update(ctx, UpdateDetectionsParams{ID: "det-1", Name: "renamed", Active: boolPtr(false)})
	require.NoError(t, err)
	assert.Len(t, got.Documents("success"), 1)
}

func TestDetectionService_Update_ByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDetectionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().UpdateOrgDetectionByName(ctx, "rule", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, req models.UpdateDetectionRequest) (models.Document, error) {
			require.NotNil(t, req.Detection)
			assert.Equal(t, "type.inbound", *req.Detection)
			assert.Nil(t, req.Active)
			return models.Document{"original_name": "rule"}, nil
		},
	)

	_, err := svc.Update(ctx, UpdateDetectionsParams{Name: "rule", RawDetection: "type.inbound"})
	require.NoError(t, err)
}

func TestDetectionService_Update_PathSortedByOriginalName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDetectionSvc(t, ctrl)
	ctx := context.Background()

	path := writeFile(t, t.TempDir(), "rules.pql", ";b\ntype.inbound\n\n;a\ntype.outbound\n")
	mockAdapter.EXPECT().UpdateOrgDetectionByName(ctx, gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, name string, _ models.UpdateDetectionRequest) (models.Document, error) {
			return models.Document{"original_name": name}, nil
		},
	)

	got, err := svc.Update(ctx, UpdateDetectionsParams{DetectionsPath: path})
	require.NoError(t, err)
	success := got.Documents("success")
	require.Len(t, success, 2)
	assert.Equal(t, "a", success[0].String("original_name"))
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestDetectionService_Get_ListSorted(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDetectionSvc(t, ctrl)
	ctx := context.Background()

	active := boolPtr(true)
	mockAdapter.EXPECT().GetOrgDetections(ctx, models.DetectionFilter{Active: active}).Return(
		models.Document{"detections": []any{
			map[string]any{"name": "b"},
			map[string]any{"name": "a"},
		}}, nil)

	got, err := svc.Get(ctx, GetDetectionsParams{Active: active})
	require.NoError(t, err)
	detections := got.Documents("detections")
	require.Len(t, detections, 2)
	assert.Equal(t, "a", detections[0].String("name"))
}

func TestDetectionService_Get_BareListResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDetectionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetCommunityDetections(ctx, models.DetectionFilter{Search: "phish"}).Return(
		models.Document{"data": []any{map[string]any{"name": "x"}}}, nil)

	got, err := svc.Get(ctx, GetDetectionsParams{Community: true, Search: "phish"})
	require.NoError(t, err)
	assert.Len(t, got.Documents("detections"), 1)
	assert.False(t, got.Has("data"))
}

func TestDetectionService_Get_ByIDAndName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDetectionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetOrgDetection(ctx, "1").Return(models.Document{"id": "1"}, nil)
	mockAdapter.EXPECT().GetCommunityDetectionByName(ctx, "rule").Return(models.Document{"name": "rule"}, nil)

	got, err := svc.Get(ctx, GetDetectionsParams{ID: "1"})
	require.NoError(t, err)
	assert.Equal(t, "1", got.Documents("detections")[0].String("id"))

	got, err = svc.Get(ctx, GetDetectionsParams{Name: "rule", Community: true})
	require.NoError(t, err)
	assert.Equal(t, "rule", got.Documents("detections")[0].String("name"))
}

// ── Subscribe ────────────────────────────────────────────────────────────────

func TestDetectionService_Subscribe_ByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, confirmer := newTestDetectionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SubscribeCommunityDetection(ctx, "d1", models.SubscribeRequest{Active: true}).
		Return(models.Document{"name": "rule"}, nil)

	got, err := svc.Subscribe(ctx, SubscribeParams{ID: "d1", Active: true})
	require.NoError(t, err)
	assert.Len(t, got.Documents("success"), 1)
	assert.Empty(t, confirmer.prompts)
}

func TestDetectionService_Subscribe_BulkUnsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, confirmer := newTestDetectionSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().GetCommunityDetections(ctx, models.DetectionFilter{CreatedByOrgID: "org"}).Return(
			models.Document{"detections": []any{
				map[string]any{"id": "1", "name": "one"},
				map[string]any{"id": "2", "name": "two"},
			}}, nil),
		mockAdapter.EXPECT().UnsubscribeCommunityDetection(ctx, "1").Return(models.Document{"name": "one"}, nil),
		mockAdapter.EXPECT().UnsubscribeCommunityDetection(ctx, "2").Return(nil, &adapter.APIError{Message: "nope"}),
	)

	got, err := svc.Subscribe(ctx, SubscribeParams{CreatedByOrg: "org", Unsubscribe: true})
	require.NoError(t, err)
	assert.Len(t, got.Documents("success"), 1)
	assert.Len(t, got.Documents("fail"), 1)
	assert.Equal(t, []string{"Are you sure you want to unsubscribe from all 2 detections?"}, confirmer.prompts)
}

func TestDetectionService_Subscribe_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, confirmer := newTestDetectionSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, SubscribeParams{})
	assert.ErrorIs(t, err, ErrMissingSubscribeTarget)

	mockAdapter.EXPECT().GetCommunityDetections(ctx, gomock.Any()).Return(models.Document{"detections": []any{}}, nil)
	_, err = svc.Subscribe(ctx, SubscribeParams{CreatedByUser: "u"})
	assert.ErrorIs(t, err, ErrNoMatchingDetections)

	confirmer.answer = false
	mockAdapter.EXPECT().GetCommunityDetections(ctx, gomock.Any()).Return(
		models.Document{"detections": []any{map[string]any{"id": "1"}}}, nil)
	_, err = svc.Subscribe(ctx, SubscribeParams{CreatedByUser: "u"})
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, "Are you sure you want to subscribe to all 1 detections?", confirmer.prompts[0])
}

// ── Share ────────────────────────────────────────────────────────────────────

func TestDetectionService_Share(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDetectionSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Share(ctx, ShareParams{})
	assert.ErrorIs(t, err, ErrDetectionIDRequired)

	mockAdapter.EXPECT().ShareOrgDetection(ctx, "d1", models.ShareRequest{ShareOrg: true}).
		Return(models.Document{"id": "d1"}, nil)
	got, err := svc.Share(ctx, ShareParams{ID: "d1", ShareOrg: true})
	require.NoError(t, err)
	assert.Len(t, got.Documents("results"), 1)
}

func TestDetectionService_Unshare_ConfirmsSubscribers(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		prompts []string
	}{
		{"no subscribers", 0, nil},
		{"one subscriber", 1, []string{"There is currently 1 organization subscribed to this detection. Are you sure you want to unshare it?"}},
		{"many subscribers", 3, []string{"There are currently 3 organizations subscribed to this detection. Are you sure you want to unshare it?"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter, confirmer := newTestDetectionSvc(t, ctrl)
			ctx := context.Background()

			gomock.InOrder(
				mockAdapter.EXPECT().GetOrgDetection(ctx, "d1").Return(models.Document{"subscriber_count": tt.count}, nil),
				mockAdapter.EXPECT().UnshareOrgDetection(ctx, "d1").Return(nil, nil),
			)

			_, err := svc.Share(ctx, ShareParams{ID: "d1", Unshare: true})
			require.NoError(t, err)
			assert.Equal(t, tt.prompts, confirmer.prompts)
		})
	}
}

func TestDetectionService_Unshare_Declined(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, confirmer := newTestDetectionSvc(t, ctrl)
	confirmer.answer = false
	ctx := context.Background()

	mockAdapter.EXPECT().GetOrgDetection(ctx, "d1").Return(models.Document{"subscriber_count": 2}, nil)

	_, err := svc.Share(ctx, ShareParams{ID: "d1", Unshare: true})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestDetectionService_Create_StopsWhenCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDetectionSvc(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	path := writeFile(t, t.TempDir(), "rules.pql", ";one\ntype.inbound\n\n;two\ntype.outbound\n")

	mockAdapter.EXPECT().CreateOrgDetection(ctx, gomock.Any()).Times(1).DoAndReturn(
		func(context.Context, models.CreateDetectionRequest) (models.Document, error) {
			cancel()
			return models.Document{"name": "one"}, nil
		},
	)

	got, err := svc.Create(ctx, CreateDetectionsParams{DetectionsPath: path})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestDetectionService_Subscribe_BulkStopsWhenCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDetectionSvc(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	gomock.InOrder(
		mockAdapter.EXPECT().GetCommunityDetections(ctx, gomock.Any()).Return(
			models.Document{"detections": []any{
				map[string]any{"id": "1", "name": "one"},
				map[string]any{"id": "2", "name": "two"},
			}}, nil),
		mockAdapter.EXPECT().SubscribeCommunityDetection(ctx, "1", gomock.Any()).DoAndReturn(
			func(context.Context, string, models.SubscribeRequest) (models.Document, error) {
				cancel()
				return nil, context.Canceled
			}),
	)

	_, err := svc.Subscribe(ctx, SubscribeParams{CreatedByOrg: "org"})
	assert.ErrorIs(t, err, context.Canceled)
}
