// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sublime-security/sublime-cli/internal/mock"
	"github.com/sublime-security/sublime-cli/models"
)

func newTestMessageSvc(t *testing.T, ctrl *gomock.Controller) (*messageService, *mock.MockServerAdapter, *stubPermission) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	perm := &stubPermission{}
	svc := NewMessageService(mockAdapter, perm).(*messageService)
	return svc, mockAdapter, perm
}

// ── Enrich / Generate ────────────────────────────────────────────────────────

func TestMessageService_Enrich_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, perm := newTestMessageSvc(t, ctrl)
	ctx := context.Background()

	path := writeFile(t, t.TempDir(), "invoice.eml", sampleEML)
	want := models.Document{"message_data_model": models.Document{"subject": "Invoice"}}

	mockAdapter.EXPECT().EnrichMessage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.MessageRequest) (models.Document, error) {
			raw, err := base64.StdEncoding.DecodeString(req.Message)
			require.NoError(t, err)
			assert.Contains(t, string(raw), "Subject: Invoice")
			require.NotNil(t, req.MailboxEmailAddress)
			assert.Equal(t, "bob@example.com", *req.MailboxEmailAddress)
			assert.Equal(t, models.RouteOutbound, req.RouteType)
			return want, nil
		},
	)

	got, err := svc.Enrich(ctx, MessageParams{InputPath: path, Mailbox: "bob@example.com", RouteType: "Outbound"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"enrich"}, perm.commands)
}

func TestMessageService_Enrich_InvalidRouteType(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, perm := newTestMessageSvc(t, ctrl)

	path := writeFile(t, t.TempDir(), "invoice.eml", sampleEML)
	_, err := svc.Enrich(context.Background(), MessageParams{InputPath: path, RouteType: "sideways"})
	assert.ErrorIs(t, err, models.ErrInvalidRouteType)
	assert.Empty(t, perm.commands)
}

func TestMessageService_Enrich_UnsupportedInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestMessageSvc(t, ctrl)

	path := writeFile(t, t.TempDir(), "model.mdm", `{}`)
	_, err := svc.Enrich(context.Background(), MessageParams{InputPath: path})
	assert.ErrorIs(t, err, ErrUnsupportedInput)
}

func TestMessageService_Generate_PermissionDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, perm := newTestMessageSvc(t, ctrl)
	perm.err = ErrPermissionDenied

	path := writeFile(t, t.TempDir(), "invoice.eml", sampleEML)
	_, err := svc.Generate(context.Background(), MessageParams{InputPath: path})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestMessageService_Generate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestMessageSvc(t, ctrl)
	ctx := context.Background()

	path := writeFile(t, t.TempDir(), "invoice.eml", sampleEML)
	mockAdapter.EXPECT().CreateMessageDataModel(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.MessageRequest) (models.Document, error) {
			assert.Nil(t, req.MailboxEmailAddress)
			return models.Document{"message_data_model": models.Document{}}, nil
		},
	)

	got, err := svc.Generate(ctx, MessageParams{InputPath: path})
	require.NoError(t, err)
	assert.True(t, got.Has("message_data_model"))
}

// ── Analyze ──────────────────────────────────────────────────────────────────

func TestMessageService_Analyze_MissingDetections(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestMessageSvc(t, ctrl)

	_, err := svc.Analyze(context.Background(), AnalyzeParams{MessageParams: MessageParams{InputPath: "x.eml"}})
	assert.ErrorIs(t, err, ErrMissingDetectionInput)
}

func TestMessageService_Analyze_RawMessageSingle(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, perm := newTestMessageSvc(t, ctrl)
	ctx := context.Background()

	path := writeFile(t, t.TempDir(), "invoice.eml", sampleEML)
	mockAdapter.EXPECT().AnalyzeMessage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.AnalyzeMessageRequest) (models.Document, error) {
			require.NotNil(t, req.Detection)
			assert.Equal(t, "type.inbound", req.Detection.Detection)
			assert.Nil(t, req.Detections)
			assert.Equal(t, models.ResponseTypeFull, req.ResponseType)
			assert.Equal(t, models.RouteInbound, req.RouteType)
			return models.Document{"result": models.Document{"result": true}}, nil
		},
	)

	got, err := svc.Analyze(ctx, AnalyzeParams{
		MessageParams: MessageParams{InputPath: path},
		RawDetection:  "type.inbound",
		Verbose:       true,
	})
	require.NoError(t, err)
	assert.True(t, got.Document("result").Has("result"))
	assert.Equal(t, []string{CommandAnalyze}, perm.commands)
}

func TestMessageService_Analyze_ModelMultiSorted(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestMessageSvc(t, ctrl)
	ctx := context.Background()

	dir := t.TempDir()
	mdmPath := writeFile(t, dir, "model.mdm", `{"type": {"inbound": true}}`)
	rulesPath := writeFile(t, dir, "rules.pql", ";b\ntype.inbound\n\n;a\ntype.outbound\n")

	mockAdapter.EXPECT().AnalyzeModelMulti(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.AnalyzeModelRequest) (models.Document, error) {
			assert.Len(t, req.Detections, 2)
			assert.Nil(t, req.Detection)
			assert.True(t, req.MessageDataModel.Has("type"))
			return models.Document{"results": []any{
				map[string]any{"name": "b", "result": true},
				map[string]any{"name": "", "result": false},
				map[string]any{"name": "a", "result": false},
			}}, nil
		},
	)

	got, err := svc.Analyze(ctx, AnalyzeParams{
		MessageParams:  MessageParams{InputPath: mdmPath},
		DetectionsPath: rulesPath,
	})
	require.NoError(t, err)

	results := got.Documents("results")
	require.Len(t, results, 3)
	assert.Equal(t, "", results[0].String("name"))
	assert.Equal(t, "a", results[1].String("name"))
	assert.Equal(t, "b", results[2].String("name"))
}

func TestMessageService_Analyze_MailboxTagsResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestMessageSvc(t, ctrl)
	ctx := context.Background()

	mboxData := "From alice@example.com Thu Jan  1 00:00:00 2021\n" +
		"Subject: First\n\none\n\n" +
		"From alice@example.com Thu Jan  1 00:00:01 2021\n" +
		"Subject: Second\n\ntwo\n"
	path := writeFile(t, t.TempDir(), "inbox.mbox", mboxData)

	mockAdapter.EXPECT().AnalyzeMessageMulti(ctx, gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, req models.AnalyzeMessageRequest) (models.Document, error) {
			require.Len(t, req.Detections, 1)
			return models.Document{"results": []any{map[string]any{"name": "rule", "result": true}}}, nil
		},
	)

	got, err := svc.Analyze(ctx, AnalyzeParams{
		MessageParams: MessageParams{InputPath: path},
		RawDetection:  "type.inbound",
	})
	require.NoError(t, err)

	results := got.Documents("results")
	require.Len(t, results, 2)
	assert.Equal(t, "First", results[0].String(models.FieldMessageKey))
	assert.Equal(t, "Second", results[1].String(models.FieldMessageKey))
}

func TestMessageService_Analyze_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestMessageSvc(t, ctrl)
	ctx := context.Background()

	path := writeFile(t, t.TempDir(), "invoice.eml", sampleEML)
	apiErr := errors.New("boom")
	mockAdapter.EXPECT().AnalyzeMessage(ctx, gomock.Any()).Return(nil, apiErr)

	_, err := svc.Analyze(ctx, AnalyzeParams{MessageParams: MessageParams{InputPath: path}, RawDetection: "x"})
	assert.ErrorIs(t, err, apiErr)
}

// ── Query ────────────────────────────────────────────────────────────────────

func TestMessageService_Query_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestMessageSvc(t, ctrl)

	_, err := svc.Query(context.Background(), QueryParams{InputPath: "model.mdm"})
	assert.ErrorIs(t, err, ErrMissingQueryInput)
}

func TestMessageService_Query_Raw(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, perm := newTestMessageSvc(t, ctrl)
	ctx := context.Background()

	path := writeFile(t, t.TempDir(), "model.mdm", `{"subject": {"subject": "hi"}}`)
	mockAdapter.EXPECT().QueryModel(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.QueryModelRequest) (models.Document, error) {
			require.NotNil(t, req.Query)
			assert.Equal(t, "subject.subject", req.Query.Query)
			assert.Empty(t, req.ResponseType)
			return models.Document{"result": models.Document{"result": "hi"}}, nil
		},
	)

	_, err := svc.Query(ctx, QueryParams{InputPath: path, RawQuery: "subject.subject"})
	require.NoError(t, err)
	assert.Empty(t, perm.commands)
}

func TestMessageService_Query_File(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestMessageSvc(t, ctrl)
	ctx := context.Background()

	dir := t.TempDir()
	mdmPath := writeFile(t, dir, "model.mdm", `{}`)
	queriesPath := writeFile(t, dir, "queries.pql", ";subject\nsubject.subject\n\n;sender\nsender.email.email\n")

	mockAdapter.EXPECT().QueryModelMulti(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.QueryModelRequest) (models.Document, error) {
			require.Len(t, req.Queries, 2)
			assert.Equal(t, "subject", req.Queries[0].Name)
			assert.Equal(t, models.ResponseTypeFull, req.ResponseType)
			return models.Document{"results": []any{}}, nil
		},
	)

	_, err := svc.Query(ctx, QueryParams{InputPath: mdmPath, QueriesPath: queriesPath, Verbose: true})
	require.NoError(t, err)
}
