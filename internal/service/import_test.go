package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/mocks"
)

func TestSelectRecords(t *testing.T) {
	tests := []struct {
		name      string
		req       ImportRequest
		wantLen   int
		wantField string
	}{
		{name: "top-level array", req: ImportRequest{Document: []byte(`[{"a":1},{"a":2}]`)}, wantLen: 2},
		{name: "wrapped in data", req: ImportRequest{Document: []byte(`{"data":[{"a":1}]}`)}, wantLen: 1},
		{
			name:    "expression",
			req:     ImportRequest{Document: []byte(`{"resp":{"answers":[{"a":1},{"a":2},{"a":3}]}}`), Expression: "resp.answers"},
			wantLen: 3,
		},
		{
			name:    "filtering expression",
			req:     ImportRequest{Document: []byte(`[{"y":2019},{"y":2020}]`), Expression: "[?y > `2019`]"},
			wantLen: 1,
		},
		{name: "empty document", req: ImportRequest{Document: []byte("  ")}, wantField: "document"},
		{name: "invalid json", req: ImportRequest{Document: []byte(`{`)}, wantField: "document"},
		{name: "bad expression", req: ImportRequest{Document: []byte(`[]`), Expression: "[?"}, wantField: "expression"},
		{name: "object without array", req: ImportRequest{Document: []byte(`{"x":1}`)}, wantField: "expression"},
		{name: "empty array", req: ImportRequest{Document: []byte(`[]`)}, wantField: "document"},
		{name: "non-object element", req: ImportRequest{Document: []byte(`[{"a":1}, 5]`)}, wantField: "document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectRecords(tt.req)
			if tt.wantField != "" {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				assert.Equal(t, tt.wantField, apperrors.GetField(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestRecordService_ImportRaw(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockRecordAPI(ctrl)
	svc := NewRecordService(RecordServiceOptions{API: api})

	api.EXPECT().
		ImportRawRecords(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload json.RawMessage) (*model.ImportResult, error) {
			assert.JSONEq(t, `[{"answer_url":"u1"},{"answer_url":"u2"}]`, string(payload))
			return &model.ImportResult{Imported: 2}, nil
		})

	res, err := svc.ImportRaw(context.Background(), ImportRequest{
		Document:   []byte(`{"items":[{"answer_url":"u1"},{"answer_url":"u2"}]}`),
		Expression: "items",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, "Imported 2 records.", res.Message)
}

func TestRecordService_Clear_FallbackMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockRecordAPI(ctrl)
	svc := NewRecordService(RecordServiceOptions{API: api})

	api.EXPECT().ClearRecords(gomock.Any(), model.RecordKindSample).Return(&model.ActionMessage{}, nil)
	msg, err := svc.Clear(context.Background(), model.RecordKindSample)
	require.NoError(t, err)
	assert.Equal(t, "Sample data cleared.", msg)

	_, err = svc.Clear(context.Background(), model.RecordKind("other"))
	assert.True(t, apperrors.IsValidation(err))
}

func TestRecordService_List_PassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockRecordAPI(ctrl)
	svc := NewRecordService(RecordServiceOptions{API: api})

	year := 2022
	filter := model.RecordFilter{Year: &year}
	api.EXPECT().
		ListRecords(gomock.Any(), model.RecordKindRaw, model.RecordListOptions{
			ListOptions:  model.ListOptions{Skip: 20, Limit: 21},
			RecordFilter: filter,
		}).
		Return([]model.Record{{ID: 1}}, nil)

	got, err := svc.List(context.Background(), model.RecordKindRaw, filter, 21, 20)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
