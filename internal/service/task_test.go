package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/mocks"
	"github.com/target/crawl-admin/internal/testutil"
)

func TestTaskService_RunAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockTaskAPI(ctrl)
	svc := NewTaskService(TaskServiceOptions{API: api})

	api.EXPECT().
		RunTaskAction(gomock.Any(), int64(5), model.TaskActionStop).
		Return(&model.Task{ID: 5, Status: model.TaskStatusCompleted}, nil).
		Times(1)

	got, err := svc.RunAction(context.Background(), 5, model.TaskAction(" STOP "))
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusCompleted, got.Status)
}

func TestTaskService_RunAction_RejectsUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockTaskAPI(ctrl)
	svc := NewTaskService(TaskServiceOptions{API: api})

	_, err := svc.RunAction(context.Background(), 5, model.TaskAction("explode"))
	assert.True(t, apperrors.IsValidation(err))
}

func TestTaskService_Create_Validates(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockTaskAPI(ctrl)
	svc := NewTaskService(TaskServiceOptions{API: api})

	_, err := svc.Create(context.Background(), model.TaskRequest{TaskName: "t", AccountID: 1, TaskType: "scrape"})
	assert.True(t, apperrors.IsValidation(err))

	api.EXPECT().
		CreateTask(gomock.Any(), model.TaskRequest{TaskName: "t", AccountID: 1, TaskType: model.TaskTypeCrawler}).
		Return(&model.Task{ID: 1}, nil)
	_, err = svc.Create(context.Background(), model.TaskRequest{TaskName: " t ", AccountID: 1, TaskType: "Crawler"})
	require.NoError(t, err)
}

func TestTaskService_Options_PagesUntilShortPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockTaskAPI(ctrl)
	svc := NewTaskService(TaskServiceOptions{API: api})

	full := make([]model.Task, collectPageSize)
	gomock.InOrder(
		api.EXPECT().ListTasks(gomock.Any(), model.ListOptions{Skip: 0, Limit: collectPageSize}).Return(full, nil),
		api.EXPECT().
			ListTasks(gomock.Any(), model.ListOptions{Skip: collectPageSize, Limit: collectPageSize}).
			Return(testutil.Tasks(model.TaskStatusWaiting, model.TaskStatusRunning), nil),
	)

	got, err := svc.Options(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, collectPageSize+2)
}
