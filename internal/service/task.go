package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/target/crawl-admin/internal/core"
	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
)

// TaskServiceOptions groups dependencies for TaskService.
type TaskServiceOptions struct {
	API    core.TaskAPI // Required
	Logger *slog.Logger // Optional
}

// TaskService manages crawl and export tasks through the backend.
type TaskService struct {
	api    core.TaskAPI
	logger *slog.Logger
}

// NewTaskService constructs a new TaskService.
func NewTaskService(opts TaskServiceOptions) *TaskService {
	if opts.API == nil {
		panic("TaskAPI is required")
	}
	return &TaskService{api: opts.API, logger: opts.Logger}
}

// List returns up to limit tasks starting at offset.
func (s *TaskService) List(ctx context.Context, limit, offset int) ([]model.Task, error) {
	tasks, err := s.api.ListTasks(ctx, listOptions(limit, offset))
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns one task.
func (s *TaskService) Get(ctx context.Context, id int64) (*model.Task, error) {
	t, err := s.api.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	if t == nil {
		return nil, notFoundf("Task %d not found.", id)
	}
	return t, nil
}

// Create validates and creates a task.
func (s *TaskService) Create(ctx context.Context, req model.TaskRequest) (*model.Task, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	t, err := s.api.CreateTask(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	if s.logger != nil && t != nil {
		s.logger.InfoContext(ctx, "task created", "id", t.ID, "type", t.TaskType)
	}
	return t, nil
}

// Update validates and replaces a task.
func (s *TaskService) Update(ctx context.Context, id int64, req model.TaskRequest) (*model.Task, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	t, err := s.api.UpdateTask(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}
	return t, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// RunAction issues a lifecycle command. The backend decides whether the
// transition is legal; an unknown action never reaches it.
func (s *TaskService) RunAction(ctx context.Context, id int64, action model.TaskAction) (*model.Task, error) {
	a, ok := model.ParseTaskAction(string(action))
	if !ok {
		return nil, apperrors.Validationf("unsupported task action %q", action)
	}
	t, err := s.api.RunTaskAction(ctx, id, a)
	if err != nil {
		return nil, fmt.Errorf("%s task %d: %w", a, id, err)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "task action", "id", id, "action", a)
	}
	return t, nil
}

// Options returns every task for filter dropdowns.
func (s *TaskService) Options(ctx context.Context) ([]model.Task, error) {
	tasks, err := collectAll(ctx, s.api.ListTasks)
	if err != nil {
		return nil, fmt.Errorf("list task options: %w", err)
	}
	return tasks, nil
}
