package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const maxTaskNameLen = 100

// TaskStatus is the lifecycle state reported by the backend for a task.
type TaskStatus int

const (
	TaskStatusWaiting   TaskStatus = 0
	TaskStatusRunning   TaskStatus = 1
	TaskStatusPaused    TaskStatus = 2
	TaskStatusFailed    TaskStatus = 3
	TaskStatusCompleted TaskStatus = 4
)

// TaskStatuses lists every known status in display order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskStatusWaiting,
		TaskStatusRunning,
		TaskStatusPaused,
		TaskStatusFailed,
		TaskStatusCompleted,
	}
}

// Valid reports whether the status is one of the known codes.
func (s TaskStatus) Valid() bool {
	return s >= TaskStatusWaiting && s <= TaskStatusCompleted
}

// Text returns the human label for the status, "Unknown" for unrecognized codes.
func (s TaskStatus) Text() string {
	switch s {
	case TaskStatusWaiting:
		return "Waiting"
	case TaskStatusRunning:
		return "Running"
	case TaskStatusPaused:
		return "Paused"
	case TaskStatusFailed:
		return "Failed"
	case TaskStatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Class returns the CSS class used for the status badge.
func (s TaskStatus) Class() string {
	switch s {
	case TaskStatusWaiting:
		return "status-waiting"
	case TaskStatusRunning:
		return "status-running"
	case TaskStatusPaused:
		return "status-paused"
	case TaskStatusFailed:
		return "status-failed"
	case TaskStatusCompleted:
		return "status-completed"
	default:
		return "status-unknown"
	}
}

// Color is the chart color associated with the status.
func (s TaskStatus) Color() string {
	switch s {
	case TaskStatusWaiting:
		return "#6c757d"
	case TaskStatusRunning:
		return "#28a745"
	case TaskStatusPaused:
		return "#ffc107"
	case TaskStatusFailed:
		return "#dc3545"
	case TaskStatusCompleted:
		return "#17a2b8"
	default:
		return "#adb5bd"
	}
}

// TaskType distinguishes crawl tasks from export tasks.
type TaskType string

const (
	TaskTypeCrawler TaskType = "crawler"
	TaskTypeExport  TaskType = "export"
)

// Valid reports whether the task type is supported.
func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeCrawler, TaskTypeExport:
		return true
	default:
		return false
	}
}

// TaskAction is a lifecycle command accepted by the backend.
type TaskAction string

const (
	TaskActionStart  TaskAction = "start"
	TaskActionPause  TaskAction = "pause"
	TaskActionResume TaskAction = "resume"
	TaskActionStop   TaskAction = "stop"
)

// ParseTaskAction normalizes an action string and reports whether it is supported.
func ParseTaskAction(v string) (TaskAction, bool) {
	a := TaskAction(strings.ToLower(strings.TrimSpace(v)))
	switch a {
	case TaskActionStart, TaskActionPause, TaskActionResume, TaskActionStop:
		return a, true
	default:
		return "", false
	}
}

// PastTense is used in confirmation toasts ("Task started").
func (a TaskAction) PastTense() string {
	switch a {
	case TaskActionStart:
		return "started"
	case TaskActionPause:
		return "paused"
	case TaskActionResume:
		return "resumed"
	case TaskActionStop:
		return "stopped"
	default:
		return string(a)
	}
}

// Task mirrors the backend task resource.
type Task struct {
	ID             int64      `json:"id"`
	TaskName       string     `json:"task_name"`
	AccountID      int64      `json:"account_id"`
	AccountName    string     `json:"account_name,omitempty"`
	CrawlerParamID *int64     `json:"crawler_param_id,omitempty"`
	TaskType       TaskType   `json:"task_type"`
	Status         TaskStatus `json:"status"`
	StartTime      Timestamp  `json:"start_time"`
	EndTime        Timestamp  `json:"end_time"`
	ErrorMessage   *string    `json:"error_message,omitempty"`
	RetryCount     int        `json:"retry_count"`
	Progress       int        `json:"progress"`
}

// ProgressPercent clamps progress to the 0..100 range used by progress bars.
func (t *Task) ProgressPercent() int {
	switch {
	case t.Progress < 0:
		return 0
	case t.Progress > 100:
		return 100
	default:
		return t.Progress
	}
}

// AvailableActions returns the lifecycle actions the backend accepts for the
// task's current status.
func (t *Task) AvailableActions() []TaskAction {
	return ActionsForStatus(t.Status)
}

// ActionsForStatus maps a status onto the permitted lifecycle actions.
func ActionsForStatus(s TaskStatus) []TaskAction {
	switch s {
	case TaskStatusRunning:
		return []TaskAction{TaskActionPause, TaskActionStop}
	case TaskStatusPaused:
		return []TaskAction{TaskActionResume, TaskActionStop}
	default:
		return []TaskAction{TaskActionStart}
	}
}

// Allows reports whether the action is permitted for the task's status.
func (t *Task) Allows(a TaskAction) bool {
	for _, candidate := range t.AvailableActions() {
		if candidate == a {
			return true
		}
	}
	return false
}

// TaskRequest is the create/update payload for a task. The backend treats
// every field as optional on update, so the same shape serves both.
type TaskRequest struct {
	TaskName       string   `json:"task_name"`
	AccountID      int64    `json:"account_id"`
	CrawlerParamID *int64   `json:"crawler_param_id"`
	TaskType       TaskType `json:"task_type"`
}

// Normalize trims string fields.
func (r *TaskRequest) Normalize() {
	r.TaskName = strings.TrimSpace(r.TaskName)
	r.TaskType = TaskType(strings.ToLower(strings.TrimSpace(string(r.TaskType))))
}

// Validate checks the request before it is sent to the backend.
func (r *TaskRequest) Validate() error {
	if r.TaskName == "" {
		return errors.New("task name is required")
	}
	if utf8.RuneCountInString(r.TaskName) > maxTaskNameLen {
		return errors.New("task name cannot exceed 100 characters")
	}
	if r.AccountID <= 0 {
		return errors.New("account is required")
	}
	if !r.TaskType.Valid() {
		return errors.New("task type must be one of: crawler, export")
	}
	return nil
}
