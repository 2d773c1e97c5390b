// Package testutil provides fixtures and infrastructure helpers shared by the
// crawl-admin test suites.
package testutil

import (
	"fmt"
	"time"

	"github.com/target/crawl-admin/internal/domain/model"
)

// TaskBuilder provides a fluent interface for building Task fixtures.
type TaskBuilder struct {
	task model.Task
}

// NewTask creates a TaskBuilder for a waiting crawler task.
func NewTask(id int64) *TaskBuilder {
	return &TaskBuilder{
		task: model.Task{
			ID:          id,
			TaskName:    fmt.Sprintf("task-%d", id),
			AccountID:   1,
			AccountName: "account-1",
			TaskType:    model.TaskTypeCrawler,
			Status:      model.TaskStatusWaiting,
			StartTime:   model.Timestamp{Time: TestTime()},
		},
	}
}

// WithStatus sets the task status.
func (b *TaskBuilder) WithStatus(s model.TaskStatus) *TaskBuilder {
	b.task.Status = s
	return b
}

// WithProgress sets the raw progress value.
func (b *TaskBuilder) WithProgress(p int) *TaskBuilder {
	b.task.Progress = p
	return b
}

// WithName sets the task name.
func (b *TaskBuilder) WithName(name string) *TaskBuilder {
	b.task.TaskName = name
	return b
}

// WithType sets the task type.
func (b *TaskBuilder) WithType(t model.TaskType) *TaskBuilder {
	b.task.TaskType = t
	return b
}

// WithError sets the error message.
func (b *TaskBuilder) WithError(msg string) *TaskBuilder {
	b.task.ErrorMessage = &msg
	return b
}

// Build returns the task.
func (b *TaskBuilder) Build() model.Task {
	return b.task
}

// Tasks builds one task per status, ids starting at 1.
func Tasks(statuses ...model.TaskStatus) []model.Task {
	out := make([]model.Task, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, NewTask(int64(i+1)).WithStatus(s).Build())
	}
	return out
}

// Record returns a record fixture for the given year and task.
func Record(id int64, year int, taskID int64) model.Record {
	return model.Record{
		ID:        id,
		Title:     StringPtr(fmt.Sprintf("Question %d", id)),
		Content:   StringPtr("answer body"),
		AnswerURL: fmt.Sprintf("https://example.com/answer/%d", id),
		Author:    StringPtr("author"),
		Year:      year,
		TaskID:    taskID,
	}
}

// Records returns n sequential record fixtures.
func Records(n int) []model.Record {
	out := make([]model.Record, 0, n)
	for i := range n {
		out = append(out, Record(int64(i+1), model.DefaultChartFirstYear+i%8, 1))
	}
	return out
}

// ExportFile returns an export file fixture named like the backend names them.
func ExportFile(kind model.RecordKind, at time.Time, size int64) model.ExportFile {
	return model.ExportFile{
		Filename:    fmt.Sprintf("%s_data_%s.xlsx", kind, at.Format("20060102_150405")),
		Size:        size,
		CreatedTime: model.Timestamp{Time: at},
	}
}

// TestTime returns the fixed reference time used by fixtures.
func TestTime() time.Time {
	return time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)
}
