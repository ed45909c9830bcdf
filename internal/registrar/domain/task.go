package domain

import "errors"

// TaskStatus is the state of a registration task.
type TaskStatus string

const (
	TaskStatusPending  TaskStatus = "pending"
	TaskStatusComplete TaskStatus = "complete"
	TaskStatusFailed   TaskStatus = "failed"
)

// IsTerminal reports whether the task has stopped changing. Any status
// other than pending is terminal, including ones this client does not know.
func (s TaskStatus) IsTerminal() bool {
	return s != TaskStatusPending
}

// ErrTaskFailed is returned when a waited-on task finishes as failed.
var ErrTaskFailed = errors.New("task failed")

// Task is a snapshot of a registration task.
type Task struct {
	ID     TaskID     `json:"id"`
	Status TaskStatus `json:"status"`

	// Domain is set when the completed task reports the resulting domain.
	Domain *Domain `json:"domain,omitempty"`
}
