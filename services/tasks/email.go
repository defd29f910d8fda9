package tasks

import (
	"encoding/json"
	"time"

	"menagio/models"

	"github.com/hibiken/asynq"
)

const (
	TypeEmailSend    = "email:send"
	TypeReminderSend = "reminder:send"
)

// NewEmailTask builds a fire-and-forget email dispatch task.
func NewEmailTask(payload models.BookingNotification) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeEmailSend, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}

	return task, opts, nil
}

// NewReminderTask builds a reminder task scheduled for fireAt.
func NewReminderTask(payload models.BookingNotification, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
