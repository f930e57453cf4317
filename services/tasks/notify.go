package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"turfbook/models"
)

const TypeBookingNotify = "booking:notify"

// NewBookingNotifyTask wraps a booking notification payload for the queue.
func NewBookingNotifyTask(payload models.BookingNotification) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingNotify, b), nil
}
