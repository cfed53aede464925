package tasks

import (
	"encoding/json"
	"strings"
	"time"

	"apna/models"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "booking:reminder"

// bookingTimeLayout matches slot labels such as "2:00 PM".
const bookingTimeLayout = "2006-01-02 3:04 PM"

func NewBookingReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt), asynq.MaxRetry(3)}

	return task, opts, nil
}

// ReminderFireTime returns lead before the booking start. Bookings whose start
// cannot be parsed, or whose reminder time has already passed, fire at now.
func ReminderFireTime(date, clock string, lead time.Duration, now time.Time) time.Time {
	start, err := time.ParseInLocation(bookingTimeLayout, strings.TrimSpace(date)+" "+strings.ToUpper(strings.TrimSpace(clock)), now.Location())
	if err != nil {
		return now
	}
	fireAt := start.Add(-lead)
	if fireAt.Before(now) {
		return now
	}
	return fireAt
}

// ParseReminderPayload decodes a task body.
func ParseReminderPayload(task *asynq.Task) (models.ReminderPayload, error) {
	var p models.ReminderPayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
