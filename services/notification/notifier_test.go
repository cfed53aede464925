package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"apna/models"
	"apna/services/tasks"

	"github.com/hibiken/asynq"
)

type fakeQueue struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (q *fakeQueue) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, task)
	q.opts = append(q.opts, opts)
	return &asynq.TaskInfo{ID: "task-1"}, nil
}

func TestQueueNotifierSchedulesReminder(t *testing.T) {
	queue := &fakeQueue{}
	n := NewQueueNotifier(queue, 30*time.Minute, nil)
	n.Now = func() time.Time { return time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local) }

	booking := models.Booking{ID: "b4", ProviderID: "1", ProviderName: "Priya Sharma", Service: "House Cleaning", Date: "2024-03-12", Time: "2:00 PM"}
	if err := n.BookingCreated(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queue.tasks) != 1 {
		t.Fatalf("expected one task, got %d", len(queue.tasks))
	}
	if queue.tasks[0].Type() != tasks.TypeBookingReminder {
		t.Fatalf("unexpected task type %s", queue.tasks[0].Type())
	}

	payload, err := tasks.ParseReminderPayload(queue.tasks[0])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	want := time.Date(2024, 3, 12, 13, 30, 0, 0, time.Local).Format(time.RFC3339)
	if payload.BookingID != "b4" || payload.FireDate != want {
		t.Fatalf("unexpected payload %+v (want fireDate %s)", payload, want)
	}
}

func TestQueueNotifierReportsEnqueueFailure(t *testing.T) {
	n := NewQueueNotifier(&fakeQueue{err: errors.New("redis down")}, time.Hour, nil)
	if err := n.BookingCreated(context.Background(), models.Booking{ID: "b9"}); err == nil {
		t.Fatal("expected enqueue error")
	}
}

func TestLogNotifierNeverFails(t *testing.T) {
	if err := (LogNotifier{}).BookingCreated(context.Background(), models.Booking{ID: "b1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
