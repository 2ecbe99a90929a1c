package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const emailQueueKey = "tasks:email"

// EmailTask is a queued blog-created notification.
type EmailTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Recipient   string `json:"recipient"`
}

// Queue is a Redis-list task queue decoupling email delivery from the
// request path. The API enqueues; the worker binary dequeues.
type Queue struct {
	rdb *redis.Client
}

// NewQueue returns a new Queue.
func NewQueue(rdb *redis.Client) *Queue {
	return &Queue{rdb: rdb}
}

// EnqueueEmail pushes a notification task and returns its id.
func (q *Queue) EnqueueEmail(ctx context.Context, title, description, recipient string) (string, error) {
	task := EmailTask{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Recipient:   recipient,
	}
	b, err := json.Marshal(task)
	if err != nil {
		return "", err
	}
	if err := q.rdb.LPush(ctx, emailQueueKey, b).Err(); err != nil {
		return "", fmt.Errorf("enqueue email task: %w", err)
	}
	return task.ID, nil
}

// DequeueEmail blocks up to timeout for the next task. Returns ok=false on
// timeout with no task available.
func (q *Queue) DequeueEmail(ctx context.Context, timeout time.Duration) (EmailTask, bool, error) {
	res, err := q.rdb.BRPop(ctx, timeout, emailQueueKey).Result()
	if errors.Is(err, redis.Nil) {
		return EmailTask{}, false, nil
	}
	if err != nil {
		return EmailTask{}, false, err
	}
	// BRPOP returns [key, value].
	var task EmailTask
	if err := json.Unmarshal([]byte(res[1]), &task); err != nil {
		return EmailTask{}, false, fmt.Errorf("decode email task: %w", err)
	}
	return task, true, nil
}
