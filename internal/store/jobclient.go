package store

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"
)

// AsynqJobClient is a JobClient backed by an asynq/Redis queue.
type AsynqJobClient struct {
	client *asynq.Client
}

func NewAsynqJobClient(redisAddr, password string, db int) (*AsynqJobClient, error) {
	if redisAddr == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}
	cli := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})
	return &AsynqJobClient{client: cli}, nil
}

func (jc *AsynqJobClient) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	info, err := jc.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue task %q: %w", task.Type(), err)
	}
	log.Debugf("Enqueued task %q (id=%s, queue=%s)", task.Type(), info.ID, info.Queue)
	return info, nil
}

func (jc *AsynqJobClient) Close() error {
	return jc.client.Close()
}

var _ JobClient = (*AsynqJobClient)(nil)
