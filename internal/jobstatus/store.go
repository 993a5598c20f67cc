// Package jobstatus records scheduled job runs in redis with a TTL instead
// of a process-lifetime in-memory map, so status survives restarts and old
// runs age out on their own.
package jobstatus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	errorsUtils "github.com/Egor213/LogStream/pkg/errors"
)

const (
	keyPrefix  = "logstream:job:"
	defaultTTL = 24 * time.Hour
)

var ErrNotFound = fmt.Errorf("job status not found")

type State string

const (
	StateRunning   State = "RUNNING"
	StateCompleted State = "COMPLETED"
	StateFailed    State = "FAILED"
)

type JobStatus struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	State      State      `json:"state"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Processed  int        `json:"processed"`
	Failed     int        `json:"failed"`
	Error      string     `json:"error,omitempty"`
}

type Store interface {
	Set(ctx context.Context, status JobStatus) error
	Get(ctx context.Context, id uuid.UUID) (JobStatus, error)
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: defaultTTL}
}

func (s *RedisStore) Set(ctx context.Context, status JobStatus) error {
	payload, err := json.Marshal(status)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if err := s.client.Set(ctx, keyPrefix+status.ID.String(), payload, s.ttl).Err(); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (JobStatus, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return JobStatus{}, ErrNotFound
		}
		return JobStatus{}, errorsUtils.WrapPathErr(err)
	}

	var status JobStatus
	if err := json.Unmarshal(payload, &status); err != nil {
		return JobStatus{}, errorsUtils.WrapPathErr(err)
	}

	return status, nil
}

// Begin creates a RUNNING record for a new job run.
func Begin(name string) JobStatus {
	return JobStatus{
		ID:        uuid.New(),
		Name:      name,
		State:     StateRunning,
		StartedAt: time.Now().UTC(),
	}
}

// Finish stamps the terminal state from err.
func (j *JobStatus) Finish(err error) {
	now := time.Now().UTC()
	j.FinishedAt = &now

	if err != nil {
		j.State = StateFailed
		j.Error = err.Error()
		return
	}

	j.State = StateCompleted
}
