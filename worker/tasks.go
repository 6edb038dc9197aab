package worker

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeCacheWarm = "calendar:warm"
	TypeBackup    = "calendar:backup"
)

type cacheWarmPayload struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Client enqueues background tasks. It satisfies the event service's
// TaskQueue contract.
type Client struct {
	client *asynq.Client
}

func NewClient(redisOpt asynq.RedisClientOpt) *Client {
	return &Client{client: asynq.NewClient(redisOpt)}
}

// EnqueueCacheWarm schedules a cache warm for the month containing ref.
func (c *Client) EnqueueCacheWarm(ref time.Time) error {
	payload, err := json.Marshal(cacheWarmPayload{
		Year:  ref.Year(),
		Month: int(ref.Month()),
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeCacheWarm, payload)
	_, err = c.client.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(time.Minute))
	return err
}

func (c *Client) Close() error {
	return c.client.Close()
}
