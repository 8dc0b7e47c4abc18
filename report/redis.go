package report

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/zeu5/hallway-pomdp/types"
)

// RedisReporter pushes episode results onto a Redis list, keyed per
// experiment, so external dashboards can consume runs as they happen.
type RedisReporter struct {
	client *redis.Client
	key    string
	ctx    context.Context
}

var _ types.Reporter = &RedisReporter{}

func NewRedisReporter(ctx context.Context, addr, key string) *RedisReporter {
	return &RedisReporter{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
		key: key,
		ctx: ctx,
	}
}

func (r *RedisReporter) Report(result types.EpisodeResult) error {
	bs, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return r.client.RPush(r.ctx, r.key+":"+result.Experiment, string(bs)).Err()
}

func (r *RedisReporter) Close() error {
	return r.client.Close()
}
