package cscbench

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "csc:bench:"
	payload   = "0123456789abcdef0123456789abcdef0123456789abcdef"
)

// redisAPI is the slice of *redis.Client the runner touches, narrowed so
// tests can substitute a fake server.
type redisAPI interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Pipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
}

// Runner measures the benchmark matrix against a live Redis server and
// produces a dated Output in the same shape as the published sample table.
type Runner struct {
	rdb     redisAPI
	configs []Config
	runs    int
	now     func() time.Time
}

// NewRunner wires a runner to a Redis client. runs is the number of
// repetitions per series; values below 1 fall back to 5.
func NewRunner(rdb *redis.Client, runs int) *Runner {
	if runs < 1 {
		runs = 5
	}
	return &Runner{
		rdb:     rdb,
		configs: DefaultConfigs(),
		runs:    runs,
		now:     time.Now,
	}
}

// Run seeds each configuration's keys, then times every (variant, run)
// cell of the matrix. The warm-up run is recorded like any other;
// trimming happens at render time. A fresh cached reader is used per
// configuration so its first run always starts cold.
func (r *Runner) Run(ctx context.Context, label string) (Output, error) {
	out := Output{Date: r.now().Format(dateLayout), Label: label}

	for _, cfg := range r.configs {
		keys, err := r.seed(ctx, cfg.KeyCount)
		if err != nil {
			return Output{}, fmt.Errorf("seed %d keys: %w", cfg.KeyCount, err)
		}

		for _, rd := range []reader{&regularReader{rdb: r.rdb}, newCachedReader(r.rdb)} {
			s := Series{Test: cfg.Test, Variant: rd.variant(), KeyCount: cfg.KeyCount}
			for i := 0; i < r.runs; i++ {
				start := time.Now()
				if err := rd.read(ctx, cfg.Test, keys); err != nil {
					return Output{}, fmt.Errorf("%s/%d/%s run %d: %w",
						cfg.Test, cfg.KeyCount, rd.variant(), i+1, err)
				}
				s.Millis = append(s.Millis, float64(time.Since(start))/float64(time.Millisecond))
			}
			out.Results = append(out.Results, s)
		}
	}
	return out, nil
}

func (r *Runner) seed(ctx context.Context, n int) ([]string, error) {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("%s%d", keyPrefix, i)
		if err := r.rdb.Set(ctx, keys[i], payload, 0).Err(); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// reader performs one timed pass over the seeded keys.
type reader interface {
	variant() Variant
	read(ctx context.Context, test string, keys []string) error
}

type regularReader struct {
	rdb redisAPI
}

func (r *regularReader) variant() Variant { return VariantRegular }

func (r *regularReader) read(ctx context.Context, test string, keys []string) error {
	switch test {
	case TestSequentialGet:
		for _, k := range keys {
			if err := r.rdb.Get(ctx, k).Err(); err != nil {
				return err
			}
		}
		return nil
	case TestPipelinedGet:
		_, err := r.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
			for _, k := range keys {
				p.Get(ctx, k)
			}
			return nil
		})
		return err
	}
	return fmt.Errorf("unknown test %q", test)
}

// cachedReader serves repeated reads from an in-process map, fetching
// only misses from the server. It reproduces the hit/miss behavior of
// server-assisted client-side caching without the invalidation channel,
// which the benchmark never triggers.
type cachedReader struct {
	rdb   redisAPI
	local map[string]string
}

func newCachedReader(rdb redisAPI) *cachedReader {
	return &cachedReader{rdb: rdb, local: make(map[string]string)}
}

func (c *cachedReader) variant() Variant { return VariantCached }

func (c *cachedReader) read(ctx context.Context, test string, keys []string) error {
	switch test {
	case TestSequentialGet:
		for _, k := range keys {
			if _, ok := c.local[k]; ok {
				continue
			}
			v, err := c.rdb.Get(ctx, k).Result()
			if err != nil {
				return err
			}
			c.local[k] = v
		}
		return nil
	case TestPipelinedGet:
		var misses []string
		for _, k := range keys {
			if _, ok := c.local[k]; !ok {
				misses = append(misses, k)
			}
		}
		if len(misses) == 0 {
			return nil
		}
		cmds := make([]*redis.StringCmd, 0, len(misses))
		_, err := c.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
			for _, k := range misses {
				cmds = append(cmds, p.Get(ctx, k))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for i, cmd := range cmds {
			v, err := cmd.Result()
			if err != nil {
				return err
			}
			c.local[misses[i]] = v
		}
		return nil
	}
	return fmt.Errorf("unknown test %q", test)
}
