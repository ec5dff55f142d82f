package http

import (
	"context"

	"golang.org/x/sync/singleflight"
)

var group singleflight.Group

// exportGroup deduplicates concurrent identical export runs while still
// honoring each caller's context cancellation.
func exportGroup(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, error, bool) {
	resultChan := group.DoChan(key, func() (interface{}, error) {
		return fn(ctx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err(), false
	case res := <-resultChan:
		return res.Val, res.Err, res.Shared
	}
}
