// internal/search/cancel.go

package search

import (
	"context"
	"sync/atomic"
)

// cancelToken is flipped once by a context watcher and polled by the search.
type cancelToken struct {
	f    int32
	stop func() bool
}

// newCancelToken arms a token that aborts when ctx is done. A ctx that is
// already done aborts it before the first node is searched.
func newCancelToken(ctx context.Context) *cancelToken {
	c := &cancelToken{}
	if ctx.Err() != nil {
		c.Abort()
		return c
	}
	c.stop = context.AfterFunc(ctx, c.Abort)
	return c
}

func (c *cancelToken) release() {
	if c.stop != nil {
		c.stop()
	}
}

func (c *cancelToken) Abort() {
	atomic.StoreInt32(&c.f, 1)
}

// IsAborted is always false for a nil token.
func (c *cancelToken) IsAborted() bool {
	return c != nil && atomic.LoadInt32(&c.f) == 1
}
