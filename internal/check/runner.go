// internal/check/runner.go
package check

import (
	"context"
	"time"
)

// RunEvery invokes the check on a fixed cadence until ctx is done.
// One goroutine per instance. No overlap. No retries.
func (c *Check) RunEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Run(ctx); err != nil {
				c.log.Error("check failed", "instance", c.instance, "err", err)
			}
		}
	}
}
