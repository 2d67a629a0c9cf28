package session

import (
	"context"
	"sync"
	"time"

	"github.com/bazarly/bazarly-go/internal/config"
	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/models"
)

type profileRefreshJob struct {
	profile ProfileGateway
	manager *Manager
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProfileRefreshJob creates a RefreshJob that periodically re-fetches the
// authenticated user's profile and swaps it into the session wholesale. The
// job is idle until Start is called and skips ticks while the session is not
// authenticated.
func NewProfileRefreshJob(profile ProfileGateway, manager *Manager, log *logger.Logger) RefreshJob {
	return &profileRefreshJob{profile: profile, manager: manager, logger: log}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that refreshes the profile every interval.
// If interval is zero or negative it defaults to 5 minutes. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *profileRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultProfileRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx)
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *profileRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *profileRefreshJob) refresh(ctx context.Context) {
	if j.manager.State() != models.SessionAuthenticated {
		return
	}

	user, err := j.profile.Me(ctx)
	if err != nil {
		j.logger.Debug().Err(err).Msg("profile refresh failed")
		return
	}

	j.manager.ReplaceProfile(ctx, user)
}
